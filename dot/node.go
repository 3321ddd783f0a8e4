// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/ChainSafe/aleph-finality/dot/config"
	"github.com/ChainSafe/aleph-finality/dot/state"
	"github.com/ChainSafe/aleph-finality/dot/sync"
	"github.com/ChainSafe/aleph-finality/internal/log"
	"github.com/ChainSafe/aleph-finality/internal/metrics"
	"github.com/ChainSafe/aleph-finality/lib/justification"
	"github.com/ChainSafe/aleph-finality/lib/services"
	"github.com/ChainSafe/chaindb"
	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "dot"))

// Option is a functional option for the node.
type Option func(n *nodeSettings)

type nodeSettings struct {
	clock clock.Clock
}

// WithClock sets the clock driving the justification handler.
func WithClock(clk clock.Clock) Option {
	return func(s *nodeSettings) {
		s.clock = clk
	}
}

// Node is a container for all the components of a node.
type Node struct {
	Name string

	db             chaindb.Database
	blockState     *state.BlockState
	authorityState *state.AuthorityState
	scheduler      *justification.Scheduler
	handler        *handlerService
	metricsServer  *metrics.Server
	registry       *prometheus.Registry
	services       *services.ServiceRegistry

	started atomic.Bool
	stopped atomic.Bool
}

// NewNode creates a node from the configuration. Justification requests
// for missing justifications are sent through the network given.
func NewNode(cfg *config.Config, network sync.Network, options ...Option) (*Node, error) {
	if network == nil {
		return nil, ErrNilNetwork
	}

	settings := nodeSettings{}
	for _, option := range options {
		option(&settings)
	}
	if settings.clock == nil {
		settings.clock = clock.New()
	}

	err := setupLogger(cfg)
	if err != nil {
		return nil, err
	}

	logger.Infof("🕸️ initialising node %s with base path %s...",
		cfg.Global.Name, cfg.Global.BasePath)

	db, err := createDatabase(cfg)
	if err != nil {
		return nil, err
	}

	node, err := newNode(cfg, db, network, settings)
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logger.Errorf("failed to close database: %s", closeErr)
		}
		return nil, err
	}
	return node, nil
}

func newNode(cfg *config.Config, db chaindb.Database, network sync.Network,
	settings nodeSettings) (*Node, error) {
	blockState, err := createBlockState(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create block state: %w", err)
	}
	authorityState := state.NewAuthorityState(db)

	registry, err := createMetricsRegistry()
	if err != nil {
		return nil, err
	}

	requester, err := createRequester(cfg, network, blockState)
	if err != nil {
		return nil, err
	}

	handler, scheduler, err := createHandler(cfg, blockState, authorityState,
		requester, registry, settings.clock)
	if err != nil {
		return nil, err
	}

	node := &Node{
		Name:           cfg.Global.Name,
		db:             db,
		blockState:     blockState,
		authorityState: authorityState,
		scheduler:      scheduler,
		handler:        newHandlerService(handler),
		registry:       registry,
		services:       services.NewServiceRegistry(logger),
	}

	if cfg.Metrics.Enabled {
		node.metricsServer = createMetricsServer(cfg, registry)
		node.services.RegisterService(node.metricsServer)
	}
	// stopped in reverse order: the handler stops before the requester
	node.services.RegisterService(requester)
	node.services.RegisterService(node.handler)

	return node, nil
}

// Start starts all the node services.
func (n *Node) Start() error {
	if n.stopped.Load() {
		return ErrNodeStopped
	}
	if !n.started.CompareAndSwap(false, true) {
		return ErrNodeStarted
	}

	logger.Info("🕸️ starting node services...")
	err := n.services.StartAll()
	if err != nil {
		return fmt.Errorf("failed to start node services: %w", err)
	}
	return nil
}

// Stop stops the started node services and closes the database.
// A stopped node cannot be started again.
func (n *Node) Stop() error {
	if !n.stopped.CompareAndSwap(false, true) {
		return ErrNodeStopped
	}

	logger.Info("stopping node services...")
	stopErr := n.services.StopAll()
	if err := n.db.Close(); err != nil {
		stopErr = errors.Join(stopErr, fmt.Errorf("failed to close database: %w", err))
	}
	return stopErr
}

// AuthorityQueue returns the queue of justifications produced by this node
// taking part in consensus. Closing it stops the node abruptly.
func (n *Node) AuthorityQueue() *justification.NotificationQueue {
	return n.handler.authority
}

// ImportQueue returns the queue of justifications received with imported
// blocks or from peers. Closing it stops the node abruptly.
func (n *Node) ImportQueue() *justification.NotificationQueue {
	return n.handler.imports
}

// UpdateRequestPolicy changes whether missing justifications are requested.
// It takes effect on the next request attempt.
func (n *Node) UpdateRequestPolicy(policy justification.RequestPolicy) {
	logger.Infof("justification request policy set to %s", policy)
	n.scheduler.UpdatePolicy(policy)
}

// BlockState returns the block state of the node.
func (n *Node) BlockState() *state.BlockState {
	return n.blockState
}

// AuthorityState returns the session authorities store of the node.
func (n *Node) AuthorityState() *state.AuthorityState {
	return n.authorityState
}

// Gatherer returns the node metrics.
func (n *Node) Gatherer() prometheus.Gatherer {
	return n.registry
}
