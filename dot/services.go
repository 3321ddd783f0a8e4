// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"fmt"

	"github.com/ChainSafe/aleph-finality/dot/config"
	"github.com/ChainSafe/aleph-finality/dot/state"
	"github.com/ChainSafe/aleph-finality/dot/sync"
	"github.com/ChainSafe/aleph-finality/dot/types"
	"github.com/ChainSafe/aleph-finality/internal/metrics"
	"github.com/ChainSafe/aleph-finality/lib/justification"
	"github.com/ChainSafe/aleph-finality/lib/utils"
	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// genesisHeader is the header the block state is initialised with
// on a fresh database.
func genesisHeader() *types.Header {
	return types.NewHeader(common.Hash{}, common.Hash{}, common.Hash{}, 0)
}

func createDatabase(cfg *config.Config) (chaindb.Database, error) {
	logger.Debugf("opening database at %s (in memory: %t)...",
		cfg.Global.BasePath, cfg.Global.InMemory)
	db, err := utils.SetupDatabase(cfg.Global.BasePath, cfg.Global.InMemory)
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}
	return db, nil
}

// createBlockState loads the block state, initialising it from the
// genesis header if the database is empty.
func createBlockState(db chaindb.Database) (*state.BlockState, error) {
	initialised, err := state.IsInitialised(db)
	if err != nil {
		return nil, fmt.Errorf("failed to check block state: %w", err)
	}

	if initialised {
		return state.NewBlockState(db)
	}

	genesis := genesisHeader()
	logger.Infof("initialising block state with genesis %s", genesis.Hash())
	return state.NewBlockStateFromGenesis(db, genesis)
}

func createMetricsRegistry() (*prometheus.Registry, error) {
	registry := prometheus.NewRegistry()
	for _, collector := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := registry.Register(collector); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}
	return registry, nil
}

func createRequester(cfg *config.Config, network sync.Network,
	bs *state.BlockState) (*sync.JustificationRequester, error) {
	requester, err := sync.NewJustificationRequester(network, bs, cfg.Network.RequestTimeout.Std())
	if err != nil {
		return nil, fmt.Errorf("failed to create justification requester: %w", err)
	}
	return requester, nil
}

// createHandler wires the justification handler to the block state,
// the authority state and the requester.
func createHandler(cfg *config.Config, bs *state.BlockState, authorities *state.AuthorityState,
	requester *sync.JustificationRequester, registry prometheus.Registerer, clk clock.Clock) (
	*justification.Handler, *justification.Scheduler, error) {
	handlerCfg, err := cfg.HandlerConfig()
	if err != nil {
		return nil, nil, err
	}

	sessionInfo, err := justification.NewSessionInfoProvider(handlerCfg.SessionPeriod, authorities)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create session info provider: %w", err)
	}

	handlerMetrics, err := justification.NewMetrics(registry)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create justification metrics: %w", err)
	}

	handlerCfg.Clock = clk
	scheduler := justification.NewScheduler(handlerCfg.Clock, handlerCfg.RequestCooldown,
		handlerCfg.StaleRequestsAfter, handlerCfg.RequestPolicy)

	handler := justification.NewHandler(sessionInfo, requester, bs, bs, scheduler,
		handlerMetrics, handlerCfg)
	return handler, scheduler, nil
}

func createMetricsServer(cfg *config.Config, gatherer prometheus.Gatherer) *metrics.Server {
	return metrics.NewServer(cfg.Metrics.Address, gatherer)
}
