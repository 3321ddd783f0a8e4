// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ChainSafe/aleph-finality/internal/httpserver"
	"github.com/ChainSafe/aleph-finality/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const stopTimeout = 30 * time.Second

var logger = log.NewFromGlobal(log.AddContext("pkg", "metrics"))

// SetLogLevel sets the log level of the package logger.
func SetLogLevel(level log.Level) {
	logger.PatchLevel(level)
}

var (
	// ErrNotStarted is returned when stopping a server which was not started.
	ErrNotStarted = errors.New("metrics server not started")
	// ErrExitedUnexpectedly is returned when the server stops on its own.
	ErrExitedUnexpectedly = errors.New("metrics server exited unexpectedly")
	// ErrStopTimeout is returned when the server does not stop in time.
	ErrStopTimeout = errors.New("metrics server exit timeout")
)

// Server is a metrics http server
type Server struct {
	cancel context.CancelFunc
	server *httpserver.Server
	done   chan error
}

// NewServer is a constructor for metrics server serving the metrics
// of gatherer on /metrics.
func NewServer(address string, gatherer prometheus.Gatherer) (s *Server) {
	m := http.NewServeMux()
	m.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return &Server{
		server: httpserver.New("metrics", address, m, logger),
	}
}

// Start will start a dedicated metrics server.
func (s *Server) Start() (err error) {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	ready := make(chan struct{})
	s.done = make(chan error)

	go s.server.Run(ctx, ready, s.done)

	select {
	case <-ready:
		logger.Infof("Started metrics server at http://%s/metrics", s.server.GetAddress())
		return nil
	case err := <-s.done:
		close(s.done)
		cancel()
		s.cancel = nil
		if err != nil {
			return err
		}
		return ErrExitedUnexpectedly
	}
}

// Address returns the address the server listens on once started.
func (s *Server) Address() string {
	return s.server.GetAddress()
}

// Stop will stop the metrics server
func (s *Server) Stop() (err error) {
	if s.cancel == nil {
		return ErrNotStarted
	}
	s.cancel()

	timer := time.NewTimer(stopTimeout)
	defer timer.Stop()

	select {
	case err := <-s.done:
		close(s.done)
		if err != nil {
			return fmt.Errorf("stopping metrics server: %w", err)
		}
		return nil
	case <-timer.C:
		return ErrStopTimeout
	}
}
