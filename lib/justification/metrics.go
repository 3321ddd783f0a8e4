// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package justification

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "aleph_justification"

// Outcome is what the handler did with a notification.
type Outcome string

// Outcomes of handling a notification.
const (
	OutcomeFinalized         Outcome = "finalized"
	OutcomeDecodeFailed      Outcome = "decode_failed"
	OutcomeNoVerifier        Outcome = "no_verifier"
	OutcomeStale             Outcome = "stale"
	OutcomeFutureSession     Outcome = "future_session"
	OutcomeVerifyFailed      Outcome = "verify_failed"
	OutcomeFinalizationError Outcome = "finalization_error"
	OutcomeStateError        Outcome = "state_error"
)

// Metrics holds the prometheus collectors of the justification handler.
type Metrics struct {
	notifications  *prometheus.CounterVec
	finalizedBlock prometheus.Gauge
	requests       prometheus.Counter
	queueClears    prometheus.Counter
}

// NewMetrics creates the handler metrics and registers them.
func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "notifications_total",
			Help:      "Justification notifications handled, by source and outcome.",
		}, []string{"source", "outcome"}),
		finalizedBlock: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "finalized_block_number",
			Help:      "Number of the last block finalized by the handler.",
		}),
		requests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "requests_total",
			Help:      "Requests sent for missing justifications.",
		}),
		queueClears: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "request_queue_clears_total",
			Help:      "Times stale justification requests were cleared.",
		}),
	}

	for _, collector := range []prometheus.Collector{
		m.notifications, m.finalizedBlock, m.requests, m.queueClears,
	} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// the methods below accept a nil receiver so the handler can run without metrics

func (m *Metrics) notification(source Source, outcome Outcome) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(string(source), string(outcome)).Inc()
}

func (m *Metrics) finalized(number uint) {
	if m == nil {
		return
	}
	m.finalizedBlock.Set(float64(number))
}

func (m *Metrics) requestSent() {
	if m == nil {
		return
	}
	m.requests.Inc()
}

func (m *Metrics) queueCleared() {
	if m == nil {
		return
	}
	m.queueClears.Inc()
}
