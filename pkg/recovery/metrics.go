// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package recovery

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts variant attempts and their outcomes. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	Attempts  *prometheus.CounterVec
	Successes *prometheus.CounterVec
	Failures  *prometheus.CounterVec
	Duration  *prometheus.HistogramVec
}

// NewMetrics registers the recovery metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Attempts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "faultsort",
			Subsystem: "recovery",
			Name:      "attempts_total",
			Help:      "Number of times a variant was started.",
		}, []string{"variant"}),
		Successes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "faultsort",
			Subsystem: "recovery",
			Name:      "successes_total",
			Help:      "Number of variant results that passed the acceptance test.",
		}, []string{"variant"}),
		Failures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "faultsort",
			Subsystem: "recovery",
			Name:      "failures_total",
			Help:      "Number of failed variant attempts by reason.",
		}, []string{"variant", "reason"}),
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "faultsort",
			Subsystem: "recovery",
			Name:      "duration_seconds",
			Help:      "Wall time of variant attempts.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 12),
		}, []string{"variant"}),
	}
}

func (m *Metrics) started(variant string) {
	if m == nil {
		return
	}
	m.Attempts.WithLabelValues(variant).Inc()
}

func (m *Metrics) finished(variant string, elapsed time.Duration, failure *VariantFailureError) {
	if m == nil {
		return
	}
	m.Duration.WithLabelValues(variant).Observe(elapsed.Seconds())
	if failure != nil {
		m.Failures.WithLabelValues(variant, failure.Reason.String()).Inc()
		return
	}
	m.Successes.WithLabelValues(variant).Inc()
}
