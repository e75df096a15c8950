/*
 * Copyright (c) 2021-present unTill Pro, Ltd.
 *
 */

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus catalog metrics. Nil *CatalogMetrics is valid and records nothing
type CatalogMetrics struct {
	lookups     *prometheus.CounterVec
	materialize *prometheus.HistogramVec
}

func newCatalogMetrics() *CatalogMetrics {
	return &CatalogMetrics{
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "lookups_total",
				Help:      "Catalog lookups by memo table and result.",
			},
			[]string{labelTable, labelResult},
		),
		materialize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "materialize_duration_seconds",
				Help:      "Time to materialize schema element from schema provider in seconds.",
				Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10), // 1µs to ~0.26s
			},
			[]string{labelTable},
		),
	}
}

func (m *CatalogMetrics) Lookup(table, result string) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(table, result).Inc()
}

func (m *CatalogMetrics) Materialized(table string, d time.Duration) {
	if m == nil {
		return
	}
	m.materialize.WithLabelValues(table).Observe(d.Seconds())
}

// Registers metrics with the given Prometheus registry
func (m *CatalogMetrics) MustRegister(registry prometheus.Registerer) {
	registry.MustRegister(m.lookups)
	registry.MustRegister(m.materialize)
}

