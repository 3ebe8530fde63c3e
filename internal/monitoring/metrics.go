package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// WorkerMetrics contains all metrics for the payout worker loop
type WorkerMetrics struct {
	// Tick count by resulting action
	ticks *prometheus.CounterVec

	// Tick duration histogram
	tickDuration prometheus.Histogram
}

// NewWorkerMetrics creates and registers the worker metrics
func NewWorkerMetrics(registry *prometheus.Registry) *WorkerMetrics {
	m := &WorkerMetrics{
		ticks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payout_backend_worker_ticks_total",
				Help: "Total number of worker ticks by resulting action",
			},
			[]string{"action"},
		),

		tickDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "payout_backend_worker_tick_duration_seconds",
				Help:    "Duration of worker ticks in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}

	if registry != nil {
		registry.MustRegister(m.ticks, m.tickDuration)
	}

	return m
}

// RecordTick records one completed tick
func (m *WorkerMetrics) RecordTick(action string, duration time.Duration) {
	m.ticks.WithLabelValues(action).Inc()
	m.tickDuration.Observe(duration.Seconds())
}
