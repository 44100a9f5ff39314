package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics groups the collectors updated by the solve handlers.
type metrics struct {
	solves   *prometheus.CounterVec
	explored *prometheus.HistogramVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		solves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gosearch_solves_total",
			Help: "Total solve requests by strategy and outcome",
		}, []string{"strategy", "outcome"}),
		explored: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gosearch_explored_states",
			Help:    "Number of states removed from the frontier per solve",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"strategy"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gosearch_solve_duration_seconds",
			Help:    "Solve duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"strategy"}),
	}
}
