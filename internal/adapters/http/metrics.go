package http

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the handler's instrument set. Each handler owns its registry
// so embedders and tests never collide on the global one.
type metrics struct {
	registry   *prometheus.Registry
	requests   *prometheus.CounterVec
	duration   prometheus.Histogram
	wordsFound prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hexcomb_solve_requests_total",
				Help: "Total number of solve requests by status code",
			},
			[]string{"status"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name: "hexcomb_solve_duration_seconds",
				Help: "Duration of puzzle searches",
			},
		),
		wordsFound: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name: "hexcomb_words_found",
				Help: "Distinct words found per solved puzzle",
			},
		),
	}
	m.registry.MustRegister(m.requests, m.duration, m.wordsFound)
	return m
}
