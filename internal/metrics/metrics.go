// Package metrics exposes Prometheus instrumentation for the
// recommendation pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every collector the server registers.
type Metrics struct {
	// PipelineDuration observes one end-to-end recommendation run,
	// labeled by outcome: done, failed, fallback.
	PipelineDuration *prometheus.HistogramVec
	// SourceCandidates counts candidates contributed per source adapter.
	SourceCandidates *prometheus.CounterVec
	// SourceFailures counts adapter fetches that returned an error.
	SourceFailures *prometheus.CounterVec
	// FallbackServed counts runs resolved by the static fallback shelf.
	FallbackServed prometheus.Counter
	// HTTPRequests counts inbound requests by route and status class.
	HTTPRequests *prometheus.CounterVec
}

// New registers all collectors on reg and returns them. Pass
// prometheus.DefaultRegisterer in production; tests use a fresh registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PipelineDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "nextread",
			Subsystem: "pipeline",
			Name:      "duration_seconds",
			Help:      "End-to-end recommendation pipeline duration.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
		}, []string{"outcome"}),
		SourceCandidates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nextread",
			Subsystem: "pipeline",
			Name:      "source_candidates_total",
			Help:      "Candidates contributed per source adapter.",
		}, []string{"source"}),
		SourceFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nextread",
			Subsystem: "pipeline",
			Name:      "source_failures_total",
			Help:      "Source adapter fetches that returned an error.",
		}, []string{"source"}),
		FallbackServed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "nextread",
			Subsystem: "pipeline",
			Name:      "fallback_served_total",
			Help:      "Runs resolved by the static fallback shelf.",
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nextread",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Inbound HTTP requests.",
		}, []string{"route", "status"}),
	}
}
