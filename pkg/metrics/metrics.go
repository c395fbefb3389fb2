package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BookingOperations counts allocator calls by operation and outcome.
	// Outcome is "success", a failure kind, or "error" for infrastructure failures.
	BookingOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "booking",
			Name:      "operations_total",
			Help:      "The total number of booking operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	// HTTPRequestDuration observes request latency per route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "http",
			Name:      "request_duration_seconds",
			Help:      "The time spent serving HTTP requests",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)
