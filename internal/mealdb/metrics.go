package mealdb

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK             = "ok"
	outcomeHTTPError      = "http_error"
	outcomeTransportError = "transport_error"
	outcomeDecodeError    = "decode_error"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ladle_mealdb_requests_total",
			Help: "Total number of TheMealDB API requests by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ladle_mealdb_request_duration_seconds",
			Help:    "TheMealDB API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

func observeOutcome(endpoint, outcome string) {
	requestsTotal.WithLabelValues(endpoint, outcome).Inc()
}

func observeLatency(endpoint string, elapsed time.Duration) {
	requestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}
