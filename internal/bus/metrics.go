package bus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	publishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventgate_bus_published_total",
			Help: "Total number of messages accepted by the broker",
		},
		[]string{"kind"},
	)

	publishFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventgate_bus_publish_failures_total",
			Help: "Total number of publications that failed after all retries",
		},
		[]string{"kind"},
	)

	publishRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventgate_bus_publish_retries_total",
			Help: "Total number of publish retries",
		},
		[]string{"operation"},
	)

	publishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eventgate_bus_publish_duration_seconds",
			Help:    "Time spent publishing one message, retries included",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	breakerOpen = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "eventgate_bus_circuit_breaker_open",
			Help: "Whether the publisher circuit breaker is open (1) or not (0)",
		},
		[]string{"kind"},
	)
)

// PublishedInc increments the accepted messages counter.
func PublishedInc(kind string) {
	publishedTotal.WithLabelValues(kind).Inc()
}

// PublishFailureInc increments the failed publications counter.
func PublishFailureInc(kind string) {
	publishFailures.WithLabelValues(kind).Inc()
}

// PublishRetryInc increments the retry counter.
func PublishRetryInc(operation string) {
	publishRetries.WithLabelValues(operation).Inc()
}

// PublishDurationLog records the duration of one publication.
func PublishDurationLog(kind string, seconds float64) {
	publishDuration.WithLabelValues(kind).Observe(seconds)
}

// BreakerStateLog records whether the breaker is open.
func BreakerStateLog(kind string, open bool) {
	value := 0.0
	if open {
		value = 1
	}
	breakerOpen.WithLabelValues(kind).Set(value)
}
