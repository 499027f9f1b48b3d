package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventgate_events_published_total",
		Help: "Total number of valid events published to the bus",
	})

	eventsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventgate_events_skipped_total",
		Help: "Total number of invalid events that ended the processing of their transaction",
	})

	lastProcessedBlock = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "eventgate_last_processed_block",
		Help: "Last block fully processed by the event service",
	})

	iterationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventgate_iteration_failures_total",
		Help: "Total number of aborted polling iterations",
	})

	iterationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "eventgate_iteration_duration_seconds",
		Help:    "Duration of one polling iteration",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 14), //nolint:mnd
	})
)

// EventPublishedInc increments the published events counter.
func EventPublishedInc() {
	eventsPublished.Inc()
}

// EventSkippedInc increments the skipped events counter.
func EventSkippedInc() {
	eventsSkipped.Inc()
}

// LastProcessedBlockLog records the last processed block.
func LastProcessedBlockLog(block uint64) {
	lastProcessedBlock.Set(float64(block))
}

// IterationFailureInc increments the failed iterations counter.
func IterationFailureInc() {
	iterationFailures.Inc()
}

// IterationDurationLog records the duration of one iteration.
func IterationDurationLog(seconds float64) {
	iterationDuration.Observe(seconds)
}
