package autowhitelist

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	sourcePublic  = "public"
	sourcePrivate = "private"
)

var (
	whitelistedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventgate_auto_whitelisted_total",
			Help: "Total number of addresses whitelisted by the bootstrap",
		},
		[]string{"source"},
	)

	backfillStart = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "eventgate_auto_whitelist_start_block",
		Help: "Next block the private back-scan will read",
	})

	bootstrapRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventgate_auto_whitelist_retries_total",
			Help: "Total number of retried bootstrap steps",
		},
		[]string{"step"},
	)
)

// WhitelistedInc increments the bootstrap whitelist counter.
func WhitelistedInc(source string) {
	whitelistedTotal.WithLabelValues(source).Inc()
}

// BackfillStartLog records the back-scan position.
func BackfillStartLog(block uint64) {
	backfillStart.Set(float64(block))
}

// BootstrapRetryInc increments the retry counter of step.
func BootstrapRetryInc(step string) {
	bootstrapRetries.WithLabelValues(step).Inc()
}
