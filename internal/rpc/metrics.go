package rpc

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RPC metrics
	RPCRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventgate_rpc_requests_total",
			Help: "Total number of chain RPC requests by method",
		},
		[]string{"method"},
	)

	RPCErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventgate_rpc_errors_total",
			Help: "Total number of chain RPC errors by method and type",
		},
		[]string{"method", "error_type"},
	)

	RPCDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eventgate_rpc_request_duration_seconds",
			Help:    "Duration of chain RPC requests, excluding rate limiter wait",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	RateLimiterWait = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "eventgate_rpc_rate_limiter_wait_seconds",
			Help:    "Time spent waiting for the chain rate limiter",
			Buckets: []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5},
		},
	)
)

func RPCMethodInc(method string) {
	RPCRequests.WithLabelValues(method).Inc()
}

func RPCMethodDuration(method string, duration time.Duration) {
	RPCDuration.WithLabelValues(method).Observe(duration.Seconds())
}

func RPCMethodError(method, errorType string) {
	RPCErrors.WithLabelValues(method, errorType).Inc()
}

func RateLimiterWaitLog(duration time.Duration) {
	RateLimiterWait.Observe(duration.Seconds())
}
