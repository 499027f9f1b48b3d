package db

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dbQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventgate_db_queries_total",
			Help: "Total number of store operations by backend and operation",
		},
		[]string{"backend", "op"},
	)

	dbErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventgate_db_errors_total",
			Help: "Total number of failed store operations by backend and error kind",
		},
		[]string{"backend", "kind"},
	)

	maintenanceRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventgate_maintenance_runs_total",
			Help: "Total number of maintenance operations by outcome",
		},
		[]string{"status"},
	)

	maintenanceDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "eventgate_maintenance_duration_seconds",
			Help:    "Duration of maintenance operations",
			Buckets: prometheus.DefBuckets,
		},
	)

	maintenanceLastRun = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "eventgate_maintenance_last_run_timestamp",
			Help: "Unix timestamp of last maintenance run",
		},
	)

	walCheckpoints = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventgate_wal_checkpoint_total",
			Help: "Total number of WAL checkpoint operations",
		},
		[]string{"mode"},
	)

	dbSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "eventgate_db_size_bytes",
			Help: "SQLite database size in bytes, including WAL and SHM files",
		},
	)
)

func DBQueryInc(backend, op string) {
	dbQueries.WithLabelValues(backend, op).Inc()
}

func DBErrorInc(backend, kind string) {
	dbErrors.WithLabelValues(backend, kind).Inc()
}

func MaintenanceSuccessInc() {
	maintenanceRuns.WithLabelValues("success").Inc()
}

func MaintenanceErrorInc() {
	maintenanceRuns.WithLabelValues("error").Inc()
}

func MaintenanceDurationLog(duration time.Duration) {
	maintenanceDuration.Observe(duration.Seconds())
	maintenanceLastRun.Set(float64(time.Now().UTC().Unix()))
}

func WALCheckpointInc(mode string) {
	walCheckpoints.WithLabelValues(mode).Inc()
}

func DBSizeLog(sizeBytes int64) {
	dbSize.Set(float64(sizeBytes))
}
