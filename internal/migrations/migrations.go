package migrations

import (
	_ "embed"

	"github.com/goran-ethernal/QuorumEventGate/internal/db"
	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/pkg/config"
)

//go:embed 001_trust_store.sql
var mig001 string

//go:embed 002_progress.sql
var mig002 string

//go:embed 003_auto_whitelist_range.sql
var mig003 string

// All returns the schema migrations of the SQLite store, in order.
func All() []db.Migration {
	return []db.Migration{
		{ID: "001_trust_store.sql", SQL: mig001},
		{ID: "002_progress.sql", SQL: mig002},
		{ID: "003_auto_whitelist_range.sql", SQL: mig003},
	}
}

// RunMigrations brings the SQLite store described by cfg up to date.
func RunMigrations(log *logger.Logger, cfg config.DatabaseConfig) error {
	return db.RunMigrations(log, cfg, All())
}
