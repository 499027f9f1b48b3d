package db

import (
	"path/filepath"
	"testing"

	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/pkg/config"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/stretchr/testify/require"
)

const testMigration = `
-- +migrate Down
DROP TABLE IF EXISTS sample;

-- +migrate Up
CREATE TABLE sample (
    id    INTEGER PRIMARY KEY,
    value TEXT NOT NULL
);
`

func TestRunMigrations(t *testing.T) {
	cfg := config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "migrations.sqlite")}
	cfg.ApplyDefaults()

	migrations := []Migration{{ID: "001_sample.sql", SQL: testMigration}}
	log := logger.NewNopLogger()

	require.NoError(t, RunMigrations(log, cfg, migrations))
	// idempotent
	require.NoError(t, RunMigrations(log, cfg, migrations))

	db, err := NewSQLiteDBFromConfig(cfg)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec("INSERT INTO sample (value) VALUES ('a')")
	require.NoError(t, err)

	require.NoError(t, RunMigrationsDBExtended(log, db, migrations, migrate.Down, NoLimitMigrations))

	_, err = db.Exec("INSERT INTO sample (value) VALUES ('a')")
	require.Error(t, err)
}

func TestRunMigrations_MissingSeparator(t *testing.T) {
	cfg := config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "migrations.sqlite")}
	cfg.ApplyDefaults()

	err := RunMigrations(logger.NewNopLogger(), cfg, []Migration{{ID: "bad.sql", SQL: "CREATE TABLE x (id INTEGER);"}})
	require.ErrorContains(t, err, "missing '-- +migrate Up' separator")
}
