package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     config.StoreConfig
		wantErr string
	}{
		{
			name: "sqlite",
			cfg: config.StoreConfig{
				Backend: config.StoreBackendSQLite,
				DB:      config.DatabaseConfig{Path: filepath.Join(dir, "gate.sqlite")},
			},
		},
		{
			name: "bolt",
			cfg: config.StoreConfig{
				Backend: config.StoreBackendBolt,
				Bolt:    &config.BoltConfig{Path: filepath.Join(dir, "gate.bolt")},
			},
		},
		{
			name:    "mongo without section",
			cfg:     config.StoreConfig{Backend: config.StoreBackendMongo},
			wantErr: "without mongo configuration",
		},
		{
			name:    "unknown backend",
			cfg:     config.StoreConfig{Backend: "postgres"},
			wantErr: "unknown store backend",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.ApplyDefaults()

			s, err := New(context.Background(), tt.cfg, logger.NewNopLogger())
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NoError(t, s.Ping(context.Background()))
			require.NoError(t, s.Close())
		})
	}
}
