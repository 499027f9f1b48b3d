// Package store opens the persistence backend selected in the configuration.
package store

import (
	"context"
	"fmt"

	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/internal/store/bolt"
	"github.com/goran-ethernal/QuorumEventGate/internal/store/mongo"
	"github.com/goran-ethernal/QuorumEventGate/internal/store/sqlite"
	"github.com/goran-ethernal/QuorumEventGate/pkg/config"
	"github.com/goran-ethernal/QuorumEventGate/pkg/store"
)

// New opens the backend named by cfg.Backend. For SQLite the background
// maintenance is started with ctx and stopped by Close.
func New(ctx context.Context, cfg config.StoreConfig, log *logger.Logger) (store.Store, error) {
	switch cfg.Backend {
	case config.StoreBackendSQLite, "":
		s, err := sqlite.New(cfg.DB, cfg.Maintenance, log)
		if err != nil {
			return nil, err
		}
		if err := s.Maintenance().Start(ctx); err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("failed to start database maintenance: %w", err)
		}
		return s, nil

	case config.StoreBackendMongo:
		if cfg.Mongo == nil {
			return nil, fmt.Errorf("mongo backend selected without mongo configuration")
		}
		return mongo.New(ctx, *cfg.Mongo, log)

	case config.StoreBackendBolt:
		if cfg.Bolt == nil {
			return nil, fmt.Errorf("bolt backend selected without bolt configuration")
		}
		return bolt.New(cfg.Bolt.Path, log)

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
