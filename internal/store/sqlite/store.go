package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goran-ethernal/QuorumEventGate/internal/db"
	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/internal/migrations"
	"github.com/goran-ethernal/QuorumEventGate/pkg/config"
	"github.com/goran-ethernal/QuorumEventGate/pkg/store"
	"github.com/russross/meddler"
)

const backend = "sqlite"

// Compile-time check to ensure Store implements store.Store interface.
var _ store.Store = (*Store)(nil)

type trustRow struct {
	Address   common.Address `meddler:"address,address"`
	Status    string         `meddler:"status"`
	TxHash    string         `meddler:"tx_hash"`
	UpdatedAt int64          `meddler:"updated_at"`
}

type progressRow struct {
	ID              int64  `meddler:"id,pk"`
	BlockNumber     uint64 `meddler:"block_number"`
	TransactionHash string `meddler:"transaction_hash"`
	LogIndex        uint64 `meddler:"log_index"`
	UpdatedAt       int64  `meddler:"updated_at"`
}

type rangeRow struct {
	ID         int64  `meddler:"id,pk"`
	StartBlock uint64 `meddler:"start_block"`
	StopBlock  *int64 `meddler:"stop_block"`
}

// Store keeps trust records, the progress cursor and the auto-whitelist range in SQLite.
// Progress and range are single rows with id = 1.
type Store struct {
	db          *sql.DB
	maintenance db.Maintenance
	log         *logger.Logger
	now         func() time.Time
}

// New migrates and opens the database described by cfg.
func New(cfg config.DatabaseConfig, maintenanceCfg *config.MaintenanceConfig, log *logger.Logger) (*Store, error) {
	if err := migrations.RunMigrations(log, cfg); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	database, err := db.NewSQLiteDBFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	return NewWithDB(database, db.NewMaintenanceCoordinator(cfg.Path, database, maintenanceCfg, log), log), nil
}

// NewWithDB wraps an already migrated database.
func NewWithDB(database *sql.DB, maintenance db.Maintenance, log *logger.Logger) *Store {
	if maintenance == nil {
		maintenance = db.NoOpMaintenance{}
	}

	return &Store{
		db:          database,
		maintenance: maintenance,
		log:         log,
		now:         time.Now,
	}
}

// Maintenance returns the maintenance coordinator guarding this database.
func (s *Store) Maintenance() db.Maintenance {
	return s.maintenance
}

func (s *Store) run(op string, fn func() error) error {
	unlock := s.maintenance.AcquireOperationLock()
	defer unlock()

	db.DBQueryInc(backend, op)

	err := db.ClassifyError(op, fn())
	if err != nil {
		var dbErr *store.DatabaseError
		if errors.As(err, &dbErr) {
			db.DBErrorInc(backend, string(dbErr.Kind))
		}
	}

	return err
}

func (s *Store) GetStatus(ctx context.Context, address string) (store.TrustStatus, error) {
	record, err := s.GetRecord(ctx, address)
	if err != nil || record == nil {
		return store.StatusUnknown, err
	}

	return record.Status, nil
}

func (s *Store) GetRecord(ctx context.Context, address string) (*store.TrustRecord, error) {
	addr, err := store.NormalizeAddress(address)
	if err != nil {
		return nil, err
	}

	var record *store.TrustRecord
	err = s.run("get trust record", func() error {
		var row trustRow
		err := meddler.QueryRow(s.db, &row, `SELECT * FROM trust WHERE address = ?`, addr.Hex())
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		record = &store.TrustRecord{
			Address:   row.Address,
			Status:    store.TrustStatus(row.Status),
			TxHash:    row.TxHash,
			UpdatedAt: row.UpdatedAt,
		}
		return nil
	})

	return record, err
}

func (s *Store) Whitelist(ctx context.Context, address string, txHash string) error {
	return s.setStatus(ctx, address, store.StatusWhitelisted, txHash)
}

func (s *Store) Blacklist(ctx context.Context, address string, txHash string) error {
	return s.setStatus(ctx, address, store.StatusBlacklisted, txHash)
}

func (s *Store) setStatus(ctx context.Context, address string, status store.TrustStatus, txHash string) error {
	addr, err := store.NormalizeAddress(address)
	if err != nil {
		return err
	}

	err = s.run("upsert trust record", func() error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO trust (address, status, tx_hash, updated_at) VALUES (?, ?, ?, ?)
			ON CONFLICT (address) DO UPDATE SET
				status = excluded.status,
				tx_hash = excluded.tx_hash,
				updated_at = excluded.updated_at
		`, addr.Hex(), string(status), txHash, s.now().Unix())
		return err
	})
	if err != nil {
		return err
	}

	s.log.Debugw("trust status updated", "address", addr.Hex(), "status", status, "txHash", txHash)
	return nil
}

func (s *Store) GetLast(ctx context.Context) (*store.Cursor, error) {
	var cursor *store.Cursor
	err := s.run("get progress", func() error {
		var row progressRow
		err := meddler.QueryRow(s.db, &row, `SELECT * FROM progress WHERE id = 1`)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		cursor = &store.Cursor{
			BlockNumber:     row.BlockNumber,
			TransactionHash: row.TransactionHash,
			LogIndex:        row.LogIndex,
		}
		return nil
	})

	return cursor, err
}

func (s *Store) Save(ctx context.Context, blockNumber uint64, txHash string, logIndex uint64) error {
	err := s.run("save progress", func() error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO progress (id, block_number, transaction_hash, log_index, updated_at) VALUES (1, ?, ?, ?, ?)
			ON CONFLICT (id) DO UPDATE SET
				block_number = excluded.block_number,
				transaction_hash = excluded.transaction_hash,
				log_index = excluded.log_index,
				updated_at = excluded.updated_at
		`, blockNumber, txHash, logIndex, s.now().Unix())
		return err
	})
	if err != nil {
		return err
	}

	s.log.Debugw("progress saved", "block", blockNumber, "txHash", txHash, "logIndex", logIndex)
	return nil
}

func (s *Store) getRange() (*rangeRow, error) {
	var row rangeRow
	if err := meddler.QueryRow(s.db, &row, `SELECT * FROM auto_whitelist_range WHERE id = 1`); err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *Store) GetStart(ctx context.Context) (uint64, error) {
	var start uint64
	err := s.run("get auto-whitelist start", func() error {
		row, err := s.getRange()
		if err != nil {
			return err
		}
		start = row.StartBlock
		return nil
	})

	return start, err
}

func (s *Store) GetStop(ctx context.Context) (*int64, error) {
	var stop *int64
	err := s.run("get auto-whitelist stop", func() error {
		row, err := s.getRange()
		if err != nil {
			return err
		}
		stop = row.StopBlock
		return nil
	})

	return stop, err
}

func (s *Store) SetStart(ctx context.Context, start uint64) error {
	return s.run("set auto-whitelist start", func() error {
		row, err := s.getRange()
		if err != nil {
			return err
		}

		row.StartBlock = start
		return meddler.Update(s.db, "auto_whitelist_range", row)
	})
}

func (s *Store) SetStop(ctx context.Context, stop int64) error {
	var existing *int64
	err := s.run("set auto-whitelist stop", func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback() //nolint:errcheck

		var row rangeRow
		if err := meddler.QueryRow(tx, &row, `SELECT * FROM auto_whitelist_range WHERE id = 1`); err != nil {
			return err
		}
		if row.StopBlock != nil {
			existing = row.StopBlock
			return nil
		}

		row.StopBlock = &stop
		if err := meddler.Update(tx, "auto_whitelist_range", &row); err != nil {
			return err
		}

		return tx.Commit()
	})
	if err != nil {
		return err
	}

	if existing != nil {
		return &store.StopAlreadySetError{Existing: *existing}
	}

	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.run("ping", func() error {
		return s.db.PingContext(ctx)
	})
}

func (s *Store) Close() error {
	if err := s.maintenance.Stop(); err != nil {
		s.log.Warnw("failed to stop maintenance", "error", err)
	}
	return s.db.Close()
}
