// Package bolt implements the event gate stores on an embedded bbolt file.
package bolt

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goran-ethernal/QuorumEventGate/internal/db"
	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/pkg/store"
	bolt "go.etcd.io/bbolt"
)

const (
	backend = "bolt"

	trustBucket = "trust"
	metaBucket  = "meta"

	progressKey = "progress"
	startKey    = "aw_start"
	stopKey     = "aw_stop"

	openTimeout = 2 * time.Second
)

var (
	trustBucketB = []byte(trustBucket)
	metaBucketB  = []byte(metaBucket)

	progressKeyB = []byte(progressKey)
	startKeyB    = []byte(startKey)
	stopKeyB     = []byte(stopKey)

	sortableOrder = binary.BigEndian
)

// Compile-time check to ensure Store implements store.Store interface.
var _ store.Store = (*Store)(nil)

// Store keeps trust records keyed by checksummed address in the trust bucket;
// the cursor and the range bounds live under fixed keys of the meta bucket.
type Store struct {
	db  *bolt.DB
	log *logger.Logger
	now func() time.Time
}

// New opens (creating if needed) the bolt file at path.
func New(path string, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	boltDB, err := bolt.Open(path, 0o600, &bolt.Options{
		Timeout:      openTimeout,
		FreelistType: bolt.FreelistMapType,
	})
	if err != nil {
		return nil, classify("open", err)
	}

	s := &Store{db: boltDB, log: log, now: time.Now}

	err = boltDB.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{trustBucketB, metaBucketB} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		boltDB.Close()
		return nil, classify("init buckets", err)
	}

	return s, nil
}

func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var kind store.DatabaseErrorKind
	switch {
	case errors.Is(err, bolt.ErrDatabaseNotOpen), errors.Is(err, bolt.ErrTimeout),
		errors.Is(err, bolt.ErrDatabaseReadOnly), errors.Is(err, bolt.ErrInvalid),
		errors.Is(err, bolt.ErrVersionMismatch), errors.Is(err, bolt.ErrChecksum):
		kind = store.KindConnection
	case errors.Is(err, bolt.ErrKeyRequired), errors.Is(err, bolt.ErrKeyTooLarge),
		errors.Is(err, bolt.ErrValueTooLarge), errors.Is(err, bolt.ErrBucketNotFound):
		kind = store.KindValidation
	default:
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			kind = store.KindValidation
		} else {
			kind = store.KindUnknown
		}
	}

	db.DBErrorInc(backend, string(kind))

	return store.NewDatabaseError(op, kind, err)
}

func mustBucket(tx *bolt.Tx, name []byte) (*bolt.Bucket, error) {
	b := tx.Bucket(name)
	if b == nil {
		return nil, fmt.Errorf("missing bucket %s: %w", name, bolt.ErrBucketNotFound)
	}
	return b, nil
}

func (s *Store) view(op string, fn func(tx *bolt.Tx) error) error {
	db.DBQueryInc(backend, op)
	return classify(op, s.db.View(fn))
}

func (s *Store) update(op string, fn func(tx *bolt.Tx) error) error {
	db.DBQueryInc(backend, op)
	return classify(op, s.db.Update(fn))
}

func (s *Store) GetStatus(ctx context.Context, address string) (store.TrustStatus, error) {
	record, err := s.GetRecord(ctx, address)
	if err != nil || record == nil {
		return store.StatusUnknown, err
	}

	return record.Status, nil
}

func (s *Store) GetRecord(_ context.Context, address string) (*store.TrustRecord, error) {
	addr, err := store.NormalizeAddress(address)
	if err != nil {
		return nil, err
	}

	var record *store.TrustRecord
	err = s.view("get trust record", func(tx *bolt.Tx) error {
		b, err := mustBucket(tx, trustBucketB)
		if err != nil {
			return err
		}

		data := b.Get([]byte(addr.Hex()))
		if data == nil {
			return nil
		}

		record = &store.TrustRecord{}
		return json.Unmarshal(data, record)
	})

	return record, err
}

func (s *Store) Whitelist(ctx context.Context, address string, txHash string) error {
	return s.setStatus(address, store.StatusWhitelisted, txHash)
}

func (s *Store) Blacklist(ctx context.Context, address string, txHash string) error {
	return s.setStatus(address, store.StatusBlacklisted, txHash)
}

func (s *Store) setStatus(address string, status store.TrustStatus, txHash string) error {
	addr, err := store.NormalizeAddress(address)
	if err != nil {
		return err
	}

	data, err := json.Marshal(store.TrustRecord{
		Address:   addr,
		Status:    status,
		TxHash:    txHash,
		UpdatedAt: s.now().Unix(),
	})
	if err != nil {
		return err
	}

	err = s.update("upsert trust record", func(tx *bolt.Tx) error {
		b, err := mustBucket(tx, trustBucketB)
		if err != nil {
			return err
		}
		return b.Put([]byte(addr.Hex()), data)
	})
	if err != nil {
		return err
	}

	s.log.Debugw("trust status updated", "address", addr.Hex(), "status", status, "txHash", txHash)
	return nil
}

func (s *Store) GetLast(_ context.Context) (*store.Cursor, error) {
	var cursor *store.Cursor
	err := s.view("get progress", func(tx *bolt.Tx) error {
		meta, err := mustBucket(tx, metaBucketB)
		if err != nil {
			return err
		}

		data := meta.Get(progressKeyB)
		if data == nil {
			return nil
		}

		cursor = &store.Cursor{}
		return json.Unmarshal(data, cursor)
	})

	return cursor, err
}

func (s *Store) Save(_ context.Context, blockNumber uint64, txHash string, logIndex uint64) error {
	data, err := json.Marshal(store.Cursor{
		BlockNumber:     blockNumber,
		TransactionHash: txHash,
		LogIndex:        logIndex,
	})
	if err != nil {
		return err
	}

	return s.update("save progress", func(tx *bolt.Tx) error {
		meta, err := mustBucket(tx, metaBucketB)
		if err != nil {
			return err
		}
		return meta.Put(progressKeyB, data)
	})
}

func (s *Store) GetStart(_ context.Context) (uint64, error) {
	var start uint64
	err := s.view("get auto-whitelist start", func(tx *bolt.Tx) error {
		meta, err := mustBucket(tx, metaBucketB)
		if err != nil {
			return err
		}
		if data := meta.Get(startKeyB); data != nil {
			start = sortableOrder.Uint64(data)
		}
		return nil
	})

	return start, err
}

func (s *Store) GetStop(_ context.Context) (*int64, error) {
	var stop *int64
	err := s.view("get auto-whitelist stop", func(tx *bolt.Tx) error {
		meta, err := mustBucket(tx, metaBucketB)
		if err != nil {
			return err
		}
		if data := meta.Get(stopKeyB); data != nil {
			v := int64(sortableOrder.Uint64(data))
			stop = &v
		}
		return nil
	})

	return stop, err
}

func (s *Store) SetStart(_ context.Context, start uint64) error {
	return s.update("set auto-whitelist start", func(tx *bolt.Tx) error {
		meta, err := mustBucket(tx, metaBucketB)
		if err != nil {
			return err
		}

		var key [8]byte
		sortableOrder.PutUint64(key[:], start)
		return meta.Put(startKeyB, key[:])
	})
}

func (s *Store) SetStop(_ context.Context, stop int64) error {
	var existing *int64
	err := s.update("set auto-whitelist stop", func(tx *bolt.Tx) error {
		meta, err := mustBucket(tx, metaBucketB)
		if err != nil {
			return err
		}

		if data := meta.Get(stopKeyB); data != nil {
			v := int64(sortableOrder.Uint64(data))
			existing = &v
			return nil
		}

		var key [8]byte
		sortableOrder.PutUint64(key[:], uint64(stop))
		return meta.Put(stopKeyB, key[:])
	})
	if err != nil {
		return err
	}

	if existing != nil {
		return &store.StopAlreadySetError{Existing: *existing}
	}

	return nil
}

func (s *Store) Ping(_ context.Context) error {
	return s.view("ping", func(tx *bolt.Tx) error {
		_, err := mustBucket(tx, metaBucketB)
		return err
	})
}

func (s *Store) Close() error {
	return s.db.Close()
}
