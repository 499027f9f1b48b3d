package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/pkg/config"
	"github.com/goran-ethernal/QuorumEventGate/pkg/store"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

const (
	addrChecksummed = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	addrLower       = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
	txHash          = "0x8e7f6b1e5d7c4b3a29180706f5e4d3c2b1a09f8e7d6c5b4a3928170605f4e3d2"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	cfg := config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "store.sqlite")}
	cfg.ApplyDefaults()

	s, err := New(cfg, nil, logger.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestStore_TrustRecords(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	status, err := s.GetStatus(ctx, addrLower)
	require.NoError(t, err)
	require.Equal(t, store.StatusUnknown, status)

	record, err := s.GetRecord(ctx, addrLower)
	require.NoError(t, err)
	require.Nil(t, record)

	require.NoError(t, s.Whitelist(ctx, addrLower, txHash))

	status, err = s.GetStatus(ctx, addrChecksummed)
	require.NoError(t, err)
	require.Equal(t, store.StatusWhitelisted, status)

	record, err = s.GetRecord(ctx, addrChecksummed)
	require.NoError(t, err)
	require.Equal(t, addrChecksummed, record.Address.Hex())
	require.Equal(t, txHash, record.TxHash)
	require.NotZero(t, record.UpdatedAt)

	require.NoError(t, s.Blacklist(ctx, addrChecksummed, ""))

	status, err = s.GetStatus(ctx, addrLower)
	require.NoError(t, err)
	require.Equal(t, store.StatusBlacklisted, status)
}

func TestStore_TrustIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Whitelist(ctx, addrLower, txHash))
	require.NoError(t, s.Whitelist(ctx, addrLower, txHash))

	var count int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM trust`).Scan(&count))
	require.Equal(t, 1, count)
}

func TestStore_InvalidAddress(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	var invalid *store.InvalidAddressError

	_, err := s.GetStatus(ctx, "0x1234")
	require.ErrorAs(t, err, &invalid)

	err = s.Whitelist(ctx, "0x5AAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", "")
	require.ErrorAs(t, err, &invalid)
	require.True(t, invalid.BadChecksum)

	err = s.Blacklist(ctx, "not an address", "")
	require.ErrorAs(t, err, &invalid)
}

func TestStore_Progress(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	cursor, err := s.GetLast(ctx)
	require.NoError(t, err)
	require.Nil(t, cursor)

	require.NoError(t, s.Save(ctx, 0, store.SeedMarker, 0))

	cursor, err = s.GetLast(ctx)
	require.NoError(t, err)
	require.Equal(t, &store.Cursor{BlockNumber: 0, TransactionHash: store.SeedMarker, LogIndex: 0}, cursor)

	require.NoError(t, s.Save(ctx, 5, txHash, 3))
	require.NoError(t, s.Save(ctx, 6, store.EmptyBlockMarker, 0))

	cursor, err = s.GetLast(ctx)
	require.NoError(t, err)
	require.Equal(t, &store.Cursor{BlockNumber: 6, TransactionHash: store.EmptyBlockMarker, LogIndex: 0}, cursor)
}

func TestStore_AutoWhitelistRange(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	start, err := s.GetStart(ctx)
	require.NoError(t, err)
	require.Zero(t, start)

	stop, err := s.GetStop(ctx)
	require.NoError(t, err)
	require.Nil(t, stop)

	require.NoError(t, s.SetStart(ctx, 51))
	require.NoError(t, s.SetStop(ctx, 180))

	var alreadySet *store.StopAlreadySetError
	err = s.SetStop(ctx, 200)
	require.ErrorAs(t, err, &alreadySet)
	require.Equal(t, int64(180), alreadySet.Existing)

	start, err = s.GetStart(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(51), start)

	stop, err = s.GetStop(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(180), *stop)

	// moving start keeps stop untouched
	require.NoError(t, s.SetStart(ctx, 91))
	stop, err = s.GetStop(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(180), *stop)
}

func TestStore_NegativeStop(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.SetStop(ctx, -1))

	stop, err := s.GetStop(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(-1), *stop)
}

func TestStore_Ping(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestStore_ErrorClassification(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	s := NewWithDB(sqlDB, nil, logger.NewNopLogger())

	mock.ExpectExec("INSERT INTO progress").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})

	err = s.Save(context.Background(), 1, txHash, 0)

	var dbErr *store.DatabaseError
	require.ErrorAs(t, err, &dbErr)
	require.Equal(t, store.KindConnection, dbErr.Kind)
	require.True(t, store.IsConnectionError(err))
	require.NoError(t, mock.ExpectationsWereMet())
}
