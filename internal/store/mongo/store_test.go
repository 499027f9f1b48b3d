package mongo

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/goran-ethernal/QuorumEventGate/internal/common"
	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/pkg/config"
	"github.com/goran-ethernal/QuorumEventGate/pkg/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	mgo "go.mongodb.org/mongo-driver/mongo"
)

const (
	addrLower = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
	txHash    = "0x8e7f6b1e5d7c4b3a29180706f5e4d3c2b1a09f8e7d6c5b4a3928170605f4e3d2"
)

// newTestStore connects to MONGO_URI using a throwaway database.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}

	cfg := config.MongoConfig{
		URI:      uri,
		Database: "eventgate-test-" + uuid.NewString()[:8],
		Timeout:  common.NewDuration(5 * time.Second),
	}

	s, err := New(context.Background(), cfg, logger.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.database.Drop(context.Background())
		_ = s.Close()
	})

	return s
}

func TestStore_Trust(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	status, err := s.GetStatus(ctx, addrLower)
	require.NoError(t, err)
	require.Equal(t, store.StatusUnknown, status)

	require.NoError(t, s.Whitelist(ctx, addrLower, txHash))
	require.NoError(t, s.Whitelist(ctx, addrLower, txHash))

	count, err := s.database.Collection(trustCollection).CountDocuments(ctx, map[string]any{})
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	require.NoError(t, s.Blacklist(ctx, addrLower, ""))

	record, err := s.GetRecord(ctx, addrLower)
	require.NoError(t, err)
	require.Equal(t, store.StatusBlacklisted, record.Status)
	require.Empty(t, record.TxHash)
}

func TestStore_Progress(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	cursor, err := s.GetLast(ctx)
	require.NoError(t, err)
	require.Nil(t, cursor)

	require.NoError(t, s.Save(ctx, 0, store.SeedMarker, 0))
	require.NoError(t, s.Save(ctx, 5, txHash, 2))

	cursor, err = s.GetLast(ctx)
	require.NoError(t, err)
	require.Equal(t, &store.Cursor{BlockNumber: 5, TransactionHash: txHash, LogIndex: 2}, cursor)
}

func TestStore_Range(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	stop, err := s.GetStop(ctx)
	require.NoError(t, err)
	require.Nil(t, stop)

	require.NoError(t, s.SetStart(ctx, 11))
	require.NoError(t, s.SetStop(ctx, 180))

	var alreadySet *store.StopAlreadySetError
	require.ErrorAs(t, s.SetStop(ctx, 10), &alreadySet)
	require.Equal(t, int64(180), alreadySet.Existing)

	start, err := s.GetStart(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(11), start)

	count, err := s.database.Collection(rangeCollection).CountDocuments(ctx, map[string]any{})
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestClassify(t *testing.T) {
	require.NoError(t, classify("op", nil))

	err := classify("op", mgo.ErrClientDisconnected)
	require.True(t, store.IsConnectionError(err))

	var dbErr *store.DatabaseError
	require.ErrorAs(t, classify("op", errors.New("boom")), &dbErr)
	require.Equal(t, store.KindUnknown, dbErr.Kind)
}
