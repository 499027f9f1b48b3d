package autowhitelist

import (
	"context"
	"errors"
	"testing"

	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	rpcmocks "github.com/goran-ethernal/QuorumEventGate/internal/rpc/mocks"
	storemocks "github.com/goran-ethernal/QuorumEventGate/internal/store/mocks"
	"github.com/goran-ethernal/QuorumEventGate/pkg/chain"
	"github.com/goran-ethernal/QuorumEventGate/pkg/store"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestComputeStopBlock(t *testing.T) {
	tests := []struct {
		name     string
		override *int64
		progress *store.Cursor
		head     uint64
		want     int64
	}{
		{name: "nothing known", head: 300, want: NoStopBlock},
		{name: "override only", override: int64Ptr(120), head: 300, want: 120},
		{name: "progress only", progress: &store.Cursor{BlockNumber: 77}, head: 300, want: 77},
		{name: "override lower", override: int64Ptr(10), progress: &store.Cursor{BlockNumber: 77}, head: 300, want: 10},
		{name: "progress lower", override: int64Ptr(500), progress: &store.Cursor{BlockNumber: 77}, head: 300, want: 77},
		{name: "explicit skip", override: int64Ptr(-1), progress: &store.Cursor{BlockNumber: 77}, head: 300, want: -1},
		{name: "override above head", override: int64Ptr(1_000_000), head: 5, want: 5},
		{name: "override at genesis head", override: int64Ptr(1_000_000), head: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ComputeStopBlock(tt.override, tt.progress, tt.head))
		})
	}
}

func TestInitStopBlock(t *testing.T) {
	ctx := context.Background()
	errDB := errors.New("db down")
	nop := logger.NewNopLogger()

	t.Run("keeps existing stop", func(t *testing.T) {
		client := rpcmocks.NewClient(t)
		ranges := storemocks.NewRangeStore(t)
		progress := storemocks.NewProgressStore(t)
		ranges.EXPECT().GetStop(ctx).Return(int64Ptr(42), nil)

		require.NoError(t, InitStopBlock(ctx, client, ranges, progress, int64Ptr(1), nop))
	})

	t.Run("first boot without cursor", func(t *testing.T) {
		client := rpcmocks.NewClient(t)
		ranges := storemocks.NewRangeStore(t)
		progress := storemocks.NewProgressStore(t)
		ranges.EXPECT().GetStop(ctx).Return(nil, nil)
		progress.EXPECT().GetLast(ctx).Return(nil, nil)
		ranges.EXPECT().SetStop(ctx, NoStopBlock).Return(nil)

		require.NoError(t, InitStopBlock(ctx, client, ranges, progress, nil, nop))
	})

	t.Run("upgrade of a running deployment", func(t *testing.T) {
		client := rpcmocks.NewClient(t)
		ranges := storemocks.NewRangeStore(t)
		progress := storemocks.NewProgressStore(t)
		ranges.EXPECT().GetStop(ctx).Return(nil, nil)
		progress.EXPECT().GetLast(ctx).Return(&store.Cursor{BlockNumber: 900}, nil)
		client.EXPECT().BlockNumber(ctx).Return(uint64(950), nil)
		ranges.EXPECT().SetStop(ctx, int64(900)).Return(nil)

		require.NoError(t, InitStopBlock(ctx, client, ranges, progress, nil, nop))
	})

	t.Run("override capped at head", func(t *testing.T) {
		client := rpcmocks.NewClient(t)
		ranges := storemocks.NewRangeStore(t)
		progress := storemocks.NewProgressStore(t)
		ranges.EXPECT().GetStop(ctx).Return(nil, nil)
		progress.EXPECT().GetLast(ctx).Return(nil, nil)
		client.EXPECT().BlockNumber(ctx).Return(uint64(5), nil)
		ranges.EXPECT().SetStop(ctx, int64(5)).Return(nil)

		require.NoError(t, InitStopBlock(ctx, client, ranges, progress, int64Ptr(1_000_000), nop))
	})

	t.Run("head unavailable", func(t *testing.T) {
		client := rpcmocks.NewClient(t)
		ranges := storemocks.NewRangeStore(t)
		progress := storemocks.NewProgressStore(t)
		ranges.EXPECT().GetStop(ctx).Return(nil, nil)
		progress.EXPECT().GetLast(ctx).Return(nil, nil)
		client.EXPECT().BlockNumber(ctx).Return(uint64(0), errNode)

		err := InitStopBlock(ctx, client, ranges, progress, int64Ptr(10), nop)
		require.ErrorIs(t, err, errNode)
		require.True(t, chain.IsConnectionError(err))
	})

	t.Run("concurrent writer wins", func(t *testing.T) {
		client := rpcmocks.NewClient(t)
		ranges := storemocks.NewRangeStore(t)
		progress := storemocks.NewProgressStore(t)
		ranges.EXPECT().GetStop(ctx).Return(nil, nil)
		progress.EXPECT().GetLast(ctx).Return(nil, nil)
		client.EXPECT().BlockNumber(ctx).Return(uint64(100), nil)
		ranges.EXPECT().SetStop(ctx, int64(5)).Return(&store.StopAlreadySetError{Existing: 3})

		require.NoError(t, InitStopBlock(ctx, client, ranges, progress, int64Ptr(5), nop))
	})

	t.Run("store failure", func(t *testing.T) {
		client := rpcmocks.NewClient(t)
		ranges := storemocks.NewRangeStore(t)
		progress := storemocks.NewProgressStore(t)
		ranges.EXPECT().GetStop(ctx).Return(nil, nil)
		progress.EXPECT().GetLast(ctx).Return(nil, errDB)

		require.ErrorIs(t, InitStopBlock(ctx, client, ranges, progress, nil, nop), errDB)
	})
}
