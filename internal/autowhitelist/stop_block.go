// Package autowhitelist bootstraps the trust store before live processing starts.
package autowhitelist

import (
	"context"
	"errors"

	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/pkg/chain"
	"github.com/goran-ethernal/QuorumEventGate/pkg/store"
)

// NoStopBlock means there is no history to back-scan.
const NoStopBlock int64 = -1

// ComputeStopBlock returns the smallest of the configured override and the
// block of the live progress cursor, capped at head. It returns NoStopBlock
// when neither the override nor the cursor is known.
func ComputeStopBlock(override *int64, progress *store.Cursor, head uint64) int64 {
	var stop int64
	switch {
	case override != nil && progress != nil:
		stop = min(*override, int64(progress.BlockNumber)) //nolint:gosec
	case override != nil:
		stop = *override
	case progress != nil:
		stop = int64(progress.BlockNumber) //nolint:gosec
	default:
		return NoStopBlock
	}

	if stop < 0 {
		return NoStopBlock
	}

	return min(stop, int64(head)) //nolint:gosec
}

// chainHead reads the current head, reporting any failure as a connection error.
func chainHead(ctx context.Context, client chain.Client) (uint64, error) {
	head, err := client.BlockNumber(ctx)
	if err != nil {
		if !chain.IsConnectionError(err) {
			err = &chain.BlockchainConnectionError{Method: "eth_blockNumber", Err: err}
		}
		return 0, err
	}

	return head, nil
}

// InitStopBlock fixes the back-scan stop block once per deployment. It must
// run before the event service seeds its cursor, otherwise a first boot would
// see the seed and stop the scan at block 0. The persisted value never
// exceeds the head at the time it is computed: blocks after it belong to the
// live loop.
func InitStopBlock(
	ctx context.Context,
	client chain.Client,
	ranges store.RangeStore,
	progress store.ProgressStore,
	override *int64,
	log *logger.Logger,
) error {
	existing, err := ranges.GetStop(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		log.Debugw("auto-whitelist stop block already set", "stopBlock", *existing)
		return nil
	}

	cursor, err := progress.GetLast(ctx)
	if err != nil {
		return err
	}

	var head uint64
	if override != nil || cursor != nil {
		if head, err = chainHead(ctx, client); err != nil {
			return err
		}
	}

	stop := ComputeStopBlock(override, cursor, head)
	if err := ranges.SetStop(ctx, stop); err != nil {
		var already *store.StopAlreadySetError
		if errors.As(err, &already) {
			log.Warnw("auto-whitelist stop block set concurrently", "stopBlock", already.Existing)
			return nil
		}
		return err
	}

	log.Infow("auto-whitelist stop block set", "stopBlock", stop, "head", head)

	return nil
}
