package autowhitelist

import (
	"context"
	"time"

	"github.com/goran-ethernal/QuorumEventGate/internal/common"
	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/internal/metrics"
	"github.com/goran-ethernal/QuorumEventGate/pkg/chain"
	"github.com/goran-ethernal/QuorumEventGate/pkg/store"
)

const (
	stepStopBlock = "stop-block"
	stepPublic    = "public"
	stepPrivate   = "private"
)

// Bootstrap runs the whitelist steps in order, retrying each failed step
// until it succeeds or the context is cancelled.
type Bootstrap struct {
	chain         chain.Client
	ranges        store.RangeStore
	progress      store.ProgressStore
	stopOverride  *int64
	public        *PublicWhitelister
	private       *PrivateWhitelister
	retryInterval time.Duration
	log           *logger.Logger
}

func NewBootstrap(
	client chain.Client,
	ranges store.RangeStore,
	progress store.ProgressStore,
	stopOverride *int64,
	public *PublicWhitelister,
	private *PrivateWhitelister,
	retryInterval time.Duration,
	log *logger.Logger,
) *Bootstrap {
	return &Bootstrap{
		chain:         client,
		ranges:        ranges,
		progress:      progress,
		stopOverride:  stopOverride,
		public:        public,
		private:       private,
		retryInterval: retryInterval,
		log:           log,
	}
}

// Run returns only once every step succeeded, or with the context error.
func (b *Bootstrap) Run(ctx context.Context) error {
	err := b.retry(ctx, stepStopBlock, func(ctx context.Context) error {
		return InitStopBlock(ctx, b.chain, b.ranges, b.progress, b.stopOverride, b.log)
	})
	if err != nil {
		return err
	}

	if b.public != nil {
		if err := b.retry(ctx, stepPublic, b.public.Run); err != nil {
			return err
		}
	}

	if b.private != nil {
		if err := b.retry(ctx, stepPrivate, b.private.ProcessEvents); err != nil {
			return err
		}
	}

	b.log.Infow("auto-whitelist bootstrap complete")

	return nil
}

func (b *Bootstrap) retry(ctx context.Context, step string, fn func(context.Context) error) error {
	for attempt := 1; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		BootstrapRetryInc(step)
		metrics.ErrorsInc(common.ComponentAutoWhitelist, metrics.SeverityWarning)
		b.log.Warnw("auto-whitelist step failed, retrying",
			"step", step, "attempt", attempt, "retryIn", b.retryInterval, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(b.retryInterval):
		}
	}
}
