package autowhitelist

import (
	"context"
	"errors"
	"fmt"

	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/pkg/chain"
	"github.com/goran-ethernal/QuorumEventGate/pkg/library"
	"github.com/goran-ethernal/QuorumEventGate/pkg/store"
)

// PrivateWhitelister back-scans historical logs and trusts every contract
// whose creation event it finds. Progress is committed after each chunk so a
// restart resumes where the previous run stopped.
type PrivateWhitelister struct {
	chain     chain.Client
	library   library.Library
	trust     store.TrustStore
	ranges    store.RangeStore
	chunkSize uint64
	log       *logger.Logger
}

func NewPrivateWhitelister(
	client chain.Client,
	lib library.Library,
	trust store.TrustStore,
	ranges store.RangeStore,
	chunkSize uint64,
	log *logger.Logger,
) *PrivateWhitelister {
	if chunkSize == 0 {
		chunkSize = 1
	}

	return &PrivateWhitelister{
		chain:     client,
		library:   lib,
		trust:     trust,
		ranges:    ranges,
		chunkSize: chunkSize,
		log:       log,
	}
}

// ProcessEvents scans [start, min(stop, head)] in chunks.
func (p *PrivateWhitelister) ProcessEvents(ctx context.Context) error {
	head, err := chainHead(ctx, p.chain)
	if err != nil {
		return err
	}

	stop, err := p.ranges.GetStop(ctx)
	if err != nil {
		return err
	}
	if stop == nil || *stop < 0 {
		p.log.Infow("no history to back-scan")
		return nil
	}

	start, err := p.ranges.GetStart(ctx)
	if err != nil {
		return err
	}

	// the stop block is capped at the head when persisted, this only guards
	// against a node that lags behind the one it was computed from
	end := min(uint64(*stop), head) //nolint:gosec
	if start > end {
		p.log.Debugw("back-scan already complete", "start", start, "stop", *stop, "head", head)
		return nil
	}

	p.log.Infow("starting back-scan", "from", start, "to", end, "chunkSize", p.chunkSize)

	from := start
	for from <= end {
		if err := ctx.Err(); err != nil {
			return err
		}

		to := min(from+p.chunkSize-1, end)

		logs, err := p.chain.PastLogs(ctx, from, to)
		if err != nil {
			var tooLarge *chain.LogRangeTooLargeError
			if errors.As(err, &tooLarge) && tooLarge.SuggestedTo >= from && tooLarge.SuggestedTo < to {
				p.log.Debugw("narrowing back-scan chunk",
					"from", from, "to", to, "suggestedTo", tooLarge.SuggestedTo)
				to = tooLarge.SuggestedTo
				logs, err = p.chain.PastLogs(ctx, from, to)
			}
			if err != nil {
				return fmt.Errorf("fetch logs [%d, %d]: %w", from, to, err)
			}
		}

		for _, l := range logs {
			if len(l.Topics) == 0 || !p.library.IsKnownCreationSigHash(l.Topics[0]) {
				continue
			}

			if err := p.trust.Whitelist(ctx, l.Address.Hex(), l.TxHash.Hex()); err != nil {
				return fmt.Errorf("whitelist %s: %w", l.Address.Hex(), err)
			}

			WhitelistedInc(sourcePrivate)
			p.log.Infow("private contract whitelisted",
				"address", l.Address.Hex(), "txHash", l.TxHash.Hex(), "block", l.BlockNumber)
		}

		if err := p.ranges.SetStart(ctx, to+1); err != nil {
			return err
		}
		BackfillStartLog(to + 1)

		from = to + 1
	}

	p.log.Infow("back-scan finished", "lastBlock", end)

	return nil
}
