package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/internal/validation"
	"github.com/goran-ethernal/QuorumEventGate/pkg/bus"
	"github.com/goran-ethernal/QuorumEventGate/pkg/chain"
	"github.com/goran-ethernal/QuorumEventGate/pkg/config"
	"github.com/goran-ethernal/QuorumEventGate/pkg/store"
)

var (
	// ErrCursorAhead aborts an iteration whose cursor is past the chain head.
	ErrCursorAhead = errors.New("progress cursor is ahead of the chain head")
	// ErrCursorMissing aborts an iteration when the cursor was never seeded.
	ErrCursorMissing = errors.New("progress cursor missing")
)

// Service polls the chain, validates every log and publishes the valid ones,
// checkpointing after each log so a restart resumes exactly where it stopped.
type Service struct {
	chain     chain.Client
	progress  store.ProgressStore
	validator validation.Validator
	publisher bus.Publisher
	scheduler *Scheduler
	interval  time.Duration
	log       *logger.Logger
	requestID func() string
}

func NewService(
	client chain.Client,
	progress store.ProgressStore,
	validator validation.Validator,
	publisher bus.Publisher,
	cfg config.EventsConfig,
	log *logger.Logger,
) *Service {
	s := &Service{
		chain:     client,
		progress:  progress,
		validator: validator,
		publisher: publisher,
		interval:  cfg.PollingInterval.Duration,
		log:       log,
		requestID: uuid.NewString,
	}
	s.scheduler = NewScheduler(s.interval, s.ProcessOnce, log)

	return s
}

// Start seeds the cursor on first boot, retrying until the store answers,
// and starts polling.
func (s *Service) Start(ctx context.Context) error {
	if head, err := s.chain.BlockNumber(ctx); err != nil {
		s.log.Warnw("unable to reach the chain on start", "error", err)
	} else {
		s.log.Infow("connected to the chain", "head", head)
	}

	if err := s.seedCursor(ctx); err != nil {
		return err
	}

	if err := s.scheduler.Start(ctx); err != nil {
		return err
	}

	s.log.Infof("event service started, polling every %v", s.interval)

	return nil
}

// Stop waits for the in-flight iteration, then closes the publisher.
func (s *Service) Stop() error {
	s.scheduler.Stop()

	if err := s.publisher.Close(); err != nil {
		return fmt.Errorf("close publisher: %w", err)
	}

	s.log.Info("event service stopped")

	return nil
}

func (s *Service) seedCursor(ctx context.Context) error {
	for {
		err := s.trySeedCursor(ctx)
		if err == nil {
			return nil
		}

		s.log.Errorw("unable to initialise the progress cursor", "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.interval):
		}
	}
}

func (s *Service) trySeedCursor(ctx context.Context) error {
	cursor, err := s.progress.GetLast(ctx)
	if err != nil {
		return err
	}
	if cursor != nil {
		return nil
	}

	s.log.Info("no progress cursor, seeding at block 0")

	return s.progress.Save(ctx, 0, store.SeedMarker, 0)
}

// ProcessOnce runs one iteration from the cursor up to the current head.
func (s *Service) ProcessOnce(ctx context.Context) error {
	head, err := s.chain.BlockNumber(ctx)
	if err != nil {
		return err
	}

	cursor, err := s.progress.GetLast(ctx)
	if err != nil {
		return err
	}
	if cursor == nil {
		return ErrCursorMissing
	}

	if cursor.BlockNumber > head {
		s.log.Errorw("block number inconsistency", "lastProcessedBlock", cursor.BlockNumber, "head", head)
		return fmt.Errorf("%w: cursor at %d, head at %d", ErrCursorAhead, cursor.BlockNumber, head)
	}

	s.log.Debugw("processing blocks", "from", cursor.BlockNumber, "to", head)

	for number := cursor.BlockNumber; number <= head; number++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.processBlock(ctx, cursor, number); err != nil {
			return fmt.Errorf("block %d: %w", number, err)
		}

		LastProcessedBlockLog(number)
	}

	return nil
}

func (s *Service) processBlock(ctx context.Context, cursor *store.Cursor, number uint64) error {
	block, err := s.chain.BlockByNumber(ctx, number)
	if err != nil {
		return err
	}

	if len(block.Transactions) == 0 {
		s.log.Debugw("saving empty block", "blockNumber", number)
		return s.progress.Save(ctx, number, store.EmptyBlockMarker, 0)
	}

	txStart := 0
	if cursor.BlockNumber == number {
		// a cursor transaction missing from its block restarts the block
		if i := indexOfTx(block.Transactions, cursor.TransactionHash); i >= 0 {
			txStart = i
		}
	}

	for _, txHash := range block.Transactions[txStart:] {
		if err := s.processTransaction(ctx, cursor, number, txHash); err != nil {
			return fmt.Errorf("tx %s: %w", txHash.Hex(), err)
		}
	}

	return nil
}

func (s *Service) processTransaction(ctx context.Context, cursor *store.Cursor, number uint64, txHash common.Hash) error {
	resumed := cursor.BlockNumber == number && sameTx(cursor.TransactionHash, txHash)

	logStart := 0
	if resumed {
		logStart = int(cursor.LogIndex) + 1 //nolint:gosec
	}

	receipt, err := s.chain.TransactionReceipt(ctx, txHash)
	if err != nil {
		return err
	}

	if len(receipt.Logs) == 0 {
		if resumed {
			return nil
		}
		s.log.Debugw("saving empty transaction", "blockNumber", number, "txHash", txHash.Hex())
		return s.progress.Save(ctx, number, txHash.Hex(), 0)
	}

	for i := logStart; i < len(receipt.Logs); i++ {
		log := receipt.Logs[i]

		valid, err := s.validator.Validate(ctx, log)
		if err != nil {
			return fmt.Errorf("validate log %d: %w", i, err)
		}

		if !valid {
			EventSkippedInc()
			s.log.Infow("invalid event, skipping the rest of the transaction",
				"blockNumber", number,
				"txHash", txHash.Hex(),
				"logIndex", i,
				"address", log.Address.Hex())
			return s.progress.Save(ctx, number, txHash.Hex(), uint64(i)) //nolint:gosec
		}

		if err := s.publish(ctx, log, receipt, number, i); err != nil {
			return err
		}

		if err := s.progress.Save(ctx, number, txHash.Hex(), uint64(i)); err != nil { //nolint:gosec
			return err
		}
	}

	return nil
}

func (s *Service) publish(ctx context.Context, log types.Log, receipt *chain.Receipt, number uint64, logIndex int) error {
	msg := bus.Message{
		RoutingKey: RoutingKey(log),
		Payload:    NewEventObject(log, receipt, number, logIndex),
		RequestID:  s.requestID(),
		MessageID:  fmt.Sprintf("%s:%d", receipt.TransactionHash.Hex(), logIndex),
	}

	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.log.Errorw("unable to publish event",
			"blockNumber", number,
			"routingKey", msg.RoutingKey,
			"txHash", receipt.TransactionHash.Hex(),
			"logIndex", logIndex,
			"requestId", msg.RequestID,
			"error", err)
		return err
	}

	EventPublishedInc()
	s.log.Infow("valid event published",
		"blockNumber", number,
		"routingKey", msg.RoutingKey,
		"txHash", receipt.TransactionHash.Hex(),
		"logIndex", logIndex,
		"requestId", msg.RequestID)

	return nil
}

func indexOfTx(txs []common.Hash, hash string) int {
	for i, tx := range txs {
		if sameTx(hash, tx) {
			return i
		}
	}
	return -1
}

func sameTx(stored string, hash common.Hash) bool {
	return strings.EqualFold(stored, hash.Hex())
}
