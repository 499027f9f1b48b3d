package events

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/goran-ethernal/QuorumEventGate/internal/common"
	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/internal/metrics"
)

// ErrSchedulerRunning is returned by Start on a running scheduler.
var ErrSchedulerRunning = errors.New("scheduler already running")

// Scheduler runs one iteration at a time: the next one is scheduled
// interval after the previous one has returned, so iterations never overlap.
type Scheduler struct {
	interval time.Duration
	iterate  func(ctx context.Context) error
	log      *logger.Logger

	mu   sync.Mutex
	quit chan struct{}
	wg   sync.WaitGroup
}

func NewScheduler(interval time.Duration, iterate func(ctx context.Context) error, log *logger.Logger) *Scheduler {
	return &Scheduler{
		interval: interval,
		iterate:  iterate,
		log:      log,
	}
}

// Start runs the first iteration immediately in a background goroutine.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quit != nil {
		return ErrSchedulerRunning
	}

	s.quit = make(chan struct{})
	s.wg.Add(1)
	go s.loop(ctx, s.quit)

	return nil
}

// Stop lets the in-flight iteration finish and suppresses further ones.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	quit := s.quit
	s.quit = nil
	s.mu.Unlock()

	if quit == nil {
		return
	}

	close(quit)
	s.wg.Wait()
}

// Running reports whether the loop has been started and not stopped.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.quit != nil
}

func (s *Scheduler) loop(ctx context.Context, quit <-chan struct{}) {
	defer s.wg.Done()

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-quit:
			return
		case <-timer.C:
		}

		start := time.Now()
		if err := s.iterate(ctx); err != nil {
			IterationFailureInc()
			metrics.ErrorsInc(common.ComponentEventService, metrics.SeverityWarning)
			s.log.Warnw("iteration failed, retrying on next tick", "error", err)
		}
		IterationDurationLog(time.Since(start).Seconds())

		timer.Reset(s.interval)
	}
}
