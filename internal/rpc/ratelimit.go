package rpc

import (
	"context"
	"time"

	"github.com/goran-ethernal/QuorumEventGate/pkg/chain"
	"golang.org/x/time/rate"
)

// Compile-time check to ensure RateLimiter implements chain.RateLimitedExecutor interface.
var _ chain.RateLimitedExecutor = (*RateLimiter)(nil)

// RateLimiter allows one call in flight and at most maxPerSecond call starts per second.
type RateLimiter struct {
	sem     chan struct{}
	limiter *rate.Limiter
}

// NewRateLimiter returns an unbounded-rate limiter when maxPerSecond <= 0;
// calls are still serialised.
func NewRateLimiter(maxPerSecond float64) *RateLimiter {
	limit := rate.Inf
	if maxPerSecond > 0 {
		limit = rate.Limit(maxPerSecond)
	}

	return &RateLimiter{
		sem:     make(chan struct{}, 1),
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Run waits for the single slot and the next token, then calls fn.
func (r *RateLimiter) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	start := time.Now()

	select {
	case r.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-r.sem }()

	if err := r.limiter.Wait(ctx); err != nil {
		return err
	}

	RateLimiterWaitLog(time.Since(start))

	return fn(ctx)
}

// Do is Run for calls producing a value.
func Do[T any](ctx context.Context, exec chain.RateLimitedExecutor, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T

	err := exec.Run(ctx, func(ctx context.Context) error {
		var err error
		result, err = fn(ctx)
		return err
	})

	return result, err
}
