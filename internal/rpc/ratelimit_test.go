package rpc

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Serialises(t *testing.T) {
	limiter := NewRateLimiter(0)

	var inFlight, maxInFlight int32
	var wg sync.WaitGroup

	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := limiter.Run(context.Background(), func(context.Context) error {
				n := atomic.AddInt32(&inFlight, 1)
				for {
					m := atomic.LoadInt32(&maxInFlight)
					if n <= m || atomic.CompareAndSwapInt32(&maxInFlight, m, n) {
						break
					}
				}
				time.Sleep(2 * time.Millisecond)
				atomic.AddInt32(&inFlight, -1)
				return nil
			})
			require.NoError(t, err)
		}()
	}

	wg.Wait()
	require.Equal(t, int32(1), maxInFlight)
}

func TestRateLimiter_Spacing(t *testing.T) {
	limiter := NewRateLimiter(20)

	start := time.Now()
	for range 5 {
		require.NoError(t, limiter.Run(context.Background(), func(context.Context) error { return nil }))
	}

	// first call uses the initial token, the next four wait 50ms each
	require.GreaterOrEqual(t, time.Since(start), 180*time.Millisecond)
}

func TestRateLimiter_ContextCancelled(t *testing.T) {
	limiter := NewRateLimiter(0.1)

	// consume the only token
	require.NoError(t, limiter.Run(context.Background(), func(context.Context) error { return nil }))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	called := false
	err := limiter.Run(ctx, func(context.Context) error {
		called = true
		return nil
	})
	require.Error(t, err)
	require.False(t, called)
}

func TestDo(t *testing.T) {
	limiter := NewRateLimiter(0)

	v, err := Do(context.Background(), limiter, func(context.Context) (uint64, error) {
		return 42, nil
	})
	require.NoError(t, err)
	require.Equal(t, uint64(42), v)

	boom := errors.New("boom")
	_, err = Do(context.Background(), limiter, func(context.Context) (string, error) {
		return "", boom
	})
	require.ErrorIs(t, err, boom)
}
