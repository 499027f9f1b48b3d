package bus

import (
	"errors"
	"sync"
	"time"
)

// ErrCircuitOpen is returned without contacting the broker while the breaker is open.
var ErrCircuitOpen = errors.New("circuit breaker is open")

type breakerState string

const (
	stateClosed   breakerState = "closed"
	stateOpen     breakerState = "open"
	stateHalfOpen breakerState = "half-open"
)

// circuitBreaker opens after threshold consecutive failed publications and
// lets a single trial through once timeout has elapsed.
type circuitBreaker struct {
	mu          sync.Mutex
	name        string
	failures    int
	lastFailure time.Time
	state       breakerState
	threshold   int
	timeout     time.Duration
	now         func() time.Time
}

func newCircuitBreaker(name string, threshold int, timeout time.Duration) *circuitBreaker {
	cb := &circuitBreaker{
		name:      name,
		threshold: threshold,
		timeout:   timeout,
		state:     stateClosed,
		now:       time.Now,
	}
	BreakerStateLog(name, false)

	return cb
}

func (cb *circuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case stateOpen:
		if cb.now().Sub(cb.lastFailure) > cb.timeout {
			cb.setState(stateHalfOpen)
			return true
		}
		return false
	default:
		return true
	}
}

func (cb *circuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures = 0
	if cb.state != stateClosed {
		cb.setState(stateClosed)
	}
}

func (cb *circuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures++
	cb.lastFailure = cb.now()

	if cb.state == stateHalfOpen || cb.failures >= cb.threshold {
		cb.setState(stateOpen)
	}
}

func (cb *circuitBreaker) State() breakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return cb.state
}

// setState must be called with mu held.
func (cb *circuitBreaker) setState(state breakerState) {
	cb.state = state
	BreakerStateLog(cb.name, state == stateOpen)
}
