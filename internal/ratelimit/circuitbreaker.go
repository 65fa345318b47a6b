package ratelimit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// FailoverStore uses primary until it fails failureThreshold times in a row,
// then serves from fallback. After the circuit opens, every call still probes
// primary. successThreshold consecutive successes close the circuit again.
type FailoverStore struct {
	primary  Store
	fallback Store
	logger   *slog.Logger
	breaker  *circuitBreaker
}

// NewFailoverStore builds a store that degrades to fallback during primary
// outages.
func NewFailoverStore(primary, fallback Store, logger *slog.Logger) *FailoverStore {
	return &FailoverStore{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
		breaker:  newCircuitBreaker(5, 3),
	}
}

func (f *FailoverStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (*Result, error) {
	result, err := f.primary.Allow(ctx, key, limit, window)
	if err == nil {
		if f.breaker.recordSuccess() {
			f.logger.InfoContext(ctx, "rate limit store recovered")
		}
		if !f.breaker.isOpen() {
			return result, nil
		}
		return f.fallback.Allow(ctx, key, limit, window)
	}

	if f.breaker.recordFailure() {
		f.logger.WarnContext(ctx, "rate limit store unavailable, using in-memory fallback", "error", err)
	}
	return f.fallback.Allow(ctx, key, limit, window)
}

// Degraded reports whether the fallback store is active.
func (f *FailoverStore) Degraded() bool {
	return f.breaker.isOpen()
}

type circuitState int

const (
	circuitClosed circuitState = iota
	circuitOpen
)

type circuitBreaker struct {
	mu               sync.Mutex
	state            circuitState
	failureCount     int
	successCount     int
	failureThreshold int
	successThreshold int
}

func newCircuitBreaker(failureThreshold, successThreshold int) *circuitBreaker {
	return &circuitBreaker{
		failureThreshold: failureThreshold,
		successThreshold: successThreshold,
	}
}

func (c *circuitBreaker) isOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == circuitOpen
}

// recordFailure returns true when this failure opened the circuit.
func (c *circuitBreaker) recordFailure() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failureCount++
	c.successCount = 0
	if c.state == circuitClosed && c.failureCount >= c.failureThreshold {
		c.state = circuitOpen
		return true
	}
	return false
}

// recordSuccess returns true when this success closed the circuit.
func (c *circuitBreaker) recordSuccess() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == circuitClosed {
		c.failureCount = 0
		return false
	}
	c.successCount++
	if c.successCount >= c.successThreshold {
		c.state = circuitClosed
		c.failureCount = 0
		c.successCount = 0
		return true
	}
	return false
}
