package core

// limiter.go bounds the number of validation runs executing in parallel.
//
// Parsing a workbook buffers the whole file in memory, so an unbounded
// number of concurrent runs could exhaust the process under a burst of
// uploads. The limiter is a semaphore with a bounded wait: requests that
// cannot get a slot within maxWait fail with ErrTooManyValidations, and
// WaitForDrain lets shutdown block until in-flight runs finish.

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrTooManyValidations is returned when every validation slot is occupied
// and the wait timeout expires. Clients should retry after a short delay.
var ErrTooManyValidations = errors.New("too many concurrent validations, please try again later")

const (
	// DefaultMaxConcurrentValidations bounds parallel validation runs.
	DefaultMaxConcurrentValidations = 5

	// DefaultMaxSlotWait is how long a request waits for a slot before
	// being rejected.
	DefaultMaxSlotWait = 10 * time.Second
)

// ValidationLimiter restricts parallel validation runs using a semaphore.
type ValidationLimiter struct {
	semaphore chan struct{}
	maxWait   time.Duration

	mu     sync.RWMutex
	active int
}

// NewValidationLimiter creates a limiter allowing at most maxConcurrent
// simultaneous runs. Requests that cannot acquire a slot within maxWait
// receive ErrTooManyValidations.
func NewValidationLimiter(maxConcurrent int, maxWait time.Duration) *ValidationLimiter {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrentValidations
	}
	if maxWait <= 0 {
		maxWait = DefaultMaxSlotWait
	}
	return &ValidationLimiter{
		semaphore: make(chan struct{}, maxConcurrent),
		maxWait:   maxWait,
	}
}

// Acquire blocks until a slot is available, the wait timeout expires, or
// ctx is cancelled. On success the caller must Release exactly once.
func (l *ValidationLimiter) Acquire(ctx context.Context) error {
	waitCtx, cancel := context.WithTimeout(ctx, l.maxWait)
	defer cancel()

	select {
	case l.semaphore <- struct{}{}:
		l.mu.Lock()
		l.active++
		l.mu.Unlock()
		return nil

	case <-waitCtx.Done():
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return ErrTooManyValidations
	}
}

// Release frees a previously acquired slot. Must be called exactly once
// per successful Acquire.
func (l *ValidationLimiter) Release() {
	l.mu.Lock()
	l.active--
	l.mu.Unlock()

	<-l.semaphore
}

// ActiveCount returns the number of validation runs currently holding a
// slot.
func (l *ValidationLimiter) ActiveCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.active
}

// WaitForDrain blocks until no validation run holds a slot or ctx is
// cancelled. Used during graceful shutdown.
func (l *ValidationLimiter) WaitForDrain(ctx context.Context) error {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if l.ActiveCount() == 0 {
				return nil
			}
		}
	}
}
