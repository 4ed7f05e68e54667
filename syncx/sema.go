package syncx

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Sema is a counting semaphore with capacity fixed at construction.
type Sema struct {
	sem *semaphore.Weighted
}

// NewSema creates a semaphore with n slots. It panics if n is not positive.
func NewSema(n int64) *Sema {
	if n <= 0 {
		panic("syncx: semaphore capacity must be positive")
	}
	return &Sema{sem: semaphore.NewWeighted(n)}
}

// Acquire takes one slot, blocking until a slot is free or ctx is done.
// On failure the semaphore is left unchanged and ctx.Err() is returned.
func (s *Sema) Acquire(ctx context.Context) error {
	return s.sem.Acquire(ctx, 1)
}

// TryAcquire takes one slot without blocking and reports whether it did.
func (s *Sema) TryAcquire() bool {
	return s.sem.TryAcquire(1)
}

// Release returns one slot. It panics if the semaphore holds no acquired
// slots.
func (s *Sema) Release() {
	s.sem.Release(1)
}
