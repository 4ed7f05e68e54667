package syncx

import "context"

// Mutex is a mutual-exclusion lock layered on a binary Sema.
type Mutex struct {
	sema *Sema
}

// NewMutex creates an unlocked Mutex.
func NewMutex() *Mutex {
	return &Mutex{sema: NewSema(1)}
}

// Lock blocks until the mutex is held.
func (m *Mutex) Lock() {
	// Background context: a bare Lock cannot be interrupted.
	_ = m.sema.Acquire(context.Background())
}

// LockCtx blocks until the mutex is held or ctx is done.
func (m *Mutex) LockCtx(ctx context.Context) error {
	return m.sema.Acquire(ctx)
}

// TryLock takes the mutex without blocking and reports whether it did.
func (m *Mutex) TryLock() bool {
	return m.sema.TryAcquire()
}

// Unlock releases the mutex. It panics if the mutex is not held.
func (m *Mutex) Unlock() {
	m.sema.Release()
}
