package syncx

import "sync"

var closedChan = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// WaitGroup waits for a collection of tasks to finish. Unlike sync.WaitGroup
// it exposes completion as a channel, so callers can select over it. The
// zero value is ready to use.
type WaitGroup struct {
	mu    sync.Mutex
	count int
	done  chan struct{}
}

// Add adds delta, which may be negative, to the task counter. It panics if
// the counter goes negative.
func (wg *WaitGroup) Add(delta int) {
	wg.mu.Lock()
	defer wg.mu.Unlock()
	wg.count += delta
	if wg.count < 0 {
		panic("syncx: negative WaitGroup counter")
	}
	if wg.count == 0 && wg.done != nil {
		close(wg.done)
		wg.done = nil
	}
}

// Done marks one task as finished.
func (wg *WaitGroup) Done() {
	wg.Add(-1)
}

// WaitChan returns a channel that is closed once the counter reaches zero.
// The channel reflects the counter at call time; a later Add starts a new
// cycle with a fresh channel.
func (wg *WaitGroup) WaitChan() <-chan struct{} {
	wg.mu.Lock()
	defer wg.mu.Unlock()
	if wg.count == 0 {
		return closedChan
	}
	if wg.done == nil {
		wg.done = make(chan struct{})
	}
	return wg.done
}

// Wait blocks until the counter reaches zero.
func (wg *WaitGroup) Wait() {
	<-wg.WaitChan()
}
