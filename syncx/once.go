package syncx

import "sync"

// Once executes an action exactly once. The zero value is ready to use.
type Once struct {
	mu   sync.Mutex
	done bool
}

// Do runs f if no call to Do on this Once has run before. Concurrent callers
// block until the winning call returns. A panicking f still counts as done.
func (o *Once) Do(f func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.done {
		return
	}
	o.done = true
	f()
}
