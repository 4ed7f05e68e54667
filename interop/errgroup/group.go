// Package errgroup provides a workgroup.Runner backed by
// golang.org/x/sync/errgroup. Callers written against the Runner seam can
// swap the native supervisor for the x/sync implementation without touching
// call sites.
package errgroup

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tasksync/workgroup/workgroup"
)

// Group adapts errgroup.Group to the workgroup.Runner surface.
type Group struct {
	eg  *errgroup.Group
	ctx context.Context

	mu      sync.Mutex
	waiting bool
}

var _ workgroup.Runner = (*Group)(nil)

// WithContext creates a Group bound to ctx. The returned context is canceled
// when any task returns a non-nil error or when Wait returns.
func WithContext(ctx context.Context) (*Group, context.Context) {
	eg, gctx := errgroup.WithContext(ctx)
	g := &Group{eg: eg, ctx: gctx}
	return g, gctx
}

// Context returns the shared context handed to every task.
func (g *Group) Context() context.Context { return g.ctx }

// Go starts fn with the group context. It enforces the same call-site
// rejections as the native supervisor: ErrNilTask for a nil fn and
// ErrInvalidState once Wait has begun.
func (g *Group) Go(fn workgroup.TaskFunc) error {
	if fn == nil {
		return workgroup.ErrNilTask
	}
	g.mu.Lock()
	if g.waiting {
		g.mu.Unlock()
		return workgroup.ErrInvalidState
	}
	g.mu.Unlock()

	g.eg.Go(func() error {
		return fn(g.ctx)
	})
	return nil
}

// Wait blocks until every task has returned and reports the first error.
// Repeated calls replay the recorded result.
//
// Unlike the native supervisor, errgroup keeps the error of the first task
// that failed even when that error is a context error caused by the parent;
// with this backend a parent deadline surfaces from Wait whenever a task
// reports it.
func (g *Group) Wait() error {
	g.mu.Lock()
	g.waiting = true
	g.mu.Unlock()
	return g.eg.Wait()
}
