package workgroup

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// TaskFunc is a unit of work run by a Group. It receives the group context
// and should return promptly once that context is canceled.
type TaskFunc func(ctx context.Context) error

var (
	// ErrInvalidState is returned by Go when a task is submitted after Wait
	// has begun.
	ErrInvalidState = errors.New("workgroup: group is not accepting tasks")

	// ErrNilTask is returned by Go when the task function is nil.
	ErrNilTask = errors.New("workgroup: nil task")
)

// Runner is the surface shared by Group and alternate backends such as the
// errgroup adapter in interop/errgroup. Callers that only submit tasks and
// join can be written against Runner and have the implementation swapped.
type Runner interface {
	Go(fn TaskFunc) error
	Wait() error
	Context() context.Context
}

type groupState int

const (
	stateOpen groupState = iota
	stateRunning
	stateDone
)

// A Group supervises a set of tasks running under one shared cancellable
// context.
//
// Tasks are submitted with Go while the group is open, and joined with Wait.
// The first task to fail has its error recorded and the group context
// canceled; the errors of later failures are discarded. Cancellation is
// cooperative: tasks are signalled through the context and never killed, so
// Wait does not return until every task has unwound on its own.
//
// A Group is single-use. Once Wait has begun no further tasks are accepted.
type Group struct {
	ctx    context.Context
	cancel context.CancelFunc

	wg sync.WaitGroup

	mu       sync.Mutex
	state    groupState
	firstErr error
	canceled bool

	opts Options
	obs  Observer
	lim  Limiter
}

var _ Runner = (*Group)(nil)

// New creates a Group whose shared context is a cancellable child of parent.
// A nil parent is treated as context.Background(). No tasks run yet.
func New(parent context.Context, optFns ...Option) *Group {
	if parent == nil {
		parent = context.Background()
	}
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return newGroup(parent, opts)
}

func newGroup(parent context.Context, opts Options) *Group {
	ctx, cancel := context.WithCancel(parent)
	g := &Group{ctx: ctx, cancel: cancel, opts: opts, obs: opts.Observer}
	if opts.MaxConcurrency > 0 {
		g.lim = newSemaphoreLimiter(opts.MaxConcurrency)
	}
	if g.obs != nil {
		g.obs.GroupCreated(ctx)
	}
	return g
}

// Context returns the shared context handed to every task. After Wait has
// returned, context.Cause reports why it was canceled.
func (g *Group) Context() context.Context { return g.ctx }

// Go submits fn to the group and starts it in its own goroutine without
// blocking the caller. It returns ErrNilTask for a nil fn, and
// ErrInvalidState once Wait has been invoked; misuse is reported here at the
// call site, never deferred to Wait.
func (g *Group) Go(fn TaskFunc) error {
	if fn == nil {
		return ErrNilTask
	}
	g.mu.Lock()
	if g.state != stateOpen {
		g.mu.Unlock()
		return ErrInvalidState
	}
	g.wg.Add(1)
	g.mu.Unlock()

	go g.run(fn)
	return nil
}

func (g *Group) run(fn TaskFunc) {
	defer g.wg.Done()

	if g.lim != nil {
		if err := g.lim.Acquire(g.ctx); err != nil {
			g.fail(err)
			return
		}
		defer g.lim.Release()
	}

	var start time.Time
	if g.obs != nil {
		start = time.Now()
		g.obs.TaskStarted(g.ctx)
	}

	panicked := true
	var err error
	defer func() {
		if panicked {
			r := recover()
			if !g.opts.PanicAsError {
				if g.obs != nil {
					g.obs.TaskFinished(g.ctx, time.Since(start), nil, true)
				}
				panic(r)
			}
			err = fmt.Errorf("panic: %v", r)
			g.fail(err)
			if g.obs != nil {
				g.obs.TaskFinished(g.ctx, time.Since(start), err, true)
			}
			return
		}
		g.fail(err)
		if g.obs != nil {
			g.obs.TaskFinished(g.ctx, time.Since(start), err, false)
		}
	}()

	err = fn(g.ctx)
	panicked = false
}

// fail records err as the group error if it is the first failure and cancels
// the shared context. Exactly one failure triggers cancellation per group.
func (g *Group) fail(err error) {
	if err == nil {
		return
	}
	g.Cancel(err)
}

// Cancel cancels the shared context, recording err as the group error if no
// task has failed yet. Canceling an already-canceled group is a no-op apart
// from the (discarded) error. A nil err cancels without recording anything.
func (g *Group) Cancel(err error) {
	g.mu.Lock()
	if g.firstErr == nil && err != nil {
		g.firstErr = err
	}
	wasCanceled := g.canceled
	g.canceled = true
	cause := g.firstErr
	g.mu.Unlock()

	g.cancel()
	if !wasCanceled && g.obs != nil {
		g.obs.GroupCancelled(g.ctx, cause)
	}
}

// Wait blocks until every submitted task has returned, cancels the shared
// context to release its resources even when all tasks succeeded, and
// returns the error of the first task that failed, or nil.
//
// The first call moves the group out of the open state, so Go rejects
// submissions from then on. Repeated calls replay the recorded result; they
// never re-run tasks and never fail.
//
// Wait reports only errors that tasks returned. If the parent context is
// canceled or its deadline expires and every task absorbs the signal and
// returns nil, Wait returns nil; context.Cause(g.Context()) still carries
// the cause for callers that need to distinguish "asked to stop" from "all
// work done".
func (g *Group) Wait() error {
	g.mu.Lock()
	if g.state == stateOpen {
		g.state = stateRunning
	}
	g.mu.Unlock()

	var start time.Time
	if g.obs != nil {
		start = time.Now()
	}
	g.wg.Wait()
	g.cancel()
	if g.obs != nil {
		g.obs.GroupJoined(g.ctx, time.Since(start))
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = stateDone
	return g.firstErr
}

// Child creates a new open Group whose context derives from g's, so
// canceling g cancels the child. Options default to g's and may be
// overridden per child.
func (g *Group) Child(optFns ...Option) *Group {
	childOpts := g.opts
	for _, fn := range optFns {
		fn(&childOpts)
	}
	return newGroup(g.ctx, childOpts)
}
