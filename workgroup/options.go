package workgroup

import (
	"context"
	"time"
)

// Option configures a Group at construction time.
type Option func(*Options)

// Options holds the tunable behavior of a Group.
type Options struct {
	// PanicAsError recovers a panicking task and records the panic as that
	// task's error. When false the panic is re-raised on the task goroutine.
	PanicAsError bool

	// Observer receives lifecycle notifications; nil disables them.
	Observer Observer

	// MaxConcurrency bounds how many tasks run at the same time.
	// 0 means unlimited.
	MaxConcurrency int
}

func defaultOptions() Options { return Options{PanicAsError: true} }

// WithPanicAsError controls whether task panics are converted to errors.
func WithPanicAsError(v bool) Option { return func(o *Options) { o.PanicAsError = v } }

// WithObserver attaches lifecycle hooks to the group.
func WithObserver(obs Observer) Option { return func(o *Options) { o.Observer = obs } }

// WithMaxConcurrency limits simultaneously running tasks. A task waiting for
// a slot counts as not started; if the group is canceled while it waits, it
// fails with the context error without running.
func WithMaxConcurrency(n int) Option { return func(o *Options) { o.MaxConcurrency = n } }

// Observer receives group lifecycle events. Implementations must be safe for
// concurrent use; TaskStarted and TaskFinished are called from task
// goroutines.
type Observer interface {
	GroupCreated(ctx context.Context)
	GroupCancelled(ctx context.Context, cause error)
	GroupJoined(ctx context.Context, wait time.Duration)
	TaskStarted(ctx context.Context)
	TaskFinished(ctx context.Context, dur time.Duration, err error, panicked bool)
}
