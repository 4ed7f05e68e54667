package otel

import (
	"context"
	"time"

	"github.com/tasksync/workgroup/workgroup"
)

// Nop is a no-op implementation of the workgroup.Observer interface.
// It serves as a placeholder for an OpenTelemetry-backed observer without
// adding dependencies.
type Nop struct{}

var _ workgroup.Observer = (*Nop)(nil)

// NewNop returns a no-op observer.
func NewNop() *Nop { return &Nop{} }

func (*Nop) GroupCreated(context.Context)                             {}
func (*Nop) GroupCancelled(context.Context, error)                    {}
func (*Nop) GroupJoined(context.Context, time.Duration)               {}
func (*Nop) TaskStarted(context.Context)                              {}
func (*Nop) TaskFinished(context.Context, time.Duration, error, bool) {}
