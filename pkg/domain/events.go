package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventRunStart EventType = "run_start"
	EventStep     EventType = "step"
	EventHalt     EventType = "halt"
	EventFault    EventType = "fault"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	RunID     string    `json:"run_id"`
}

// RunEvent is emitted once when a run starts.
type RunEvent struct {
	EventBase
	Input string `json:"input"`
	Head  int    `json:"head"`
}

// StepEvent carries the configuration printed before a step.
type StepEvent struct {
	EventBase
	Configuration Configuration `json:"configuration"`
}

// HaltEvent is emitted when a run ends, with a verdict or a fault.
type HaltEvent struct {
	EventBase
	Outcome   Outcome `json:"outcome"`
	Steps     int     `json:"steps"`
	TapeCells int     `json:"tape_cells"`
	FinalTape string  `json:"final_tape,omitempty"`
	Err       error   `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnRunStart func(context.Context, *RunEvent)
	OnStep     func(context.Context, *StepEvent)
	OnHalt     func(context.Context, *HaltEvent)
	OnFault    func(context.Context, *HaltEvent)
}

// Merge combines hooks so that each callback of h runs before the matching
// callback of other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnRunStart: chain(h.OnRunStart, other.OnRunStart),
		OnStep:     chain(h.OnStep, other.OnStep),
		OnHalt:     chain(h.OnHalt, other.OnHalt),
		OnFault:    chain(h.OnFault, other.OnFault),
	}
}

func chain[E any](a, b func(context.Context, *E)) func(context.Context, *E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *E) {
		a(ctx, e)
		b(ctx, e)
	}
}
