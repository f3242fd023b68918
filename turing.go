package turing

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/encoding"
	"github.com/aretw0/turing/pkg/machine"
	"github.com/aretw0/turing/pkg/ports"
)

// Engine is the high-level entry point for the turing library.
// It wraps the internal runtime and the encoder behind a simplified API.
type Engine struct {
	runtime  *runtime.Engine
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	maxTape  int
	maxSteps int
}

var _ ports.Engine = (*Engine)(nil)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks. Calling it more than
// once merges the hooks in order.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMaxTape sets the tape capacity (default 1000 cells).
func WithMaxTape(n int) Option {
	return func(e *Engine) {
		e.maxTape = n
	}
}

// WithMaxSteps bounds every run to n steps. Zero means unlimited.
func WithMaxSteps(n int) Option {
	return func(e *Engine) {
		e.maxSteps = n
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{maxTape: domain.DefaultMaxTape}
	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime)
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	eng.runtime = runtime.NewEngine(
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
		runtime.WithMaxTape(eng.maxTape),
		runtime.WithMaxSteps(eng.maxSteps),
	)
	return eng
}

// Run executes m on input with the head at the zero-based index head.
// See runtime.Engine.Run for the result/error contract.
func (e *Engine) Run(ctx context.Context, m *machine.Machine, input string, head int) (*domain.Result, error) {
	return e.runtime.Run(ctx, m, input, head)
}

// Encode returns the bitstring encoding of m.
func (e *Engine) Encode(m *machine.Machine) string {
	return encoding.Encode(m)
}

// Codes returns the code assignment of m.
func (e *Engine) Codes(m *machine.Machine) encoding.Codes {
	return encoding.Assign(m)
}

// MaxTape returns the configured tape capacity.
func (e *Engine) MaxTape() int {
	return e.runtime.MaxTape()
}
