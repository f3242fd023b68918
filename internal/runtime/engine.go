package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/machine"
	"github.com/google/uuid"
)

// Engine is the execution engine. It is stateless between runs: every call
// to Run owns its own tape, head and current state.
type Engine struct {
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	maxTape  int
	maxSteps int
	newRunID func() string
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMaxTape sets the tape capacity. The head index must stay below it.
func WithMaxTape(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.maxTape = n
		}
	}
}

// WithMaxSteps bounds the number of steps of a run. Zero means unlimited.
func WithMaxSteps(n int) EngineOption {
	return func(e *Engine) {
		if n >= 0 {
			e.maxSteps = n
		}
	}
}

// WithRunIDGenerator overrides how run identifiers are generated.
func WithRunIDGenerator(fn func() string) EngineOption {
	return func(e *Engine) {
		if fn != nil {
			e.newRunID = fn
		}
	}
}

// NewEngine creates a new engine with dependencies.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxTape:  domain.DefaultMaxTape,
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MaxTape returns the configured tape capacity.
func (e *Engine) MaxTape() int {
	return e.maxTape
}

// run is the mutable state of one execution.
type run struct {
	id     string
	m      *machine.Machine
	tape   *Tape
	head   int
	state  domain.StateID
	result *domain.Result
	logger *slog.Logger
}

// Run executes m on input, starting with the head at the zero-based index
// head, until the machine accepts, rejects or faults.
//
// A verdict returns (result, nil). A fault returns the partial result and a
// *domain.FaultError; the result carries the trace up to the fault and no
// verdict.
func (e *Engine) Run(ctx context.Context, m *machine.Machine, input string, head int) (*domain.Result, error) {
	id := e.newRunID()
	r := &run{
		id:     id,
		m:      m,
		tape:   NewTape(input),
		head:   head,
		result: &domain.Result{RunID: id},
		logger: e.logger.With("run_id", id),
	}

	r.logger.Info("Run started", "machine", m.Name(), "input", input, "head", head)
	if e.hooks.OnRunStart != nil {
		e.hooks.OnRunStart(ctx, &domain.RunEvent{
			EventBase: e.base(domain.EventRunStart, id),
			Input:     input,
			Head:      head,
		})
	}

	if m.NumStates() == 0 {
		return e.fault(ctx, r, domain.ErrStateOutOfRange, domain.ErrNoStates.Error())
	}
	if head < 0 || head >= r.tape.Len() || head >= e.maxTape {
		return e.fault(ctx, r, domain.ErrHeadOutOfRange,
			fmt.Sprintf("start index %d is outside the input (1..%d)", head+1, min(r.tape.Len(), e.maxTape)))
	}

	for step := 0; ; step++ {
		if err := ctx.Err(); err != nil {
			return e.fault(ctx, r, err, "")
		}
		if e.maxSteps > 0 && step >= e.maxSteps {
			return e.fault(ctx, r, domain.ErrStepLimit, fmt.Sprintf("limit is %d", e.maxSteps))
		}

		done, err := e.step(ctx, r, step)
		if done || err != nil {
			return r.result, err
		}
	}
}

// step prints the current configuration and applies one transition.
// It reports done when the machine halted with a verdict.
func (e *Engine) step(ctx context.Context, r *run, step int) (bool, error) {
	cfg := domain.Configuration{
		Step:  step,
		State: r.m.StateName(r.state),
		Tape:  r.tape.Render(r.head),
		Head:  r.head,
	}
	r.result.Trace = append(r.result.Trace, cfg)
	r.logger.Debug("Step", "step", step, "state", cfg.State, "tape", cfg.Tape)
	if e.hooks.OnStep != nil {
		e.hooks.OnStep(ctx, &domain.StepEvent{
			EventBase:     e.base(domain.EventStep, r.id),
			Configuration: cfg,
		})
	}

	// 1. Read
	current := r.tape.Read(r.head)
	sym, ok := r.m.SymbolIndex(current)
	if !ok {
		_, err := e.fault(ctx, r, domain.ErrSymbolNotInAlphabet, fmt.Sprintf("(%c)", current))
		return false, err
	}

	// 2. Write, even when the action halts
	t := r.m.Transition(r.state, sym)
	write, _ := r.m.Symbol(t.Write)
	r.tape.Write(r.head, write)
	r.result.Steps = step + 1

	// 3. Move or halt
	switch t.Action {
	case domain.Left:
		r.head--
	case domain.Right:
		r.head++
		if r.head == r.tape.Len() {
			r.tape.Grow()
		}
	case domain.Accept:
		e.halt(ctx, r, domain.VerdictAccepted)
		return true, nil
	case domain.Reject:
		e.halt(ctx, r, domain.VerdictRejected)
		return true, nil
	default:
		_, err := e.fault(ctx, r, domain.ErrUnrecognizedAction, t.Action.String())
		return false, err
	}

	// 4. Resolve the next state
	if r.m.StateName(t.To) == "" {
		_, err := e.fault(ctx, r, domain.ErrInvalidStateTransition, fmt.Sprintf("to state %d", t.To))
		return false, err
	}
	r.state = t.To

	// 5. Bounds
	if r.head < 0 || r.head >= e.maxTape {
		_, err := e.fault(ctx, r, domain.ErrHeadOutOfRange, fmt.Sprintf("head %d", r.head))
		return false, err
	}
	if int(r.state) >= r.m.NumStates() {
		_, err := e.fault(ctx, r, domain.ErrStateOutOfRange, fmt.Sprintf("state %d", r.state))
		return false, err
	}
	return false, nil
}

func (e *Engine) halt(ctx context.Context, r *run, verdict domain.Verdict) {
	r.result.Verdict = verdict
	r.result.FinalTape = r.tape.Render(r.head)

	r.logger.Info("Run halted", "verdict", verdict, "steps", r.result.Steps, "tape_cells", r.tape.Len())
	if e.hooks.OnHalt != nil {
		e.hooks.OnHalt(ctx, &domain.HaltEvent{
			EventBase: e.base(domain.EventHalt, r.id),
			Outcome:   r.result.Outcome(),
			Steps:     r.result.Steps,
			TapeCells: r.tape.Len(),
			FinalTape: r.result.FinalTape,
		})
	}
}

func (e *Engine) fault(ctx context.Context, r *run, cause error, detail string) (*domain.Result, error) {
	ferr := &domain.FaultError{
		Step:   len(r.result.Trace),
		State:  r.m.StateName(r.state),
		Detail: detail,
		Err:    cause,
	}
	if n := len(r.result.Trace); n > 0 {
		ferr.Step = n - 1
		r.result.FinalTape = r.result.Trace[n-1].Tape
	}
	r.result.Fault = ferr

	r.logger.Warn("Run faulted", "step", ferr.Step, "state", ferr.State, "err", ferr)
	if e.hooks.OnFault != nil {
		e.hooks.OnFault(ctx, &domain.HaltEvent{
			EventBase: e.base(domain.EventFault, r.id),
			Outcome:   domain.OutcomeFault,
			Steps:     r.result.Steps,
			TapeCells: r.tape.Len(),
			FinalTape: r.result.FinalTape,
			Err:       ferr,
		})
	}
	return r.result, ferr
}

func (e *Engine) base(t domain.EventType, runID string) domain.EventBase {
	return domain.EventBase{Timestamp: time.Now(), Type: t, RunID: runID}
}
