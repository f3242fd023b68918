package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/dsl"
	"github.com/aretw0/turing/pkg/machine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, b *dsl.Builder) *machine.Machine {
	t.Helper()
	m, err := b.Build()
	require.NoError(t, err)
	return m
}

// acceptOnA accepts as soon as it reads anything.
func acceptOnA(t *testing.T) *machine.Machine {
	b := dsl.New("accept").States("q0").Symbols('a')
	b.On("q0", 'a').Accept('a')
	b.On("q0", '#').Accept('#')
	return build(t, b)
}

// scanRight moves right over a's and accepts on the first blank.
func scanRight(t *testing.T) *machine.Machine {
	b := dsl.New("scan").States("q0").Symbols('a')
	b.On("q0", 'a').Go("q0", 'a', domain.Right)
	b.On("q0", '#').Accept('#')
	return build(t, b)
}

func fixedID() string { return "run-1" }

func TestEngine_AcceptInOneStep(t *testing.T) {
	engine := runtime.NewEngine()

	res, err := engine.Run(context.Background(), acceptOnA(t), "a", 0)
	require.NoError(t, err)

	require.Len(t, res.Trace, 1)
	assert.Equal(t, "q0  <(a)", res.Trace[0].String())
	assert.Equal(t, domain.VerdictAccepted, res.Verdict)
	assert.Equal(t, "<(a)", res.FinalTape)
	assert.Equal(t, 1, res.Steps)
	assert.Equal(t, domain.OutcomeAccepted, res.Outcome())
	assert.NotEmpty(t, res.RunID)
}

func TestEngine_RejectIsNotAFault(t *testing.T) {
	b := dsl.New("reject").States("q0").Symbols('a')
	b.On("q0", 'a').Reject('a')
	b.On("q0", '#').Reject('#')

	res, err := runtime.NewEngine().Run(context.Background(), build(t, b), "a", 0)
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictRejected, res.Verdict)
	assert.Nil(t, res.Fault)
}

func TestEngine_WriteBeforeHalting(t *testing.T) {
	b := dsl.New("overwrite").States("q0").Symbols('a', 'b')
	b.On("q0", 'a').Accept('b')
	b.On("q0", 'b').Accept('b')
	b.On("q0", '#').Accept('#')

	res, err := runtime.NewEngine().Run(context.Background(), build(t, b), "aa", 1)
	require.NoError(t, err)
	assert.Equal(t, "<a(b)", res.FinalTape)
}

func TestEngine_TapeGrowsOneBlankPerStep(t *testing.T) {
	var cells []int
	hooks := domain.LifecycleHooks{
		OnHalt: func(ctx context.Context, e *domain.HaltEvent) {
			cells = append(cells, e.TapeCells)
		},
	}
	engine := runtime.NewEngine(runtime.WithLifecycleHooks(hooks))

	res, err := engine.Run(context.Background(), scanRight(t), "aa", 0)
	require.NoError(t, err)

	var lines []string
	for _, c := range res.Trace {
		lines = append(lines, c.String())
	}
	assert.Equal(t, []string{"q0  <(a)a", "q0  <a(a)", "q0  <aa(#)"}, lines)
	assert.Equal(t, "<aa(#)", res.FinalTape)
	assert.Equal(t, []int{3}, cells, "exactly one blank appended")
}

func TestEngine_Faults(t *testing.T) {
	left := dsl.New("left").States("q0").Symbols('a')
	left.On("q0", 'a').Go("q0", 'a', domain.Left)
	left.On("q0", '#').Go("q0", '#', domain.Left)

	tests := []struct {
		name      string
		m         *machine.Machine
		opts      []runtime.EngineOption
		input     string
		head      int
		wantErr   error
		wantTrace int
	}{
		{"Symbol not in alphabet", scanRight(t), nil, "ax", 0, domain.ErrSymbolNotInAlphabet, 2},
		{"Head falls off the left end", build(t, left), nil, "a", 0, domain.ErrHeadOutOfRange, 1},
		{"Start index past input", acceptOnA(t), nil, "a", 1, domain.ErrHeadOutOfRange, 0},
		{"Negative start index", acceptOnA(t), nil, "a", -1, domain.ErrHeadOutOfRange, 0},
		{"Tape capacity", scanRight(t), []runtime.EngineOption{runtime.WithMaxTape(3)}, "aaaa", 0, domain.ErrHeadOutOfRange, 3},
		{"Empty input", acceptOnA(t), nil, "", 0, domain.ErrHeadOutOfRange, 0},
		{"Start index past tape capacity", scanRight(t), []runtime.EngineOption{runtime.WithMaxTape(2)}, "aaa", 2, domain.ErrHeadOutOfRange, 0},
		{"Machine without states", &machine.Machine{}, nil, "a", 0, domain.ErrStateOutOfRange, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := runtime.NewEngine(tt.opts...).Run(context.Background(), tt.m, tt.input, tt.head)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, domain.IsFault(err))

			require.NotNil(t, res)
			assert.Equal(t, domain.VerdictNone, res.Verdict, "a fault never produces a verdict")
			assert.Equal(t, domain.OutcomeFault, res.Outcome())
			assert.Len(t, res.Trace, tt.wantTrace)
		})
	}
}

func TestEngine_StepLimit(t *testing.T) {
	b := dsl.New("ping-pong").States("q0").Symbols('a')
	b.On("q0", 'a').Go("q0", 'a', domain.Right)
	b.On("q0", '#').Go("q0", '#', domain.Left)

	res, err := runtime.NewEngine(runtime.WithMaxSteps(10)).Run(context.Background(), build(t, b), "a", 0)
	require.ErrorIs(t, err, domain.ErrStepLimit)
	assert.Len(t, res.Trace, 10)
	assert.Equal(t, 10, res.Steps)
}

func TestEngine_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := runtime.NewEngine().Run(ctx, acceptOnA(t), "a", 0)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Trace)
}

func TestEngine_Deterministic(t *testing.T) {
	engine := runtime.NewEngine(runtime.WithRunIDGenerator(fixedID))
	m := scanRight(t)

	first, err := engine.Run(context.Background(), m, "aaa", 1)
	require.NoError(t, err)
	second, err := engine.Run(context.Background(), m, "aaa", 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEngine_LifecycleHooks(t *testing.T) {
	var events []domain.EventType
	record := func(e domain.EventBase) { events = append(events, e.Type) }
	hooks := domain.LifecycleHooks{
		OnRunStart: func(ctx context.Context, e *domain.RunEvent) { record(e.EventBase) },
		OnStep:     func(ctx context.Context, e *domain.StepEvent) { record(e.EventBase) },
		OnHalt:     func(ctx context.Context, e *domain.HaltEvent) { record(e.EventBase) },
		OnFault:    func(ctx context.Context, e *domain.HaltEvent) { record(e.EventBase) },
	}
	engine := runtime.NewEngine(runtime.WithLifecycleHooks(hooks), runtime.WithRunIDGenerator(fixedID))

	_, err := engine.Run(context.Background(), scanRight(t), "a", 0)
	require.NoError(t, err)
	assert.Equal(t, []domain.EventType{
		domain.EventRunStart, domain.EventStep, domain.EventStep, domain.EventHalt,
	}, events)

	events = nil
	_, err = engine.Run(context.Background(), scanRight(t), "x", 0)
	require.Error(t, err)
	assert.Equal(t, []domain.EventType{domain.EventRunStart, domain.EventStep, domain.EventFault}, events)
}
