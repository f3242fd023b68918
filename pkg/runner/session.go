package runner

import (
	"context"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/machine"
)

// Session is one interactive program run: describe, encode, execute.
type Session struct {
	prompter *Prompter
	printer  *Printer
	engine   *turing.Engine
}

// NewSession wires a prompter and a printer to a new engine. The printer
// streams the trace through lifecycle hooks, so opts may add more hooks.
func NewSession(prompter *Prompter, printer *Printer, opts ...turing.Option) *Session {
	opts = append([]turing.Option{turing.WithLifecycleHooks(printer.Hooks())}, opts...)
	return &Session{
		prompter: prompter,
		printer:  printer,
		engine:   turing.New(opts...),
	}
}

// Run prompts for a machine and an input, then executes it.
// A fault is returned as a *domain.FaultError after its diagnostic is printed.
func (s *Session) Run(ctx context.Context) (*domain.Result, error) {
	m, err := s.prompter.ReadMachine(ctx)
	if err != nil {
		return nil, err
	}
	s.Present(m)

	input, head, err := s.prompter.ReadInput(ctx)
	if err != nil {
		return nil, err
	}
	return s.Execute(ctx, m, input, head)
}

// Present writes the description and the encoding of m.
func (s *Session) Present(m *machine.Machine) {
	s.printer.Describe(m)
	s.printer.Encoding(s.engine.Codes(m), s.engine.Encode(m))
}

// Execute runs m on input without prompting. head is 0-based.
func (s *Session) Execute(ctx context.Context, m *machine.Machine, input string, head int) (*domain.Result, error) {
	s.printer.Start(input)
	res, err := s.engine.Run(ctx, m, input, head)
	s.printer.Outcome(res, err)
	return res, err
}
