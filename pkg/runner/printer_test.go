package runner

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestPrinter_Highlighter(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, WithHighlighter(strings.ToUpper))

	p.Step(domain.Configuration{State: "q0", Tape: "<a(b)"})
	p.Outcome(&domain.Result{Verdict: domain.VerdictRejected, FinalTape: "<a(b)"}, nil)

	assert.Equal(t, "q0  <A(B)\nThis sequence is rejected.\nFinal Tape: <A(B)\n", out.String())
}

func TestPrinter_Describe_Renderer(t *testing.T) {
	m := endsWithBMachine(t)

	var out bytes.Buffer
	var seen string
	p := NewPrinter(&out, WithRenderer(func(md string) (string, error) {
		seen = md
		return "rendered\n", nil
	}))
	p.Describe(m)

	assert.Equal(t, "rendered\n", out.String())
	assert.Contains(t, seen, "## ends-with-b")
	assert.Contains(t, seen, "| **q1** | q0, `a`, R | q1, `b`, R | q1, `#`, Y |")
}

func TestPrinter_Describe_RendererFallback(t *testing.T) {
	m := endsWithBMachine(t)

	var out bytes.Buffer
	p := NewPrinter(&out, WithRenderer(func(string) (string, error) {
		return "", errors.New("no terminal")
	}))
	p.Describe(m)

	assert.Contains(t, out.String(), "Transition Function (δ):")
	assert.Contains(t, out.String(), "(q0, #)|---(q0, #, N)")
}

func TestDiagnostic(t *testing.T) {
	err := &domain.FaultError{Step: 4, State: "q2", Detail: "head -1", Err: domain.ErrHeadOutOfRange}
	assert.Equal(t, "Tape head has moved out of the valid range of the tape: head -1 (state q2, step 5).", Diagnostic(err))
	assert.Equal(t, "Error: boom", Diagnostic(errors.New("boom")))
}

func TestTransitionLines(t *testing.T) {
	lines := TransitionLines(endsWithBMachine(t))
	assert.Len(t, lines, 6)
	assert.Equal(t, "(q0, a)|---(q0, a, R)", lines[0])
	assert.Equal(t, "(q1, #)|---(q1, #, Y)", lines[5])
}
