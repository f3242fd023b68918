package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/encoding"
	"github.com/aretw0/turing/pkg/machine"
)

// ContentRenderer is a function that transforms markdown before it is
// written, e.g. glamour for terminals.
type ContentRenderer func(string) (string, error)

// Highlighter decorates a rendered tape, e.g. colouring the head cell.
type Highlighter func(tape string) string

// Printer writes the reports of a session.
type Printer struct {
	w         io.Writer
	renderer  ContentRenderer
	highlight Highlighter
}

// PrinterOption configures a Printer.
type PrinterOption func(*Printer)

// WithRenderer renders the machine description as markdown.
func WithRenderer(r ContentRenderer) PrinterOption {
	return func(p *Printer) {
		p.renderer = r
	}
}

// WithHighlighter decorates every printed tape.
func WithHighlighter(h Highlighter) PrinterOption {
	return func(p *Printer) {
		p.highlight = h
	}
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer, opts ...PrinterOption) *Printer {
	if w == nil {
		w = os.Stdout
	}
	p := &Printer{w: w}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Describe writes the machine summary and its transition function,
// one "(q0, a)|---(q1, b, R)" line per cell.
func (p *Printer) Describe(m *machine.Machine) {
	if p.renderer != nil {
		if out, err := p.renderer(Markdown(m)); err == nil {
			fmt.Fprintln(p.w, strings.TrimSpace(out))
			return
		}
	}

	fmt.Fprintln(p.w, "\nTuring Machine Information:")
	if m.Name() != "" {
		fmt.Fprintf(p.w, "Name: %s\n", m.Name())
	}
	fmt.Fprintf(p.w, "Number of states (K): %d\n", m.NumStates())
	fmt.Fprintf(p.w, "Number of symbols (Σ): %d\n", m.NumSymbols())
	fmt.Fprintln(p.w, "States (K):")
	fmt.Fprintln(p.w, strings.Join(m.States(), " "))
	fmt.Fprintln(p.w, "Symbols (Σ):")
	fmt.Fprintln(p.w, joinRunes(m.Symbols(), " "))
	fmt.Fprintln(p.w, "Transition Function (δ):")
	for _, line := range TransitionLines(m) {
		fmt.Fprintln(p.w, line)
	}
}

// Encoding writes the code tables followed by the encoded machine.
func (p *Printer) Encoding(codes encoding.Codes, bits string) {
	fmt.Fprintln(p.w, "\nEncoded States:")
	for _, c := range codes.States {
		fmt.Fprintf(p.w, "State %s: %s\n", c.Label, c.Code)
	}
	fmt.Fprintln(p.w, "Encoded Symbols:")
	for _, c := range codes.Symbols {
		fmt.Fprintf(p.w, "Symbol %s: %s\n", c.Label, c.Code)
	}
	fmt.Fprintln(p.w, "Encoded Actions:")
	for _, c := range codes.Actions {
		fmt.Fprintf(p.w, "Action %s: %s\n", c.Label, c.Code)
	}
	fmt.Fprintf(p.w, "Encoded Turing Machine Transitions: %s\n", bits)
}

// Start writes the input tape and the trace header.
func (p *Printer) Start(input string) {
	fmt.Fprintf(p.w, "Input Tape: %c%s\n", domain.Sentinel, input)
	fmt.Fprint(p.w, "\nExecution Steps:\n\n")
}

// Step writes one trace line.
func (p *Printer) Step(c domain.Configuration) {
	fmt.Fprintf(p.w, "%s  %s\n", c.State, p.tape(c.Tape))
}

// Outcome writes the verdict or the fault diagnostic, then the final tape.
func (p *Printer) Outcome(res *domain.Result, err error) {
	if err != nil && !domain.IsFault(err) {
		fmt.Fprintf(p.w, "Error: %v\n", err)
		return
	}
	switch res.Outcome() {
	case domain.OutcomeAccepted:
		fmt.Fprintln(p.w, "This sequence is accepted.")
	case domain.OutcomeRejected:
		fmt.Fprintln(p.w, "This sequence is rejected.")
	default:
		fmt.Fprintln(p.w, Diagnostic(res.Fault))
	}
	if res.FinalTape != "" {
		fmt.Fprintf(p.w, "Final Tape: %s\n", p.tape(res.FinalTape))
	}
}

// Hooks returns lifecycle hooks that stream the trace while a run executes.
func (p *Printer) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(_ context.Context, e *domain.StepEvent) {
			p.Step(e.Configuration)
		},
	}
}

func (p *Printer) tape(s string) string {
	if p.highlight == nil {
		return s
	}
	return p.highlight(s)
}

// Diagnostic turns a fault into the message shown to the user.
func Diagnostic(err error) string {
	var fe *domain.FaultError
	if !errors.As(err, &fe) {
		return fmt.Sprintf("Error: %v", err)
	}
	msg := fe.Err.Error()
	msg = strings.ToUpper(msg[:1]) + msg[1:]
	if fe.Detail != "" {
		msg += ": " + fe.Detail
	}
	return fmt.Sprintf("%s (state %s, step %d).", msg, fe.State, fe.Step+1)
}

// TransitionLines returns one "(q0, a)|---(q1, b, R)" line per table cell
// in row-major order.
func TransitionLines(m *machine.Machine) []string {
	cells := m.Cells()
	lines := make([]string, 0, len(cells))
	for _, e := range cells {
		read, _ := m.Symbol(e.Read)
		write, _ := m.Symbol(e.Transition.Write)
		lines = append(lines, fmt.Sprintf("(%s, %c)|---(%s, %c, %c)",
			m.StateName(e.From), read,
			m.StateName(e.Transition.To), write, e.Transition.Action.Letter()))
	}
	return lines
}

// Markdown renders the transition function as a markdown table with one
// row per state and one column per symbol.
func Markdown(m *machine.Machine) string {
	var sb strings.Builder
	title := m.Name()
	if title == "" {
		title = "Turing Machine"
	}
	fmt.Fprintf(&sb, "## %s\n\n", title)
	fmt.Fprintf(&sb, "States (K): `%s`  \nSymbols (Σ): `%s`\n\n",
		strings.Join(m.States(), " "), joinRunes(m.Symbols(), " "))

	symbols := m.Symbols()
	sb.WriteString("| δ |")
	for _, sym := range symbols {
		fmt.Fprintf(&sb, " `%c` |", sym)
	}
	sb.WriteString("\n|---|")
	sb.WriteString(strings.Repeat("---|", len(symbols)))
	sb.WriteString("\n")
	for s, name := range m.States() {
		fmt.Fprintf(&sb, "| **%s** |", name)
		for y := range symbols {
			tr := m.Transition(domain.StateID(s), domain.SymbolID(y))
			write, _ := m.Symbol(tr.Write)
			fmt.Fprintf(&sb, " %s, `%c`, %c |", m.StateName(tr.To), write, tr.Action.Letter())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func joinRunes(rs []rune, sep string) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, sep)
}
