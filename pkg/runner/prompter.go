package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/machine"
	"github.com/aretw0/turing/pkg/registry"
)

// MsgInvalidNumber is printed when a numeric answer cannot be parsed.
const MsgInvalidNumber = "Invalid input. Please enter a valid number."

// Prompter collects a machine description and a tape from a token stream.
// Every answer is one whitespace separated token, so a whole session can be
// piped in on a single line.
type Prompter struct {
	scanner *bufio.Scanner
	w       io.Writer
}

// NewPrompter creates a prompter reading from r and prompting on w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &Prompter{scanner: scanner, w: w}
}

// Token prints prompt and returns the next sanitized token.
// It returns io.ErrUnexpectedEOF when the stream ends.
func (p *Prompter) Token(ctx context.Context, prompt string) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprint(p.w, prompt)
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		clean, err := SanitizeInput(p.scanner.Text())
		if err != nil {
			fmt.Fprintf(p.w, "Error: %v. Please try again.\n", err)
			continue
		}
		if clean == "" {
			continue
		}
		return clean, nil
	}
}

// Number prompts until the answer is an integer of at least min.
func (p *Prompter) Number(ctx context.Context, prompt string, min int) (int, error) {
	for {
		tok, err := p.Token(ctx, prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(tok)
		if err != nil || n < min {
			fmt.Fprintf(p.w, "%s\n\n", MsgInvalidNumber)
			continue
		}
		return n, nil
	}
}

// ReadMachine walks the user through states, symbols and the full
// transition table, re-prompting on every rejected answer.
func (p *Prompter) ReadMachine(ctx context.Context) (*machine.Machine, error) {
	reg := registry.New()

	numStates, err := p.Number(ctx, "Specify the number of states (size of K): ", 1)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(p.w, "\nSpecify the name of each state (e.g: q0,q1,A,...):")
	for i := 0; i < numStates; {
		name, err := p.Token(ctx, fmt.Sprintf("State %d: ", i+1))
		if err != nil {
			return nil, err
		}
		if _, err := reg.RegisterState(name); err != nil {
			p.complain(err)
			continue
		}
		i++
	}

	numSymbols, err := p.Number(ctx, "\nSpecify the number of symbols (size of Σ): ", 1)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(p.w, "\nSpecify the name of each symbol (e.g: a,2,c,...):")
	for i := 0; i < numSymbols; {
		tok, err := p.Token(ctx, fmt.Sprintf("Symbol %d: ", i+1))
		if err != nil {
			return nil, err
		}
		sym, _ := utf8.DecodeRuneInString(tok)
		if utf8.RuneCountInString(tok) != 1 {
			p.complain(fmt.Errorf("%w: %q (use a single letter or digit)", domain.ErrInvalidSymbol, tok))
			continue
		}
		if _, err := reg.RegisterSymbol(sym); err != nil {
			p.complain(err)
			continue
		}
		i++
	}
	reg.FinalizeSymbols()

	table, err := machine.NewTable(reg)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(p.w, "\nSpecify the transition function using this format (new_state new_symbol action):")
	states, symbols := reg.States(), reg.Symbols()
	for s, name := range states {
		for y, sym := range symbols {
			prompt := fmt.Sprintf("Transition of (%s , %c): ", name, sym)
			for {
				to, err := p.Token(ctx, prompt)
				if err != nil {
					return nil, err
				}
				write, err := p.Token(ctx, "")
				if err != nil {
					return nil, err
				}
				action, err := p.Token(ctx, "")
				if err != nil {
					return nil, err
				}
				if err := table.SetTokens(domain.StateID(s), domain.SymbolID(y), to, write, action); err != nil {
					p.complainTransition(err, to, write, states)
					continue
				}
				break
			}
		}
	}

	return machine.Build(reg, table)
}

// ReadInput asks for the input string and the 1-based head index.
// The returned head is 0-based.
func (p *Prompter) ReadInput(ctx context.Context) (input string, head int, err error) {
	input, err = p.Token(ctx, "\nPlease provide the input sequence: ")
	if err != nil {
		return "", 0, err
	}
	pos, err := p.Number(ctx, "\nPlease indicate the index of the tape head (starting from 1): ", 1)
	if err != nil {
		return "", 0, err
	}
	return input, pos - 1, nil
}

// complainTransition reports a rejected transition triple.
func (p *Prompter) complainTransition(err error, to, write string, states []string) {
	switch {
	case errors.Is(err, domain.ErrUnknownState):
		fmt.Fprintf(p.w, "This %s does not exist in the states.\n", to)
		if s, ok := machine.Suggest(to, states); ok {
			fmt.Fprintf(p.w, "Did you mean %s?\n", s)
		}
	case errors.Is(err, domain.ErrUnknownSymbol):
		fmt.Fprintf(p.w, "This %s does not exist in the symbols.\n", write)
	default:
		p.complain(err)
	}
}

func (p *Prompter) complain(err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidName):
		fmt.Fprintln(p.w, "Invalid state name. Please enter a valid state name (e.g: q0 q1 q2 ...).")
	case errors.Is(err, domain.ErrInvalidSymbol):
		fmt.Fprintln(p.w, "Invalid symbol. Please enter a valid symbol.")
	case errors.Is(err, domain.ErrInvalidAction):
		fmt.Fprintln(p.w, "Invalid action. Please enter one of the following actions: (Y or y, N or n, L or l, R or r)")
	default:
		fmt.Fprintf(p.w, "Error: %v\n", err)
	}
}
