package machine

import (
	"fmt"
	"unicode/utf8"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/registry"
	"github.com/aretw0/turing/pkg/schema"
)

// Cell addresses one (state, symbol) coordinate of the table.
type Cell struct {
	State  domain.StateID
	Symbol domain.SymbolID
}

// Table maps (state, symbol) to a transition. It may be partial while it is
// being filled.
type Table struct {
	reg   *registry.Registry
	cells [][]*domain.Transition
}

// NewTable allocates an empty table for a finalized registry.
func NewTable(reg *registry.Registry) (*Table, error) {
	if !reg.Frozen() {
		return nil, domain.ErrRegistryOpen
	}
	if reg.NumStates() == 0 {
		return nil, domain.ErrNoStates
	}
	cells := make([][]*domain.Transition, reg.NumStates())
	for i := range cells {
		cells[i] = make([]*domain.Transition, reg.NumSymbols())
	}
	return &Table{reg: reg, cells: cells}, nil
}

// Registry returns the registry the table was built against.
func (t *Table) Registry() *registry.Registry {
	return t.reg
}

// Set resolves and stores the transition of cell (state, symbol).
// Validation order: target state, written symbol, action letter.
// On failure the cell is left untouched.
func (t *Table) Set(state domain.StateID, symbol domain.SymbolID, toState string, write rune, action rune) error {
	if err := t.checkCell(state, symbol); err != nil {
		return err
	}

	to, ok := t.reg.StateIndex(toState)
	if !ok {
		return fmt.Errorf("%w: %q%s", domain.ErrUnknownState, toState, hint(toState, t.reg.States()))
	}
	w, ok := t.reg.SymbolIndex(write)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownSymbol, write)
	}
	act, err := domain.ParseAction(action)
	if err != nil {
		return err
	}

	t.cells[state][symbol] = &domain.Transition{To: to, Write: w, Action: act}
	return nil
}

// SetTokens is Set for raw text tokens. The symbol and action tokens must be
// exactly one character long.
func (t *Table) SetTokens(state domain.StateID, symbol domain.SymbolID, toState, write, action string) error {
	if err := t.checkCell(state, symbol); err != nil {
		return err
	}
	if _, ok := t.reg.StateIndex(toState); !ok {
		return fmt.Errorf("%w: %q%s", domain.ErrUnknownState, toState, hint(toState, t.reg.States()))
	}
	w, ok := singleRune(write)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownSymbol, write)
	}
	a, ok := singleRune(action)
	if !ok {
		return fmt.Errorf("%w: %q (expected one of Y, N, L, R)", domain.ErrInvalidAction, action)
	}
	return t.Set(state, symbol, toState, w, a)
}

// SetTransition stores an already resolved transition after checking that it
// only references registered entries.
func (t *Table) SetTransition(state domain.StateID, symbol domain.SymbolID, tr domain.Transition) error {
	if err := t.checkCell(state, symbol); err != nil {
		return err
	}
	if tr.To < 0 || int(tr.To) >= t.reg.NumStates() {
		return fmt.Errorf("%w: index %d", domain.ErrUnknownState, tr.To)
	}
	if tr.Write < 0 || int(tr.Write) >= t.reg.NumSymbols() {
		return fmt.Errorf("%w: index %d", domain.ErrUnknownSymbol, tr.Write)
	}
	if !tr.Action.Valid() {
		return fmt.Errorf("%w: %v", domain.ErrInvalidAction, tr.Action)
	}
	t.cells[state][symbol] = &tr
	return nil
}

// Get returns the transition of a cell, if set.
func (t *Table) Get(state domain.StateID, symbol domain.SymbolID) (domain.Transition, bool) {
	if t.checkCell(state, symbol) != nil || t.cells[state][symbol] == nil {
		return domain.Transition{}, false
	}
	return *t.cells[state][symbol], true
}

// Missing lists the unset cells in row-major order.
func (t *Table) Missing() []Cell {
	var missing []Cell
	for s, row := range t.cells {
		for y, tr := range row {
			if tr == nil {
				missing = append(missing, Cell{State: domain.StateID(s), Symbol: domain.SymbolID(y)})
			}
		}
	}
	return missing
}

// Complete returns nil when every cell is set, or an aggregate error with
// one ErrIncompleteTable entry per missing cell.
func (t *Table) Complete() error {
	missing := t.Missing()
	if len(missing) == 0 {
		return nil
	}
	errs := make([]error, 0, len(missing))
	for _, c := range missing {
		sym, _ := t.reg.Symbol(c.Symbol)
		errs = append(errs, fmt.Errorf("%w: no transition for (%s, %c)", domain.ErrIncompleteTable, t.reg.StateName(c.State), sym))
	}
	return &schema.AggregateError{Errors: errs}
}

func (t *Table) checkCell(state domain.StateID, symbol domain.SymbolID) error {
	if state < 0 || int(state) >= len(t.cells) {
		return fmt.Errorf("%w: row %d", domain.ErrUnknownState, state)
	}
	if symbol < 0 || int(symbol) >= len(t.cells[state]) {
		return fmt.Errorf("%w: column %d", domain.ErrUnknownSymbol, symbol)
	}
	return nil
}

func singleRune(s string) (rune, bool) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}
