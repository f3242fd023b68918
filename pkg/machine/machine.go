package machine

import (
	"slices"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/registry"
)

// Machine is a validated, read-only machine description.
type Machine struct {
	name    string
	states  []string
	symbols []rune
	delta   [][]domain.Transition
}

// Option configures a Machine at build time.
type Option func(*Machine)

// WithName labels the machine (used by logs, graphs and adapters).
func WithName(name string) Option {
	return func(m *Machine) {
		m.name = name
	}
}

// Build freezes a complete table into a Machine.
func Build(reg *registry.Registry, table *Table, opts ...Option) (*Machine, error) {
	if !reg.Frozen() {
		return nil, domain.ErrRegistryOpen
	}
	if len(table.cells) == 0 {
		return nil, domain.ErrNoStates
	}
	if err := table.Complete(); err != nil {
		return nil, err
	}

	m := &Machine{
		states:  reg.States(),
		symbols: reg.Symbols(),
		delta:   make([][]domain.Transition, len(table.cells)),
	}
	for s, row := range table.cells {
		m.delta[s] = make([]domain.Transition, len(row))
		for y, tr := range row {
			m.delta[s][y] = *tr
		}
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Name returns the machine label, possibly empty.
func (m *Machine) Name() string { return m.name }

// States returns a copy of the state names in index order.
func (m *Machine) States() []string { return slices.Clone(m.states) }

// Symbols returns a copy of the alphabet in index order, blank last.
func (m *Machine) Symbols() []rune { return slices.Clone(m.symbols) }

// NumStates returns the number of states.
func (m *Machine) NumStates() int { return len(m.states) }

// NumSymbols returns the alphabet size, blank included.
func (m *Machine) NumSymbols() int { return len(m.symbols) }

// StateName returns the name of state id, or "" when out of range.
func (m *Machine) StateName(id domain.StateID) string {
	if id < 0 || int(id) >= len(m.states) {
		return ""
	}
	return m.states[id]
}

// Symbol returns the symbol with index id.
func (m *Machine) Symbol(id domain.SymbolID) (rune, bool) {
	if id < 0 || int(id) >= len(m.symbols) {
		return 0, false
	}
	return m.symbols[id], true
}

// StateIndex looks up a state by name.
func (m *Machine) StateIndex(name string) (domain.StateID, bool) {
	i := slices.Index(m.states, name)
	return domain.StateID(i), i >= 0
}

// SymbolIndex looks up a symbol.
func (m *Machine) SymbolIndex(r rune) (domain.SymbolID, bool) {
	i := slices.Index(m.symbols, r)
	return domain.SymbolID(i), i >= 0
}

// Transition returns the transition of cell (state, symbol).
// Both coordinates must be in range.
func (m *Machine) Transition(state domain.StateID, symbol domain.SymbolID) domain.Transition {
	return m.delta[state][symbol]
}

// Entry is one table cell with its coordinates.
type Entry struct {
	From       domain.StateID
	Read       domain.SymbolID
	Transition domain.Transition
}

// Cells returns every table cell in row-major order: states outer,
// symbols inner.
func (m *Machine) Cells() []Entry {
	entries := make([]Entry, 0, len(m.states)*len(m.symbols))
	for s, row := range m.delta {
		for y, tr := range row {
			entries = append(entries, Entry{From: domain.StateID(s), Read: domain.SymbolID(y), Transition: tr})
		}
	}
	return entries
}
