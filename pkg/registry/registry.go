package registry

import (
	"fmt"
	"slices"
	"sync"
	"unicode"

	"github.com/aretw0/turing/pkg/domain"
)

// Registry holds the ordered state names and input symbols of a machine.
// Registration order is the index order used by the table, the encoder and
// the engine. FinalizeSymbols appends the blank and freezes both lists.
type Registry struct {
	mu      sync.RWMutex
	states  []string
	symbols []rune
	frozen  bool
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{}
}

// ValidStateName reports whether name is non-empty, alphanumeric and not
// purely numeric.
func ValidStateName(name string) bool {
	if name == "" {
		return false
	}
	numeric := true
	for _, r := range name {
		if !isAlnum(r) {
			return false
		}
		if !unicode.IsDigit(r) {
			numeric = false
		}
	}
	return !numeric
}

// ValidSymbol reports whether r may be registered as an input symbol.
func ValidSymbol(r rune) bool {
	return isAlnum(r)
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// RegisterState appends a state. A rejected name leaves the registry unchanged.
func (r *Registry) RegisterState(name string) (domain.StateID, error) {
	if !ValidStateName(name) {
		return -1, fmt.Errorf("%w: %q (use letters and digits, not only digits)", domain.ErrInvalidName, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return -1, domain.ErrRegistryFrozen
	}
	if slices.Contains(r.states, name) {
		return -1, fmt.Errorf("%w: %q", domain.ErrDuplicateState, name)
	}
	r.states = append(r.states, name)
	return domain.StateID(len(r.states) - 1), nil
}

// RegisterSymbol appends an input symbol. A rejected symbol leaves the
// registry unchanged.
func (r *Registry) RegisterSymbol(sym rune) (domain.SymbolID, error) {
	if !ValidSymbol(sym) {
		return -1, fmt.Errorf("%w: %q (use a single letter or digit)", domain.ErrInvalidSymbol, sym)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return -1, domain.ErrRegistryFrozen
	}
	if slices.Contains(r.symbols, sym) {
		return -1, fmt.Errorf("%w: %q", domain.ErrDuplicateSymbol, sym)
	}
	r.symbols = append(r.symbols, sym)
	return domain.SymbolID(len(r.symbols) - 1), nil
}

// FinalizeSymbols appends the blank symbol and freezes the registry.
// Calling it again has no effect.
func (r *Registry) FinalizeSymbols() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return
	}
	r.symbols = append(r.symbols, domain.Blank)
	r.frozen = true
}

// Frozen reports whether FinalizeSymbols has been called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// States returns a copy of the registered state names.
func (r *Registry) States() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.states)
}

// Symbols returns a copy of the registered symbols, blank included once frozen.
func (r *Registry) Symbols() []rune {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.symbols)
}

// NumStates returns the number of registered states.
func (r *Registry) NumStates() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.states)
}

// NumSymbols returns the number of registered symbols.
func (r *Registry) NumSymbols() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.symbols)
}

// StateIndex looks up a state by name. The first registered match wins.
func (r *Registry) StateIndex(name string) (domain.StateID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := slices.Index(r.states, name)
	return domain.StateID(i), i >= 0
}

// SymbolIndex looks up a symbol. The first registered match wins.
func (r *Registry) SymbolIndex(sym rune) (domain.SymbolID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := slices.Index(r.symbols, sym)
	return domain.SymbolID(i), i >= 0
}

// StateName returns the name of a state, or "" when id is out of range.
func (r *Registry) StateName(id domain.StateID) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id < 0 || int(id) >= len(r.states) {
		return ""
	}
	return r.states[id]
}

// Symbol returns the symbol with the given id.
func (r *Registry) Symbol(id domain.SymbolID) (rune, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id < 0 || int(id) >= len(r.symbols) {
		return 0, false
	}
	return r.symbols[id], true
}
