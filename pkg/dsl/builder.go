package dsl

import (
	"fmt"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/machine"
	"github.com/aretw0/turing/pkg/registry"
	"github.com/aretw0/turing/pkg/schema"
)

// Builder manages the machine construction.
type Builder struct {
	name    string
	states  []string
	symbols []rune
	rules   []*RuleBuilder
}

// New creates a new machine builder.
func New(name string) *Builder {
	return &Builder{name: name}
}

// States appends states in registration order. The first state is initial.
func (b *Builder) States(names ...string) *Builder {
	b.states = append(b.states, names...)
	return b
}

// Symbols appends input symbols. The blank is added by Build.
func (b *Builder) Symbols(symbols ...rune) *Builder {
	b.symbols = append(b.symbols, symbols...)
	return b
}

// On starts the rule for cell (state, read).
// If the rule already exists, it returns the existing builder.
func (b *Builder) On(state string, read rune) *RuleBuilder {
	for _, rb := range b.rules {
		if rb.from == state && rb.read == read {
			return rb
		}
	}
	rb := &RuleBuilder{from: state, read: read, builder: b}
	b.rules = append(b.rules, rb)
	return rb
}

// Build registers states and symbols, fills the table and returns the
// machine. All problems found are reported in one *schema.AggregateError.
func (b *Builder) Build() (*machine.Machine, error) {
	var errs []error

	reg := registry.New()
	for _, s := range b.states {
		if _, err := reg.RegisterState(s); err != nil {
			errs = append(errs, err)
		}
	}
	for _, r := range b.symbols {
		if _, err := reg.RegisterSymbol(r); err != nil {
			errs = append(errs, err)
		}
	}
	reg.FinalizeSymbols()

	table, err := machine.NewTable(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	for _, rb := range b.rules {
		if err := rb.apply(reg, table); err != nil {
			errs = append(errs, err)
		}
	}

	if err := table.Complete(); err != nil {
		errs = append(errs, schema.ValidationErrors(err)...)
	}
	if len(errs) > 0 {
		return nil, &schema.AggregateError{Errors: errs}
	}

	return machine.Build(reg, table, machine.WithName(b.name))
}

// RuleBuilder provides a fluent API for configuring one table cell.
type RuleBuilder struct {
	from    string
	read    rune
	to      string
	write   rune
	action  domain.Action
	set     bool
	builder *Builder
}

// Go sets the target of the rule.
func (r *RuleBuilder) Go(to string, write rune, action domain.Action) *Builder {
	r.to, r.write, r.action, r.set = to, write, action, true
	return r.builder
}

// Accept writes the symbol and halts with an accepting verdict.
func (r *RuleBuilder) Accept(write rune) *Builder {
	return r.Go(r.from, write, domain.Accept)
}

// Reject writes the symbol and halts with a rejecting verdict.
func (r *RuleBuilder) Reject(write rune) *Builder {
	return r.Go(r.from, write, domain.Reject)
}

func (r *RuleBuilder) apply(reg *registry.Registry, table *machine.Table) error {
	if !r.set {
		return fmt.Errorf("rule (%s, %c): missing target", r.from, r.read)
	}
	state, ok := reg.StateIndex(r.from)
	if !ok {
		return fmt.Errorf("rule (%s, %c): %w: %q", r.from, r.read, domain.ErrUnknownState, r.from)
	}
	sym, ok := reg.SymbolIndex(r.read)
	if !ok {
		return fmt.Errorf("rule (%s, %c): %w: %q", r.from, r.read, domain.ErrUnknownSymbol, r.read)
	}
	if !r.action.Valid() {
		return fmt.Errorf("rule (%s, %c): %w", r.from, r.read, domain.ErrInvalidAction)
	}
	if err := table.Set(state, sym, r.to, r.write, r.action.Letter()); err != nil {
		return fmt.Errorf("rule (%s, %c): %w", r.from, r.read, err)
	}
	return nil
}
