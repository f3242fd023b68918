// Package machinefile reads machine descriptions from YAML or JSON documents.
//
// Files are input only: nothing in this package writes to disk.
package machinefile

import (
	"fmt"
	"os"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/dsl"
	"github.com/aretw0/turing/pkg/encoding"
	"github.com/aretw0/turing/pkg/machine"
	"github.com/aretw0/turing/pkg/schema"
	"gopkg.in/yaml.v3"
)

// Definition is a parsed machine with its default run parameters.
type Definition struct {
	Machine *machine.Machine
	// Input is the default input string (may be empty).
	Input string
	// Head is the default head index, 0-based.
	Head int
}

// Start returns the 1-based start section, or nil when there is none.
func (d *Definition) Start() *schema.Start {
	if d.Input == "" && d.Head == 0 {
		return nil
	}
	return &schema.Start{Input: d.Input, Head: d.Head + 1}
}

// Load reads and parses a machine file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read machine file: %w", err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Parse decodes a YAML (or JSON, which is valid YAML) machine document.
func Parse(data []byte) (*Definition, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse machine document: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("empty machine document")
	}
	return FromMap(raw)
}

// FromMap builds a definition from generic data, e.g. decoded JSON or tool
// arguments.
func FromMap(raw map[string]any) (*Definition, error) {
	doc, err := schema.Decode(raw)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc)
}

// FromDocument builds the machine of doc. Problems are reported together in
// a *schema.AggregateError.
func FromDocument(doc *schema.Document) (*Definition, error) {
	var errs []error

	b := dsl.New(doc.Name).States(doc.States...)
	for _, s := range doc.Symbols {
		b.Symbols(firstRune(s))
	}
	seen := make(map[[2]string]int, len(doc.Transitions))
	for i, r := range doc.Transitions {
		key := [2]string{r.From, r.Read}
		if prev, dup := seen[key]; dup {
			errs = append(errs, fmt.Errorf("transitions[%d]: duplicate rule for (%s, %s), first defined at transitions[%d]", i, r.From, r.Read, prev))
			continue
		}
		seen[key] = i

		action, err := domain.ParseAction(firstRune(r.Action))
		if err != nil {
			errs = append(errs, fmt.Errorf("transitions[%d]: %w", i, err))
			continue
		}
		b.On(r.From, firstRune(r.Read)).Go(r.To, firstRune(r.Write), action)
	}

	m, err := b.Build()
	if err != nil {
		if verrs := schema.ValidationErrors(err); verrs != nil {
			errs = append(errs, verrs...)
		} else {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, &schema.AggregateError{Errors: errs}
	}

	def := &Definition{Machine: m}
	if doc.Start != nil {
		def.Input = doc.Start.Input
		def.Head = doc.Start.Head - 1
	}
	return def, nil
}

// ToDocument converts a machine back into its document form. The blank
// symbol is implicit and is left out of Symbols.
func ToDocument(m *machine.Machine, start *schema.Start) *schema.Document {
	doc := &schema.Document{
		Name:   m.Name(),
		States: m.States(),
		Start:  start,
	}
	for _, sym := range m.Symbols() {
		if sym == domain.Blank {
			continue
		}
		doc.Symbols = append(doc.Symbols, string(sym))
	}
	for _, e := range m.Cells() {
		read, _ := m.Symbol(e.Read)
		write, _ := m.Symbol(e.Transition.Write)
		doc.Transitions = append(doc.Transitions, schema.Rule{
			From:   m.StateName(e.From),
			Read:   string(read),
			To:     m.StateName(e.Transition.To),
			Write:  string(write),
			Action: string(e.Transition.Action.Letter()),
		})
	}
	return doc
}

// Rules names the decoded cells of m, e.g. for reporting a decoded bitstring.
func Rules(m *machine.Machine, cells []encoding.Cell) []schema.Rule {
	rules := make([]schema.Rule, 0, len(cells))
	for _, c := range cells {
		read, _ := m.Symbol(c.Read)
		write, _ := m.Symbol(c.Write)
		rules = append(rules, schema.Rule{
			From:   m.StateName(c.From),
			Read:   string(read),
			To:     m.StateName(c.To),
			Write:  string(write),
			Action: string(c.Action.Letter()),
		})
	}
	return rules
}

// Marshal writes a document as YAML.
func Marshal(doc *schema.Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
