package machinefile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/encoding"
	"github.com/aretw0/turing/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	def, err := Load(filepath.Join("testdata", "ends-with-b.yaml"))
	require.NoError(t, err)

	m := def.Machine
	assert.Equal(t, "ends-with-b", m.Name())
	assert.Equal(t, []string{"q0", "q1"}, m.States())
	assert.Equal(t, []rune{'a', 'b', domain.Blank}, m.Symbols())
	assert.Equal(t, "aab", def.Input)
	assert.Equal(t, 0, def.Head)

	res, err := runtime.NewEngine().Run(context.Background(), m, def.Input, def.Head)
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictAccepted, res.Verdict)
}

func TestParse_WeakTypes(t *testing.T) {
	def, err := Load(filepath.Join("testdata", "binary.yml"))
	require.NoError(t, err)

	assert.Equal(t, []rune{'0', '1', domain.Blank}, def.Machine.Symbols())
	assert.Equal(t, "", def.Input)
	assert.Equal(t, domain.Accept, def.Machine.Transition(0, 1).Action)
}

func TestParse_JSON(t *testing.T) {
	data := `{"states": ["q0"], "symbols": ["a"], "transitions": [` +
		`{"from": "q0", "read": "a", "to": "q0", "write": "a", "action": "R"},` +
		`{"from": "q0", "read": "#", "to": "q0", "write": "#", "action": "Y"}]}`

	def, err := Parse([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, 1, def.Machine.NumStates())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
		contain string
	}{
		{
			name:    "Empty",
			data:    "",
			contain: "empty machine document",
		},
		{
			name:    "Missing States",
			data:    "symbols: [a]\ntransitions: [{from: q0, read: a, to: q0, write: a, action: R}]",
			contain: "Document.States",
		},
		{
			name:    "Unknown Key",
			data:    "states: [q0]\nsymbols: [a]\nalphabet: [b]\ntransitions: [{from: q0, read: a, to: q0, write: a, action: R}]",
			contain: "alphabet",
		},
		{
			name: "Bad Action",
			data: `states: [q0]
symbols: [a]
transitions:
  - { from: q0, read: a, to: q0, write: a, action: X }
  - { from: q0, read: "#", to: q0, write: "#", action: Y }`,
			wantErr: domain.ErrInvalidAction,
		},
		{
			name: "Incomplete",
			data: `states: [q0]
symbols: [a]
transitions:
  - { from: q0, read: a, to: q0, write: a, action: R }`,
			wantErr: domain.ErrIncompleteTable,
		},
		{
			name: "Duplicate Rule",
			data: `states: [q0]
symbols: [a]
transitions:
  - { from: q0, read: a, to: q0, write: a, action: R }
  - { from: q0, read: a, to: q0, write: a, action: L }
  - { from: q0, read: "#", to: q0, write: "#", action: Y }`,
			contain: "duplicate rule for (q0, a)",
		},
		{
			name: "Unknown Target",
			data: `states: [q0]
symbols: [a]
transitions:
  - { from: q0, read: a, to: q1, write: a, action: R }
  - { from: q0, read: "#", to: q0, write: "#", action: Y }`,
			wantErr: domain.ErrUnknownState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.contain != "" {
				assert.Contains(t, err.Error(), tt.contain)
			}
		})
	}
}

func TestToDocument_RoundTrip(t *testing.T) {
	def, err := Load(filepath.Join("testdata", "ends-with-b.yaml"))
	require.NoError(t, err)

	doc := ToDocument(def.Machine, &schema.Start{Input: def.Input, Head: def.Head + 1})
	assert.Equal(t, []string{"a", "b"}, doc.Symbols)
	assert.Len(t, doc.Transitions, 6)

	data, err := Marshal(doc)
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, encoding.Encode(def.Machine), encoding.Encode(again.Machine))
	assert.Equal(t, def.Input, again.Input)
}

func TestLoadDir(t *testing.T) {
	c, err := LoadDir("testdata")
	require.NoError(t, err)
	assert.Equal(t, []string{"binary", "ends-with-b"}, c.List())

	def, err := c.Get("binary")
	require.NoError(t, err)
	assert.Equal(t, "has-one", def.Machine.Name())

	_, err = c.Get("missing")
	assert.Error(t, err)
}

func TestRules(t *testing.T) {
	def, err := Load(filepath.Join("testdata", "ends-with-b.yaml"))
	require.NoError(t, err)

	cells, err := encoding.Decode(encoding.Encode(def.Machine), def.Machine)
	require.NoError(t, err)

	rules := Rules(def.Machine, cells)
	assert.Equal(t, ToDocument(def.Machine, nil).Transitions, rules)
}

func TestDefinition_Start(t *testing.T) {
	assert.Nil(t, (&Definition{}).Start())
	assert.Equal(t, &schema.Start{Input: "aab", Head: 1}, (&Definition{Input: "aab"}).Start())
	assert.Equal(t, &schema.Start{Input: "", Head: 2}, (&Definition{Head: 1}).Start())
}
