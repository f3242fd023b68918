package graph_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/dsl"
	"github.com/aretw0/turing/pkg/machine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func endsWithB(t *testing.T) *machine.Machine {
	t.Helper()
	m, err := dsl.New("ends-with-b").
		States("q0", "q1").
		Symbols('a', 'b').
		On("q0", 'a').Go("q0", 'a', domain.Right).
		On("q0", 'b').Go("q1", 'b', domain.Right).
		On("q0", '#').Reject('#').
		On("q1", 'a').Go("q0", 'a', domain.Right).
		On("q1", 'b').Go("q1", 'b', domain.Right).
		On("q1", '#').Accept('#').
		Build()
	require.NoError(t, err)
	return m
}

func TestGenerateMermaid(t *testing.T) {
	out := graph.GenerateMermaid(endsWithB(t), nil)

	for _, want := range []string{
		"graph LR\n",
		`s0(("q0"))`,
		`s1["q1"]`,
		`ACCEPT{{"accept"}}`,
		`REJECT{{"reject"}}`,
		`s0 -- "a/a,R" --> s0`,
		`s0 -- "b/b,R" --> s1`,
		`s0 -- "#35;/#35;,N" --> REJECT`,
		`s1 -- "#35;/#35;,Y" --> ACCEPT`,
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "classDef")
}

func TestGenerateMermaid_MergesEdges(t *testing.T) {
	m, err := dsl.New("").
		States("A").
		Symbols('0', '1').
		On("A", '0').Go("A", '1', domain.Right).
		On("A", '1').Go("A", '0', domain.Right).
		On("A", '#').Accept('#').
		Build()
	require.NoError(t, err)

	out := graph.GenerateMermaid(m, nil)
	assert.Contains(t, out, `s0 -- "0/1,R<br/>1/0,R" --> s0`)
	assert.Equal(t, 1, strings.Count(out, "--> s0"))
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	m := endsWithB(t)
	res, err := runtime.NewEngine().Run(context.Background(), m, "ab", 0)
	require.NoError(t, err)

	out := graph.GenerateMermaid(m, graph.OverlayFromResult(res))
	assert.Contains(t, out, "class s0 visited;")
	assert.Contains(t, out, "class s1 visited;")
	assert.Contains(t, out, "class s1 current;")
	assert.Contains(t, out, "class ACCEPT accepted;")
	assert.Equal(t, 1, strings.Count(out, "class s0 visited;"))
}
