package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/machine"
)

// Sink node IDs for halting transitions.
const (
	AcceptNode = "ACCEPT"
	RejectNode = "REJECT"
)

// GraphOverlay contains run data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []string
	CurrentState  string
	Outcome       domain.Outcome
}

// OverlayFromResult builds an overlay from a finished run.
func OverlayFromResult(res *domain.Result) *GraphOverlay {
	o := &GraphOverlay{Outcome: res.Outcome()}
	for _, c := range res.Trace {
		o.VisitedStates = append(o.VisitedStates, c.State)
	}
	if n := len(res.Trace); n > 0 {
		o.CurrentState = res.Trace[n-1].State
	}
	return o
}

// GenerateMermaid produces a Mermaid state diagram of m.
// It applies semantic styling:
// - Initial state: ((Circle))
// - Other states: [Rectangle]
// - Halting sinks: {{Hexagon}}
// Edges between the same pair of nodes are merged, one "read/write,move"
// label per line. Overlay styles are applied if provided.
func GenerateMermaid(m *machine.Machine, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	ids := make(map[string]string, m.NumStates())
	for i, name := range m.States() {
		id := fmt.Sprintf("s%d", i)
		ids[name] = id
		opener, closer := "[", "]"
		if i == 0 {
			opener, closer = "((", "))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", id, opener, escape(name), closer)
	}

	type edge struct{ from, to string }
	var order []edge
	labels := make(map[edge][]string)
	halts := make(map[string]bool)

	for _, e := range m.Cells() {
		read, _ := m.Symbol(e.Read)
		write, _ := m.Symbol(e.Transition.Write)
		tr := e.Transition

		to := ids[m.StateName(tr.To)]
		switch tr.Action {
		case domain.Accept:
			to = AcceptNode
			halts[AcceptNode] = true
		case domain.Reject:
			to = RejectNode
			halts[RejectNode] = true
		}

		k := edge{from: ids[m.StateName(e.From)], to: to}
		if _, seen := labels[k]; !seen {
			order = append(order, k)
		}
		labels[k] = append(labels[k], fmt.Sprintf("%s/%s,%c", escape(string(read)), escape(string(write)), tr.Action.Letter()))
	}

	for _, sink := range []string{AcceptNode, RejectNode} {
		if halts[sink] {
			fmt.Fprintf(&sb, "    %s{{\"%s\"}}\n", sink, strings.ToLower(sink))
		}
	}
	for _, k := range order {
		fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", k.from, strings.Join(labels[k], "<br/>"), k.to)
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString("    classDef accepted fill:#c8e6c9,stroke:#2e7d32,stroke-width:4px,color:#000;\n")
		sb.WriteString("    classDef rejected fill:#ffcdd2,stroke:#c62828,stroke-width:4px,color:#000;\n")

		visited := make(map[string]bool)
		for _, name := range overlay.VisitedStates {
			id, ok := ids[name]
			if !ok || visited[id] {
				continue
			}
			visited[id] = true
			fmt.Fprintf(&sb, "    class %s visited;\n", id)
		}
		if id, ok := ids[overlay.CurrentState]; ok {
			fmt.Fprintf(&sb, "    class %s current;\n", id)
		}
		switch overlay.Outcome {
		case domain.OutcomeAccepted:
			if halts[AcceptNode] {
				fmt.Fprintf(&sb, "    class %s accepted;\n", AcceptNode)
			}
		case domain.OutcomeRejected:
			if halts[RejectNode] {
				fmt.Fprintf(&sb, "    class %s rejected;\n", RejectNode)
			}
		}
	}

	return sb.String()
}

// escape makes a label safe inside double quotes. Mermaid reads '#' as the
// start of an entity code.
func escape(s string) string {
	s = strings.ReplaceAll(s, "#", "#35;")
	return strings.ReplaceAll(s, "\"", "#quot;")
}
