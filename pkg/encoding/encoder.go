package encoding

import (
	"strings"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/machine"
)

const (
	// FieldSeparator separates the five fields of one cell.
	FieldSeparator = "0"
	// CellSeparator separates consecutive cells.
	CellSeparator = "00"
)

// Unary returns the code for index i: i+1 copies of "1".
func Unary(i int) string {
	if i < 0 {
		return ""
	}
	return strings.Repeat("1", i+1)
}

// Code pairs an entity label with its unary code.
type Code struct {
	Label string `json:"label"`
	Code  string `json:"code"`
}

// Codes is the code assignment of one machine.
type Codes struct {
	States  []Code `json:"states"`
	Symbols []Code `json:"symbols"`
	Actions []Code `json:"actions"`
}

// Assign computes the codes of every state, symbol and action of m.
func Assign(m *machine.Machine) Codes {
	var c Codes
	for i, name := range m.States() {
		c.States = append(c.States, Code{Label: name, Code: Unary(i)})
	}
	for i, sym := range m.Symbols() {
		c.Symbols = append(c.Symbols, Code{Label: string(sym), Code: Unary(i)})
	}
	for _, a := range domain.Actions() {
		c.Actions = append(c.Actions, Code{Label: string(a.Letter()), Code: ActionCode(a)})
	}
	return c
}

// ActionCode returns the fixed code of an action.
func ActionCode(a domain.Action) string {
	return Unary(a.Rank())
}

// Encode serializes the transition table of m into one bitstring.
func Encode(m *machine.Machine) string {
	var sb strings.Builder
	for i, e := range m.Cells() {
		if i > 0 {
			sb.WriteString(CellSeparator)
		}
		writeCell(&sb, e)
	}
	return sb.String()
}

func writeCell(sb *strings.Builder, e machine.Entry) {
	sb.WriteString(Unary(int(e.From)))
	sb.WriteString(FieldSeparator)
	sb.WriteString(Unary(int(e.Read)))
	sb.WriteString(FieldSeparator)
	sb.WriteString(Unary(int(e.Transition.To)))
	sb.WriteString(FieldSeparator)
	sb.WriteString(Unary(int(e.Transition.Write)))
	sb.WriteString(FieldSeparator)
	sb.WriteString(ActionCode(e.Transition.Action))
}
