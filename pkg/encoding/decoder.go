package encoding

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/machine"
)

// ErrMalformed is returned for bitstrings that do not follow the cell layout.
var ErrMalformed = errors.New("malformed encoding")

// Cell is one decoded table cell. Fields hold zero-based indices, i.e. the
// unary length minus one.
type Cell struct {
	From   domain.StateID  `json:"from"`
	Read   domain.SymbolID `json:"read"`
	To     domain.StateID  `json:"to"`
	Write  domain.SymbolID `json:"write"`
	Action domain.Action   `json:"action"`
}

// Split decodes the delimiter structure of an encoded machine.
func Split(bits string) ([]Cell, error) {
	if bits == "" {
		return nil, fmt.Errorf("%w: empty input", ErrMalformed)
	}
	if strings.Trim(bits, "01") != "" {
		return nil, fmt.Errorf("%w: only 0 and 1 are allowed", ErrMalformed)
	}

	parts := strings.Split(bits, CellSeparator)
	cells := make([]Cell, 0, len(parts))
	for i, part := range parts {
		c, err := splitCell(part)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		cells = append(cells, c)
	}
	return cells, nil
}

func splitCell(part string) (Cell, error) {
	fields := strings.Split(part, FieldSeparator)
	if len(fields) != 5 {
		return Cell{}, fmt.Errorf("%w: expected 5 fields, got %d", ErrMalformed, len(fields))
	}
	idx := make([]int, 5)
	for i, f := range fields {
		if f == "" {
			return Cell{}, fmt.Errorf("%w: field %d is empty", ErrMalformed, i)
		}
		idx[i] = len(f) - 1
	}
	action, err := domain.ActionFromRank(idx[4])
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return Cell{
		From:   domain.StateID(idx[0]),
		Read:   domain.SymbolID(idx[1]),
		To:     domain.StateID(idx[2]),
		Write:  domain.SymbolID(idx[3]),
		Action: action,
	}, nil
}

// Decode splits bits and checks that it describes a table with exactly the
// shape of m: states x symbols cells in row-major order, all references in
// range.
func Decode(bits string, m *machine.Machine) ([]Cell, error) {
	cells, err := Split(bits)
	if err != nil {
		return nil, err
	}
	want := m.NumStates() * m.NumSymbols()
	if len(cells) != want {
		return nil, fmt.Errorf("%w: expected %d cells, got %d", ErrMalformed, want, len(cells))
	}
	for i, c := range cells {
		s, y := i/m.NumSymbols(), i%m.NumSymbols()
		if int(c.From) != s || int(c.Read) != y {
			return nil, fmt.Errorf("%w: cell %d out of row-major order", ErrMalformed, i)
		}
		if int(c.To) >= m.NumStates() || int(c.Write) >= m.NumSymbols() {
			return nil, fmt.Errorf("%w: cell %d references an unknown state or symbol", ErrMalformed, i)
		}
	}
	return cells, nil
}
