package runtime

import (
	"github.com/aretw0/turing/pkg/domain"
)

// Tape is the left-bounded, right-growable storage of one run.
// Index 0 is the first written cell; the sentinel sits at -1 and only
// appears when the tape is rendered.
type Tape struct {
	cells []rune
}

// NewTape writes input onto a fresh tape. An empty input yields an empty
// tape holding only the sentinel.
func NewTape(input string) *Tape {
	return &Tape{cells: []rune(input)}
}

// Len returns the number of written cells.
func (t *Tape) Len() int {
	return len(t.cells)
}

// Read returns the symbol at i. Callers keep i within [0, Len()).
func (t *Tape) Read(i int) rune {
	return t.cells[i]
}

// Write overwrites the symbol at i.
func (t *Tape) Write(i int, r rune) {
	t.cells[i] = r
}

// Grow appends exactly one blank cell.
func (t *Tape) Grow() {
	t.cells = append(t.cells, domain.Blank)
}

// Render draws the tape with the cell at head bracketed.
func (t *Tape) Render(head int) string {
	return domain.RenderTape(t.cells, head)
}

// String returns the written cells without sentinel or brackets.
func (t *Tape) String() string {
	return string(t.cells)
}
