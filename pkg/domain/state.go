package domain

import (
	"fmt"
	"strings"
)

// Configuration is the snapshot printed before every step.
type Configuration struct {
	Step  int    `json:"step"`
	State string `json:"state"`
	// Tape is the rendered tape: sentinel, then the written cells with the
	// cell under the head wrapped in parentheses.
	Tape string `json:"tape"`
	// Head is the zero-based head index the tape was rendered with.
	Head int `json:"head"`
}

// String renders the configuration as one trace line, e.g. "q0  <a(b)#".
func (c Configuration) String() string {
	return c.State + "  " + c.Tape
}

// RenderTape draws cells with the cell at head bracketed.
// A head past the written end is drawn as a bracketed blank.
func RenderTape(cells []rune, head int) string {
	var sb strings.Builder
	sb.Grow(len(cells) + 3)
	sb.WriteRune(Sentinel)
	for i, r := range cells {
		if i == head {
			fmt.Fprintf(&sb, "(%c)", r)
			continue
		}
		sb.WriteRune(r)
	}
	if head >= len(cells) {
		fmt.Fprintf(&sb, "(%c)", Blank)
	}
	return sb.String()
}
