package tui

import (
	"io"
	"regexp"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// NewRenderer returns a function that renders markdown using glamour.
// It falls back to the raw text if the renderer cannot be created.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

var headCell = regexp.MustCompile(`\(.\)`)

// HighlightHead returns a function that colours the bracketed head cell of
// a rendered tape for the terminal behind w. Without colour support the
// tape is returned unchanged.
func HighlightHead(w io.Writer) func(string) string {
	out := termenv.NewOutput(w)
	if out.Profile == termenv.Ascii {
		return func(tape string) string { return tape }
	}
	color := out.Color("#fbbf24")
	return func(tape string) string {
		return headCell.ReplaceAllStringFunc(tape, func(cell string) string {
			return out.String(cell).Foreground(color).Bold().String()
		})
	}
}
