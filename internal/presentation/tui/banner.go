package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the welcome banner and the machine formula to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	// Subtle gradient (Indigo/Violet)
	lines := []struct{ text, color string }{
		{"  _____            _             ", "#818cf8"},
		{" |_   _|   _ _ __ (_)_ __   __ _ ", "#a78bfa"},
		{"   | || | | | '__|| | '_ \\ / _` |", "#c084fc"},
		{"   | || |_| | |   | | | | | (_| |", "#e879f9"},
		{"   |_| \\__,_|_|   |_|_| |_|\\__, |", "#f472b6"},
		{"                           |___/ ", "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	if version != "" {
		fmt.Fprintln(w, out.String("  v"+version).Faint())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Turing Machine Formula (M):")
	fmt.Fprintln(w, "    M = (K, Σ, Γ, S, δ)")
	fmt.Fprintln(w, "K: a finite set of states")
	fmt.Fprintln(w, "Σ: an alphabet (input symbols)")
	fmt.Fprintln(w, "Γ: an alphabet (tape symbols, including the blank #)")
	fmt.Fprintln(w, "S: the initial state (the first state entered)")
	fmt.Fprintln(w, "δ: the transition function")
	fmt.Fprintln(w)
}
