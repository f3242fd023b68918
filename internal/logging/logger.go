package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

// New creates a configured application logger.
// It writes to Stderr (to separate from Stdout trace output).
// It standardizes common keys (e.g., "error" -> "err").
func New(level slog.Level) *slog.Logger {
	return slog.New(newTextHandler(os.Stderr, level))
}

// NewWithFile fans records out to Stderr (text) and to w (JSON).
// The JSON sink records at least Info level.
func NewWithFile(level slog.Level, w io.Writer) *slog.Logger {
	fileLevel := level
	if fileLevel > slog.LevelInfo {
		fileLevel = slog.LevelInfo
	}
	return slog.New(slogmulti.Fanout(
		newTextHandler(os.Stderr, level),
		slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       fileLevel,
			ReplaceAttr: standardizeKeys,
		}),
	))
}

// NewJSON writes JSON records to w only.
func NewJSON(level slog.Level, w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: standardizeKeys,
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
// "off" and "" return ok=false, meaning logging should be disabled.
func ParseLevel(s string) (level slog.Level, ok bool, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "off", "none":
		return 0, false, nil
	case "debug":
		return slog.LevelDebug, true, nil
	case "info":
		return slog.LevelInfo, true, nil
	case "warn", "warning":
		return slog.LevelWarn, true, nil
	case "error":
		return slog.LevelError, true, nil
	}
	return 0, false, fmt.Errorf("unknown log level %q", s)
}

func newTextHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: standardizeKeys,
	})
}

func standardizeKeys(groups []string, a slog.Attr) slog.Attr {
	// Standardize 'error' key to 'err'
	if a.Key == "error" {
		a.Key = "err"
	}
	return a
}
