package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/runner"
	"golang.org/x/term"
)

// EngineOptions maps the configuration to engine options.
func EngineOptions(cfg config.Config, logger *slog.Logger, hooks ...domain.LifecycleHooks) []turing.Option {
	opts := []turing.Option{
		turing.WithLogger(logger),
		turing.WithMaxTape(cfg.Engine.MaxTape),
		turing.WithMaxSteps(cfg.Engine.MaxSteps),
	}
	for _, h := range hooks {
		opts = append(opts, turing.WithLifecycleHooks(h))
	}
	return opts
}

// CreateLogger configures the application logger. Console logs go to
// Stderr (to separate from Stdout trace output); an optional log file
// receives JSON records. The returned func closes the file.
func CreateLogger(cfg config.LogConfig) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }

	level, enabled, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, noop, err
	}

	if cfg.File == "" {
		if !enabled {
			return logging.NewNop(), noop, nil
		}
		return logging.New(level), noop, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, noop, fmt.Errorf("failed to open log file: %w", err)
	}
	if !enabled {
		return logging.NewJSON(slog.LevelInfo, f), f.Close, nil
	}
	return logging.NewWithFile(level, f), f.Close, nil
}

// newPrinter decorates output only when w is a terminal.
func newPrinter(w io.Writer, ui config.UIConfig) *runner.Printer {
	var opts []runner.PrinterOption
	if IsTerminal(w) {
		if ui.Color {
			opts = append(opts, runner.WithHighlighter(tui.HighlightHead(w)))
		}
		if ui.Pretty {
			opts = append(opts, runner.WithRenderer(tui.NewRenderer()))
		}
	}
	return runner.NewPrinter(w, opts...)
}

// IsTerminal reports whether v is a file attached to a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
