package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/pkg/domain"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	MachinePath string
	Input       *string // nil: use the machine's start input
	Head        int     // 1-based; 0: use the machine's start head
	Watch       bool
	Config      config.Config

	Stdin  io.Reader
	Stdout io.Writer
}

func (o *RunOptions) defaults() {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
}

// Execute handles the 'run' command logic, dispatching to the interactive,
// file or watch mode.
func Execute(ctx context.Context, opts RunOptions) error {
	opts.defaults()

	if opts.Watch {
		if opts.MachinePath == "" {
			return errors.New("--watch requires --machine")
		}
		return RunWatch(ctx, opts)
	}
	if opts.MachinePath != "" {
		return RunFile(ctx, opts)
	}
	return RunInteractive(ctx, opts)
}

// ExitCode maps the result of Execute to a process exit code.
// Interruptions exit 0, faults exit 2 and every other error exits 1.
func ExitCode(err error) int {
	switch {
	case err == nil, isInterrupted(err):
		return 0
	case domain.IsFault(err):
		return 2
	}
	return 1
}
