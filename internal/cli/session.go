package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/adapters/machinefile"
	"github.com/aretw0/turing/pkg/runner"
)

// RunInteractive prompts for a machine and an input on Stdin, then runs it.
func RunInteractive(ctx context.Context, opts RunOptions) error {
	logger, closeLog, err := CreateLogger(opts.Config.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	tui.PrintBanner(opts.Stdout, turing.Version)

	session := runner.NewSession(
		runner.NewPrompter(opts.Stdin, opts.Stdout),
		newPrinter(opts.Stdout, opts.Config.UI),
		EngineOptions(opts.Config, logger)...,
	)
	_, err = session.Run(ctx)
	if err != nil && !isInterrupted(err) {
		logger.Debug("Interactive session ended", "err", err)
	}
	return err
}

// RunFile loads a machine file and runs it once without prompting.
func RunFile(ctx context.Context, opts RunOptions) error {
	logger, closeLog, err := CreateLogger(opts.Config.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	def, err := machinefile.Load(opts.MachinePath)
	if err != nil {
		return err
	}
	input, head, err := resolveStart(def, opts)
	if err != nil {
		return err
	}
	logger.Info("Machine loaded", "path", opts.MachinePath, "name", def.Machine.Name())

	session := runner.NewSession(
		runner.NewPrompter(opts.Stdin, opts.Stdout),
		newPrinter(opts.Stdout, opts.Config.UI),
		EngineOptions(opts.Config, logger)...,
	)
	session.Present(def.Machine)
	_, err = session.Execute(ctx, def.Machine, input, head)
	return err
}

// resolveStart picks the input and 0-based head, flags first.
func resolveStart(def *machinefile.Definition, opts RunOptions) (string, int, error) {
	input, head := def.Input, def.Head
	if opts.Input != nil {
		clean, err := runner.SanitizeInput(*opts.Input)
		if err != nil {
			return "", 0, fmt.Errorf("invalid --input: %w", err)
		}
		input, head = clean, 0
	}
	if opts.Head < 0 {
		return "", 0, fmt.Errorf("--head must be at least 1, got %d", opts.Head)
	}
	if opts.Head > 0 {
		head = opts.Head - 1
	}
	return input, head, nil
}
