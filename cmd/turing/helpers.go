package main

import (
	"log/slog"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/pkg/domain"
)

// newEngine builds an engine from the loaded configuration. The returned
// func closes the log file, if any.
func newEngine(hooks ...domain.LifecycleHooks) (*turing.Engine, *slog.Logger, func() error, error) {
	logger, closeLog, err := cli.CreateLogger(cfg.Log)
	if err != nil {
		return nil, nil, closeLog, err
	}
	return turing.New(cli.EngineOptions(cfg, logger, hooks...)...), logger, closeLog, nil
}

// boundSteps caps the engine step limit at server.max_steps for servers,
// whose machines come from untrusted requests.
func boundSteps() {
	if cfg.Engine.MaxSteps == 0 || cfg.Engine.MaxSteps > cfg.Server.MaxSteps {
		cfg.Engine.MaxSteps = cfg.Server.MaxSteps
	}
}
