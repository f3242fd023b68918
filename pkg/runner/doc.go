/*
Package runner implements the interactive protocol of the turing program.

It is the bridge between the engine and a terminal: a Prompter collects a
machine description and an input tape, a Printer writes the description, the
encoding and the execution trace, and a Session ties both to an engine.

# Key Components

  - Prompter: reads whitespace separated tokens and re-prompts on invalid input.
  - Printer: writes every report of a session, optionally through a renderer.
  - Session: describe, encode and run, in that order.

# Usage

	s := runner.NewSession(
		runner.NewPrompter(os.Stdin, os.Stdout),
		runner.NewPrinter(os.Stdout),
		turing.WithMaxTape(1000),
	)

	if _, err := s.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
