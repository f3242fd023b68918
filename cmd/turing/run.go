package main

import (
	"context"
	"os"

	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [machine.yaml]",
	Short: "Run a machine interactively or from a machine file",
	Long: `Without a machine file, prompts for states, symbols, the transition function,
the input and the head position. With --machine (or a positional file), reads
the machine from YAML or JSON and runs it on the start input, overridable with
--input and --head. --watch reruns the file every time it changes.

Exit status is 0 on a verdict, 2 on an execution fault and 1 on any other error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.RunOptions{Config: cfg}
		opts.MachinePath, _ = cmd.Flags().GetString("machine")
		if opts.MachinePath == "" && len(args) > 0 {
			opts.MachinePath = args[0]
		}
		if cmd.Flags().Changed("input") {
			input, _ := cmd.Flags().GetString("input")
			opts.Input = &input
		}
		opts.Head, _ = cmd.Flags().GetInt("head")
		opts.Watch, _ = cmd.Flags().GetBool("watch")

		in := cli.WatchInterrupts(context.Background())
		defer in.Stop()

		err := cli.Execute(in, opts)
		in.Report(cmd.ErrOrStderr(), err)
		if code := cli.ExitCode(err); code != 0 {
			if code == 1 {
				cmd.PrintErrln("Error:", err)
			}
			os.Exit(code)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("machine", "m", "", "Machine file (YAML or JSON)")
	runCmd.Flags().String("input", "", "Input sequence (overrides the file's start input)")
	runCmd.Flags().Int("head", 0, "Start index of the tape head, from 1 (overrides the file's start head)")
	runCmd.Flags().BoolP("watch", "w", false, "Rerun the machine file on every change")

	// 'run' is the default if no command is provided
	rootCmd.Args = runCmd.Args
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
	rootCmd.RunE = runCmd.RunE
}
