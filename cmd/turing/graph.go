package main

import (
	"context"
	"fmt"

	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/pkg/adapters/machinefile"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <machine.yaml>",
	Short: "Export the state diagram of a machine",
	Long: `Outputs a Mermaid diagram (graph LR) with one node per state, one edge per
transition and accept/reject sinks for the halting actions. With --run, the
machine runs on its start input (or --input/--head) and the visited states are
highlighted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := machinefile.Load(args[0])
		if err != nil {
			return err
		}

		var overlay *graph.GraphOverlay
		if run, _ := cmd.Flags().GetBool("run"); run {
			input, head := def.Input, def.Head
			if cmd.Flags().Changed("input") {
				input, _ = cmd.Flags().GetString("input")
				head = 0
			}
			if cmd.Flags().Changed("head") {
				h, _ := cmd.Flags().GetInt("head")
				head = h - 1
			}

			eng, _, closeLog, err := newEngine()
			if err != nil {
				return err
			}
			defer closeLog()

			res, err := eng.Run(context.Background(), def.Machine, input, head)
			if err != nil && !domain.IsFault(err) {
				return err
			}
			overlay = graph.OverlayFromResult(res)
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(def.Machine, overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().Bool("run", false, "Run the machine and highlight the visited states")
	graphCmd.Flags().String("input", "", "Input sequence for --run")
	graphCmd.Flags().Int("head", 1, "Start index of the tape head for --run, from 1")
}
