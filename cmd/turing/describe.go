package main

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/adapters/machinefile"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <machine.yaml>",
	Short: "Print the states, symbols and transition function of a machine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := machinefile.Load(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		format, _ := cmd.Flags().GetString("format")

		switch format {
		case "text":
			runner.NewPrinter(out).Describe(def.Machine)
		case "markdown":
			md := runner.Markdown(def.Machine)
			if cfg.UI.Pretty && cli.IsTerminal(out) {
				if rendered, err := tui.NewRenderer()(md); err == nil {
					md = rendered
				}
			}
			fmt.Fprint(out, md)
		case "yaml":
			data, err := machinefile.Marshal(machinefile.ToDocument(def.Machine, def.Start()))
			if err != nil {
				return err
			}
			fmt.Fprint(out, string(data))
		case "json":
			data, err := json.MarshalIndent(machinefile.ToDocument(def.Machine, def.Start()), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
		default:
			return fmt.Errorf("unknown format %q (text, markdown, yaml, json)", format)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().StringP("format", "f", "text", "Output format: text, markdown, yaml or json")
}
