package main

import (
	"fmt"

	"github.com/aretw0/turing/pkg/adapters/machinefile"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <machine.yaml>",
	Short: "Print the unary encoding of a machine",
	Long: `Assigns a unary code to every state, symbol and action, then prints the
transition table as one bitstring: cells in row-major order, fields joined
by 0 and cells joined by 00.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := machinefile.Load(args[0])
		if err != nil {
			return err
		}
		eng, _, closeLog, err := newEngine()
		if err != nil {
			return err
		}
		defer closeLog()

		bits := eng.Encode(def.Machine)
		if bitsOnly, _ := cmd.Flags().GetBool("bits-only"); bitsOnly {
			fmt.Fprintln(cmd.OutOrStdout(), bits)
			return nil
		}
		runner.NewPrinter(cmd.OutOrStdout()).Encoding(eng.Codes(def.Machine), bits)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().Bool("bits-only", false, "Print only the encoded bitstring")
}
