package main

import (
	"fmt"

	"github.com/aretw0/turing/pkg/adapters/machinefile"
	"github.com/aretw0/turing/pkg/encoding"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <machine.yaml> <bits>",
	Short: "Decode a bitstring against a machine's states and symbols",
	Long: `Splits an encoded transition table into cells and names each field using
the machine's registries. The bitstring must have one cell per (state, symbol)
pair, in row-major order.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := machinefile.Load(args[0])
		if err != nil {
			return err
		}
		cells, err := encoding.Decode(args[1], def.Machine)
		if err != nil {
			return err
		}
		for _, r := range machinefile.Rules(def.Machine, cells) {
			fmt.Fprintf(cmd.OutOrStdout(), "(%s, %s)|---(%s, %s, %s)\n", r.From, r.Read, r.To, r.Write, r.Action)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
