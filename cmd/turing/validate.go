package main

import (
	"fmt"

	"github.com/aretw0/turing/pkg/adapters/machinefile"
	"github.com/aretw0/turing/pkg/schema"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <machine.yaml>...",
	Short: "Check machine files for consistency",
	Long: `Parses each file and reports every problem found: unknown or duplicate
states and symbols, invalid actions, duplicate rules and missing cells of the
transition function.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failed := 0
		for _, path := range args {
			if _, err := machinefile.Load(path); err != nil {
				failed++
				fmt.Fprintf(out, "%s: invalid\n", path)
				for _, problem := range problems(err) {
					fmt.Fprintf(out, "  - %s\n", problem)
				}
				continue
			}
			fmt.Fprintf(out, "%s: ok\n", path)
		}
		if failed > 0 {
			return fmt.Errorf("validation failed: %d of %d files", failed, len(args))
		}
		fmt.Fprintln(out, "All machines are valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// problems flattens an aggregate error into one message per problem.
func problems(err error) []string {
	errs := schema.ValidationErrors(err)
	if errs == nil {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return msgs
}
