package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the interpreter version and build details",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		version := strings.TrimSpace(turing.Version)
		w := cmd.OutOrStdout()

		if short, _ := cmd.Flags().GetBool("short"); short {
			_, err := fmt.Fprintln(w, version)
			return err
		}
		_, err := fmt.Fprintf(w, "turing version %s\n  go:       %s\n  platform: %s/%s\n  tape:     %d cells max\n",
			version, runtime.Version(), runtime.GOOS, runtime.GOARCH, domain.DefaultMaxTape)
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version number")
}
