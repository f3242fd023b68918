package main

import (
	"fmt"
	"os"

	"github.com/aretw0/turing/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	v   = config.New()
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "turing",
	Short: "Turing is an interactive single-tape Turing machine interpreter",
	Long: `Turing reads a deterministic Turing machine (states, symbols and a total
transition function), prints its unary encoding and traces its execution on
an input tape until it accepts, rejects or faults.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(v, path)
		if err != nil {
			return err
		}
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			loaded.UI.Color = false
		}
		cfg = loaded
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default: $XDG_CONFIG_HOME/turing/turing.yaml)")
	flags.Int("max-tape", 0, "Tape capacity in cells")
	flags.Int("max-steps", 0, "Abort a run after this many steps (0: unlimited)")
	flags.String("log-level", "", "Log level: debug, info, warn, error or off")
	flags.String("log-file", "", "Append JSON logs to this file")
	flags.Bool("no-color", false, "Disable terminal colours")
	flags.Bool("pretty", false, "Render the machine description as Markdown")

	bind(v, config.KeyMaxTape, flags.Lookup("max-tape"))
	bind(v, config.KeyMaxSteps, flags.Lookup("max-steps"))
	bind(v, config.KeyLogLevel, flags.Lookup("log-level"))
	bind(v, config.KeyLogFile, flags.Lookup("log-file"))
	bind(v, config.KeyPretty, flags.Lookup("pretty"))
}

// bind wires a flag to a config key. Unset flags keep the file, env or
// default value.
func bind(v *viper.Viper, key string, f *pflag.Flag) {
	if err := v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}
