package cmd

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "sol25",
	Short: "SOL25 interpreter",
	Long: `sol25 runs SOL25 programs from an already-parsed XML AST document.

SOL25 is a small Smalltalk-flavored object language; this tool executes
the runtime core against a validated AST, classifying any failure as one
of the interpreter's structured runtime/semantic error codes.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML run-config file")
}
