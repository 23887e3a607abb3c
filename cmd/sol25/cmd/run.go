package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sol25-lang/sol25/internal/config"
	"github.com/sol25-lang/sol25/internal/interp/errors"
	"github.com/sol25-lang/sol25/internal/xmlast"
	"github.com/sol25-lang/sol25/pkg/sol25"
)

var traceFlag bool

var runCmd = &cobra.Command{
	Use:   "run <file.xml>",
	Short: "Run a SOL25 program from an XML AST document",
	Args:  cobra.ExactArgs(1),
	RunE:  runProgram,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&traceFlag, "trace", false, "emit a JSON dispatch trace to stderr")
}

func runProgram(_ *cobra.Command, args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	programNode, err := xmlast.Load(f)
	if err != nil {
		return fmt.Errorf("loading AST from %s: %w", path, err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if traceFlag {
		cfg.TraceEnabled = true
	}

	var traceWriter io.Writer
	if cfg.TraceEnabled {
		traceWriter = os.Stderr
	}

	runErr := sol25.Run(context.Background(), programNode, os.Stdin, os.Stdout, sol25.RunOptions{
		MaxCallDepth:    cfg.MaxCallDepth,
		Trace:           traceWriter,
		TraceEventLimit: cfg.TraceEventLimit,
	})
	if runErr == nil {
		return nil
	}

	code := 1
	if re, ok := runErr.(*sol25.Error); ok {
		code = re.ExitCode()
	}
	printDiagnostic(runErr)
	os.Exit(code)
	return nil
}

// printDiagnostic writes one formatted line to stderr, colorized only
// when stderr is a terminal - colorization never touches program stdout.
func printDiagnostic(err error) {
	useColor := isatty.IsTerminal(os.Stderr.Fd())
	msg := err.Error()
	if re, ok := err.(*errors.RuntimeError); ok {
		msg = fmt.Sprintf("%s: %s", re.Code, re.Message)
	}

	if useColor {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, msg)
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}
