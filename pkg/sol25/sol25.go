// Package sol25 is the embeddable entry point into the interpreter core:
// a host that already has a parsed, validated AST and a pair of byte
// streams can run a SOL25 program without going through the CLI.
package sol25

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/sol25-lang/sol25/internal/ast"
	"github.com/sol25-lang/sol25/internal/interp/driver"
	"github.com/sol25-lang/sol25/internal/interp/errors"
	"github.com/sol25-lang/sol25/internal/trace"
)

// Error is the classified runtime/semantic error type Run returns on
// failure. Callers that need the process exit code should type-assert:
// `if se, ok := err.(*sol25.Error); ok { os.Exit(se.ExitCode()) }`.
type Error = errors.RuntimeError

// RunOptions configures one Run invocation.
type RunOptions struct {
	// MaxCallDepth bounds Frame Stack growth; zero means unbounded.
	MaxCallDepth int

	// Trace, when non-nil, receives one JSON line per dispatch decision.
	Trace io.Writer

	// TraceEventLimit caps the number of events written to Trace; zero
	// means unbounded. Ignored when Trace is nil.
	TraceEventLimit int
}

// Run executes programNode's Main.run against in/out. ctx carries no
// cancellation into the interpreter core - there is no cooperative
// suspension to cancel - it is accepted only so embedders can thread
// request scope/tracing context the way the rest of their host does.
func Run(ctx context.Context, programNode ast.Node, in io.Reader, out io.Writer, opts RunOptions) error {
	_ = ctx

	var tr *trace.Recorder
	if opts.Trace != nil {
		tr = trace.NewRecorder(opts.Trace, opts.TraceEventLimit)
	}

	err := driver.Run(programNode, newStreamIO(in, out), driver.Options{
		MaxCallDepth: opts.MaxCallDepth,
		Trace:        tr,
	})
	if err != nil {
		return err
	}
	return nil
}

// streamIO adapts a plain io.Reader/io.Writer pair to the engine.IO
// capability pair: read-a-line, write-a-string.
type streamIO struct {
	r *bufio.Reader
	w io.Writer
}

func newStreamIO(r io.Reader, w io.Writer) *streamIO {
	return &streamIO{r: bufio.NewReader(r), w: w}
}

func (s *streamIO) WriteString(str string) error {
	_, err := io.WriteString(s.w, str)
	return err
}

func (s *streamIO) ReadLine() (string, bool) {
	line, err := s.r.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}
