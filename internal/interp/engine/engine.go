// Package engine implements the evaluator and the dispatcher. The two
// live in one package because they are mutually recursive: expression
// evaluation recursively calls the dispatcher, and the dispatcher calls
// back into the evaluator to execute block bodies.
package engine

import (
	"github.com/sol25-lang/sol25/internal/classes"
	"github.com/sol25-lang/sol25/internal/frame"
	"github.com/sol25-lang/sol25/internal/interp/errors"
	"github.com/sol25-lang/sol25/internal/runtime"
	"github.com/sol25-lang/sol25/internal/trace"
)

// IO is the pair of abstract byte-stream capabilities the runtime needs:
// read-a-line and write-a-string. The driver supplies a concrete
// implementation over a real io.Reader/io.Writer; tests supply an
// in-memory one.
type IO interface {
	WriteString(s string) error
	ReadLine() (line string, ok bool)
}

// Interp ties together the class registry, the frame stack, and the I/O
// capabilities, and implements both expression evaluation and message
// dispatch over them. It holds no other mutable state beyond the frame
// stack itself.
type Interp struct {
	Registry *classes.Registry
	Frames   *frame.Stack
	IO       IO

	// MaxDepth bounds frame-stack growth: exceeding it turns unbounded Go
	// recursion from a non-terminating SOL25 program into a classified
	// code-99 error instead of a process crash. Zero means unbounded.
	MaxDepth int

	// Trace, when non-nil, records one Event per dispatch decision for
	// the `--trace` CLI flag. Nil disables tracing entirely at zero cost
	// beyond a nil check.
	Trace *trace.Recorder
}

// New constructs an Interp.
func New(registry *classes.Registry, io IO, maxDepth int) *Interp {
	return &Interp{Registry: registry, Frames: frame.NewStack(), IO: io, MaxDepth: maxDepth}
}

// Send implements runtime.Engine: a plain (non-super) message send with
// already-evaluated arguments, for native routines that need to invoke a
// Block argument.
func (in *Interp) Send(receiver runtime.Value, selector string, args []runtime.Value) (runtime.Value, *errors.RuntimeError) {
	return in.dispatch(target{value: receiver}, selector, args, false)
}

// Write implements runtime.Engine.
func (in *Interp) Write(s string) error {
	return in.IO.WriteString(s)
}

// ReadLine implements runtime.Engine.
func (in *Interp) ReadLine() (string, bool) {
	return in.IO.ReadLine()
}

// target is the receiver sum type - a Value or a bare class-name token -
// materialized only at the boundary between evaluating a send's receiver
// expression and dispatching the message.
type target struct {
	isClass   bool
	className string
	value     runtime.Value
}
