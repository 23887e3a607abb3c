// Package frame implements the call frame and frame stack: a call frame
// owns an optional `self`, immutable parameter bindings, and mutable
// local-variable bindings, and is discarded on every exit path -
// including error propagation.
//
// Blocks do not close over an enclosing frame's locals, only over `self`
// (via BlockValue.DefiningSelf), so there is no outer-scope chain to
// walk: a frame's Get looks only at its own parameters and locals.
package frame

import (
	"github.com/sol25-lang/sol25/internal/interp/errors"
	"github.com/sol25-lang/sol25/internal/runtime"
)

// Frame is one activation record.
type Frame struct {
	self    runtime.Value // nullable (nil) only at top level
	params  map[string]runtime.Value
	locals  map[string]runtime.Value
	isParam map[string]bool
}

// New constructs a Frame from an optional self (nil if none, which only
// happens at top level) plus parallel parameter name/value slices. A
// length mismatch is an internal error (code 99): arity is expected to
// have already been checked by the caller.
func New(self runtime.Value, paramNames []string, paramValues []runtime.Value) (*Frame, *errors.RuntimeError) {
	if len(paramNames) != len(paramValues) {
		return nil, errors.Internal("frame: %d parameter names but %d argument values", len(paramNames), len(paramValues))
	}

	f := &Frame{
		self:    self,
		params:  make(map[string]runtime.Value, len(paramNames)),
		locals:  make(map[string]runtime.Value),
		isParam: make(map[string]bool, len(paramNames)),
	}
	for i, name := range paramNames {
		f.params[name] = paramValues[i]
		f.isParam[name] = true
	}
	return f, nil
}

// Self returns the frame's self and whether one was provided.
func (f *Frame) Self() (runtime.Value, bool) {
	return f.self, f.self != nil
}

// Get reads a name from this frame only; there is no enclosing-scope
// fallback.
func (f *Frame) Get(name string) (runtime.Value, bool) {
	if v, ok := f.params[name]; ok {
		return v, true
	}
	if v, ok := f.locals[name]; ok {
		return v, true
	}
	return nil, false
}

// IsParameter reports whether name is one of this frame's parameters.
func (f *Frame) IsParameter(name string) bool {
	return f.isParam[name]
}

// Assign writes name in the local-variable map. Writing a parameter name
// is rejected with code 34; every other name creates or overwrites a
// local, and a local may be reassigned any number of times.
func (f *Frame) Assign(name string, v runtime.Value) *errors.RuntimeError {
	if f.isParam[name] {
		return errors.AssignToParameter(name)
	}
	f.locals[name] = v
	return nil
}
