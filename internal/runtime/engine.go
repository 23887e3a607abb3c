package runtime

import "github.com/sol25-lang/sol25/internal/interp/errors"

// Engine is the capability a native selector routine needs to call back
// into message dispatch or the I/O streams, without the runtime package
// importing the dispatcher (which itself imports runtime) - this
// interface inversion avoids a circular import between runtime and its
// dispatch layer.
//
// Control-flow natives (and:, or:, ifTrue:ifFalse:, timesRepeat:) need
// Send to deliver `value`/`value:` to a Block argument; String#print needs
// Write; String class#read needs ReadLine.
type Engine interface {
	// Send evaluates a full message send: receiver, selector, already
	// evaluated arguments. Used by natives that invoke a Block argument.
	Send(receiver Value, selector string, args []Value) (Value, *errors.RuntimeError)

	// Write appends s to the output stream.
	Write(s string) error

	// ReadLine reads one line of input. ok is false at end-of-input.
	ReadLine() (line string, ok bool)
}

// NativeFunc is a built-in selector implementation. receiver is the
// original receiver value, never the parent class, so that subclasses
// invoking an inherited native retain their own subclass identity.
type NativeFunc func(engine Engine, receiver Value, args []Value) (Value, *errors.RuntimeError)
