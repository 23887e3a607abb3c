package engine

import (
	"strings"

	"github.com/sol25-lang/sol25/internal/interp/errors"
	"github.com/sol25-lang/sol25/internal/runtime"
	"github.com/sol25-lang/sol25/internal/trace"
)

// dispatch implements the message-send precedence ladder: eight steps,
// first match wins. t is the already-evaluated receiver sum type;
// isSuper records whether the send's receiver expression was
// syntactically `super` (self and super evaluate to the same Value -
// only the starting class for method/native lookup differs).
func (in *Interp) dispatch(t target, selector string, args []runtime.Value, isSuper bool) (runtime.Value, *errors.RuntimeError) {
	if in.Trace != nil {
		receiver := t.className
		if !t.isClass {
			receiver = t.value.ClassName()
		}
		_ = in.Trace.Record(trace.Event{
			Depth:    in.Frames.Depth(),
			Selector: selector,
			Receiver: receiver,
			Super:    isSuper,
		})
	}

	// Step 1: class message.
	if t.isClass {
		if isSuper {
			return nil, errors.Internal("super is not legal on a class message")
		}
		return in.dispatchClassMessage(t.className, selector, args)
	}

	receiver := t.value

	// Step 2: whileTrue: shortcut. Host-level loop, not recursive
	// dispatch, so iteration count never grows the Go call stack.
	if selector == "whileTrue:" && len(args) == 1 {
		return in.dispatchWhileTrue(receiver, args[0])
	}

	// Step 3: Block value*.
	if blk, ok := receiver.(*runtime.BlockValue); ok && strings.HasPrefix(selector, "value") {
		return in.dispatchBlockValue(blk, selector, args)
	}

	startClass := receiver.ClassName()
	if isSuper {
		parent, ok := in.Registry.Parent(startClass)
		if !ok {
			return nil, errors.Internal("super: class %q has no parent", startClass)
		}
		startClass = parent.Name
	}

	// Step 4: user-defined method via MRO.
	if _, body, ok := in.Registry.FindMethod(startClass, selector); ok {
		return in.ExecuteBlockWithArgs(body, receiver, args)
	}

	// Step 5: built-in native via MRO.
	if _, fn, ok := in.Registry.FindNative(startClass, selector); ok {
		return fn(in, receiver, args)
	}

	// Step 6: attribute read.
	if len(args) == 0 && isValidIdentifier(selector) {
		if v, ok := receiver.GetAttr(selector); ok {
			return v, nil
		}
	}

	// Step 7: attribute write.
	if len(args) == 1 && isAttributeSetter(selector) {
		name := strings.TrimSuffix(selector, ":")
		if receiver.SetAttr(name, args[0]) {
			return receiver, nil
		}
	}

	// Step 8: DNU.
	return nil, errors.DoesNotUnderstand(receiver.ClassName(), selector)
}

func (in *Interp) dispatchWhileTrue(cond, body runtime.Value) (runtime.Value, *errors.RuntimeError) {
	for {
		v, err := in.Send(cond, "value", nil)
		if err != nil {
			return nil, err
		}
		if v != runtime.True {
			return runtime.Nil, nil
		}
		if _, err := in.Send(body, "value", nil); err != nil {
			return nil, err
		}
	}
}

func (in *Interp) dispatchBlockValue(blk *runtime.BlockValue, selector string, args []runtime.Value) (runtime.Value, *errors.RuntimeError) {
	colons := strings.Count(selector, ":")
	if colons != blk.Arity || colons != len(args) {
		return nil, errors.DoesNotUnderstand(blk.ClassName(), selector)
	}
	return in.ExecuteBlockWithArgs(blk.Node, blk.DefiningSelf, args)
}

// isAttributeSetter reports whether selector has the shape of a
// single-keyword attribute setter: one interior colon at the end, with a
// valid identifier prefix.
func isAttributeSetter(selector string) bool {
	if strings.Count(selector, ":") != 1 || !strings.HasSuffix(selector, ":") {
		return false
	}
	return isValidIdentifier(strings.TrimSuffix(selector, ":"))
}
