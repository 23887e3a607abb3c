package runtime

import "github.com/sol25-lang/sol25/internal/interp/errors"

// trueNatives and falseNatives implement the four control-flow selectors:
// not, and:, or:, ifTrue:ifFalse:. Each short-circuits: and:/or: evaluate
// their block argument by sending it `value` only when the short-circuit
// doesn't already decide the answer.
var trueNatives = map[string]NativeFunc{
	"not":           nativeTrueNot,
	"and:":          nativeTrueAnd,
	"or:":           nativeTrueOr,
	"ifTrue:ifFalse:": nativeTrueIfTrueIfFalse,
}

var falseNatives = map[string]NativeFunc{
	"not":           nativeFalseNot,
	"and:":          nativeFalseAnd,
	"or:":           nativeFalseOr,
	"ifTrue:ifFalse:": nativeFalseIfTrueIfFalse,
}

func nativeTrueNot(_ Engine, _ Value, _ []Value) (Value, *errors.RuntimeError) {
	return False, nil
}

func nativeFalseNot(_ Engine, _ Value, _ []Value) (Value, *errors.RuntimeError) {
	return True, nil
}

func nativeTrueAnd(engine Engine, _ Value, args []Value) (Value, *errors.RuntimeError) {
	return engine.Send(args[0], "value", nil)
}

func nativeFalseAnd(_ Engine, _ Value, _ []Value) (Value, *errors.RuntimeError) {
	return False, nil
}

func nativeTrueOr(_ Engine, _ Value, _ []Value) (Value, *errors.RuntimeError) {
	return True, nil
}

func nativeFalseOr(engine Engine, _ Value, args []Value) (Value, *errors.RuntimeError) {
	return engine.Send(args[0], "value", nil)
}

func nativeTrueIfTrueIfFalse(engine Engine, _ Value, args []Value) (Value, *errors.RuntimeError) {
	return engine.Send(args[0], "value", nil)
}

func nativeFalseIfTrueIfFalse(engine Engine, _ Value, args []Value) (Value, *errors.RuntimeError) {
	return engine.Send(args[1], "value", nil)
}
