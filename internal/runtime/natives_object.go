package runtime

import "github.com/sol25-lang/sol25/internal/interp/errors"

// objectNatives implements the selectors every Value responds to by
// default: identicalTo:, equalTo: (identity by default; Integer and
// String override with value equality in their own tables), asString,
// isNumber/isString/isBlock/isNil (all false by default).
var objectNatives = map[string]NativeFunc{
	"identicalTo:": nativeIdenticalTo,
	"equalTo:":     nativeEqualToDefault,
	"asString":     nativeAsStringDefault,
	"isNumber":     nativeConstFalse,
	"isString":     nativeConstFalse,
	"isBlock":      nativeConstFalse,
	"isNil":        nativeConstFalse,
}

func nativeIdenticalTo(_ Engine, receiver Value, args []Value) (Value, *errors.RuntimeError) {
	return BoolFor(receiver == args[0]), nil
}

func nativeEqualToDefault(_ Engine, receiver Value, args []Value) (Value, *errors.RuntimeError) {
	return BoolFor(receiver == args[0]), nil
}

func nativeAsStringDefault(_ Engine, receiver Value, _ []Value) (Value, *errors.RuntimeError) {
	return NewString(""), nil
}

func nativeConstFalse(_ Engine, _ Value, _ []Value) (Value, *errors.RuntimeError) {
	return False, nil
}
