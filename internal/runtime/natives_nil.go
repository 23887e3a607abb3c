package runtime

import "github.com/sol25-lang/sol25/internal/interp/errors"

// nilNatives overrides isNil and asString for Nil: asString returns
// "nil", isNil returns True. identicalTo:/equalTo: keep the Object
// defaults (identity), which is correct for Nil since the singleton is
// unique.
var nilNatives = map[string]NativeFunc{
	"isNil":    nativeNilIsNil,
	"asString": nativeNilAsString,
}

func nativeNilIsNil(_ Engine, _ Value, _ []Value) (Value, *errors.RuntimeError) {
	return True, nil
}

func nativeNilAsString(_ Engine, _ Value, _ []Value) (Value, *errors.RuntimeError) {
	return NewString("nil"), nil
}
