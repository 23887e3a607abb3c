package runtime

import "github.com/sol25-lang/sol25/internal/interp/errors"

// stringNatives implements the String selectors. print is the only
// selector that touches the output stream; it applies escape processing,
// which is deliberately scoped to print time only rather than to string
// construction.
var stringNatives = map[string]NativeFunc{
	"print":                  nativeStringPrint,
	"asString":               nativeStringAsString,
	"asInteger":              nativeStringAsInteger,
	"concatenateWith:":       nativeStringConcatenateWith,
	"startsWith:endsBefore:": nativeStringStartsWithEndsBefore,
	"equalTo:":               nativeStringEqualTo,
	"isString":               nativeConstTrue,
}

func nativeStringPrint(engine Engine, receiver Value, _ []Value) (Value, *errors.RuntimeError) {
	self := receiver.(*StringValue)
	if err := engine.Write(unescape(self.S)); err != nil {
		return nil, errors.Internal("write failed: %v", err)
	}
	return receiver, nil
}

func nativeStringAsString(_ Engine, receiver Value, _ []Value) (Value, *errors.RuntimeError) {
	return receiver, nil
}

func nativeStringAsInteger(_ Engine, receiver Value, _ []Value) (Value, *errors.RuntimeError) {
	self := receiver.(*StringValue)
	n, err := ParseInteger(self.S)
	if err != nil {
		return Nil, nil
	}
	return NewInteger(n), nil
}

func nativeStringConcatenateWith(_ Engine, receiver Value, args []Value) (Value, *errors.RuntimeError) {
	self := receiver.(*StringValue)
	other, ok := args[0].(*StringValue)
	if !ok {
		return Nil, nil
	}
	return NewString(self.S + other.S), nil
}

func nativeStringStartsWithEndsBefore(_ Engine, receiver Value, args []Value) (Value, *errors.RuntimeError) {
	self := receiver.(*StringValue)
	start, okStart := asInteger(args[0])
	end, okEnd := asInteger(args[1])
	if !okStart || !okEnd {
		return Nil, nil
	}
	if start.N <= 0 || end.N <= 0 {
		return Nil, nil
	}
	if start.N >= end.N {
		return NewString(""), nil
	}

	runes := self.Runes()
	low := clampIndex(start.N-1, len(runes))
	high := clampIndex(end.N-1, len(runes))
	if low > high {
		low = high
	}
	return NewString(string(runes[low:high])), nil
}

func clampIndex(n int64, length int) int {
	if n < 0 {
		return 0
	}
	if n > int64(length) {
		return length
	}
	return int(n)
}

func nativeStringEqualTo(_ Engine, receiver Value, args []Value) (Value, *errors.RuntimeError) {
	self := receiver.(*StringValue)
	other, ok := args[0].(*StringValue)
	if !ok {
		return False, nil
	}
	return BoolFor(self.S == other.S), nil
}
