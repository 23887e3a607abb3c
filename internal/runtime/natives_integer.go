package runtime

import "github.com/sol25-lang/sol25/internal/interp/errors"

// integerNatives implements the Integer selectors. All binary arithmetic
// and comparison selectors require an Integer argument and raise a
// code-53 value error otherwise; divBy: additionally raises code 53 on a
// zero divisor.
var integerNatives = map[string]NativeFunc{
	"plus:":         nativeIntegerPlus,
	"minus:":        nativeIntegerMinus,
	"multiplyBy:":   nativeIntegerMultiplyBy,
	"divBy:":        nativeIntegerDivBy,
	"greaterThan:":  nativeIntegerGreaterThan,
	"equalTo:":      nativeIntegerEqualTo,
	"asString":      nativeIntegerAsString,
	"asInteger":     nativeIntegerAsInteger,
	"isNumber":      nativeConstTrue,
	"timesRepeat:":  nativeIntegerTimesRepeat,
}

func nativeConstTrue(_ Engine, _ Value, _ []Value) (Value, *errors.RuntimeError) {
	return True, nil
}

func asInteger(v Value) (*IntegerValue, bool) {
	i, ok := v.(*IntegerValue)
	return i, ok
}

func nativeIntegerPlus(_ Engine, receiver Value, args []Value) (Value, *errors.RuntimeError) {
	self := receiver.(*IntegerValue)
	other, ok := asInteger(args[0])
	if !ok {
		return nil, errors.ValueError("plus: expects an Integer argument, got %s", args[0].ClassName())
	}
	return NewInteger(self.N + other.N), nil
}

func nativeIntegerMinus(_ Engine, receiver Value, args []Value) (Value, *errors.RuntimeError) {
	self := receiver.(*IntegerValue)
	other, ok := asInteger(args[0])
	if !ok {
		return nil, errors.ValueError("minus: expects an Integer argument, got %s", args[0].ClassName())
	}
	return NewInteger(self.N - other.N), nil
}

func nativeIntegerMultiplyBy(_ Engine, receiver Value, args []Value) (Value, *errors.RuntimeError) {
	self := receiver.(*IntegerValue)
	other, ok := asInteger(args[0])
	if !ok {
		return nil, errors.ValueError("multiplyBy: expects an Integer argument, got %s", args[0].ClassName())
	}
	return NewInteger(self.N * other.N), nil
}

func nativeIntegerDivBy(_ Engine, receiver Value, args []Value) (Value, *errors.RuntimeError) {
	self := receiver.(*IntegerValue)
	other, ok := asInteger(args[0])
	if !ok {
		return nil, errors.ValueError("divBy: expects an Integer argument, got %s", args[0].ClassName())
	}
	if other.N == 0 {
		return nil, errors.ValueError("divBy: division by zero")
	}
	return NewInteger(self.N / other.N), nil
}

func nativeIntegerGreaterThan(_ Engine, receiver Value, args []Value) (Value, *errors.RuntimeError) {
	self := receiver.(*IntegerValue)
	other, ok := asInteger(args[0])
	if !ok {
		return nil, errors.ValueError("greaterThan: expects an Integer argument, got %s", args[0].ClassName())
	}
	return BoolFor(self.N > other.N), nil
}

func nativeIntegerEqualTo(_ Engine, receiver Value, args []Value) (Value, *errors.RuntimeError) {
	self := receiver.(*IntegerValue)
	other, ok := asInteger(args[0])
	if !ok {
		return False, nil
	}
	return BoolFor(self.N == other.N), nil
}

func nativeIntegerAsString(_ Engine, receiver Value, _ []Value) (Value, *errors.RuntimeError) {
	self := receiver.(*IntegerValue)
	return NewString(self.String()), nil
}

func nativeIntegerAsInteger(_ Engine, receiver Value, _ []Value) (Value, *errors.RuntimeError) {
	return receiver, nil
}

func nativeIntegerTimesRepeat(engine Engine, receiver Value, args []Value) (Value, *errors.RuntimeError) {
	self := receiver.(*IntegerValue)
	block := args[0]
	for i := int64(1); i <= self.N; i++ {
		if _, err := engine.Send(block, "value:", []Value{NewInteger(i)}); err != nil {
			return nil, err
		}
	}
	return receiver, nil
}
