package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sol25-lang/sol25/internal/interp/errors"
)

// recordingEngine is a minimal Engine for natives that call back into
// dispatch, recording every Send without a real dispatcher.
type recordingEngine struct {
	send func(receiver Value, selector string, args []Value) (Value, *errors.RuntimeError)
}

func (e *recordingEngine) Send(receiver Value, selector string, args []Value) (Value, *errors.RuntimeError) {
	return e.send(receiver, selector, args)
}
func (e *recordingEngine) Write(string) error             { return nil }
func (e *recordingEngine) ReadLine() (string, bool)        { return "", false }

func TestIntegerArithmetic(t *testing.T) {
	cases := []struct {
		selector string
		fn       NativeFunc
		a, b, want int64
	}{
		{"plus:", nativeIntegerPlus, 2, 3, 5},
		{"minus:", nativeIntegerMinus, 10, 4, 6},
		{"multiplyBy:", nativeIntegerMultiplyBy, 6, 7, 42},
		{"divBy:", nativeIntegerDivBy, 20, 4, 5},
	}
	for _, c := range cases {
		t.Run(c.selector, func(t *testing.T) {
			v, err := c.fn(nil, NewInteger(c.a), []Value{NewInteger(c.b)})
			require.Nil(t, err)
			assert.Equal(t, c.want, v.(*IntegerValue).N)
		})
	}
}

func TestIntegerDivByZeroIsValueError(t *testing.T) {
	_, err := nativeIntegerDivBy(nil, NewInteger(10), []Value{NewInteger(0)})
	require.NotNil(t, err)
	assert.Equal(t, 53, err.ExitCode())
}

func TestIntegerArithmeticRejectsNonInteger(t *testing.T) {
	_, err := nativeIntegerPlus(nil, NewInteger(1), []Value{NewString("oops")})
	require.NotNil(t, err)
	assert.Equal(t, 53, err.ExitCode())
}

func TestIntegerEqualTo(t *testing.T) {
	v, err := nativeIntegerEqualTo(nil, NewInteger(5), []Value{NewInteger(5)})
	require.Nil(t, err)
	assert.Same(t, True, v)

	v, err = nativeIntegerEqualTo(nil, NewInteger(5), []Value{NewString("5")})
	require.Nil(t, err)
	assert.Same(t, False, v)
}

func TestIntegerAsStringRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 123456789} {
		s, err := nativeIntegerAsString(nil, NewInteger(n), nil)
		require.Nil(t, err)
		back, perr := ParseInteger(s.(*StringValue).S)
		require.NoError(t, perr)
		assert.Equal(t, n, back)
	}
}

func TestIntegerTimesRepeatSendsOneBasedIndex(t *testing.T) {
	var seen []int64
	eng := &recordingEngine{
		send: func(receiver Value, selector string, args []Value) (Value, *errors.RuntimeError) {
			seen = append(seen, args[0].(*IntegerValue).N)
			return Nil, nil
		},
	}
	_, err := nativeIntegerTimesRepeat(eng, NewInteger(3), []Value{Nil})
	require.Nil(t, err)
	assert.Equal(t, []int64{1, 2, 3}, seen)
}

func TestIntegerTimesRepeatNoopOnNonPositive(t *testing.T) {
	called := false
	eng := &recordingEngine{send: func(Value, string, []Value) (Value, *errors.RuntimeError) {
		called = true
		return Nil, nil
	}}
	_, err := nativeIntegerTimesRepeat(eng, NewInteger(0), []Value{Nil})
	require.Nil(t, err)
	assert.False(t, called)
}
