package driver_test

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sol25-lang/sol25/internal/interp/errors"
	"github.com/sol25-lang/sol25/internal/xmlast"
	"github.com/sol25-lang/sol25/pkg/sol25"
)

// loadFixture parses one of the end-to-end scenario fixtures from
// testdata/ and runs it to completion, returning stdout and the
// classified error (nil on success).
func loadFixture(t *testing.T, name string) (string, *errors.RuntimeError) {
	t.Helper()
	f, err := os.Open("../../../testdata/" + name)
	require.NoError(t, err)
	defer f.Close()

	programNode, err := xmlast.Load(f)
	require.NoError(t, err)

	var out bytes.Buffer
	runErr := sol25.Run(context.Background(), programNode, bytes.NewReader(nil), &out, sol25.RunOptions{})
	if runErr == nil {
		return out.String(), nil
	}
	re, ok := runErr.(*sol25.Error)
	require.True(t, ok, "expected a classified *sol25.Error, got %T", runErr)
	return out.String(), re
}

func TestHelloWorld(t *testing.T) {
	out, runErr := loadFixture(t, "hello_world.xml")
	require.Nil(t, runErr)
	snaps.MatchSnapshot(t, out)
}

func TestArithmeticAndPrinting(t *testing.T) {
	out, runErr := loadFixture(t, "arithmetic.xml")
	require.Nil(t, runErr)
	snaps.MatchSnapshot(t, out)
}

func TestIntegerDivisionByZeroExitsWithValueError(t *testing.T) {
	out, runErr := loadFixture(t, "division_by_zero.xml")
	require.NotNil(t, runErr)
	assert.Equal(t, 53, runErr.ExitCode())
	assert.Empty(t, out)
}

func TestWhileLoopCountingToThree(t *testing.T) {
	out, runErr := loadFixture(t, "while_loop_counter.xml")
	require.Nil(t, runErr)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestUserClassInheritance(t *testing.T) {
	out, runErr := loadFixture(t, "inheritance.xml")
	require.Nil(t, runErr)
	assert.Equal(t, "A", out)
}

func TestDoesNotUnderstandOnUnknownSelector(t *testing.T) {
	out, runErr := loadFixture(t, "dnu_unknown_selector.xml")
	require.NotNil(t, runErr)
	assert.Equal(t, 51, runErr.ExitCode())
	assert.Equal(t, "foo", runErr.Selector)
	assert.Equal(t, "Integer", runErr.Receiver)
	assert.Empty(t, out)
}
