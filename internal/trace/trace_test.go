package trace

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestRecordWritesValidJSONLine(t *testing.T) {
	var buf bytes.Buffer
	r := NewRecorder(&buf, 0)

	require.NoError(t, r.Record(Event{Depth: 2, Selector: "plus:", Receiver: "Integer", Super: false}))

	line := strings.TrimRight(buf.String(), "\n")
	require.True(t, gjson.Valid(line))
	assert.Equal(t, int64(2), gjson.Get(line, "depth").Int())
	assert.Equal(t, "plus:", gjson.Get(line, "selector").String())
	assert.Equal(t, "Integer", gjson.Get(line, "receiver").String())
	assert.False(t, gjson.Get(line, "super").Bool())
}

func TestRecordHonorsLimit(t *testing.T) {
	var buf bytes.Buffer
	r := NewRecorder(&buf, 2)

	for i := 0; i < 5; i++ {
		require.NoError(t, r.Record(Event{Selector: "foo"}))
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
}

func TestRecordOnNilRecorderIsNoop(t *testing.T) {
	var r *Recorder
	assert.NoError(t, r.Record(Event{Selector: "foo"}))
}

func TestIsDoesNotUnderstandMatchesSelector(t *testing.T) {
	var buf bytes.Buffer
	r := NewRecorder(&buf, 0)
	require.NoError(t, r.Record(Event{Selector: "foo", Receiver: "Integer"}))

	line := strings.TrimRight(buf.String(), "\n")
	assert.True(t, IsDoesNotUnderstand(line, "foo"))
	assert.False(t, IsDoesNotUnderstand(line, "bar"))
	assert.Equal(t, "Integer", ReceiverOf(line))
}
