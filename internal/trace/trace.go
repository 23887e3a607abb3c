// Package trace builds and filters the JSON dispatch-event records the
// `sol25 run --trace` CLI flag streams to stderr. Tracing is purely
// observational: it records what the dispatcher decided, never
// influences it, and carries no evaluation semantics of its own.
package trace

import (
	"fmt"
	"io"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Event is one dispatch decision: a message send about to be resolved by
// the precedence ladder.
type Event struct {
	Depth    int    // Frame Stack depth at the time of the send
	Selector string
	Receiver string // receiver's dynamic class name, or a class-name token
	Super    bool
}

// Recorder serializes Events to JSON Lines and writes them to w, up to an
// optional cap. Built with github.com/tidwall/sjson rather than
// encoding/json so each record is assembled incrementally, field by
// field, without a struct-tag round trip.
type Recorder struct {
	w     io.Writer
	limit int // 0 means unbounded
	count int
}

// NewRecorder constructs a Recorder. limit <= 0 means unbounded.
func NewRecorder(w io.Writer, limit int) *Recorder {
	return &Recorder{w: w, limit: limit}
}

// Record appends one Event as a JSON line. Once limit events have been
// written, further calls are silent no-ops rather than an error - tracing
// must never change a program's observable exit code.
func (r *Recorder) Record(evt Event) error {
	if r == nil || r.w == nil {
		return nil
	}
	if r.limit > 0 && r.count >= r.limit {
		return nil
	}

	line := "{}"
	var err error
	line, err = sjson.Set(line, "depth", evt.Depth)
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	line, err = sjson.Set(line, "selector", evt.Selector)
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	line, err = sjson.Set(line, "receiver", evt.Receiver)
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	line, err = sjson.Set(line, "super", evt.Super)
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}

	if _, err := fmt.Fprintln(r.w, line); err != nil {
		return fmt.Errorf("trace: writing event: %w", err)
	}
	r.count++
	return nil
}

// IsDoesNotUnderstand reports whether a previously recorded JSON line's
// selector field equals selector exactly, without re-parsing the whole
// record into an Event. It does not inspect the selector's shape, and
// the CLI does not call it.
func IsDoesNotUnderstand(line, selector string) bool {
	return gjson.Get(line, "selector").String() == selector
}

// ReceiverOf extracts the receiver field from a recorded JSON line. The
// CLI does not call it; trace lines reach stderr unfiltered.
func ReceiverOf(line string) string {
	return gjson.Get(line, "receiver").String()
}
