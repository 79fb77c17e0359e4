// Package trace provides sinks for the kernel's action log: one-line,
// human-readable event records such as "Process 3 moved to Running".
// This package has no dependencies on sim/ and stores plain strings.
package trace

import "time"

// Entry is a single recorded action.
type Entry struct {
	Time  time.Time
	Event string
}

// Recorder keeps every action in memory, in recording order.
// Used by tests and by callers that want to inspect what a command did.
type Recorder struct {
	Entries []Entry
	now     func() time.Time
}

// NewRecorder creates an empty Recorder stamped with wall-clock time.
func NewRecorder() *Recorder {
	return &Recorder{Entries: make([]Entry, 0), now: time.Now}
}

// Record appends an action.
func (r *Recorder) Record(event string) {
	now := time.Now
	if r.now != nil {
		now = r.now
	}
	r.Entries = append(r.Entries, Entry{Time: now(), Event: event})
}

// Events returns the recorded event strings without timestamps.
func (r *Recorder) Events() []string {
	events := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		events[i] = e.Event
	}
	return events
}

// Len returns the number of recorded actions.
func (r *Recorder) Len() int {
	return len(r.Entries)
}

// Reset drops all recorded actions.
func (r *Recorder) Reset() {
	r.Entries = r.Entries[:0]
}
