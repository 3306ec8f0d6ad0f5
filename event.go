package retro

import (
	"fmt"

	"go.uber.org/atomic"
)

// Event is a single-fire notification. The first Fire runs the handler;
// later calls are reported and ignored (or panic in debug mode).
type Event struct {
	name  string
	fired atomic.Bool
	fn    func(success bool)
}

// NewEvent creates an event named name that calls fn on its first Fire.
// fn may be nil.
func NewEvent(name string, fn func(success bool)) *Event {
	return &Event{name: name, fn: fn}
}

// Fire delivers the event. It returns false if the event had already fired.
func (e *Event) Fire(success bool) bool {
	if !e.fired.CompareAndSwap(false, true) {
		if globalDebug {
			panic(fmt.Sprintf("retro debug: event %q fired twice", e.name))
		}
		logger.Warn("event fired twice", "event", e.name, "success", success)
		return false
	}
	if e.fn != nil {
		e.fn(success)
	}
	return true
}

// Fired reports whether the event has fired.
func (e *Event) Fired() bool {
	return e.fired.Load()
}
