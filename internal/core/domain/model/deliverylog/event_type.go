package deliverylog

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// EventType classifies an audit entry.
type EventType int

const (
	// EventUnknown represents an invalid or undefined event type.
	EventUnknown EventType = iota

	// EventClaimed records a successful claim.
	EventClaimed

	// EventStatusChange records a non-terminal lifecycle transition
	// (start route, delay, resume, cancel).
	EventStatusChange

	// EventCompleted records a completion, including the handover notes and
	// optional photo proof.
	EventCompleted

	// EventEdit records an out-of-band administrative correction appended as its
	// own entry. Worker edits of their own notes revise the original entry
	// instead of appending.
	EventEdit
)

func getEventTypeStrings() map[EventType]string {
	return map[EventType]string{
		EventUnknown:      "Unknown",
		EventClaimed:      "Claimed",
		EventStatusChange: "StatusChange",
		EventCompleted:    "Completed",
		EventEdit:         "Edit",
	}
}

// Validate checks if the EventType value is valid.
func (t EventType) Validate() error {
	if t == EventUnknown {
		return errs.NewValueIsInvalidErrorWithCause("event type", fmt.Errorf("%d is not a valid event type", t))
	}
	if _, ok := getEventTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("event type", fmt.Errorf("%d is not a valid event type", t))
	}
	return nil
}

// String returns the human-readable name of the event type.
func (t EventType) String() string {
	if str, ok := getEventTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
