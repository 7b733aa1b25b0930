package delivery

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a requested lifecycle transition is not
// permitted from the delivery's current status. Requests failing this way produce
// no state change and no log entry.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of a delivery.
// It implements a state machine with defined transitions so deliveries follow
// the dispatch workflow.
//
// State transitions:
//
//	Pooled ──> Claimed ──> OutForDelivery ──┬──> Completed
//	                         │    ▲         │
//	                         ▼    │         │
//	                       Delayed ─────────┘
//
//	any non-terminal ──> Canceled (administrative override)
//
// Delayed is a side branch that keeps the delivery in progress: the owning worker
// can still resume the route or complete from it. Completed and Canceled are
// terminal; no further transitions are permitted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pooled is the initial status: the delivery sits in the shared pool
	// waiting to be claimed by a worker.
	Pooled

	// Claimed indicates a worker took ownership of the delivery together
	// with a vehicle.
	Claimed

	// OutForDelivery indicates the owning worker started the route.
	OutForDelivery

	// Delayed indicates the owning worker flagged the delivery as taking longer
	// than expected. The delivery stays in progress and the vehicle stays reserved.
	Delayed

	// Completed indicates the delivery was handed over. Terminal.
	Completed

	// Canceled indicates an administrative cancellation. Terminal.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pooled:         "Pooled",
		Claimed:        "Claimed",
		OutForDelivery: "OutForDelivery",
		Delayed:        "Delayed",
		Completed:      "Completed",
		Canceled:       "Canceled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pooled:         "Pooled",
		Claimed:        "Claimed",
		OutForDelivery: "OutForDelivery",
		Delayed:        "Delayed",
		Completed:      "Completed",
		Canceled:       "Canceled",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and any other values are invalid. Used to verify Status values
// coming from external sources such as the database.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Canceled
}

// Claim transitions the status to Claimed.
//
// Valid transitions:
//   - Pooled -> Claimed
//
// Any other source status fails: whichever concurrent claim committed first has
// already moved the delivery out of the pool.
func (s Status) Claim() (Status, error) {
	if s != Pooled {
		return 0, invalidTransition(s, "claim")
	}
	return Claimed, nil
}

// StartRoute transitions the status to OutForDelivery.
//
// Valid transitions:
//   - Claimed -> OutForDelivery (start route)
//   - Delayed -> OutForDelivery (resume after a delay)
func (s Status) StartRoute() (Status, error) {
	if s != Claimed && s != Delayed {
		return 0, invalidTransition(s, "start the route for")
	}
	return OutForDelivery, nil
}

// Delay transitions the status to Delayed.
//
// Valid transitions:
//   - OutForDelivery -> Delayed
//
// Delay exists to set customer-visible expectation; the delivery stays in
// progress and the vehicle stays reserved.
func (s Status) Delay() (Status, error) {
	if s != OutForDelivery {
		return 0, invalidTransition(s, "delay")
	}
	return Delayed, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - OutForDelivery -> Completed
//   - Delayed -> Completed (the worker can still complete after a delay)
func (s Status) Complete() (Status, error) {
	if s != OutForDelivery && s != Delayed {
		return 0, invalidTransition(s, "complete")
	}
	return Completed, nil
}

// Cancel transitions the status to Canceled.
//
// Valid from any non-terminal status. Cancellation is an administrative
// override, not a worker action.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, invalidTransition(s, "cancel")
	}
	return Canceled, nil
}

// ValidateAssignment validates the consistency between delivery status and its
// worker/vehicle assignment.
//
// Rules:
//   - Pooled deliveries must have neither a worker nor a vehicle
//   - Claimed, OutForDelivery, Delayed and Completed deliveries must have both
//   - Canceled deliveries may have both or neither, depending on whether the
//     cancellation happened before or after a claim
func (s Status) ValidateAssignment(hasWorker, hasVehicle bool) error {
	if hasWorker != hasVehicle {
		return fmt.Errorf("%w: worker and vehicle must be assigned together", ErrInvalidTransition)
	}

	switch s {
	case Pooled:
		if hasWorker {
			return fmt.Errorf("%w: a pooled delivery cannot have an assignment", ErrInvalidTransition)
		}
	case Claimed, OutForDelivery, Delayed, Completed:
		if !hasWorker {
			return fmt.Errorf("%w: a %s delivery must have an assignment", ErrInvalidTransition, s)
		}
	case Canceled, Unknown:
	}

	return nil
}

func invalidTransition(from Status, action string) error {
	return fmt.Errorf("%w: cannot %s a delivery in status %s", ErrInvalidTransition, action, from)
}
