package attendance

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status classifies a day's attendance.
// Present and Late are set automatically at check-in based on the late cutoff;
// Absent is reserved for administrative marking of workers who never checked in.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Present means the worker checked in before the late cutoff.
	Present

	// Late means the worker checked in after the late cutoff.
	Late

	// Absent means the worker did not check in that day (administrative marking).
	Absent
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Present: "Present",
		Late:    "Late",
		Absent:  "Absent",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != Present && s != Late && s != Absent {
		return errs.NewValueIsInvalidErrorWithCause("attendance status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
