package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetOpenAttendanceQueryIsNotConstructed = errors.New(
	"GetOpenAttendanceQuery must be created via NewGetOpenAttendanceQuery constructor",
)

// GetOpenAttendanceQuery retrieves attendance records from days before the
// given one that were never checked out. The rollover job reports them; records
// are not auto-closed.
type GetOpenAttendanceQuery struct { //nolint:recvcheck //using for validation
	before time.Time

	guard guard.ConstructorGuard
}

// NewGetOpenAttendanceQuery creates a query for open records before a day.
func NewGetOpenAttendanceQuery(before time.Time) (GetOpenAttendanceQuery, error) {
	if before.IsZero() {
		return GetOpenAttendanceQuery{}, errors.New("before must be a valid day")
	}

	return GetOpenAttendanceQuery{
		before: before,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOpenAttendanceQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenAttendanceQueryIsNotConstructed)
}

// Before returns the exclusive day bound.
func (q GetOpenAttendanceQuery) Before() time.Time {
	return q.before
}

// GetOpenAttendanceQueryResponse represents one record left open at rollover.
type GetOpenAttendanceQueryResponse struct {
	ID       kernel.UUID
	WorkerID kernel.UUID
	Day      time.Time
	CheckIn  time.Time
}
