// Package attendance contains the per-day attendance Record aggregate.
// One record exists per worker per calendar day; the claim eligibility gate
// requires today's record to be open (checked in, not checked out).
package attendance

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

// lateCutoffHour is the local hour after which a check-in is recorded as Late.
const lateCutoffHour = 9

var (
	// ErrRecordIsNotConstructed is returned when a Record instance was not created
	// through NewRecord or RestoreRecord.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

	// ErrAlreadyCheckedOut is returned when checking out of a record that already
	// has a check-out time.
	ErrAlreadyCheckedOut = errors.New("worker already checked out for this day")

	// ErrCheckOutBeforeCheckIn is returned when the check-out time precedes the
	// check-in time.
	ErrCheckOutBeforeCheckIn = errors.New("check-out must come after check-in")
)

// Record is one worker's attendance for one calendar day.
//
// A record is created at check-in (idempotently: a second check-in the same day
// returns the existing record rather than erroring) and closed at check-out.
// Records left open at day rollover are not auto-closed; the rollover job only
// reports them.
type Record struct {
	id        kernel.UUID
	workerID  kernel.UUID
	day       time.Time
	checkIn   time.Time
	checkOut  *time.Time
	status    Status

	guard guard.ConstructorGuard
}

// NewRecord creates today's attendance record for a worker checking in at now.
// The day is the calendar date of now in its own location; check-ins after the
// late cutoff are recorded as Late, otherwise Present.
func NewRecord(id, workerID kernel.UUID, now time.Time) (*Record, error) {
	if err := errors.Join(id.Validate(), workerID.Validate()); err != nil {
		return nil, err
	}

	status := Present
	if isLate(now) {
		status = Late
	}

	return &Record{
		id:       id,
		workerID: workerID,
		day:      DayOf(now),
		checkIn:  now,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreRecord reconstructs a Record aggregate from persistent storage.
func RestoreRecord(
	id, workerID kernel.UUID,
	day, checkIn time.Time,
	checkOut *time.Time,
	status Status,
) (*Record, error) {
	if err := errors.Join(id.Validate(), workerID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Record{
		id:       id,
		workerID: workerID,
		day:      day,
		checkIn:  checkIn,
		checkOut: checkOut,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// DayOf truncates a timestamp to its calendar date, keeping the location.
// Attendance is keyed on this value: one record per worker per calendar day.
func DayOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func isLate(t time.Time) bool {
	return t.Hour() >= lateCutoffHour
}

// Validate ensures the Record instance was properly constructed.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// Worker returns the worker this record belongs to.
func (r *Record) Worker() kernel.UUID {
	return r.workerID
}

// Day returns the calendar date of the record.
func (r *Record) Day() time.Time {
	return r.day
}

// CheckInTime returns the check-in timestamp.
func (r *Record) CheckInTime() time.Time {
	return r.checkIn
}

// CheckOutTime returns the check-out timestamp, or nil while the record is open.
func (r *Record) CheckOutTime() *time.Time {
	return r.checkOut
}

// Status returns the attendance status recorded at check-in.
func (r *Record) Status() Status {
	return r.status
}

// IsOpen reports whether the worker has checked in but not yet checked out.
// Open records gate claim eligibility.
func (r *Record) IsOpen() bool {
	return r.checkOut == nil
}

// CheckOut closes the record at now.
// Checkout is only valid after check-in and only once per day.
func (r *Record) CheckOut(now time.Time) error {
	if r.checkOut != nil {
		return ErrAlreadyCheckedOut
	}
	if now.Before(r.checkIn) {
		return ErrCheckOutBeforeCheckIn
	}

	r.checkOut = &now
	return nil
}
