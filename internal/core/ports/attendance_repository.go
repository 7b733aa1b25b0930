package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/attendance"
	"dispatch/internal/core/domain/model/kernel"
)

// AttendanceRepository defines the persistence contract for attendance records.
type AttendanceRepository interface {
	// Add persists a new attendance record.
	// The (worker, day) pair is unique; Add fails on a duplicate, which backs
	// the idempotency of check-in.
	Add(ctx context.Context, aggregate *attendance.Record) error

	// Update persists changes to an existing attendance record (check-out).
	Update(ctx context.Context, aggregate *attendance.Record) error

	// GetForDay retrieves a worker's record for the given calendar day.
	// Returns an ObjectNotFound error if the worker has not checked in that day.
	GetForDay(ctx context.Context, workerID kernel.UUID, day time.Time) (*attendance.Record, error)
}
