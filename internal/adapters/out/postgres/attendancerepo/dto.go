// Package attendancerepo provides data transfer objects and mapping functions
// for attendance persistence.
package attendancerepo

import (
	"time"

	"dispatch/internal/core/domain/model/attendance"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RecordDTO represents the database structure for persisting attendance records.
// The (worker_id, day) pair is unique: one record per worker per calendar day,
// which is what makes check-in idempotent even under concurrent requests.
type RecordDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkerID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_worker_day"`
	Day      time.Time `gorm:"uniqueIndex:idx_worker_day"`
	CheckIn  time.Time
	CheckOut *time.Time
	Status   int
}

// TableName specifies the database table name for attendance entities.
func (RecordDTO) TableName() string {
	return "attendance_records"
}

// fromDomain converts an attendance record to its database representation.
func fromDomain(aggregate *attendance.Record) RecordDTO {
	return RecordDTO{
		ID:       aggregate.ID().Bytes(),
		WorkerID: aggregate.Worker().Bytes(),
		Day:      aggregate.Day(),
		CheckIn:  aggregate.CheckInTime(),
		CheckOut: aggregate.CheckOutTime(),
		Status:   int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to an attendance record aggregate.
func toDomain(dto RecordDTO) (*attendance.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}

	return attendance.RestoreRecord(
		id,
		workerID,
		dto.Day,
		dto.CheckIn,
		dto.CheckOut,
		attendance.Status(dto.Status),
	)
}
