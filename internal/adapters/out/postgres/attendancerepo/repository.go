package attendancerepo

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/attendance"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAttendanceRepository implements AttendanceRepository using GORM.
type GormAttendanceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAttendanceRepository creates a new GORM attendance repository.
func NewGormAttendanceRepository(db *gorm.DB, tracker aggregateTracker) *GormAttendanceRepository {
	return &GormAttendanceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new attendance record to the database.
// Fails on the unique (worker_id, day) index for a duplicate check-in.
func (r *GormAttendanceRepository) Add(ctx context.Context, aggregate *attendance.Record) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves a check-out to an existing record.
func (r *GormAttendanceRepository) Update(ctx context.Context, aggregate *attendance.Record) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RecordDTO{}).
		Where("id = ?", dto.ID).
		Select("check_out", "status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetForDay retrieves a worker's record for the given calendar day.
func (r *GormAttendanceRepository) GetForDay(
	ctx context.Context,
	workerID kernel.UUID,
	day time.Time,
) (*attendance.Record, error) {
	if err := workerID.Validate(); err != nil {
		return nil, err
	}

	var dto RecordDTO
	err := r.db.WithContext(ctx).
		First(&dto, "worker_id = ? AND day = ?", workerID.Bytes(), day).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("attendance record", workerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
