package logrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/deliverylog"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryLogRepository implements DeliveryLogRepository using GORM.
type GormDeliveryLogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryLogRepository creates a new GORM audit entry repository.
func NewGormDeliveryLogRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryLogRepository {
	return &GormDeliveryLogRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a new audit entry.
func (r *GormDeliveryLogRepository) Add(ctx context.Context, aggregate *deliverylog.Entry) error {
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

// Update persists a notes revision on an existing entry. Only the notes column
// moves; the rest of the entry is immutable.
func (r *GormDeliveryLogRepository) Update(ctx context.Context, aggregate *deliverylog.Entry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&EntryDTO{}).
		Where("id = ?", dto.ID).
		Select("notes").
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

// Get retrieves an audit entry by ID.
func (r *GormDeliveryLogRepository) Get(ctx context.Context, id kernel.UUID) (*deliverylog.Entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EntryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("log entry", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
