// Package logrepo provides data transfer objects and mapping functions for
// audit entry persistence.
package logrepo

import (
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/deliverylog"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for persisting audit entries.
// delivery_id is indexed for the per-delivery trail query; status is nullable
// because not every event records a transition.
type EntryDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID    uuid.UUID `gorm:"type:uuid;index"`
	EventType     int
	Status        *int
	Notes         string
	PhotoProofURL string
	CreatedBy     uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}

// TableName specifies the database table name for audit entries.
func (EntryDTO) TableName() string {
	return "delivery_log_entries"
}

// fromDomain converts an audit entry to its database representation.
func fromDomain(aggregate *deliverylog.Entry) EntryDTO {
	var status *int
	if s := aggregate.Value().Status; s != nil {
		raw := int(*s)
		status = &raw
	}

	return EntryDTO{
		ID:            aggregate.ID().Bytes(),
		DeliveryID:    aggregate.Delivery().Bytes(),
		EventType:     int(aggregate.Type()),
		Status:        status,
		Notes:         aggregate.Value().Notes,
		PhotoProofURL: aggregate.Value().PhotoProofURL,
		CreatedBy:     aggregate.CreatedBy().Bytes(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an audit entry aggregate.
func toDomain(dto EntryDTO) (*deliverylog.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	deliveryID, err := kernel.UUIDFromBytes(dto.DeliveryID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	var status *delivery.Status
	if dto.Status != nil {
		s := delivery.Status(*dto.Status)
		status = &s
	}

	return deliverylog.RestoreEntry(
		id,
		deliveryID,
		deliverylog.EventType(dto.EventType),
		deliverylog.NewValue{
			Status:        status,
			Notes:         dto.Notes,
			PhotoProofURL: dto.PhotoProofURL,
		},
		createdBy,
		dto.CreatedAt,
	)
}
