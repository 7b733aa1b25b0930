// Package deliveryrepo provides data transfer objects and mapping functions for
// delivery persistence. This package implements the repository pattern for the
// delivery aggregate, handling the conversion between domain entities and
// database representations.
package deliveryrepo

import (
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. Status is indexed for pool reads; worker_id is indexed for
// per-worker listings. The items snapshot is stored as a jsonb document since
// the engine never queries into individual lines.
type DeliveryDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	InvoiceRef string     `gorm:"index"`
	Items      []ItemDTO  `gorm:"serializer:json;type:jsonb"`
	Status     int        `gorm:"index"`
	WorkerID   *uuid.UUID `gorm:"type:uuid;index"`
	VehicleID  *uuid.UUID `gorm:"type:uuid"`
	ClaimedAt  *time.Time
	Archived   bool
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// ItemDTO represents one invoice line inside the jsonb items column.
// The json tags are the read-model contract shared with the query handlers.
type ItemDTO struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var workerID, vehicleID *uuid.UUID
	if id := aggregate.Worker(); id != nil {
		raw := id.Bytes()
		workerID = &raw
	}
	if id := aggregate.Vehicle(); id != nil {
		raw := id.Bytes()
		vehicleID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			SKU:      item.SKU(),
			Name:     item.Name(),
			Quantity: item.Quantity(),
		})
	}

	return DeliveryDTO{
		ID:         aggregate.ID().Bytes(),
		InvoiceRef: aggregate.InvoiceRef(),
		Items:      items,
		Status:     int(aggregate.Status()),
		WorkerID:   workerID,
		VehicleID:  vehicleID,
		ClaimedAt:  aggregate.ClaimedAt(),
		Archived:   aggregate.IsArchived(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate using
// RestoreDelivery, which re-checks the status/assignment invariant.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var workerID, vehicleID *kernel.UUID
	if dto.WorkerID != nil {
		wID, wErr := kernel.UUIDFromBytes((*dto.WorkerID)[:])
		if wErr != nil {
			return nil, wErr
		}
		workerID = &wID
	}
	if dto.VehicleID != nil {
		vID, vErr := kernel.UUIDFromBytes((*dto.VehicleID)[:])
		if vErr != nil {
			return nil, vErr
		}
		vehicleID = &vID
	}

	items := make([]delivery.ItemRef, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := delivery.NewItemRef(itemDTO.SKU, itemDTO.Name, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return delivery.RestoreDelivery(
		id,
		dto.InvoiceRef,
		items,
		delivery.Status(dto.Status),
		workerID,
		vehicleID,
		dto.ClaimedAt,
		dto.CreatedAt,
		dto.Archived,
	)
}
