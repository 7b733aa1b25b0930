package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// UpdateFrom persists the vehicle's reservation toggle only if its stored
	// status still equals expected, mirroring DeliveryRepository.UpdateFrom.
	// Vehicles have no unconditional update: their only mutation is the
	// Available ⇄ Reserved toggle, which always races.
	UpdateFrom(ctx context.Context, aggregate *vehicle.Vehicle, expected vehicle.VehicleStatus) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)
}
