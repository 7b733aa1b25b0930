// Package vehiclerepo provides data transfer objects and mapping functions for
// vehicle persistence.
package vehiclerepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle aggregates.
// Status is indexed because the claim dialog filters on it.
type VehicleDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Type   int
	Status int `gorm:"index"`
}

// TableName specifies the database table name for vehicle entities.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle domain aggregate to its database representation.
func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Type:   int(aggregate.Type()),
		Status: int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a vehicle domain aggregate.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(id, dto.Name, vehicle.Type(dto.Type), vehicle.VehicleStatus(dto.Status))
}
