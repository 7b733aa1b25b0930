package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/pkg/guard"
)

var ErrAddVehicleCommandIsNotConstructed = errors.New(
	"AddVehicleCommand must be created via NewAddVehicleCommand constructor",
)

// AddVehicleCommand represents operations staff seeding a fleet vehicle.
type AddVehicleCommand struct { //nolint:recvcheck //using for validation
	name  string
	vtype vehicle.Type

	guard guard.ConstructorGuard
}

// NewAddVehicleCommand creates a vehicle seeding request.
func NewAddVehicleCommand(name string, vtype vehicle.Type) (AddVehicleCommand, error) {
	if err := vtype.Validate(); err != nil {
		return AddVehicleCommand{}, err
	}

	return AddVehicleCommand{
		name:  name,
		vtype: vtype,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAddVehicleCommandIsNotConstructed)
}

// Name returns the registration name of the new vehicle.
func (c AddVehicleCommand) Name() string {
	return c.name
}

// Type returns the vehicle type.
func (c AddVehicleCommand) Type() vehicle.Type {
	return c.vtype
}
