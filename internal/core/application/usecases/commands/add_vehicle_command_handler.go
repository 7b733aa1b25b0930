package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/vehicle"
)

// AddVehicleCommandHandler seeds a fleet vehicle. New vehicles start Available.
type AddVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewAddVehicleCommandHandler creates a handler for vehicle seeding.
func NewAddVehicleCommandHandler(uowFactory VehicleUoWFactory) AddVehicleCommandHandler {
	return AddVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the vehicle and returns it.
func (h AddVehicleCommandHandler) Handle(
	ctx context.Context,
	command AddVehicleCommand,
) (*vehicle.Vehicle, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	v, err := vehicle.NewVehicle(kernel.NewUUID(), command.Name(), command.Type())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VehicleRepository().Add(ctx, v); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return v, nil
}
