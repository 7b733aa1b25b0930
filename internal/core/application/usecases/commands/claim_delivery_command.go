package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrClaimDeliveryCommandIsNotConstructed = errors.New(
	"ClaimDeliveryCommand must be created via NewClaimDeliveryCommand constructor",
)

// ClaimDeliveryCommand represents a worker's request to take exclusive
// ownership of a pooled delivery together with a specific vehicle.
//
// The worker identifier is the explicit session value carried by every
// coordinator call; nothing is read from ambient storage.
type ClaimDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	vehicleID  kernel.UUID
	workerID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimDeliveryCommand creates a claim request.
// All three identifiers must be valid UUIDs.
func NewClaimDeliveryCommand(deliveryID, vehicleID, workerID kernel.UUID) (ClaimDeliveryCommand, error) {
	cmd := ClaimDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setVehicleID(vehicleID),
		cmd.setWorkerID(workerID),
	); err != nil {
		return ClaimDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrClaimDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to claim.
func (c ClaimDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// VehicleID returns the vehicle picked for the claim.
func (c ClaimDeliveryCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// WorkerID returns the claiming worker's session identity.
func (c ClaimDeliveryCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *ClaimDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *ClaimDeliveryCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.vehicleID = id
	return nil
}

func (c *ClaimDeliveryCommand) setWorkerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.workerID = id
	return nil
}
