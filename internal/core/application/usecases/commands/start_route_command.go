package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrStartRouteCommandIsNotConstructed = errors.New(
	"StartRouteCommand must be created via NewStartRouteCommand constructor",
)

// StartRouteCommand represents the owning worker starting (or resuming after a
// delay) the route for a claimed delivery.
type StartRouteCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	workerID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartRouteCommand creates a start-route request.
func NewStartRouteCommand(deliveryID, workerID kernel.UUID) (StartRouteCommand, error) {
	cmd := StartRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setWorkerID(workerID),
	); err != nil {
		return StartRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartRouteCommand) Validate() error {
	return c.guard.Validate(ErrStartRouteCommandIsNotConstructed)
}

// DeliveryID returns the delivery whose route starts.
func (c StartRouteCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// WorkerID returns the acting worker's session identity.
func (c StartRouteCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *StartRouteCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *StartRouteCommand) setWorkerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.workerID = id
	return nil
}
