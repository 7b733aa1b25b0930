package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDelayDeliveryCommandIsNotConstructed = errors.New(
	"DelayDeliveryCommand must be created via NewDelayDeliveryCommand constructor",
)

// DelayDeliveryCommand represents the owning worker flagging a delivery as
// taking longer than expected. The optional notes explain the delay to the
// customer-facing side.
type DelayDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	workerID   kernel.UUID
	notes      string

	guard guard.ConstructorGuard
}

// NewDelayDeliveryCommand creates a delay request. Notes may be empty.
func NewDelayDeliveryCommand(deliveryID, workerID kernel.UUID, notes string) (DelayDeliveryCommand, error) {
	cmd := DelayDeliveryCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setWorkerID(workerID),
	); err != nil {
		return DelayDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DelayDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrDelayDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to flag as delayed.
func (c DelayDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// WorkerID returns the acting worker's session identity.
func (c DelayDeliveryCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// Notes returns the worker's explanation of the delay.
func (c DelayDeliveryCommand) Notes() string {
	return c.notes
}

func (c *DelayDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *DelayDeliveryCommand) setWorkerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.workerID = id
	return nil
}
