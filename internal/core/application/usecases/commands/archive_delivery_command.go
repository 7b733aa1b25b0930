package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrArchiveDeliveryCommandIsNotConstructed = errors.New(
	"ArchiveDeliveryCommand must be created via NewArchiveDeliveryCommand constructor",
)

// ArchiveDeliveryCommand represents operations staff hiding a terminal delivery
// from worker views. Archival is the only end of life a delivery has.
type ArchiveDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewArchiveDeliveryCommand creates an archive request.
func NewArchiveDeliveryCommand(deliveryID kernel.UUID) (ArchiveDeliveryCommand, error) {
	cmd := ArchiveDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDeliveryID(deliveryID); err != nil {
		return ArchiveDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchiveDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrArchiveDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to archive.
func (c ArchiveDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c *ArchiveDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}
