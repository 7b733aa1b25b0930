package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// defaultCompletionNotes is recorded when the worker completes without notes.
const defaultCompletionNotes = "Delivered"

// CompleteDeliveryCommand represents the owning worker marking a delivery as
// handed over, optionally with notes and a photo proof URL.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID    kernel.UUID
	workerID      kernel.UUID
	notes         string
	photoProofURL string

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a completion request.
// Empty notes default to "Delivered"; the photo proof URL is optional.
func NewCompleteDeliveryCommand(
	deliveryID, workerID kernel.UUID,
	notes, photoProofURL string,
) (CompleteDeliveryCommand, error) {
	if notes == "" {
		notes = defaultCompletionNotes
	}

	cmd := CompleteDeliveryCommand{
		notes:         notes,
		photoProofURL: photoProofURL,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setWorkerID(workerID),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to complete.
func (c CompleteDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// WorkerID returns the acting worker's session identity.
func (c CompleteDeliveryCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// Notes returns the completion notes, never empty.
func (c CompleteDeliveryCommand) Notes() string {
	return c.notes
}

// PhotoProofURL returns the optional proof-of-delivery photo URL.
func (c CompleteDeliveryCommand) PhotoProofURL() string {
	return c.photoProofURL
}

func (c *CompleteDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *CompleteDeliveryCommand) setWorkerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.workerID = id
	return nil
}
