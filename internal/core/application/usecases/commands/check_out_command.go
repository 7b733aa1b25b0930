package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCheckOutCommandIsNotConstructed = errors.New(
	"CheckOutCommand must be created via NewCheckOutCommand constructor",
)

// CheckOutCommand represents a worker closing today's attendance record.
type CheckOutCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckOutCommand creates a check-out request.
func NewCheckOutCommand(workerID kernel.UUID) (CheckOutCommand, error) {
	cmd := CheckOutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setWorkerID(workerID); err != nil {
		return CheckOutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckOutCommand) Validate() error {
	return c.guard.Validate(ErrCheckOutCommandIsNotConstructed)
}

// WorkerID returns the worker checking out.
func (c CheckOutCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *CheckOutCommand) setWorkerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.workerID = id
	return nil
}
