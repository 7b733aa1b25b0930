package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCheckInCommandIsNotConstructed = errors.New(
	"CheckInCommand must be created via NewCheckInCommand constructor",
)

// CheckInCommand represents a worker opening today's attendance record.
type CheckInCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckInCommand creates a check-in request.
func NewCheckInCommand(workerID kernel.UUID) (CheckInCommand, error) {
	cmd := CheckInCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setWorkerID(workerID); err != nil {
		return CheckInCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckInCommand) Validate() error {
	return c.guard.Validate(ErrCheckInCommandIsNotConstructed)
}

// WorkerID returns the worker checking in.
func (c CheckInCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *CheckInCommand) setWorkerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.workerID = id
	return nil
}
