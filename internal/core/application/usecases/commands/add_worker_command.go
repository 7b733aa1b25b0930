package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrAddWorkerCommandIsNotConstructed = errors.New(
	"AddWorkerCommand must be created via NewAddWorkerCommand constructor",
)

// AddWorkerCommand represents operations staff registering a delivery worker.
type AddWorkerCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

// NewAddWorkerCommand creates a worker registration request.
func NewAddWorkerCommand(name string) (AddWorkerCommand, error) {
	return AddWorkerCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddWorkerCommand) Validate() error {
	return c.guard.Validate(ErrAddWorkerCommandIsNotConstructed)
}

// Name returns the display name of the new worker.
func (c AddWorkerCommand) Name() string {
	return c.name
}
