package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrEditDeliveryLogCommandIsNotConstructed = errors.New(
	"EditDeliveryLogCommand must be created via NewEditDeliveryLogCommand constructor",
)

// EditDeliveryLogCommand represents the author of an audit entry revising its
// notes. Edits revise the entry in place; they never append a new one.
type EditDeliveryLogCommand struct { //nolint:recvcheck //using for validation
	entryID kernel.UUID
	actorID kernel.UUID
	notes   string

	guard guard.ConstructorGuard
}

// NewEditDeliveryLogCommand creates a log revision request.
func NewEditDeliveryLogCommand(entryID, actorID kernel.UUID, notes string) (EditDeliveryLogCommand, error) {
	cmd := EditDeliveryLogCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEntryID(entryID),
		cmd.setActorID(actorID),
	); err != nil {
		return EditDeliveryLogCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditDeliveryLogCommand) Validate() error {
	return c.guard.Validate(ErrEditDeliveryLogCommandIsNotConstructed)
}

// EntryID returns the audit entry to revise.
func (c EditDeliveryLogCommand) EntryID() kernel.UUID {
	return c.entryID
}

// ActorID returns the acting worker's session identity.
func (c EditDeliveryLogCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Notes returns the replacement notes.
func (c EditDeliveryLogCommand) Notes() string {
	return c.notes
}

func (c *EditDeliveryLogCommand) setEntryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.entryID = id
	return nil
}

func (c *EditDeliveryLogCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
