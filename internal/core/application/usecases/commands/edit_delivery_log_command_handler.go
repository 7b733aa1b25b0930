package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/deliverylog"
)

// EditDeliveryLogCommandHandler revises the notes of an audit entry.
// The domain enforces authorship and the 12-hour edit window; past the window
// the original entry stands and the caller gets deliverylog.ErrEditWindowExpired.
type EditDeliveryLogCommandHandler struct {
	uowFactory LogUoWFactory
}

// NewEditDeliveryLogCommandHandler creates a handler for log revisions.
func NewEditDeliveryLogCommandHandler(uowFactory LogUoWFactory) EditDeliveryLogCommandHandler {
	return EditDeliveryLogCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle revises the entry and returns it.
func (h EditDeliveryLogCommandHandler) Handle(
	ctx context.Context,
	command EditDeliveryLogCommand,
) (*deliverylog.Entry, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	entry, err := uow.DeliveryLogRepository().Get(ctx, command.EntryID())
	if err != nil {
		return nil, err
	}

	if err = entry.EditNotes(command.ActorID(), command.Notes(), now); err != nil {
		return nil, err
	}

	if err = uow.DeliveryLogRepository().Update(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}
