package commands

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
)

// ArchiveDeliveryCommandHandler hides a terminal delivery from worker views.
// Not a lifecycle transition: the status stays terminal, so no audit entry and
// no event. Terminal statuses never change concurrently, which makes a plain
// update safe here.
type ArchiveDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewArchiveDeliveryCommandHandler creates a handler for archival.
func NewArchiveDeliveryCommandHandler(uowFactory DeliveryUoWFactory) ArchiveDeliveryCommandHandler {
	return ArchiveDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle archives the delivery.
// Fails with delivery.ErrInvalidTransition when the delivery is not terminal.
func (h ArchiveDeliveryCommandHandler) Handle(
	ctx context.Context,
	command ArchiveDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DeliveryRepository().Get(ctx, command.DeliveryID())
	if err != nil {
		return nil, err
	}

	if err = d.Archive(); err != nil {
		return nil, err
	}

	if err = uow.DeliveryRepository().Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
