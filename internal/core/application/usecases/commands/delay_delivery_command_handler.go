package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/deliverylog"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// DelayDeliveryCommandHandler applies the OutForDelivery -> Delayed transition.
// Delay does not touch the vehicle: the delivery is still in progress and the
// reservation holds until a terminal transition.
type DelayDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	events     ports.EventPublisher
}

// NewDelayDeliveryCommandHandler creates a handler for delay transitions.
func NewDelayDeliveryCommandHandler(uowFactory DeliveryUoWFactory, events ports.EventPublisher) DelayDeliveryCommandHandler {
	return DelayDeliveryCommandHandler{
		uowFactory: uowFactory,
		events:     events,
	}
}

// Handle processes the delay and returns the updated delivery.
// Fails with delivery.ErrNotOwner for non-owners and
// delivery.ErrInvalidTransition unless the delivery is out for delivery.
func (h DelayDeliveryCommandHandler) Handle(
	ctx context.Context,
	command DelayDeliveryCommand,
) (*delivery.Delivery, error) {
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

	d, err := uow.DeliveryRepository().Get(ctx, command.DeliveryID())
	if err != nil {
		return nil, err
	}

	from := d.Status()
	if err = d.Delay(command.WorkerID()); err != nil {
		return nil, err
	}

	if err = uow.DeliveryRepository().UpdateFrom(ctx, d, from); err != nil {
		if errors.Is(err, ports.ErrStateConflict) {
			return nil, fmt.Errorf("%w: delivery state changed concurrently", delivery.ErrInvalidTransition)
		}
		return nil, err
	}

	newStatus := d.Status()
	entry, err := deliverylog.NewEntry(
		kernel.NewUUID(),
		d.ID(),
		deliverylog.EventStatusChange,
		deliverylog.NewValue{Status: &newStatus, Notes: command.Notes()},
		command.WorkerID(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.DeliveryLogRepository().Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.events.PublishDeliveryStatusChanged(ctx, ports.DeliveryStatusChanged{
		DeliveryID: d.ID(),
		WorkerID:   d.Worker(),
		From:       from,
		To:         d.Status(),
		OccurredAt: now,
	})

	return d, nil
}
