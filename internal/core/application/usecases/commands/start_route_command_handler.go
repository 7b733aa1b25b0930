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

// StartRouteCommandHandler applies the Claimed -> OutForDelivery transition
// (and the Delayed -> OutForDelivery resume). No side effects beyond the status
// write and the audit entry; the vehicle stays reserved throughout.
type StartRouteCommandHandler struct {
	uowFactory DeliveryUoWFactory
	events     ports.EventPublisher
}

// NewStartRouteCommandHandler creates a handler for start-route transitions.
func NewStartRouteCommandHandler(uowFactory DeliveryUoWFactory, events ports.EventPublisher) StartRouteCommandHandler {
	return StartRouteCommandHandler{
		uowFactory: uowFactory,
		events:     events,
	}
}

// Handle processes the transition and returns the updated delivery.
// Fails with delivery.ErrNotOwner for non-owners and
// delivery.ErrInvalidTransition when the delivery is not in a startable status;
// neither failure writes anything.
func (h StartRouteCommandHandler) Handle(
	ctx context.Context,
	command StartRouteCommand,
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
	if err = d.StartRoute(command.WorkerID()); err != nil {
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
		deliverylog.NewValue{Status: &newStatus},
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
