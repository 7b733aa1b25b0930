package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/deliverylog"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/ports"
)

// CancelDeliveryCommandHandler applies the terminal Canceled transition by
// administrative override. Cancel works from any non-terminal status; when the
// delivery holds a vehicle, the release commits in the same transaction as the
// status write, exactly like a completion.
type CancelDeliveryCommandHandler struct {
	uowFactory ReleaseUoWFactory
	events     ports.EventPublisher
}

// NewCancelDeliveryCommandHandler creates a handler for administrative cancels.
func NewCancelDeliveryCommandHandler(uowFactory ReleaseUoWFactory, events ports.EventPublisher) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
		events:     events,
	}
}

// Handle processes the cancellation and returns the canceled delivery.
// Fails with delivery.ErrInvalidTransition when the delivery is already terminal.
func (h CancelDeliveryCommandHandler) Handle(
	ctx context.Context,
	command CancelDeliveryCommand,
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
	if err = d.Cancel(); err != nil {
		return nil, err
	}

	if err = uow.DeliveryRepository().UpdateFrom(ctx, d, from); err != nil {
		if errors.Is(err, ports.ErrStateConflict) {
			return nil, fmt.Errorf("%w: delivery state changed concurrently", delivery.ErrInvalidTransition)
		}
		return nil, err
	}

	if vehicleID := d.Vehicle(); vehicleID != nil {
		v, err := uow.VehicleRepository().Get(ctx, *vehicleID)
		if err != nil {
			return nil, err
		}
		if err = v.Release(); err != nil {
			return nil, err
		}
		if err = uow.VehicleRepository().UpdateFrom(ctx, v, vehicle.Reserved); err != nil {
			return nil, err
		}
	}

	canceledStatus := d.Status()
	entry, err := deliverylog.NewEntry(
		kernel.NewUUID(),
		d.ID(),
		deliverylog.EventStatusChange,
		deliverylog.NewValue{Status: &canceledStatus, Notes: command.Reason()},
		command.ActorID(),
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
