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

// CompleteDeliveryCommandHandler applies the terminal Completed transition.
// Symmetric with the claim: the status write, the vehicle release, and the
// audit entry all commit in one transaction or not at all. A retried completion
// finds the delivery already terminal and fails the transition check before
// touching the vehicle, so the release cannot double-apply.
type CompleteDeliveryCommandHandler struct {
	uowFactory ReleaseUoWFactory
	events     ports.EventPublisher
}

// NewCompleteDeliveryCommandHandler creates a handler for completions.
func NewCompleteDeliveryCommandHandler(uowFactory ReleaseUoWFactory, events ports.EventPublisher) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		events:     events,
	}
}

// Handle processes the completion and returns the completed delivery.
func (h CompleteDeliveryCommandHandler) Handle(
	ctx context.Context,
	command CompleteDeliveryCommand,
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
	if err = d.Complete(command.WorkerID()); err != nil {
		return nil, err
	}

	if err = uow.DeliveryRepository().UpdateFrom(ctx, d, from); err != nil {
		if errors.Is(err, ports.ErrStateConflict) {
			return nil, fmt.Errorf("%w: delivery state changed concurrently", delivery.ErrInvalidTransition)
		}
		return nil, err
	}

	if err = h.releaseVehicle(ctx, uow, d); err != nil {
		return nil, err
	}

	completedStatus := d.Status()
	entry, err := deliverylog.NewEntry(
		kernel.NewUUID(),
		d.ID(),
		deliverylog.EventCompleted,
		deliverylog.NewValue{
			Status:        &completedStatus,
			Notes:         command.Notes(),
			PhotoProofURL: command.PhotoProofURL(),
		},
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

func (h CompleteDeliveryCommandHandler) releaseVehicle(
	ctx context.Context,
	uow ReleaseUoW,
	d *delivery.Delivery,
) error {
	vehicleID := d.Vehicle()
	if vehicleID == nil {
		return nil
	}

	v, err := uow.VehicleRepository().Get(ctx, *vehicleID)
	if err != nil {
		return err
	}
	if err = v.Release(); err != nil {
		return err
	}

	return uow.VehicleRepository().UpdateFrom(ctx, v, vehicle.Reserved)
}
