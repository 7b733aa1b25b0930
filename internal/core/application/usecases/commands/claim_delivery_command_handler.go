package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/attendance"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/deliverylog"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrDeliveryAlreadyClaimed is returned when the delivery left the pool before
	// this request's transaction committed. Whichever concurrent claim committed
	// first won; the loser fails cleanly with no retry.
	ErrDeliveryAlreadyClaimed = errors.New("delivery already claimed")

	// ErrVehicleUnavailable is returned when the picked vehicle is reserved by
	// another delivery, either at the precondition check or at commit time.
	ErrVehicleUnavailable = errors.New("vehicle is not available")
)

// ClaimDeliveryCommandHandler is the claim coordinator. It executes the one
// atomic unit at the heart of the engine: delivery claimed, vehicle reserved,
// audit entry appended, all-or-nothing.
//
// Preconditions inside the unit of work, in order:
//  1. worker is active and checked in, else services.ErrWorkerNotEligible
//  2. delivery exists and is pooled, else ErrDeliveryAlreadyClaimed
//  3. vehicle exists and is available, else ErrVehicleUnavailable
//
// Both writes are compare-and-set on the row's expected pre-state, so two
// sessions racing for the same delivery or the same vehicle resolve to exactly
// one winner. No partial application is observable even on the losing side.
type ClaimDeliveryCommandHandler struct {
	uowFactory ClaimUoWFactory
	events     ports.EventPublisher
}

// NewClaimDeliveryCommandHandler creates the claim coordinator.
// Events are published only after a successful commit.
func NewClaimDeliveryCommandHandler(uowFactory ClaimUoWFactory, events ports.EventPublisher) ClaimDeliveryCommandHandler {
	return ClaimDeliveryCommandHandler{
		uowFactory: uowFactory,
		events:     events,
	}
}

// Handle processes the claim and returns the claimed delivery on success.
func (h ClaimDeliveryCommandHandler) Handle(
	ctx context.Context,
	command ClaimDeliveryCommand,
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

	w, err := uow.WorkerRepository().Get(ctx, command.WorkerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, services.ErrWorkerNotEligible
	}
	if err != nil {
		return nil, err
	}

	att, err := uow.AttendanceRepository().GetForDay(ctx, command.WorkerID(), attendance.DayOf(now))
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	d, err := uow.DeliveryRepository().Get(ctx, command.DeliveryID())
	if err != nil {
		return nil, err
	}
	if d.Status() != delivery.Pooled {
		return nil, ErrDeliveryAlreadyClaimed
	}

	v, err := uow.VehicleRepository().Get(ctx, command.VehicleID())
	if err != nil {
		return nil, err
	}
	if v.Status() != vehicle.Available {
		return nil, ErrVehicleUnavailable
	}

	if err = services.NewClaimService().Claim(d, v, w, att, now); err != nil {
		return nil, err
	}

	// Compare-and-set writes: the transition only commits if both rows still
	// match the pre-state this transaction observed.
	if err = uow.DeliveryRepository().UpdateFrom(ctx, d, delivery.Pooled); err != nil {
		if errors.Is(err, ports.ErrStateConflict) {
			return nil, ErrDeliveryAlreadyClaimed
		}
		return nil, err
	}

	if err = uow.VehicleRepository().UpdateFrom(ctx, v, vehicle.Available); err != nil {
		if errors.Is(err, ports.ErrStateConflict) {
			return nil, ErrVehicleUnavailable
		}
		return nil, err
	}

	claimedStatus := d.Status()
	entry, err := deliverylog.NewEntry(
		kernel.NewUUID(),
		d.ID(),
		deliverylog.EventClaimed,
		deliverylog.NewValue{Status: &claimedStatus},
		w.ID(),
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
		From:       delivery.Pooled,
		To:         d.Status(),
		OccurredAt: now,
	})

	return d, nil
}
