package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/attendance"
	"dispatch/internal/pkg/errs"
)

// ErrNotCheckedIn is returned when checking out without having checked in today.
var ErrNotCheckedIn = errors.New("worker has not checked in today")

// CheckOutCommandHandler closes today's attendance record for a worker.
// Once the record closes, the worker loses claim eligibility for the rest of
// the day; deliveries already claimed stay theirs.
type CheckOutCommandHandler struct {
	uowFactory AttendanceUoWFactory
}

// NewCheckOutCommandHandler creates a handler for check-outs.
func NewCheckOutCommandHandler(uowFactory AttendanceUoWFactory) CheckOutCommandHandler {
	return CheckOutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle records the check-out and returns the closed record.
// Fails with ErrNotCheckedIn when today has no record and
// attendance.ErrAlreadyCheckedOut on a repeat check-out.
func (h CheckOutCommandHandler) Handle(
	ctx context.Context,
	command CheckOutCommand,
) (*attendance.Record, error) {
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

	record, err := uow.AttendanceRepository().GetForDay(ctx, command.WorkerID(), attendance.DayOf(now))
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNotCheckedIn
	}
	if err != nil {
		return nil, err
	}

	if err = record.CheckOut(now); err != nil {
		return nil, err
	}

	if err = uow.AttendanceRepository().Update(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return record, nil
}
