package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/attendance"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// CheckInCommandHandler opens today's attendance record for a worker.
// Check-in is idempotent per calendar day: a repeat check-in returns the
// existing record untouched, keeping the original check-in time and status.
type CheckInCommandHandler struct {
	uowFactory AttendanceUoWFactory
}

// NewCheckInCommandHandler creates a handler for check-ins.
func NewCheckInCommandHandler(uowFactory AttendanceUoWFactory) CheckInCommandHandler {
	return CheckInCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle records the check-in and returns today's record.
func (h CheckInCommandHandler) Handle(
	ctx context.Context,
	command CheckInCommand,
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

	if _, err := uow.WorkerRepository().Get(ctx, command.WorkerID()); err != nil {
		return nil, err
	}

	existing, err := uow.AttendanceRepository().GetForDay(ctx, command.WorkerID(), attendance.DayOf(now))
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	record, err := attendance.NewRecord(kernel.NewUUID(), command.WorkerID(), now)
	if err != nil {
		return nil, err
	}

	if err = uow.AttendanceRepository().Add(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return record, nil
}
