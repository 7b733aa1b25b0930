package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
)

// AddWorkerCommandHandler registers a worker account. New accounts start active.
type AddWorkerCommandHandler struct {
	uowFactory WorkerUoWFactory
}

// NewAddWorkerCommandHandler creates a handler for worker registration.
func NewAddWorkerCommandHandler(uowFactory WorkerUoWFactory) AddWorkerCommandHandler {
	return AddWorkerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the worker and returns it.
func (h AddWorkerCommandHandler) Handle(
	ctx context.Context,
	command AddWorkerCommand,
) (*worker.Worker, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	w, err := worker.NewWorker(kernel.NewUUID(), command.Name())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WorkerRepository().Add(ctx, w); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return w, nil
}
