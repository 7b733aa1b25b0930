package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

// CreateDeliveryCommandHandler ingests an external invoice into the pool.
// The new delivery is visible to every worker in creation order until one of
// them claims it.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for pool ingestion.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the pooled delivery and returns it.
func (h CreateDeliveryCommandHandler) Handle(
	ctx context.Context,
	command CreateDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	items := make([]delivery.ItemRef, 0, len(command.Items()))
	for _, spec := range command.Items() {
		item, err := delivery.NewItemRef(spec.SKU, spec.Name, spec.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	d, err := delivery.NewDelivery(kernel.NewUUID(), command.InvoiceRef(), items, time.Now().UTC())
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

	if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
