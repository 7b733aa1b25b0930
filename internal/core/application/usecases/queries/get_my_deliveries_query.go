package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetMyDeliveriesQueryIsNotConstructed = errors.New(
	"GetMyDeliveriesQuery must be created via NewGetMyDeliveriesQuery constructor",
)

// GetMyDeliveriesQuery retrieves one worker's deliveries: everything the worker
// currently holds plus their terminal history, minus archived rows.
type GetMyDeliveriesQuery struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMyDeliveriesQuery creates a query for a worker's deliveries.
func NewGetMyDeliveriesQuery(workerID kernel.UUID) (GetMyDeliveriesQuery, error) {
	if err := workerID.Validate(); err != nil {
		return GetMyDeliveriesQuery{}, err
	}

	return GetMyDeliveriesQuery{
		workerID: workerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMyDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetMyDeliveriesQueryIsNotConstructed)
}

// WorkerID returns the worker whose deliveries to list.
func (q GetMyDeliveriesQuery) WorkerID() kernel.UUID {
	return q.workerID
}

// GetMyDeliveriesQueryResponse represents one delivery held by (or previously
// handled by) the worker.
type GetMyDeliveriesQueryResponse struct {
	ID         kernel.UUID
	InvoiceRef string
	Items      []ItemResponse
	Status     delivery.Status
	VehicleID  *kernel.UUID
	ClaimedAt  *time.Time
	CreatedAt  time.Time
}
