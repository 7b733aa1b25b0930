package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetStaleDeliveriesQueryIsNotConstructed = errors.New(
	"GetStaleDeliveriesQuery must be created via NewGetStaleDeliveriesQuery constructor",
)

// GetStaleDeliveriesQuery retrieves claimed deliveries whose route has not
// started within the given age. The monitoring job reports them; nothing is
// re-pooled automatically.
type GetStaleDeliveriesQuery struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetStaleDeliveriesQuery creates a stale-claim query.
func NewGetStaleDeliveriesQuery(olderThan time.Duration) (GetStaleDeliveriesQuery, error) {
	if olderThan <= 0 {
		return GetStaleDeliveriesQuery{}, errors.New("olderThan must be positive")
	}

	return GetStaleDeliveriesQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStaleDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleDeliveriesQueryIsNotConstructed)
}

// OlderThan returns the age threshold for a claim to count as stale.
func (q GetStaleDeliveriesQuery) OlderThan() time.Duration {
	return q.olderThan
}

// GetStaleDeliveriesQueryResponse represents one stale claim.
type GetStaleDeliveriesQueryResponse struct {
	ID         kernel.UUID
	InvoiceRef string
	Status     delivery.Status
	WorkerID   kernel.UUID
	ClaimedAt  time.Time
}
