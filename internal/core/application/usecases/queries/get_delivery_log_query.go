package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/deliverylog"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetDeliveryLogQueryIsNotConstructed = errors.New(
	"GetDeliveryLogQuery must be created via NewGetDeliveryLogQuery constructor",
)

// GetDeliveryLogQuery retrieves the audit trail of one delivery in
// chronological order.
type GetDeliveryLogQuery struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryLogQuery creates a query for a delivery's audit trail.
func NewGetDeliveryLogQuery(deliveryID kernel.UUID) (GetDeliveryLogQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryLogQuery{}, err
	}

	return GetDeliveryLogQuery{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryLogQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryLogQueryIsNotConstructed)
}

// DeliveryID returns the delivery whose trail to read.
func (q GetDeliveryLogQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// GetDeliveryLogQueryResponse represents one audit entry.
// Status is nil for entries that did not record a transition.
type GetDeliveryLogQueryResponse struct {
	ID            kernel.UUID
	EventType     deliverylog.EventType
	Status        *delivery.Status
	Notes         string
	PhotoProofURL string
	CreatedBy     kernel.UUID
	CreatedAt     time.Time
}
