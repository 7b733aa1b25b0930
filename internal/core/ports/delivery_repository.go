package ports

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

// ErrStateConflict is returned by conditional updates when the row no longer
// matches the expected pre-state. This is how the losing side of a claim race
// observes the conflict: expected under concurrency, not a bug, and never
// retried automatically.
var ErrStateConflict = errors.New("aggregate state changed concurrently")

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate unconditionally.
	// Only usable for mutations that cannot race (archival); lifecycle
	// transitions must go through UpdateFrom.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// UpdateFrom persists changes to a delivery only if its stored status still
	// equals expected. This compare-and-set is what removes the claim TOCTOU
	// race without an external lock manager: exactly one concurrent transition
	// matches the pre-state, all others get ErrStateConflict.
	UpdateFrom(ctx context.Context, aggregate *delivery.Delivery, expected delivery.Status) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)
}
