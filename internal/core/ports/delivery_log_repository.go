package ports

import (
	"context"

	"dispatch/internal/core/domain/model/deliverylog"
	"dispatch/internal/core/domain/model/kernel"
)

// DeliveryLogRepository defines the persistence contract for audit entries.
// The log is append-only; Update exists solely for the bounded notes revision
// permitted by the edit window.
type DeliveryLogRepository interface {
	// Add appends a new audit entry. Called from inside the same unit of work
	// as the transition it records.
	Add(ctx context.Context, aggregate *deliverylog.Entry) error

	// Update persists a notes revision on an existing entry.
	Update(ctx context.Context, aggregate *deliverylog.Entry) error

	// Get retrieves an audit entry by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*deliverylog.Entry, error)
}
