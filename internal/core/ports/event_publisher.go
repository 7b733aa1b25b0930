package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

// DeliveryStatusChanged is emitted after a delivery transition commits.
// The engine itself is push-agnostic: events let any transport (polling feed
// today, WebSocket or SSE later) observe state changes without touching the
// coordinator or state machine.
type DeliveryStatusChanged struct {
	DeliveryID kernel.UUID
	WorkerID   *kernel.UUID
	From       delivery.Status
	To         delivery.Status
	OccurredAt time.Time
}

// EventPublisher publishes state-change events to interested subscribers.
// Publishing happens strictly after the transition's transaction commits, so
// subscribers never observe a state that was rolled back.
type EventPublisher interface {
	PublishDeliveryStatusChanged(ctx context.Context, event DeliveryStatusChanged)
}
