package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// Notification is one item in a worker's polled notification feed.
type Notification struct {
	ID        kernel.UUID
	WorkerID  kernel.UUID
	Message   string
	CreatedAt time.Time
	Read      bool
}

// NotificationFeed is the external notification collaborator as seen by the
// engine. Workers poll it; the engine only needs to read a worker's items and
// acknowledge them.
type NotificationFeed interface {
	// List returns a worker's notifications, newest first, together with the
	// number of unread items.
	List(ctx context.Context, workerID kernel.UUID) ([]Notification, int, error)

	// MarkAllRead acknowledges every unread notification for the worker.
	MarkAllRead(ctx context.Context, workerID kernel.UUID) error
}
