// Package notify provides the in-memory notification feed workers poll.
// The feed is a projection of committed delivery events: it subscribes to the
// event bus and turns each state change into a human-readable item for the
// owning worker.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// maxItemsPerWorker caps how much feed history one worker accumulates.
// Oldest items fall off first.
const maxItemsPerWorker = 100

// Feed is an in-memory implementation of ports.NotificationFeed.
type Feed struct {
	mu    sync.RWMutex
	items map[kernel.UUID][]ports.Notification
}

// NewFeed creates an empty feed.
func NewFeed() *Feed {
	return &Feed{
		items: make(map[kernel.UUID][]ports.Notification),
	}
}

// Run consumes the event channel until it closes, projecting each event into
// the owning worker's feed. Meant to run in its own goroutine.
func (f *Feed) Run(events <-chan ports.DeliveryStatusChanged) {
	for event := range events {
		if event.WorkerID == nil {
			continue
		}
		f.append(*event.WorkerID, ports.Notification{
			ID:        kernel.NewUUID(),
			WorkerID:  *event.WorkerID,
			Message:   formatMessage(event),
			CreatedAt: event.OccurredAt,
		})
	}
}

// List returns a worker's notifications, newest first, with the unread count.
func (f *Feed) List(_ context.Context, workerID kernel.UUID) ([]ports.Notification, int, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	stored := f.items[workerID]
	items := make([]ports.Notification, 0, len(stored))
	unread := 0

	// Stored oldest first; reverse for newest-first listing.
	for i := len(stored) - 1; i >= 0; i-- {
		if !stored[i].Read {
			unread++
		}
		items = append(items, stored[i])
	}

	return items, unread, nil
}

// MarkAllRead acknowledges every unread notification for the worker.
func (f *Feed) MarkAllRead(_ context.Context, workerID kernel.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored := f.items[workerID]
	for i := range stored {
		stored[i].Read = true
	}

	return nil
}

func (f *Feed) append(workerID kernel.UUID, n ports.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored := append(f.items[workerID], n)
	if len(stored) > maxItemsPerWorker {
		stored = stored[len(stored)-maxItemsPerWorker:]
	}
	f.items[workerID] = stored
}

func formatMessage(event ports.DeliveryStatusChanged) string {
	return fmt.Sprintf(
		"Delivery %s moved from %s to %s at %s",
		event.DeliveryID,
		event.From,
		event.To,
		event.OccurredAt.Format(time.RFC3339),
	)
}
