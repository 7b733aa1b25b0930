// Package eventbus provides an in-process publish/subscribe bus for delivery
// state-change events. The engine is push-agnostic: handlers publish here after
// commit, and transports (the polling notification feed today, WebSocket or SSE
// later) subscribe without the core knowing about them.
package eventbus

import (
	"context"
	"sync"

	"dispatch/internal/core/ports"
)

// subscriberBuffer bounds each subscriber channel. A subscriber that falls this
// far behind starts losing events rather than blocking publishers.
const subscriberBuffer = 64

// Bus is an in-memory fan-out implementation of ports.EventPublisher.
// Publishing never blocks a command handler; delivery to slow subscribers is
// best effort.
type Bus struct {
	mu          sync.RWMutex
	subscribers []chan ports.DeliveryStatusChanged
	closed      bool
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a new subscriber and returns its event channel.
// The channel is closed when the bus shuts down.
func (b *Bus) Subscribe() <-chan ports.DeliveryStatusChanged {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan ports.DeliveryStatusChanged, subscriberBuffer)
	if b.closed {
		close(ch)
		return ch
	}

	b.subscribers = append(b.subscribers, ch)
	return ch
}

// PublishDeliveryStatusChanged fans the event out to all subscribers.
// Subscribers with a full buffer miss the event.
func (b *Bus) PublishDeliveryStatusChanged(_ context.Context, event ports.DeliveryStatusChanged) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	for _, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// Close shuts the bus down and closes all subscriber channels.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for _, ch := range b.subscribers {
		close(ch)
	}
	b.subscribers = nil
}
