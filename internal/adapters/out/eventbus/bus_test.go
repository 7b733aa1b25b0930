package eventbus_test

import (
	"testing"
	"time"

	"dispatch/internal/adapters/out/eventbus"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() ports.DeliveryStatusChanged {
	workerID := kernel.NewUUID()
	return ports.DeliveryStatusChanged{
		DeliveryID: kernel.NewUUID(),
		WorkerID:   &workerID,
		From:       delivery.Pooled,
		To:         delivery.Claimed,
		OccurredAt: time.Now().UTC(),
	}
}

func TestBusPublishFansOutToAllSubscribers(t *testing.T) {
	bus := eventbus.NewBus()
	defer bus.Close()

	first := bus.Subscribe()
	second := bus.Subscribe()

	event := testEvent()
	bus.PublishDeliveryStatusChanged(t.Context(), event)

	got := <-first
	assert.Equal(t, event.DeliveryID, got.DeliveryID)
	got = <-second
	assert.Equal(t, delivery.Claimed, got.To)
}

func TestBusCloseClosesSubscriberChannels(t *testing.T) {
	bus := eventbus.NewBus()
	ch := bus.Subscribe()

	bus.Close()

	_, open := <-ch
	assert.False(t, open)
}

func TestBusSubscribeAfterClose(t *testing.T) {
	bus := eventbus.NewBus()
	bus.Close()

	ch := bus.Subscribe()

	_, open := <-ch
	assert.False(t, open)
}

func TestBusPublishAfterCloseIsNoOp(t *testing.T) {
	bus := eventbus.NewBus()
	bus.Close()

	// Must not panic on closed channels.
	bus.PublishDeliveryStatusChanged(t.Context(), testEvent())
}

func TestBusPublishNeverBlocksOnSlowSubscriber(t *testing.T) {
	bus := eventbus.NewBus()
	defer bus.Close()

	ch := bus.Subscribe()

	// Overrun the subscriber buffer without draining; every publish must return.
	for i := 0; i < 200; i++ {
		bus.PublishDeliveryStatusChanged(t.Context(), testEvent())
	}

	drained := 0
	for {
		select {
		case <-ch:
			drained++
		default:
			require.Greater(t, drained, 0)
			assert.Less(t, drained, 200)
			return
		}
	}
}
