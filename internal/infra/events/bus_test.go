//go:build unit

package events_test

import (
	"context"
	"testing"
	"time"

	"franguinho-pos/internal/infra/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiveOne(t *testing.T, ch <-chan events.Event) events.Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("no event received")
		return events.Event{}
	}
}

func TestBusPublish(t *testing.T) {
	t.Run("events reach only the store's subscribers", func(t *testing.T) {
		bus := events.NewBus()
		storeA := uuid.New()
		storeB := uuid.New()

		chA := bus.Subscribe(context.Background(), "sub-a", storeA)
		chB := bus.Subscribe(context.Background(), "sub-b", storeB)
		defer bus.Unsubscribe("sub-a")
		defer bus.Unsubscribe("sub-b")

		bus.Publish(storeA, events.EventOrderCreated, map[string]string{"order_id": "1"})

		ev := receiveOne(t, chA)
		assert.Equal(t, events.EventOrderCreated, ev.Type)

		select {
		case ev := <-chB:
			t.Fatalf("store B received a store A event: %v", ev)
		default:
		}
	})

	t.Run("unsubscribe closes the channel", func(t *testing.T) {
		bus := events.NewBus()
		ch := bus.Subscribe(context.Background(), "sub", uuid.New())
		bus.Unsubscribe("sub")

		_, open := <-ch
		assert.False(t, open)
	})

	t.Run("context cancellation unsubscribes", func(t *testing.T) {
		bus := events.NewBus()
		ctx, cancel := context.WithCancel(context.Background())
		ch := bus.Subscribe(ctx, "sub", uuid.New())
		cancel()

		select {
		case _, open := <-ch:
			assert.False(t, open)
		case <-time.After(time.Second):
			t.Fatal("channel not closed after context cancellation")
		}
	})

	t.Run("full subscriber buffers never block the publisher", func(t *testing.T) {
		bus := events.NewBus()
		storeID := uuid.New()
		bus.Subscribe(context.Background(), "slow", storeID)
		defer bus.Unsubscribe("slow")

		for i := 0; i < 64; i++ {
			bus.Publish(storeID, events.EventOrderStatusChanged, i)
		}
	})
}

func TestFormatSSE(t *testing.T) {
	frame, err := events.FormatSSE(events.Event{
		Type: events.EventOrderStatusChanged,
		Data: map[string]string{"status": "ready"},
	})
	require.NoError(t, err)
	assert.Equal(t, "event: order_status_changed\ndata: {\"status\":\"ready\"}\n\n", frame)
}
