package events

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

type EventType string

const (
	EventOrderCreated       EventType = "order_created"
	EventOrderStatusChanged EventType = "order_status_changed"
	EventMessageReceived    EventType = "message_received"
	EventCampaignProgress   EventType = "campaign_progress"
)

// Event is delivered to SSE subscribers of a single store.
type Event struct {
	Type EventType `json:"type"`
	Data any       `json:"data"`
}

type subscriber struct {
	storeID uuid.UUID
	ch      chan Event
}

// Bus fans out store-scoped events to SSE subscribers.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string]subscriber
}

func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[string]subscriber),
	}
}

// Subscribe registers a subscriber for one store's events. The returned
// channel is closed when ctx is done.
func (b *Bus) Subscribe(ctx context.Context, id string, storeID uuid.UUID) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, 16)
	b.subscribers[id] = subscriber{storeID: storeID, ch: ch}

	go func() {
		<-ctx.Done()
		b.Unsubscribe(id)
	}()

	return ch
}

func (b *Bus) Unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if sub, ok := b.subscribers[id]; ok {
		close(sub.ch)
		delete(b.subscribers, id)
	}
}

// Publish delivers an event to every subscriber of the given store.
// Slow subscribers are skipped rather than blocking the publisher.
func (b *Bus) Publish(storeID uuid.UUID, eventType EventType, data any) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	event := Event{Type: eventType, Data: data}
	for _, sub := range b.subscribers {
		if sub.storeID != storeID {
			continue
		}
		select {
		case sub.ch <- event:
		default:
		}
	}
}

// FormatSSE renders an event in text/event-stream framing.
func FormatSSE(event Event) (string, error) {
	data, err := json.Marshal(event.Data)
	if err != nil {
		return "", err
	}
	return "event: " + string(event.Type) + "\ndata: " + string(data) + "\n\n", nil
}
