//go:build unit

package api

import (
	"testing"

	"franguinho-pos/internal/infra/events"

	"github.com/stretchr/testify/assert"
)

func TestEventStreamScopes(t *testing.T) {
	t.Run("orders stream carries only order events", func(t *testing.T) {
		assert.True(t, eventAllowed(orderEvents, events.EventOrderCreated))
		assert.True(t, eventAllowed(orderEvents, events.EventOrderStatusChanged))
		assert.False(t, eventAllowed(orderEvents, events.EventMessageReceived))
		assert.False(t, eventAllowed(orderEvents, events.EventCampaignProgress))
	})

	t.Run("messages stream carries chat and campaign events", func(t *testing.T) {
		assert.True(t, eventAllowed(messageEvents, events.EventMessageReceived))
		assert.True(t, eventAllowed(messageEvents, events.EventCampaignProgress))
		assert.False(t, eventAllowed(messageEvents, events.EventOrderCreated))
		assert.False(t, eventAllowed(messageEvents, events.EventOrderStatusChanged))
	})
}
