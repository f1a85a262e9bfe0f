package api

import (
	"io"
	"net/http"
	"time"

	"franguinho-pos/internal/handler/middleware"
	"franguinho-pos/internal/infra/events"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sseHeartbeatInterval = 25 * time.Second

// Event types carried by each SSE resource stream.
var (
	orderEvents = map[events.EventType]struct{}{
		events.EventOrderCreated:       {},
		events.EventOrderStatusChanged: {},
	}
	messageEvents = map[events.EventType]struct{}{
		events.EventMessageReceived:  {},
		events.EventCampaignProgress: {},
	}
)

type EventsHandler struct {
	bus *events.Bus
}

func NewEventsHandler(bus *events.Bus) *EventsHandler {
	return &EventsHandler{
		bus: bus,
	}
}

// @Summary Stream order events
// @Description Server-sent event stream of order creation and status changes for the caller's store.
// @Tags events
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {string} string "event stream"
// @Router /events/orders [get]
func (h *EventsHandler) Orders(c *gin.Context) {
	h.stream(c, orderEvents)
}

// @Summary Stream message events
// @Description Server-sent event stream of inbound chat messages and campaign progress for the caller's store.
// @Tags events
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {string} string "event stream"
// @Router /events/messages [get]
func (h *EventsHandler) Messages(c *gin.Context) {
	h.stream(c, messageEvents)
}

func (h *EventsHandler) stream(c *gin.Context, allowed map[events.EventType]struct{}) {
	storeID, ok := middleware.GetStoreID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	subscriberID := uuid.NewString()
	eventCh := h.bus.Subscribe(c.Request.Context(), subscriberID, storeID)
	defer h.bus.Unsubscribe(subscriberID)

	heartbeat := time.NewTicker(sseHeartbeatInterval)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case event, open := <-eventCh:
			if !open {
				return false
			}
			if !eventAllowed(allowed, event.Type) {
				return true
			}
			frame, err := events.FormatSSE(event)
			if err != nil {
				return true
			}
			_, _ = io.WriteString(w, frame)
			return true
		case <-heartbeat.C:
			// Comment frame keeps intermediaries from closing the idle connection.
			_, _ = io.WriteString(w, ": ping\n\n")
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func eventAllowed(allowed map[events.EventType]struct{}, t events.EventType) bool {
	_, ok := allowed[t]
	return ok
}
