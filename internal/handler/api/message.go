package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "franguinho-pos/internal/handler/dto/request"
	resdto "franguinho-pos/internal/handler/dto/response"
	"franguinho-pos/internal/handler/middleware"
	"franguinho-pos/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messagingUseCase usecase.MessagingUseCase
}

func NewMessageHandler(messagingUseCase usecase.MessagingUseCase) *MessageHandler {
	return &MessageHandler{
		messagingUseCase: messagingUseCase,
	}
}

// @Summary Send message
// @Description Send a WhatsApp message to a customer
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SendMessageRequest true "Message"
// @Success 201 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	storeID, ok := middleware.GetStoreID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rm, err := h.messagingUseCase.Send(c.Request.Context(), storeID, req)
	if err != nil {
		if errors.Is(err, usecase.ErrMessageDelivery) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Message delivery failed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromMessageRM(rm))
}

// @Summary List conversations
// @Description Latest message per customer phone
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ConversationResponse
// @Router /messages/conversations [get]
func (h *MessageHandler) Conversations(c *gin.Context) {
	storeID, ok := middleware.GetStoreID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	conversations, err := h.messagingUseCase.ListConversations(c.Request.Context(), storeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromConversationRMs(conversations))
}

// @Summary Conversation history
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param phone path string true "Customer phone"
// @Param limit query int false "Max messages (default 50)"
// @Success 200 {array} resdto.MessageResponse
// @Router /messages/conversations/{phone} [get]
func (h *MessageHandler) History(c *gin.Context) {
	storeID, ok := middleware.GetStoreID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	phone := c.Param("phone")
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone is required"})
		return
	}

	var limit int32
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = int32(parsed)
	}

	messages, err := h.messagingUseCase.ListByClient(c.Request.Context(), storeID, phone, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMessageRMs(messages))
}
