package api

import (
	"errors"
	"net/http"

	reqdto "franguinho-pos/internal/handler/dto/request"
	resdto "franguinho-pos/internal/handler/dto/response"
	"franguinho-pos/internal/handler/httperr"
	"franguinho-pos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives calls from the messaging bridge. These requests
// carry a store token instead of a staff session.
type WebhookHandler struct {
	messagingUseCase usecase.MessagingUseCase
}

func NewWebhookHandler(messagingUseCase usecase.MessagingUseCase) *WebhookHandler {
	return &WebhookHandler{
		messagingUseCase: messagingUseCase,
	}
}

// @Summary Inbound message webhook
// @Description Receive a customer message from the messaging bridge
// @Tags webhooks
// @Accept json
// @Produce json
// @Param request body reqdto.InboundMessageRequest true "Inbound message"
// @Success 201 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /webhooks/whatsapp [post]
func (h *WebhookHandler) InboundMessage(c *gin.Context) {
	var req reqdto.InboundMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rm, err := h.messagingUseCase.ReceiveInbound(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrStoreTokenInvalid) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid store token"})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromMessageRM(rm))
}
