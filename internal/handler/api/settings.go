package api

import (
	"errors"
	"net/http"

	reqdto "franguinho-pos/internal/handler/dto/request"
	resdto "franguinho-pos/internal/handler/dto/response"
	"franguinho-pos/internal/handler/middleware"
	"franguinho-pos/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsUseCase usecase.SettingsUseCase
}

func NewSettingsHandler(settingsUseCase usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{
		settingsUseCase: settingsUseCase,
	}
}

// @Summary Get store settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SettingsResponse
// @Failure 404 {object} map[string]string
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	storeID, ok := middleware.GetStoreID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	rm, err := h.settingsUseCase.Get(c.Request.Context(), storeID)
	if err != nil {
		if errors.Is(err, usecase.ErrSettingsNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSettingsRM(rm))
}

// @Summary Update store settings
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateSettingsRequest true "Settings"
// @Success 200 {object} resdto.SettingsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	storeID, ok := middleware.GetStoreID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rm, err := h.settingsUseCase.Update(c.Request.Context(), storeID, req.PendingEnabled, req.PreparingEnabled, req.WhatsAppWebhookURL)
	if err != nil {
		if errors.Is(err, usecase.ErrSettingsNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSettingsRM(rm))
}
