package api

import (
	"errors"
	"net/http"

	reqdto "franguinho-pos/internal/handler/dto/request"
	resdto "franguinho-pos/internal/handler/dto/response"
	"franguinho-pos/internal/handler/middleware"
	"franguinho-pos/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CampaignHandler struct {
	campaignUseCase usecase.CampaignUseCase
}

func NewCampaignHandler(campaignUseCase usecase.CampaignUseCase) *CampaignHandler {
	return &CampaignHandler{
		campaignUseCase: campaignUseCase,
	}
}

// @Summary Create campaign
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCampaignRequest true "Campaign definition"
// @Success 201 {object} resdto.CampaignResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /campaigns [post]
func (h *CampaignHandler) Create(c *gin.Context) {
	storeID, ok := middleware.GetStoreID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rm, err := h.campaignUseCase.Create(c.Request.Context(), storeID, req)
	if err != nil {
		if errors.Is(err, usecase.ErrDomainValidationFailed) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid campaign definition"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCampaignRM(rm))
}

// @Summary Start campaign
// @Description Begin delivering the campaign to its recipients
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 202 {object} resdto.CampaignResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /campaigns/{id}/start [post]
func (h *CampaignHandler) Start(c *gin.Context) {
	storeID, id, ok := h.storeAndID(c)
	if !ok {
		return
	}

	rm, err := h.campaignUseCase.Start(c.Request.Context(), storeID, id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCampaignNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
		case errors.Is(err, usecase.ErrCampaignNotRunnable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Campaign cannot be started"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusAccepted, resdto.FromCampaignRM(rm))
}

// @Summary List campaigns
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CampaignResponse
// @Router /campaigns [get]
func (h *CampaignHandler) List(c *gin.Context) {
	storeID, ok := middleware.GetStoreID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	campaigns, err := h.campaignUseCase.List(c.Request.Context(), storeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCampaignRMs(campaigns))
}

// @Summary Get campaign
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 200 {object} resdto.CampaignResponse
// @Failure 404 {object} map[string]string
// @Router /campaigns/{id} [get]
func (h *CampaignHandler) Get(c *gin.Context) {
	storeID, id, ok := h.storeAndID(c)
	if !ok {
		return
	}

	rm, err := h.campaignUseCase.Get(c.Request.Context(), storeID, id)
	if err != nil {
		if errors.Is(err, usecase.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCampaignRM(rm))
}

// @Summary Campaign recipients
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 200 {array} resdto.CampaignRecipientResponse
// @Failure 404 {object} map[string]string
// @Router /campaigns/{id}/recipients [get]
func (h *CampaignHandler) Recipients(c *gin.Context) {
	storeID, id, ok := h.storeAndID(c)
	if !ok {
		return
	}

	recipients, err := h.campaignUseCase.Recipients(c.Request.Context(), storeID, id)
	if err != nil {
		if errors.Is(err, usecase.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCampaignRecipientRMs(recipients))
}

func (h *CampaignHandler) storeAndID(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	storeID, ok := middleware.GetStoreID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return uuid.Nil, uuid.Nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid campaign ID"})
		return uuid.Nil, uuid.Nil, false
	}
	return storeID, id, true
}
