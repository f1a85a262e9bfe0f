package api

import (
	"errors"
	"net/http"

	"franguinho-pos/internal/domain/order"
	reqdto "franguinho-pos/internal/handler/dto/request"
	resdto "franguinho-pos/internal/handler/dto/response"
	"franguinho-pos/internal/handler/middleware"
	"franguinho-pos/internal/usecase"
	"franguinho-pos/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderUseCase    usecase.OrderUseCase
	settingsUseCase usecase.SettingsUseCase
}

func NewOrderHandler(orderUseCase usecase.OrderUseCase, settingsUseCase usecase.SettingsUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase:    orderUseCase,
		settingsUseCase: settingsUseCase,
	}
}

// @Summary Checkout
// @Description Create an order from a cart, consuming a coupon when present
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	storeID, ok := middleware.GetStoreID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rm, err := h.orderUseCase.Checkout(c.Request.Context(), storeID, req)
	if err != nil {
		respondCouponError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrderRM(rm))
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	storeID, id, ok := h.storeAndID(c)
	if !ok {
		return
	}

	rm, err := h.orderUseCase.Get(c.Request.Context(), storeID, id)
	if err != nil {
		h.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderRM(rm))
}

// @Summary List queue
// @Description Open orders across the store's enabled stages
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by a single status"
// @Success 200 {array} resdto.OrderListResponse
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	storeID, ok := middleware.GetStoreID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var (
		rms []*readmodel.OrderListRM
		err error
	)
	if status := c.Query("status"); status != "" {
		rms, err = h.orderUseCase.ListByStatus(c.Request.Context(), storeID, status)
	} else {
		rms, err = h.orderUseCase.ListQueue(c.Request.Context(), storeID)
	}
	if err != nil {
		if errors.Is(err, usecase.ErrDomainValidationFailed) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderListRMs(rms))
}

// @Summary Active order flow
// @Description Enabled pipeline stages for the store, in order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.OrderFlowResponse
// @Failure 404 {object} map[string]string
// @Router /orders/flow [get]
func (h *OrderHandler) Flow(c *gin.Context) {
	storeID, ok := middleware.GetStoreID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	flow, err := h.settingsUseCase.Flow(c.Request.Context(), storeID)
	if err != nil {
		h.respondOrderError(c, err)
		return
	}

	stages := flow.Stages()
	names := make([]string, 0, len(stages))
	for _, s := range stages {
		names = append(names, s.String())
	}
	c.JSON(http.StatusOK, resdto.OrderFlowResponse{Stages: names})
}

// @Summary Advance order
// @Description Move the order to the next enabled stage
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /orders/{id}/advance [post]
func (h *OrderHandler) Advance(c *gin.Context) {
	storeID, id, ok := h.storeAndID(c)
	if !ok {
		return
	}

	rm, err := h.orderUseCase.Advance(c.Request.Context(), storeID, id)
	if err != nil {
		h.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderRM(rm))
}

// @Summary Deliver order
// @Description Mark a ready order as delivered
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /orders/{id}/deliver [post]
func (h *OrderHandler) Deliver(c *gin.Context) {
	storeID, id, ok := h.storeAndID(c)
	if !ok {
		return
	}

	rm, err := h.orderUseCase.Deliver(c.Request.Context(), storeID, id)
	if err != nil {
		h.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderRM(rm))
}

// @Summary Order receipt
// @Description Download the order receipt as PDF
// @Tags orders
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *gin.Context) {
	storeID, id, ok := h.storeAndID(c)
	if !ok {
		return
	}

	data, filename, err := h.orderUseCase.Receipt(c.Request.Context(), storeID, id)
	if err != nil {
		h.respondOrderError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *OrderHandler) storeAndID(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	storeID, ok := middleware.GetStoreID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return uuid.Nil, uuid.Nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return uuid.Nil, uuid.Nil, false
	}
	return storeID, id, true
}

func (h *OrderHandler) respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(err, usecase.ErrOrderTerminal):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Order has no next stage"})
	case errors.Is(err, order.ErrNotDeliverable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Only ready orders can be delivered"})
	case errors.Is(err, usecase.ErrSettingsNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Store settings not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
