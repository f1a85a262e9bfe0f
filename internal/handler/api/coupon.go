package api

import (
	"errors"
	"net/http"

	"franguinho-pos/internal/domain/coupon"
	reqdto "franguinho-pos/internal/handler/dto/request"
	resdto "franguinho-pos/internal/handler/dto/response"
	"franguinho-pos/internal/handler/middleware"
	"franguinho-pos/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CouponHandler struct {
	couponUseCase usecase.CouponUseCase
}

func NewCouponHandler(couponUseCase usecase.CouponUseCase) *CouponHandler {
	return &CouponHandler{
		couponUseCase: couponUseCase,
	}
}

// @Summary Validate coupon against a cart
// @Description Run the full redemption check without consuming the coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidateCouponRequest true "Validation request"
// @Success 200 {object} resdto.CouponApplicationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /coupons/validate [post]
func (h *CouponHandler) Validate(c *gin.Context) {
	storeID, ok := middleware.GetStoreID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	app, err := h.couponUseCase.Validate(c.Request.Context(), storeID, req)
	if err != nil {
		respondCouponError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromApplicationRM(app))
}

// respondCouponError maps the redemption outcomes shared by validation and
// checkout. Each rejection carries a distinct message so the terminal can
// tell the cashier what to do.
func respondCouponError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrCouponNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
	case errors.Is(err, coupon.ErrCouponInactive):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Coupon is inactive"})
	case errors.Is(err, coupon.ErrCouponExpired):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Coupon has expired"})
	case errors.Is(err, coupon.ErrCouponExhausted):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Coupon usage limit reached"})
	case errors.Is(err, coupon.ErrCouponNotApplicable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Coupon does not apply to any item in the cart"})
	case errors.Is(err, usecase.ErrCouponAlreadyUsed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Coupon already used by this customer"})
	case errors.Is(err, usecase.ErrPhoneRequired):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Customer phone is required to use this coupon"})
	case errors.Is(err, usecase.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, usecase.ErrProductInactive):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Product is inactive"})
	case errors.Is(err, usecase.ErrDomainValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// @Summary Create coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Coupon definition"
// @Success 201 {object} resdto.CouponResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	storeID, ok := middleware.GetStoreID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rm, err := h.couponUseCase.Create(c.Request.Context(), storeID, req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDuplicateCoupon):
			c.JSON(http.StatusConflict, gin.H{"error": "Coupon code already exists"})
		case errors.Is(err, usecase.ErrDomainValidationFailed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid coupon definition"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCouponRM(rm))
}

// @Summary List coupons
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CouponResponse
// @Router /coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	storeID, ok := middleware.GetStoreID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	coupons, err := h.couponUseCase.List(c.Request.Context(), storeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCouponRMs(coupons))
}

// @Summary Get coupon
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.CouponResponse
// @Failure 404 {object} map[string]string
// @Router /coupons/{id} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	storeID, ok := middleware.GetStoreID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon ID"})
		return
	}

	rm, err := h.couponUseCase.Get(c.Request.Context(), storeID, id)
	if err != nil {
		if errors.Is(err, usecase.ErrCouponNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCouponRM(rm))
}

// @Summary Deactivate coupon
// @Tags coupons
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /coupons/{id} [delete]
func (h *CouponHandler) Deactivate(c *gin.Context) {
	storeID, ok := middleware.GetStoreID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon ID"})
		return
	}

	if err := h.couponUseCase.Deactivate(c.Request.Context(), storeID, id); err != nil {
		if errors.Is(err, usecase.ErrCouponNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}
