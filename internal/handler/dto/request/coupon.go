package request

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is a checkout line as sent by the POS terminal. Prices are
// resolved server-side from the product table; only the variation adjustment
// travels with the request.
type CartItem struct {
	ProductID          uuid.UUID `json:"productId" binding:"required"`
	Quantity           int32     `json:"quantity" binding:"required,gt=0"`
	VariationCents     int64     `json:"variationCents"`
	RedeemedWithPoints bool      `json:"redeemedWithPoints"`
}

type ValidateCouponRequest struct {
	Code          string     `json:"code" binding:"required"`
	CustomerPhone *string    `json:"customerPhone"`
	Items         []CartItem `json:"items" binding:"required,min=1,dive"`
}

type CreateCouponRequest struct {
	Code           string      `json:"code" binding:"required"`
	Kind           string      `json:"kind" binding:"required,oneof=total product free_shipping"`
	AmountOffCents *int64      `json:"amountOffCents"`
	PercentOff     *float64    `json:"percentOff"`
	ProductScope   []uuid.UUID `json:"productScope"`
	ExpiresAt      *time.Time  `json:"expiresAt"`
	MaxUses        *int32      `json:"maxUses" binding:"omitempty,gt=0"`
}
