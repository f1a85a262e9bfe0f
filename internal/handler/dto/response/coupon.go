package response

import (
	"time"

	"franguinho-pos/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CouponResponse struct {
	ID             uuid.UUID   `json:"id"`
	Code           string      `json:"code"`
	Kind           string      `json:"kind"`
	AmountOffCents *int64      `json:"amountOffCents,omitempty"`
	PercentOff     *float64    `json:"percentOff,omitempty"`
	ProductScope   []uuid.UUID `json:"productScope,omitempty"`
	ExpiresAt      *time.Time  `json:"expiresAt,omitempty"`
	MaxUses        *int32      `json:"maxUses,omitempty"`
	CurrentUses    int32       `json:"currentUses"`
	Active         bool        `json:"active"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

type CouponApplicationResponse struct {
	CouponID      uuid.UUID `json:"couponId"`
	CouponCode    string    `json:"couponCode"`
	DiscountCents int64     `json:"discountCents"`
	FreeShipping  bool      `json:"freeShipping"`
}

func FromCouponRM(rm *readmodel.CouponRM) *CouponResponse {
	return &CouponResponse{
		ID:             rm.ID,
		Code:           rm.Code,
		Kind:           rm.Kind,
		AmountOffCents: rm.AmountOffCents,
		PercentOff:     rm.PercentOff,
		ProductScope:   rm.ProductScope,
		ExpiresAt:      rm.ExpiresAt,
		MaxUses:        rm.MaxUses,
		CurrentUses:    rm.CurrentUses,
		Active:         rm.Active,
		CreatedAt:      rm.CreatedAt,
		UpdatedAt:      rm.UpdatedAt,
	}
}

func FromCouponRMs(rms []*readmodel.CouponRM) []*CouponResponse {
	out := make([]*CouponResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromCouponRM(rm))
	}
	return out
}

func FromApplicationRM(rm *readmodel.CouponApplicationRM) *CouponApplicationResponse {
	return &CouponApplicationResponse{
		CouponID:      rm.CouponID,
		CouponCode:    rm.CouponCode,
		DiscountCents: rm.DiscountCents,
		FreeShipping:  rm.FreeShipping,
	}
}
