//go:build unit || e2e

package builder

import (
	"time"

	domcoupon "franguinho-pos/internal/domain/coupon"
	reqdto "franguinho-pos/internal/handler/dto/request"
	"franguinho-pos/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	StoreID        uuid.UUID
	Code           string
	Kind           string
	AmountOffCents *int64
	PercentOff     *float64
	ProductScope   []uuid.UUID
	ExpiresAt      *time.Time
	MaxUses        *int32
	CurrentUses    int32
	Active         bool
}

func NewCouponBuilder() *CouponBuilder {
	pct := 10.0
	return &CouponBuilder{
		StoreID:    uuid.New(),
		Code:       "WELCOME10",
		Kind:       "total",
		PercentOff: &pct,
		Active:     true,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) WithFixedAmount(cents int64) *CouponBuilder {
	b.AmountOffCents = &cents
	b.PercentOff = nil
	return b
}

func (b *CouponBuilder) WithPercent(pct float64) *CouponBuilder {
	b.PercentOff = &pct
	b.AmountOffCents = nil
	return b
}

func (b *CouponBuilder) WithProductScope(ids ...uuid.UUID) *CouponBuilder {
	b.Kind = "product"
	b.ProductScope = ids
	return b
}

func (b *CouponBuilder) WithFreeShipping() *CouponBuilder {
	b.Kind = "free_shipping"
	b.AmountOffCents = nil
	b.PercentOff = nil
	return b
}

func (b *CouponBuilder) WithMaxUses(n int32) *CouponBuilder {
	b.MaxUses = &n
	return b
}

func (b *CouponBuilder) WithExpiry(t time.Time) *CouponBuilder {
	b.ExpiresAt = &t
	return b
}

// Build methods
func (b *CouponBuilder) BuildDomain() (*domcoupon.Coupon, error) {
	return domcoupon.NewCoupon(
		b.StoreID, b.Code, b.Kind,
		b.AmountOffCents, b.PercentOff, b.ProductScope,
		b.ExpiresAt, b.MaxUses,
	)
}

func (b *CouponBuilder) BuildReadModel() *readmodel.CouponRM {
	now := time.Now()
	return &readmodel.CouponRM{
		ID:             uuid.New(),
		StoreID:        b.StoreID,
		Code:           b.Code,
		Kind:           b.Kind,
		AmountOffCents: b.AmountOffCents,
		PercentOff:     b.PercentOff,
		ProductScope:   b.ProductScope,
		ExpiresAt:      b.ExpiresAt,
		MaxUses:        b.MaxUses,
		CurrentUses:    b.CurrentUses,
		Active:         b.Active,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *CouponBuilder) BuildCreateRequestDTO() reqdto.CreateCouponRequest {
	return reqdto.CreateCouponRequest{
		Code:           b.Code,
		Kind:           b.Kind,
		AmountOffCents: b.AmountOffCents,
		PercentOff:     b.PercentOff,
		ProductScope:   b.ProductScope,
		ExpiresAt:      b.ExpiresAt,
		MaxUses:        b.MaxUses,
	}
}
