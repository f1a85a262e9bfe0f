package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type CouponRM struct {
	ID             uuid.UUID
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
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CouponUseRM struct {
	ID            uuid.UUID
	CouponID      uuid.UUID
	OrderID       uuid.UUID
	CustomerPhone *string
	UsedAt        time.Time
}

// CouponApplicationRM is the ephemeral checkout result returned by the
// validate endpoint; nothing is persisted until the order completes.
type CouponApplicationRM struct {
	CouponID      uuid.UUID
	CouponCode    string
	DiscountCents int64
	FreeShipping  bool
}
