package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type OrderLineRM struct {
	ProductID          uuid.UUID
	ProductName        string
	UnitPriceCents     int64
	VariationCents     int64
	Quantity           int32
	RedeemedWithPoints bool
}

type OrderRM struct {
	ID            uuid.UUID
	StoreID       uuid.UUID
	CustomerName  string
	CustomerPhone *string
	Lines         []OrderLineRM
	SubtotalCents int64
	DiscountCents int64
	TotalCents    int64
	FreeShipping  bool
	CouponID      *uuid.UUID
	CouponCode    *string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type OrderListRM struct {
	ID            uuid.UUID
	CustomerName  string
	CustomerPhone *string
	TotalCents    int64
	Status        string
	CreatedAt     time.Time
}
