package order

import (
	"errors"
	"strings"
	"time"

	"franguinho-pos/internal/domain/cart"
	"franguinho-pos/internal/domain/coupon"

	"github.com/google/uuid"
)

var (
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrNegativeTotal        = errors.New("order total cannot be negative")
	ErrNotDeliverable       = errors.New("only ready orders can be delivered")
)

type Order struct {
	id            uuid.UUID
	storeID       uuid.UUID
	customerName  string
	customerPhone *string
	lines         []cart.Line
	subtotalCents int64
	discountCents int64
	totalCents    int64
	freeShipping  bool
	couponID      *uuid.UUID
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

// NewOrder builds an order from a cart at checkout time. app is the coupon
// application already computed for this cart, nil when no coupon was used.
// The initial status comes from the store's flow.
func NewOrder(
	storeID uuid.UUID,
	customerName string,
	customerPhone *string,
	ct cart.Cart,
	app *coupon.Application,
	flow Flow,
) (*Order, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, ErrCustomerNameRequired
	}

	subtotal := ct.SubtotalCents()

	var discount int64
	var freeShipping bool
	var couponID *uuid.UUID
	if app != nil {
		discount = app.DiscountCents
		freeShipping = app.FreeShipping
		id := app.CouponID
		couponID = &id
	}

	total := subtotal - discount
	if total < 0 {
		return nil, ErrNegativeTotal
	}

	return &Order{
		id:            uuid.New(),
		storeID:       storeID,
		customerName:  customerName,
		customerPhone: customerPhone,
		lines:         ct.Lines(),
		subtotalCents: subtotal,
		discountCents: discount,
		totalCents:    total,
		freeShipping:  freeShipping,
		couponID:      couponID,
		status:        flow.InitialStatus(),
	}, nil
}

func ReconstructOrder(
	id, storeID uuid.UUID,
	customerName string,
	customerPhone *string,
	lines []cart.Line,
	subtotalCents, discountCents, totalCents int64,
	freeShipping bool,
	couponID *uuid.UUID,
	status Status,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:            id,
		storeID:       storeID,
		customerName:  customerName,
		customerPhone: customerPhone,
		lines:         lines,
		subtotalCents: subtotalCents,
		discountCents: discountCents,
		totalCents:    totalCents,
		freeShipping:  freeShipping,
		couponID:      couponID,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Advance moves the order to the next stage in the store's flow. The bool is
// false when the order is terminal for this flow.
func (o *Order) Advance(flow Flow) (Status, bool) {
	next, ok := flow.Next(o.status)
	if !ok {
		return o.status, false
	}
	o.status = next
	return next, true
}

// Deliver marks a ready order as delivered; delivery is an explicit action
// outside the flow pipeline.
func (o *Order) Deliver() error {
	if o.status != StatusReady {
		return ErrNotDeliverable
	}
	o.status = StatusDelivered
	return nil
}

func (o *Order) ID() uuid.UUID          { return o.id }
func (o *Order) StoreID() uuid.UUID     { return o.storeID }
func (o *Order) CustomerName() string   { return o.customerName }
func (o *Order) CustomerPhone() *string { return o.customerPhone }
func (o *Order) Lines() []cart.Line     { return o.lines }
func (o *Order) SubtotalCents() int64   { return o.subtotalCents }
func (o *Order) DiscountCents() int64   { return o.discountCents }
func (o *Order) TotalCents() int64      { return o.totalCents }
func (o *Order) FreeShipping() bool     { return o.freeShipping }
func (o *Order) CouponID() *uuid.UUID   { return o.couponID }
func (o *Order) Status() Status         { return o.status }
func (o *Order) CreatedAt() time.Time   { return o.createdAt }
func (o *Order) UpdatedAt() time.Time   { return o.updatedAt }
