package coupon

import (
	"errors"
	"time"

	"franguinho-pos/internal/domain/cart"

	"github.com/google/uuid"
)

var (
	ErrCouponInactive       = errors.New("coupon is inactive")
	ErrCouponExpired        = errors.New("coupon has expired")
	ErrCouponExhausted      = errors.New("coupon usage limit reached")
	ErrScopeRequired        = errors.New("product coupon requires a product scope")
	ErrScopeNotAllowed      = errors.New("only product coupons carry a product scope")
	ErrCouponNotApplicable  = errors.New("coupon does not apply to any cart line")
	ErrFreeShippingDiscount = errors.New("free shipping coupon carries no discount value")
)

type Coupon struct {
	id           uuid.UUID
	storeID      uuid.UUID
	code         Code
	kind         Kind
	discount     Discount
	productScope map[uuid.UUID]struct{}
	expiresAt    *time.Time
	maxUses      *int32
	currentUses  int32
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewCoupon(
	storeID uuid.UUID,
	code string,
	kind string,
	amountOffCents *int64,
	percentOff *float64,
	productScope []uuid.UUID,
	expiresAt *time.Time,
	maxUses *int32,
) (*Coupon, error) {
	couponCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	couponKind, err := NewKind(kind)
	if err != nil {
		return nil, err
	}

	if couponKind == KindProduct && len(productScope) == 0 {
		return nil, ErrScopeRequired
	}
	if couponKind != KindProduct && len(productScope) > 0 {
		return nil, ErrScopeNotAllowed
	}

	var discount Discount
	if couponKind == KindFreeShipping {
		if amountOffCents != nil || percentOff != nil {
			return nil, ErrFreeShippingDiscount
		}
	} else {
		discount, err = NewDiscount(amountOffCents, percentOff)
		if err != nil {
			return nil, err
		}
	}

	return &Coupon{
		id:           uuid.New(),
		storeID:      storeID,
		code:         couponCode,
		kind:         couponKind,
		discount:     discount,
		productScope: scopeSet(productScope),
		expiresAt:    expiresAt,
		maxUses:      maxUses,
		active:       true,
	}, nil
}

// ReconstructCoupon rehydrates a persisted coupon without re-running creation
// validation; stored rows are trusted.
func ReconstructCoupon(
	id, storeID uuid.UUID,
	code Code,
	kind Kind,
	discount Discount,
	productScope []uuid.UUID,
	expiresAt *time.Time,
	maxUses *int32,
	currentUses int32,
	active bool,
	createdAt, updatedAt time.Time,
) *Coupon {
	return &Coupon{
		id:           id,
		storeID:      storeID,
		code:         code,
		kind:         kind,
		discount:     discount,
		productScope: scopeSet(productScope),
		expiresAt:    expiresAt,
		maxUses:      maxUses,
		currentUses:  currentUses,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func scopeSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// ValidateUsage checks the coupon's own redemption gates in order: active
// flag, expiry, usage cap. Per-customer dedupe needs the use log and lives in
// the usecase layer.
func (c *Coupon) ValidateUsage(now time.Time) error {
	if !c.active {
		return ErrCouponInactive
	}
	if c.expiresAt != nil && now.After(*c.expiresAt) {
		return ErrCouponExpired
	}
	if c.maxUses != nil && c.currentUses >= *c.maxUses {
		return ErrCouponExhausted
	}
	return nil
}

// ValidateCart rejects product-scoped coupons whose scope misses the cart.
func (c *Coupon) ValidateCart(ct cart.Cart) error {
	if c.kind != KindProduct {
		return nil
	}
	if !ct.ContainsAny(c.productScope) {
		return ErrCouponNotApplicable
	}
	return nil
}

// Application is the ephemeral result of applying a coupon at checkout. It is
// not persisted until the order completes.
type Application struct {
	CouponID      uuid.UUID
	CouponCode    string
	DiscountCents int64
	FreeShipping  bool
}

// Apply computes the discount for an already-validated coupon against the
// cart. Pure; callers run ValidateUsage/ValidateCart first.
func (c *Coupon) Apply(ct cart.Cart) Application {
	app := Application{
		CouponID:   c.id,
		CouponCode: c.code.String(),
	}

	switch c.kind {
	case KindFreeShipping:
		app.FreeShipping = true
	case KindTotal:
		app.DiscountCents = c.discount.AmountFor(ct.DiscountableSubtotalCents())
	case KindProduct:
		app.DiscountCents = c.discount.AmountFor(ct.ScopedSubtotalCents(c.productScope))
	}

	return app
}

func (c *Coupon) ID() uuid.UUID         { return c.id }
func (c *Coupon) StoreID() uuid.UUID    { return c.storeID }
func (c *Coupon) Code() Code            { return c.code }
func (c *Coupon) Kind() Kind            { return c.kind }
func (c *Coupon) Discount() Discount    { return c.discount }
func (c *Coupon) ExpiresAt() *time.Time { return c.expiresAt }
func (c *Coupon) MaxUses() *int32       { return c.maxUses }
func (c *Coupon) CurrentUses() int32    { return c.currentUses }
func (c *Coupon) IsActive() bool        { return c.active }
func (c *Coupon) CreatedAt() time.Time  { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time  { return c.updatedAt }

func (c *Coupon) ProductScope() []uuid.UUID {
	if len(c.productScope) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(c.productScope))
	for id := range c.productScope {
		ids = append(ids, id)
	}
	return ids
}
