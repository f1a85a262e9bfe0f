package coupon

import (
	"errors"
	"math"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidCouponKind      = errors.New("invalid coupon kind")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrAmbiguousDiscount      = errors.New("discount can only be either fixed amount or percentage, not both")
	ErrMissingDiscount        = errors.New("discount must have either fixed amount or percentage")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

// NewCode normalizes (trim, upper-case) before validating, so lookups and
// uniqueness are case-insensitive.
func NewCode(code string) (Code, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Kind string

const (
	// KindTotal discounts the whole discountable cart subtotal.
	KindTotal Kind = "total"
	// KindProduct discounts only cart lines inside the coupon's product scope.
	KindProduct Kind = "product"
	// KindFreeShipping waives shipping and applies no monetary discount.
	KindFreeShipping Kind = "free_shipping"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindTotal, KindProduct, KindFreeShipping:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	kind := Kind(s)
	if !kind.IsValid() {
		return "", ErrInvalidCouponKind
	}
	return kind, nil
}

// Discount is either a fixed amount in cents or a percentage, never both.
type Discount struct {
	amountOffCents *int64
	percentOff     *float64
}

func NewFixedDiscount(amountOffCents int64) (Discount, error) {
	if amountOffCents < 0 {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{amountOffCents: &amountOffCents}, nil
}

func NewPercentageDiscount(percentOff float64) (Discount, error) {
	if percentOff < 0 || percentOff > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{percentOff: &percentOff}, nil
}

func NewDiscount(amountOffCents *int64, percentOff *float64) (Discount, error) {
	if amountOffCents != nil && percentOff != nil {
		return Discount{}, ErrAmbiguousDiscount
	}
	if amountOffCents == nil && percentOff == nil {
		return Discount{}, ErrMissingDiscount
	}

	if amountOffCents != nil {
		return NewFixedDiscount(*amountOffCents)
	}
	return NewPercentageDiscount(*percentOff)
}

func (d Discount) IsPercentage() bool {
	return d.percentOff != nil
}

func (d Discount) IsFixed() bool {
	return d.amountOffCents != nil
}

func (d Discount) AmountOffCents() int64 {
	if d.amountOffCents != nil {
		return *d.amountOffCents
	}
	return 0
}

func (d Discount) PercentOff() float64 {
	if d.percentOff != nil {
		return *d.percentOff
	}
	return 0
}

// AmountFor computes the discount against a base amount. Percentages round
// half-up at cent precision; fixed amounts never exceed the base.
func (d Discount) AmountFor(baseCents int64) int64 {
	if baseCents <= 0 {
		return 0
	}

	if d.IsPercentage() {
		return int64(math.Floor(float64(baseCents)*d.PercentOff()/100.0 + 0.5))
	}

	if d.AmountOffCents() > baseCents {
		return baseCents // Cannot discount more than the base
	}
	return d.AmountOffCents()
}
