package cart

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart       = errors.New("cart has no lines")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrNegativePrice   = errors.New("price cannot be negative")
)

// Line is one product entry in a checkout cart. VariationCents is the price
// adjustment of the chosen variation and may be negative, but the adjusted
// unit price may not be. Lines acquired through loyalty-point redemption are
// excluded from the discount-eligible subtotal.
type Line struct {
	ProductID          uuid.UUID
	UnitPriceCents     int64
	VariationCents     int64
	Quantity           int32
	RedeemedWithPoints bool
}

func (l Line) adjustedUnitCents() int64 {
	return l.UnitPriceCents + l.VariationCents
}

func (l Line) TotalCents() int64 {
	return l.adjustedUnitCents() * int64(l.Quantity)
}

type Cart struct {
	lines []Line
}

func NewCart(lines []Line) (Cart, error) {
	if len(lines) == 0 {
		return Cart{}, ErrEmptyCart
	}
	for _, l := range lines {
		if l.Quantity <= 0 {
			return Cart{}, ErrInvalidQuantity
		}
		if l.UnitPriceCents < 0 || l.adjustedUnitCents() < 0 {
			return Cart{}, ErrNegativePrice
		}
	}

	copied := make([]Line, len(lines))
	copy(copied, lines)
	return Cart{lines: copied}, nil
}

func (c Cart) Lines() []Line {
	return c.lines
}

func (c Cart) SubtotalCents() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.TotalCents()
	}
	return total
}

// DiscountableSubtotalCents is the subtotal over lines eligible for coupon
// discounts, i.e. everything not paid for with loyalty points.
func (c Cart) DiscountableSubtotalCents() int64 {
	var total int64
	for _, l := range c.lines {
		if l.RedeemedWithPoints {
			continue
		}
		total += l.TotalCents()
	}
	return total
}

// ScopedSubtotalCents restricts DiscountableSubtotalCents to the given
// product set.
func (c Cart) ScopedSubtotalCents(productIDs map[uuid.UUID]struct{}) int64 {
	var total int64
	for _, l := range c.lines {
		if l.RedeemedWithPoints {
			continue
		}
		if _, ok := productIDs[l.ProductID]; !ok {
			continue
		}
		total += l.TotalCents()
	}
	return total
}

// ContainsAny reports whether any line references a product in the set.
func (c Cart) ContainsAny(productIDs map[uuid.UUID]struct{}) bool {
	for _, l := range c.lines {
		if _, ok := productIDs[l.ProductID]; ok {
			return true
		}
	}
	return false
}
