//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"franguinho-pos/internal/domain/cart"
	"franguinho-pos/internal/domain/coupon"
	"franguinho-pos/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.CouponBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewCouponBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			_, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func mustCart(t *testing.T, lines ...cart.Line) cart.Cart {
	t.Helper()
	ct, err := cart.NewCart(lines)
	require.NoError(t, err)
	return ct
}

func TestNewCoupon(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "WELCOME10", actual.Code().String())
		assert.Equal(t, coupon.KindTotal, actual.Kind())
		assert.True(t, actual.IsActive())
		assert.Zero(t, actual.CurrentUses())
	})

	t.Run("scope rules", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "product kind requires a scope",
				mutate: func(b *builder.CouponBuilder) { b.Kind = "product" },
				errIs:  coupon.ErrScopeRequired,
			},
			{
				name:   "product kind with scope OK",
				mutate: func(b *builder.CouponBuilder) { b.WithProductScope(uuid.New()) },
			},
			{
				name: "total kind rejects a scope",
				mutate: func(b *builder.CouponBuilder) {
					b.ProductScope = []uuid.UUID{uuid.New()}
				},
				errIs: coupon.ErrScopeNotAllowed,
			},
		})
	})

	t.Run("discount rules", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "free shipping carries no discount value",
				mutate: func(b *builder.CouponBuilder) { b.Kind = "free_shipping" },
				errIs:  coupon.ErrFreeShippingDiscount,
			},
			{
				name:   "free shipping without discount OK",
				mutate: func(b *builder.CouponBuilder) { b.WithFreeShipping() },
			},
			{
				name: "total kind needs a discount",
				mutate: func(b *builder.CouponBuilder) {
					b.AmountOffCents = nil
					b.PercentOff = nil
				},
				errIs: coupon.ErrMissingDiscount,
			},
			{
				name:   "invalid code",
				mutate: func(b *builder.CouponBuilder) { b.Code = "x" },
				errIs:  coupon.ErrInvalidCouponCode,
			},
			{
				name:   "invalid kind",
				mutate: func(b *builder.CouponBuilder) { b.Kind = "bogus" },
				errIs:  coupon.ErrInvalidCouponKind,
			},
		})
	})
}

func TestValidateUsage(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("fresh coupon passes", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)
		assert.NoError(t, c.ValidateUsage(now))
	})

	t.Run("expired", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithExpiry(now.Add(-time.Hour)).BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, c.ValidateUsage(now), coupon.ErrCouponExpired)
	})

	t.Run("expiry in the future passes", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithExpiry(now.Add(time.Hour)).BuildDomain()
		require.NoError(t, err)
		assert.NoError(t, c.ValidateUsage(now))
	})

	t.Run("usage cap reached", func(t *testing.T) {
		b := builder.NewCouponBuilder().WithMaxUses(3)
		b.CurrentUses = 3
		rm := b.BuildReadModel()

		code, err := coupon.NewCode(rm.Code)
		require.NoError(t, err)
		discount, err := coupon.NewDiscount(rm.AmountOffCents, rm.PercentOff)
		require.NoError(t, err)

		c := coupon.ReconstructCoupon(
			rm.ID, rm.StoreID, code, coupon.Kind(rm.Kind), discount,
			rm.ProductScope, rm.ExpiresAt, rm.MaxUses, rm.CurrentUses,
			rm.Active, rm.CreatedAt, rm.UpdatedAt,
		)
		assert.ErrorIs(t, c.ValidateUsage(now), coupon.ErrCouponExhausted)
	})
}

func TestApply(t *testing.T) {
	p1 := uuid.New()
	p2 := uuid.New()

	t.Run("percentage on total", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithPercent(10).BuildDomain()
		require.NoError(t, err)

		ct := mustCart(t, cart.Line{ProductID: p1, UnitPriceCents: 10000, Quantity: 1})
		app := c.Apply(ct)

		assert.Equal(t, int64(1000), app.DiscountCents)
		assert.False(t, app.FreeShipping)
		assert.Equal(t, c.ID(), app.CouponID)
		assert.Equal(t, "WELCOME10", app.CouponCode)
	})

	t.Run("fixed amount capped at subtotal", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithFixedAmount(5000).BuildDomain()
		require.NoError(t, err)

		ct := mustCart(t, cart.Line{ProductID: p1, UnitPriceCents: 3000, Quantity: 1})
		app := c.Apply(ct)

		assert.Equal(t, int64(3000), app.DiscountCents)
	})

	t.Run("product scope discounts only scoped lines", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithPercent(50).WithProductScope(p1).BuildDomain()
		require.NoError(t, err)

		ct := mustCart(t,
			cart.Line{ProductID: p1, UnitPriceCents: 2000, Quantity: 2},
			cart.Line{ProductID: p2, UnitPriceCents: 1000, Quantity: 1},
		)
		app := c.Apply(ct)

		// 50% of the scoped 40.00, the 10.00 line is untouched.
		assert.Equal(t, int64(2000), app.DiscountCents)
	})

	t.Run("free shipping applies no monetary discount", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithFreeShipping().BuildDomain()
		require.NoError(t, err)

		ct := mustCart(t, cart.Line{ProductID: p1, UnitPriceCents: 10000, Quantity: 1})
		app := c.Apply(ct)

		assert.Zero(t, app.DiscountCents)
		assert.True(t, app.FreeShipping)
	})

	t.Run("point-redeemed lines are not discountable", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithPercent(10).BuildDomain()
		require.NoError(t, err)

		ct := mustCart(t,
			cart.Line{ProductID: p1, UnitPriceCents: 10000, Quantity: 1},
			cart.Line{ProductID: p2, UnitPriceCents: 5000, Quantity: 1, RedeemedWithPoints: true},
		)
		app := c.Apply(ct)

		assert.Equal(t, int64(1000), app.DiscountCents)
	})

	t.Run("variation adjustments count toward the base", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithPercent(10).BuildDomain()
		require.NoError(t, err)

		ct := mustCart(t, cart.Line{ProductID: p1, UnitPriceCents: 10000, VariationCents: 500, Quantity: 2})
		app := c.Apply(ct)

		// (100.00 + 5.00) * 2 = 210.00 base.
		assert.Equal(t, int64(2100), app.DiscountCents)
	})
}

func TestValidateCart(t *testing.T) {
	p1 := uuid.New()
	p2 := uuid.New()

	t.Run("scope hit passes", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithPercent(50).WithProductScope(p1).BuildDomain()
		require.NoError(t, err)

		ct := mustCart(t, cart.Line{ProductID: p1, UnitPriceCents: 1000, Quantity: 1})
		assert.NoError(t, c.ValidateCart(ct))
	})

	t.Run("scope miss is rejected", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithPercent(50).WithProductScope(p1).BuildDomain()
		require.NoError(t, err)

		ct := mustCart(t, cart.Line{ProductID: p2, UnitPriceCents: 1000, Quantity: 1})
		assert.ErrorIs(t, c.ValidateCart(ct), coupon.ErrCouponNotApplicable)
	})

	t.Run("total kind ignores the cart contents", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)

		ct := mustCart(t, cart.Line{ProductID: p2, UnitPriceCents: 1000, Quantity: 1})
		assert.NoError(t, c.ValidateCart(ct))
	})
}
