//go:build unit

package order_test

import (
	"testing"

	"franguinho-pos/internal/domain/cart"
	"franguinho-pos/internal/domain/coupon"
	"franguinho-pos/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCart(t *testing.T) cart.Cart {
	t.Helper()
	ct, err := cart.NewCart([]cart.Line{
		{ProductID: uuid.New(), UnitPriceCents: 2500, Quantity: 2},
	})
	require.NoError(t, err)
	return ct
}

func TestNewOrder(t *testing.T) {
	storeID := uuid.New()
	flow := order.NewFlow(order.DefaultFlowSettings())

	t.Run("basic success case", func(t *testing.T) {
		o, err := order.NewOrder(storeID, "Maria", nil, testCart(t), nil, flow)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, o.ID())
		assert.Equal(t, storeID, o.StoreID())
		assert.Equal(t, int64(5000), o.SubtotalCents())
		assert.Zero(t, o.DiscountCents())
		assert.Equal(t, int64(5000), o.TotalCents())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Nil(t, o.CouponID())
	})

	t.Run("coupon application is folded into the totals", func(t *testing.T) {
		couponID := uuid.New()
		app := &coupon.Application{
			CouponID:      couponID,
			CouponCode:    "DESCONTO10",
			DiscountCents: 500,
		}

		o, err := order.NewOrder(storeID, "Maria", nil, testCart(t), app, flow)
		require.NoError(t, err)

		assert.Equal(t, int64(500), o.DiscountCents())
		assert.Equal(t, int64(4500), o.TotalCents())
		require.NotNil(t, o.CouponID())
		assert.Equal(t, couponID, *o.CouponID())
	})

	t.Run("free shipping flag is carried", func(t *testing.T) {
		app := &coupon.Application{CouponID: uuid.New(), FreeShipping: true}

		o, err := order.NewOrder(storeID, "Maria", nil, testCart(t), app, flow)
		require.NoError(t, err)

		assert.True(t, o.FreeShipping())
		assert.Equal(t, int64(5000), o.TotalCents())
	})

	t.Run("initial status follows the flow", func(t *testing.T) {
		short := order.NewFlow(order.FlowSettings{PendingEnabled: false, PreparingEnabled: true})

		o, err := order.NewOrder(storeID, "Maria", nil, testCart(t), nil, short)
		require.NoError(t, err)
		assert.Equal(t, order.StatusPreparing, o.Status())
	})

	t.Run("customer name is required", func(t *testing.T) {
		_, err := order.NewOrder(storeID, "   ", nil, testCart(t), nil, flow)
		assert.ErrorIs(t, err, order.ErrCustomerNameRequired)
	})
}

func TestAdvanceAndDeliver(t *testing.T) {
	storeID := uuid.New()
	flow := order.NewFlow(order.DefaultFlowSettings())

	t.Run("advances to ready then stops", func(t *testing.T) {
		o, err := order.NewOrder(storeID, "Maria", nil, testCart(t), nil, flow)
		require.NoError(t, err)

		status, ok := o.Advance(flow)
		assert.True(t, ok)
		assert.Equal(t, order.StatusPreparing, status)

		status, ok = o.Advance(flow)
		assert.True(t, ok)
		assert.Equal(t, order.StatusReady, status)

		_, ok = o.Advance(flow)
		assert.False(t, ok)
		assert.Equal(t, order.StatusReady, o.Status())
	})

	t.Run("deliver requires ready", func(t *testing.T) {
		o, err := order.NewOrder(storeID, "Maria", nil, testCart(t), nil, flow)
		require.NoError(t, err)

		assert.ErrorIs(t, o.Deliver(), order.ErrNotDeliverable)

		o.Advance(flow)
		o.Advance(flow)
		require.Equal(t, order.StatusReady, o.Status())

		require.NoError(t, o.Deliver())
		assert.Equal(t, order.StatusDelivered, o.Status())

		// Delivered is terminal.
		assert.ErrorIs(t, o.Deliver(), order.ErrNotDeliverable)
		_, ok := o.Advance(flow)
		assert.False(t, ok)
	})
}
