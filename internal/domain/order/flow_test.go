//go:build unit

package order_test

import (
	"testing"

	"franguinho-pos/internal/domain/order"

	"github.com/stretchr/testify/assert"
)

func TestNewFlow(t *testing.T) {
	cases := []struct {
		name     string
		settings order.FlowSettings
		stages   []order.Status
	}{
		{
			name:     "all stages enabled",
			settings: order.FlowSettings{PendingEnabled: true, PreparingEnabled: true},
			stages:   []order.Status{order.StatusPending, order.StatusPreparing, order.StatusReady},
		},
		{
			name:     "pending disabled",
			settings: order.FlowSettings{PendingEnabled: false, PreparingEnabled: true},
			stages:   []order.Status{order.StatusPreparing, order.StatusReady},
		},
		{
			name:     "preparing disabled",
			settings: order.FlowSettings{PendingEnabled: true, PreparingEnabled: false},
			stages:   []order.Status{order.StatusPending, order.StatusReady},
		},
		{
			name:     "both disabled collapses to ready",
			settings: order.FlowSettings{},
			stages:   []order.Status{order.StatusReady},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := order.NewFlow(tc.settings)
			assert.Equal(t, tc.stages, f.Stages())
			assert.Equal(t, tc.stages[0], f.InitialStatus())
		})
	}
}

func TestFlowNext(t *testing.T) {
	t.Run("walks the full pipeline", func(t *testing.T) {
		f := order.NewFlow(order.DefaultFlowSettings())

		next, ok := f.Next(order.StatusPending)
		assert.True(t, ok)
		assert.Equal(t, order.StatusPreparing, next)

		next, ok = f.Next(order.StatusPreparing)
		assert.True(t, ok)
		assert.Equal(t, order.StatusReady, next)
	})

	t.Run("skips a disabled stage", func(t *testing.T) {
		f := order.NewFlow(order.FlowSettings{PendingEnabled: true, PreparingEnabled: false})

		next, ok := f.Next(order.StatusPending)
		assert.True(t, ok)
		assert.Equal(t, order.StatusReady, next)
	})

	t.Run("ready is terminal", func(t *testing.T) {
		f := order.NewFlow(order.DefaultFlowSettings())

		next, ok := f.Next(order.StatusReady)
		assert.False(t, ok)
		assert.Equal(t, order.StatusReady, next)
	})

	t.Run("order stranded on a stage disabled after the fact", func(t *testing.T) {
		// The order reached preparing while it was enabled; the flow no
		// longer contains that stage, so the order stays put.
		f := order.NewFlow(order.FlowSettings{PendingEnabled: true, PreparingEnabled: false})

		next, ok := f.Next(order.StatusPreparing)
		assert.False(t, ok)
		assert.Equal(t, order.StatusPreparing, next)
	})

	t.Run("delivered never advances", func(t *testing.T) {
		f := order.NewFlow(order.DefaultFlowSettings())

		_, ok := f.Next(order.StatusDelivered)
		assert.False(t, ok)
	})
}
