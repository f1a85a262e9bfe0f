//go:build unit

package repository

import (
	"testing"

	"franguinho-pos/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeParam(t *testing.T) {
	t.Run("unscoped total coupon yields an empty array, not nil", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)

		got := scopeParam(c)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("free shipping coupon yields an empty array, not nil", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithFreeShipping().BuildDomain()
		require.NoError(t, err)

		got := scopeParam(c)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("product coupon passes its scope through", func(t *testing.T) {
		p1 := uuid.New()
		p2 := uuid.New()
		c, err := builder.NewCouponBuilder().WithProductScope(p1, p2).BuildDomain()
		require.NoError(t, err)

		assert.ElementsMatch(t, []uuid.UUID{p1, p2}, scopeParam(c))
	})
}
