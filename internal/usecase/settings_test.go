//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"franguinho-pos/internal/domain/order"
	"franguinho-pos/internal/infra"
	"franguinho-pos/internal/usecase"
	"franguinho-pos/internal/usecase/readmodel"
	usecasemock "franguinho-pos/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type settingsFixture struct {
	repo  *usecasemock.MockSettingsRepository
	cache *usecasemock.MockSettingsCache
	uc    usecase.SettingsUseCase
}

func newSettingsFixture(t *testing.T) *settingsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := usecasemock.NewMockSettingsRepository(ctrl)
	cache := usecasemock.NewMockSettingsCache(ctrl)
	return &settingsFixture{
		repo:  repo,
		cache: cache,
		uc:    usecase.NewSettingsUseCase(repo, cache),
	}
}

func settingsRM(storeID uuid.UUID) *readmodel.StoreSettingsRM {
	return &readmodel.StoreSettingsRM{
		StoreID:          storeID,
		PendingEnabled:   true,
		PreparingEnabled: true,
		StoreToken:       "tok-123",
	}
}

func TestSettingsGet(t *testing.T) {
	storeID := uuid.New()

	t.Run("cache hit skips the repository", func(t *testing.T) {
		f := newSettingsFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), storeID).Return(settingsRM(storeID), nil)

		rm, err := f.uc.Get(context.Background(), storeID)
		require.NoError(t, err)
		assert.Equal(t, storeID, rm.StoreID)
	})

	t.Run("cache miss falls through and backfills", func(t *testing.T) {
		f := newSettingsFixture(t)
		rm := settingsRM(storeID)
		f.cache.EXPECT().Get(gomock.Any(), storeID).Return(nil, errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), storeID).Return(rm, nil)
		f.cache.EXPECT().Set(gomock.Any(), rm).Return(nil)

		got, err := f.uc.Get(context.Background(), storeID)
		require.NoError(t, err)
		assert.Equal(t, rm, got)
	})

	t.Run("cache write failure is not fatal", func(t *testing.T) {
		f := newSettingsFixture(t)
		rm := settingsRM(storeID)
		f.cache.EXPECT().Get(gomock.Any(), storeID).Return(nil, errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), storeID).Return(rm, nil)
		f.cache.EXPECT().Set(gomock.Any(), rm).Return(errors.New("redis down"))

		_, err := f.uc.Get(context.Background(), storeID)
		assert.NoError(t, err)
	})

	t.Run("missing row", func(t *testing.T) {
		f := newSettingsFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), storeID).Return(nil, errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), storeID).
			Return(nil, infra.WrapRepoErr("settings not found", nil, infra.KindNotFound))

		_, err := f.uc.Get(context.Background(), storeID)
		assert.ErrorIs(t, err, usecase.ErrSettingsNotFound)
	})
}

func TestSettingsUpdate(t *testing.T) {
	storeID := uuid.New()

	t.Run("update invalidates the cache", func(t *testing.T) {
		f := newSettingsFixture(t)
		rm := settingsRM(storeID)
		rm.PreparingEnabled = false
		f.repo.EXPECT().Update(gomock.Any(), storeID, true, false, nil).Return(rm, nil)
		f.cache.EXPECT().Invalidate(gomock.Any(), storeID).Return(nil)

		got, err := f.uc.Update(context.Background(), storeID, true, false, nil)
		require.NoError(t, err)
		assert.False(t, got.PreparingEnabled)
	})
}

func TestSettingsFlow(t *testing.T) {
	storeID := uuid.New()

	f := newSettingsFixture(t)
	rm := settingsRM(storeID)
	rm.PendingEnabled = false
	f.cache.EXPECT().Get(gomock.Any(), storeID).Return(rm, nil)

	flow, err := f.uc.Flow(context.Background(), storeID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPreparing, flow.InitialStatus())
}

func TestResolveStoreToken(t *testing.T) {
	f := newSettingsFixture(t)
	f.repo.EXPECT().FindStoreIDByToken(gomock.Any(), "bogus").
		Return(uuid.Nil, infra.WrapRepoErr("token not found", nil, infra.KindNotFound))

	_, err := f.uc.ResolveStoreToken(context.Background(), "bogus")
	assert.ErrorIs(t, err, usecase.ErrStoreTokenInvalid)
}
