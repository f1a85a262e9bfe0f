package usecase

import (
	"context"
	"errors"
	"log/slog"

	"franguinho-pos/internal/domain/order"
	"franguinho-pos/internal/infra"
	"franguinho-pos/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrSettingsNotFound  = errors.New("store settings not found")
	ErrStoreTokenInvalid = errors.New("store token not recognized")
)

type SettingsRepository interface {
	Get(ctx context.Context, storeID uuid.UUID) (*readmodel.StoreSettingsRM, error)
	Update(ctx context.Context, storeID uuid.UUID, pendingEnabled, preparingEnabled bool, webhookURL *string) (*readmodel.StoreSettingsRM, error)
	FindStoreIDByToken(ctx context.Context, token string) (uuid.UUID, error)
	FindStoreName(ctx context.Context, storeID uuid.UUID) (string, error)
}

// SettingsCache fronts the settings table; misses return an error the
// usecase treats as a fallthrough, never a failure.
type SettingsCache interface {
	Get(ctx context.Context, storeID uuid.UUID) (*readmodel.StoreSettingsRM, error)
	Set(ctx context.Context, rm *readmodel.StoreSettingsRM) error
	Invalidate(ctx context.Context, storeID uuid.UUID) error
}

type SettingsUseCase interface {
	Get(ctx context.Context, storeID uuid.UUID) (*readmodel.StoreSettingsRM, error)
	Update(ctx context.Context, storeID uuid.UUID, pendingEnabled, preparingEnabled bool, webhookURL *string) (*readmodel.StoreSettingsRM, error)
	Flow(ctx context.Context, storeID uuid.UUID) (order.Flow, error)
	ResolveStoreToken(ctx context.Context, token string) (uuid.UUID, error)
	StoreName(ctx context.Context, storeID uuid.UUID) (string, error)
}

type settingsUseCaseImpl struct {
	settingsRepo SettingsRepository
	cache        SettingsCache
}

func NewSettingsUseCase(settingsRepo SettingsRepository, cache SettingsCache) SettingsUseCase {
	return &settingsUseCaseImpl{
		settingsRepo: settingsRepo,
		cache:        cache,
	}
}

func (s *settingsUseCaseImpl) Get(ctx context.Context, storeID uuid.UUID) (*readmodel.StoreSettingsRM, error) {
	if cached, err := s.cache.Get(ctx, storeID); err == nil {
		return cached, nil
	}

	rm, err := s.settingsRepo.Get(ctx, storeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}

	if err := s.cache.Set(ctx, rm); err != nil {
		slog.Warn("failed to cache store settings", "store_id", storeID, "error", err)
	}
	return rm, nil
}

func (s *settingsUseCaseImpl) Update(ctx context.Context, storeID uuid.UUID, pendingEnabled, preparingEnabled bool, webhookURL *string) (*readmodel.StoreSettingsRM, error) {
	rm, err := s.settingsRepo.Update(ctx, storeID, pendingEnabled, preparingEnabled, webhookURL)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, storeID); err != nil {
		slog.Warn("failed to invalidate cached settings", "store_id", storeID, "error", err)
	}
	return rm, nil
}

// Flow builds the store's active status pipeline from its stage toggles.
func (s *settingsUseCaseImpl) Flow(ctx context.Context, storeID uuid.UUID) (order.Flow, error) {
	rm, err := s.Get(ctx, storeID)
	if err != nil {
		return order.Flow{}, err
	}
	return order.NewFlow(order.FlowSettings{
		PendingEnabled:   rm.PendingEnabled,
		PreparingEnabled: rm.PreparingEnabled,
	}), nil
}

func (s *settingsUseCaseImpl) StoreName(ctx context.Context, storeID uuid.UUID) (string, error) {
	name, err := s.settingsRepo.FindStoreName(ctx, storeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrSettingsNotFound
		}
		return "", err
	}
	return name, nil
}

func (s *settingsUseCaseImpl) ResolveStoreToken(ctx context.Context, token string) (uuid.UUID, error) {
	storeID, err := s.settingsRepo.FindStoreIDByToken(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrStoreTokenInvalid
		}
		return uuid.Nil, err
	}
	return storeID, nil
}
