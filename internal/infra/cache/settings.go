package cache

import (
	"context"
	"encoding/json"
	"time"

	"franguinho-pos/internal/pkg/config"
	"franguinho-pos/internal/pkg/errs"
	"franguinho-pos/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const settingsKeyPrefix = "settings:"

// ErrCacheMiss is returned when the key is absent; callers fall back to the
// database and repopulate.
var ErrCacheMiss = errs.New("cache miss")

// SettingsCache keeps store settings in Redis so the order-flow pipeline does
// not hit Postgres on every status transition.
type SettingsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSettingsCache(client *redis.Client, cfg config.RedisConfig) *SettingsCache {
	return &SettingsCache{client: client, ttl: cfg.SettingsTTL}
}

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, nil, errs.Wrap(err, "failed to connect to redis")
	}
	cleanup := func() { _ = client.Close() }
	return client, cleanup, nil
}

func (c *SettingsCache) Get(ctx context.Context, storeID uuid.UUID) (*readmodel.StoreSettingsRM, error) {
	val, err := c.client.Get(ctx, settingsKeyPrefix+storeID.String()).Result()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to get settings from cache")
	}

	var rm readmodel.StoreSettingsRM
	if err := json.Unmarshal([]byte(val), &rm); err != nil {
		return nil, errs.Wrap(err, "failed to unmarshal cached settings")
	}
	return &rm, nil
}

func (c *SettingsCache) Set(ctx context.Context, rm *readmodel.StoreSettingsRM) error {
	data, err := json.Marshal(rm)
	if err != nil {
		return errs.Wrap(err, "failed to marshal settings")
	}
	if err := c.client.Set(ctx, settingsKeyPrefix+rm.StoreID.String(), data, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to cache settings")
	}
	return nil
}

// Invalidate drops the cached entry after a settings update.
func (c *SettingsCache) Invalidate(ctx context.Context, storeID uuid.UUID) error {
	if err := c.client.Del(ctx, settingsKeyPrefix+storeID.String()).Err(); err != nil {
		return errs.Wrap(err, "failed to invalidate cached settings")
	}
	return nil
}
