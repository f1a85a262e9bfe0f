package components

import (
	"franguinho-pos/internal/infra/cache"
	"franguinho-pos/internal/infra/events"
	"franguinho-pos/internal/infra/receipt"
	"franguinho-pos/internal/infra/whatsapp"
	"franguinho-pos/internal/pkg/config"
	"franguinho-pos/internal/usecase"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// AdapterModule wires the outbound adapters: the WhatsApp bridge client,
// the settings cache, the in-process event bus and the receipt renderer.
var AdapterModule = fx.Module("adapter",
	fx.Provide(
		events.NewBus,
		func(bus *events.Bus) usecase.EventBus {
			return bus
		},
		fx.Annotate(
			NewWhatsAppClient,
			fx.As(new(usecase.WhatsAppGateway)),
		),
		fx.Annotate(
			NewSettingsCache,
			fx.As(new(usecase.SettingsCache)),
		),
		fx.Annotate(
			receipt.NewGenerator,
			fx.As(new(usecase.ReceiptRenderer)),
		),
	),
)

func NewWhatsAppClient(cfg config.Config) *whatsapp.Client {
	return whatsapp.NewClient(cfg.WhatsApp)
}

func NewSettingsCache(client *redis.Client, cfg config.Config) *cache.SettingsCache {
	return cache.NewSettingsCache(client, cfg.Redis)
}
