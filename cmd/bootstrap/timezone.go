package bootstrap

import (
	"time"

	"franguinho-pos/internal/pkg/config"

	"go.uber.org/fx"
)

var TimezoneModule = fx.Module("timezone",
	fx.Provide(
		NewLocation,
	),
)

// NewLocation resolves the store's business timezone. Dashboard day windows
// and receipt timestamps are rendered in this location.
func NewLocation(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Log.TimeZone)
}
