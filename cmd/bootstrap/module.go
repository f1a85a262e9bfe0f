package bootstrap

import (
	"franguinho-pos/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	TimezoneModule,
	components.RepositoryModule,
	components.AdapterModule,
	components.UseCaseModule,
	components.HandlerModule,
)
