package bootstrap

import (
	"petshop-checkout/cmd/bootstrap/components"
	"petshop-checkout/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

// Module wires the whole service. Tests swap ConfigModule and the
// infrastructure modules (db, redis, events) for their own providers.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	EventsModule,
	JWTModule,
	components.PersistenceModule,
	components.ClientModule,
	components.UseCaseModule,
	components.HandlerModule,
)
