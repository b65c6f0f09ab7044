package bootstrap

import (
	"context"

	"petshop-checkout/internal/infra/db"
	"petshop-checkout/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	if cfg.DB.MigrationsDir != "" {
		if err := db.Migrate(cfg.DB, cfg.DB.MigrationsDir); err != nil {
			return nil, err
		}
	}

	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
