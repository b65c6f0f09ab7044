package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"petshop-checkout/internal/pkg/config"
	"petshop-checkout/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errs.Wrap(err, "failed to connect to redis")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			slog.Info("closing redis client")
			return rdb.Close()
		},
	})

	return rdb, nil
}
