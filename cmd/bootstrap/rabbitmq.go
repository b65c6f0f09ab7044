package bootstrap

import (
	"context"
	"log/slog"

	"petshop-checkout/internal/infra/events"
	"petshop-checkout/internal/pkg/config"
	"petshop-checkout/internal/pkg/errs"
	"petshop-checkout/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewOrderEventPublisher,
	),
)

func NewOrderEventPublisher(lc fx.Lifecycle, cfg config.Config) (shared.OrderEventPublisher, error) {
	if cfg.RabbitMQ.URL == "" {
		slog.Warn("RABBITMQ_URL is not set, order events will not be published")
		return events.NoopPublisher{}, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		return nil, errs.Wrap(err, "failed to connect to rabbitmq")
	}

	publisher, err := events.NewPublisher(conn, cfg.RabbitMQ.Queue)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if err := publisher.Close(); err != nil {
				slog.Warn("failed to close rabbitmq channel", "error", err)
			}
			return conn.Close()
		},
	})

	return publisher, nil
}
