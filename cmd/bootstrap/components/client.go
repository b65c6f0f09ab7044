package components

import (
	"net/http"

	"petshop-checkout/internal/infra/cache"
	"petshop-checkout/internal/infra/client"
	"petshop-checkout/internal/pkg/config"
	"petshop-checkout/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var ClientModule = fx.Module("client",
	fx.Provide(
		func(cfg config.Config) *http.Client {
			return client.NewHTTPClient(cfg.Upstream)
		},
		fx.Annotate(
			NewCartClient,
			fx.As(new(shared.CartSource)),
		),
		fx.Annotate(
			NewVoucherClient,
			fx.As(new(shared.VoucherService)),
		),
		fx.Annotate(
			NewOrderClient,
			fx.As(new(shared.OrderSubmitter)),
		),
		fx.Annotate(
			NewUserClient,
			fx.As(new(shared.ProfileSource)),
		),
		fx.Annotate(
			NewPromotionClient,
			fx.As(new(cache.PromotionSource)),
		),
		fx.Annotate(
			func(cfg config.Config, rdb *redis.Client, source cache.PromotionSource) *cache.PromotionCatalog {
				return cache.NewPromotionCatalog(rdb, source, cfg.Redis)
			},
			fx.As(new(shared.PromotionCatalog)),
		),
	),
)

func NewCartClient(cfg config.Config, hc *http.Client) (*client.CartClient, error) {
	base, err := client.NewClient("cart-service", cfg.Upstream.CartBaseURL, hc, cfg.Upstream)
	if err != nil {
		return nil, err
	}
	return client.NewCartClient(base), nil
}

func NewVoucherClient(cfg config.Config, hc *http.Client) (*client.VoucherClient, error) {
	base, err := client.NewClient("voucher-service", cfg.Upstream.VoucherBaseURL, hc, cfg.Upstream)
	if err != nil {
		return nil, err
	}
	return client.NewVoucherClient(base), nil
}

func NewOrderClient(cfg config.Config, hc *http.Client) (*client.OrderClient, error) {
	base, err := client.NewClient("order-service", cfg.Upstream.OrderBaseURL, hc, cfg.Upstream)
	if err != nil {
		return nil, err
	}
	return client.NewOrderClient(base), nil
}

func NewUserClient(cfg config.Config, hc *http.Client) (*client.UserClient, error) {
	base, err := client.NewClient("user-service", cfg.Upstream.UserBaseURL, hc, cfg.Upstream)
	if err != nil {
		return nil, err
	}
	return client.NewUserClient(base), nil
}

func NewPromotionClient(cfg config.Config, hc *http.Client) (*client.PromotionClient, error) {
	base, err := client.NewClient("promotion-service", cfg.Upstream.PromotionBaseURL, hc, cfg.Upstream)
	if err != nil {
		return nil, err
	}
	return client.NewPromotionClient(base), nil
}
