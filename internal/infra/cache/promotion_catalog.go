package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"petshop-checkout/internal/domain/promotion"
	"petshop-checkout/internal/infra/client"
	"petshop-checkout/internal/pkg/config"
	"petshop-checkout/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const (
	promotionCatalogKey = "checkout:promotions"
	fetchTimeout        = 10 * time.Second
)

var ErrCacheMiss = errs.New("cache miss")

type PromotionSource interface {
	FetchPromotionDTOs(ctx context.Context) ([]client.PromotionDTO, error)
}

// PromotionCatalog serves the promotion list from redis and falls back to the
// promotion service. A redis outage degrades to direct fetches; a failed
// fetch is an error, never an empty catalog.
type PromotionCatalog struct {
	rdb     *redis.Client
	source  PromotionSource
	baseTTL time.Duration
	jitter  time.Duration
	sfg     singleflight.Group
}

func NewPromotionCatalog(rdb *redis.Client, source PromotionSource, cfg config.RedisConfig) *PromotionCatalog {
	return &PromotionCatalog{
		rdb:     rdb,
		source:  source,
		baseTTL: cfg.PromotionTTL,
		jitter:  cfg.PromotionJitter,
	}
}

// FetchPromotions shares one fetch between concurrent callers. The shared
// fetch does not inherit the first caller's cancellation.
func (c *PromotionCatalog) FetchPromotions(ctx context.Context) (promotion.Catalog, error) {
	v, err, _ := c.sfg.Do(promotionCatalogKey, func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()

		dtos, err := c.get(ctx)
		if err == nil {
			return dtos, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			slog.Warn("promotion cache read failed", "error", err)
		}

		dtos, err = c.source.FetchPromotionDTOs(ctx)
		if err != nil {
			return nil, errs.Wrap(err, "failed to fetch promotions")
		}

		if err := c.set(ctx, dtos); err != nil {
			slog.Warn("promotion cache write failed", "error", err)
		}
		return dtos, nil
	})
	if err != nil {
		return nil, err
	}
	return client.ToCatalog(v.([]client.PromotionDTO)), nil
}

func (c *PromotionCatalog) Invalidate(ctx context.Context) error {
	if err := c.rdb.Del(ctx, promotionCatalogKey).Err(); err != nil {
		return errs.Wrap(err, "redis delete failed")
	}
	return nil
}

func (c *PromotionCatalog) get(ctx context.Context) ([]client.PromotionDTO, error) {
	data, err := c.rdb.Get(ctx, promotionCatalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, errs.Wrap(err, "redis get failed")
	}

	var dtos []client.PromotionDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, errs.Wrap(err, "unmarshal promotions failed")
	}
	return dtos, nil
}

func (c *PromotionCatalog) set(ctx context.Context, dtos []client.PromotionDTO) error {
	data, err := json.Marshal(dtos)
	if err != nil {
		return errs.Wrap(err, "marshal promotions failed")
	}
	if err := c.rdb.Set(ctx, promotionCatalogKey, data, c.ttl()).Err(); err != nil {
		return errs.Wrap(err, "redis set failed")
	}
	return nil
}

func (c *PromotionCatalog) ttl() time.Duration {
	if c.jitter <= 0 {
		return c.baseTTL
	}
	return c.baseTTL + rand.N(c.jitter)
}
