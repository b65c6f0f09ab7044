package client

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"petshop-checkout/internal/domain/promotion"

	"github.com/shopspring/decimal"
)

type PromotionDTO struct {
	Code           string           `json:"code"`
	Type           string           `json:"type"`
	DiscountValue  decimal.Decimal  `json:"discount_value"`
	MinOrderAmount *decimal.Decimal `json:"min_order_amount"`
	StartDate      time.Time        `json:"start_date"`
	EndDate        time.Time        `json:"end_date"`
}

type PromotionClient struct {
	c *Client
}

func NewPromotionClient(c *Client) *PromotionClient {
	return &PromotionClient{c: c}
}

// FetchPromotionDTOs returns the raw catalog. The cache stores this form.
func (pc *PromotionClient) FetchPromotionDTOs(ctx context.Context) ([]PromotionDTO, error) {
	resp, err := pc.c.Do(ctx, http.MethodGet, "/api/promotions", nil)
	if err != nil {
		return nil, err
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus(pc.c.Name, resp)
	}

	var body []PromotionDTO
	if _, err := decodeJSON(resp, &body); err != nil {
		return nil, err
	}
	return body, nil
}

func (pc *PromotionClient) FetchPromotions(ctx context.Context) (promotion.Catalog, error) {
	dtos, err := pc.FetchPromotionDTOs(ctx)
	if err != nil {
		return nil, err
	}
	return ToCatalog(dtos), nil
}

// ToCatalog drops entries the domain refuses rather than failing the whole
// catalog over one bad promotion.
func ToCatalog(dtos []PromotionDTO) promotion.Catalog {
	catalog := make(promotion.Catalog, 0, len(dtos))
	for _, d := range dtos {
		p, err := promotion.NewPromotion(
			d.Code,
			promotion.Type(d.Type),
			d.DiscountValue,
			d.MinOrderAmount,
			d.StartDate,
			d.EndDate,
		)
		if err != nil {
			slog.Warn("skipping invalid promotion", "code", d.Code, "error", err)
			continue
		}
		catalog = append(catalog, p)
	}
	return catalog
}
