package client

import (
	"context"
	"net/http"

	"petshop-checkout/internal/domain/cart"
	"petshop-checkout/internal/domain/order"
	"petshop-checkout/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type cartItemDTO struct {
	ProductID           int64            `json:"product_id"`
	UnitPrice           decimal.Decimal  `json:"unit_price"`
	DiscountedUnitPrice *decimal.Decimal `json:"discounted_unit_price"`
	Quantity            int              `json:"quantity"`
}

type cartDTO struct {
	Items []cartItemDTO `json:"items"`
}

type CartClient struct {
	c *Client
}

func NewCartClient(c *Client) *CartClient {
	return &CartClient{c: c}
}

// GetCart returns an empty snapshot when the customer has no cart yet.
func (cc *CartClient) GetCart(ctx context.Context, userID uuid.UUID) (cart.Snapshot, error) {
	resp, err := cc.c.Do(ctx, http.MethodGet, "/api/users/"+userID.String()+"/cart", nil)
	if err != nil {
		return cart.Snapshot{}, err
	}
	defer closeBody(resp)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusNoContent:
		return cart.NewSnapshot(nil), nil
	case http.StatusUnauthorized:
		return cart.Snapshot{}, order.ErrAuthRequired
	default:
		return cart.Snapshot{}, unexpectedStatus(cc.c.Name, resp)
	}

	var body cartDTO
	if _, err := decodeJSON(resp, &body); err != nil {
		return cart.Snapshot{}, err
	}

	items := make([]cart.Item, 0, len(body.Items))
	for _, it := range body.Items {
		item, err := cart.NewItem(it.ProductID, it.UnitPrice, it.DiscountedUnitPrice, it.Quantity)
		if err != nil {
			return cart.Snapshot{}, errs.Wrapf(err, "invalid cart item %d", it.ProductID)
		}
		items = append(items, item)
	}
	return cart.NewSnapshot(items), nil
}
