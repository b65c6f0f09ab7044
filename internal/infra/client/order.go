package client

import (
	"context"
	"net/http"

	"petshop-checkout/internal/domain/order"

	"github.com/shopspring/decimal"
)

type addressDTO struct {
	Province string `json:"province"`
	District string `json:"district"`
	Ward     string `json:"ward"`
	Street   string `json:"street"`
}

type orderLineDTO struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderRequestDTO is the order service's create-order body. Exactly one of
// AddressID and Address is set.
type OrderRequestDTO struct {
	RecipientName  string         `json:"recipient_name"`
	RecipientPhone string         `json:"recipient_phone"`
	Email          string         `json:"email"`
	DeliveryType   string         `json:"delivery_type"`
	AddressID      *int64         `json:"address_id,omitempty"`
	Address        *addressDTO    `json:"address,omitempty"`
	PaymentMethod  string         `json:"payment_method"`
	VoucherIDs     []int64        `json:"voucher_ids,omitempty"`
	Items          []orderLineDTO `json:"items"`
	Note           string         `json:"note,omitempty"`
}

type orderResultDTO struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

type OrderClient struct {
	c *Client
}

func NewOrderClient(c *Client) *OrderClient {
	return &OrderClient{c: c}
}

func (oc *OrderClient) SubmitOrder(ctx context.Context, payload *order.Payload) (*order.Result, error) {
	resp, err := oc.c.Do(ctx, http.MethodPost, "/api/orders", ToOrderRequest(payload))
	if err != nil {
		return nil, order.NewSubmissionError(0, "", err)
	}
	defer closeBody(resp)

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusUnauthorized:
		return nil, order.ErrAuthRequired
	default:
		return nil, order.NewSubmissionError(resp.StatusCode, serverMessage(resp), unexpectedStatus(oc.c.Name, resp))
	}

	var body orderResultDTO
	ok, err := decodeJSON(resp, &body)
	if err != nil {
		return nil, order.NewSubmissionError(resp.StatusCode, "", err)
	}
	if !ok || body.OrderID == "" {
		return nil, order.NewSubmissionError(resp.StatusCode, "", errMissingOrderID)
	}
	return &order.Result{OrderID: body.OrderID, Status: body.Status}, nil
}

func ToOrderRequest(p *order.Payload) OrderRequestDTO {
	dto := OrderRequestDTO{
		RecipientName:  p.RecipientName,
		RecipientPhone: p.RecipientPhone,
		Email:          p.Email,
		DeliveryType:   string(p.DeliveryType),
		PaymentMethod:  string(p.PaymentMethod),
		VoucherIDs:     p.VoucherIDs,
		Items:          make([]orderLineDTO, 0, len(p.Items)),
		Note:           p.Note,
	}

	switch a := p.Address.(type) {
	case order.StorePickup:
		dto.Address = &addressDTO{
			Province: a.Address.Province,
			District: a.Address.District,
			Ward:     a.Address.Ward,
			Street:   a.Address.Street,
		}
	case order.ReuseAddress:
		id := a.AddressID
		dto.AddressID = &id
	case order.NewAddress:
		dto.Address = &addressDTO{
			Province: a.Province,
			District: a.District,
			Ward:     a.Ward,
			Street:   a.Street,
		}
	}

	for _, l := range p.Items {
		dto.Items = append(dto.Items, orderLineDTO{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	return dto
}
