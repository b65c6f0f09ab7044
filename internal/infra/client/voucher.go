package client

import (
	"context"
	"net/http"

	"petshop-checkout/internal/domain/voucher"

	"github.com/shopspring/decimal"
)

type applyVoucherRequest struct {
	Code        string          `json:"code"`
	OrderAmount decimal.Decimal `json:"order_amount"`
}

type voucherDTO struct {
	VoucherID     int64           `json:"voucher_id"`
	Code          string          `json:"code"`
	Description   string          `json:"description"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
}

type VoucherClient struct {
	c *Client
}

func NewVoucherClient(c *Client) *VoucherClient {
	return &VoucherClient{c: c}
}

// ApplyVoucher maps the voucher service's statuses onto rejection reasons:
// 400 not eligible, 404 not found, 204 or an empty body inapplicable and
// anything else an invalid code.
func (vc *VoucherClient) ApplyVoucher(ctx context.Context, code string, orderAmount decimal.Decimal) (*voucher.Record, error) {
	resp, err := vc.c.Do(ctx, http.MethodPost, "/api/vouchers/apply", applyVoucherRequest{
		Code:        code,
		OrderAmount: orderAmount,
	})
	if err != nil {
		return nil, voucher.NewRejection(voucher.ReasonInvalidCode, "", err)
	}
	defer closeBody(resp)

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusNoContent:
		return nil, voucher.NewRejection(voucher.ReasonInapplicable, "", nil)
	case http.StatusBadRequest:
		return nil, voucher.NewRejection(voucher.ReasonNotEligible, "", nil)
	case http.StatusNotFound:
		return nil, voucher.NewRejection(voucher.ReasonNotFound, "", nil)
	default:
		return nil, voucher.NewRejection(voucher.ReasonInvalidCode, "", unexpectedStatus(vc.c.Name, resp))
	}

	var body voucherDTO
	ok, err := decodeJSON(resp, &body)
	if err != nil {
		return nil, voucher.NewRejection(voucher.ReasonInvalidCode, "", err)
	}
	if !ok {
		return nil, voucher.NewRejection(voucher.ReasonInapplicable, "", nil)
	}

	return &voucher.Record{
		VoucherID:     body.VoucherID,
		Code:          body.Code,
		Description:   body.Description,
		DiscountType:  voucher.DiscountType(body.DiscountType),
		DiscountValue: body.DiscountValue,
	}, nil
}
