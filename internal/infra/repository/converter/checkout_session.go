package converter

import (
	"encoding/json"

	"petshop-checkout/internal/domain/voucher"
	"petshop-checkout/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// appliedVoucherJSON is the shape stored in checkout_sessions.applied_voucher.
type appliedVoucherJSON struct {
	VoucherID      int64           `json:"voucher_id"`
	Code           string          `json:"code"`
	Description    string          `json:"description,omitempty"`
	DiscountType   string          `json:"discount_type"`
	DiscountValue  decimal.Decimal `json:"discount_value"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
}

// AppliedVoucherToJSON returns nil for no voucher so the column stores NULL.
func AppliedVoucherToJSON(v *voucher.Applied) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(appliedVoucherJSON{
		VoucherID:      v.VoucherID,
		Code:           v.Code,
		Description:    v.Description,
		DiscountType:   string(v.DiscountType),
		DiscountValue:  v.DiscountValue,
		DiscountAmount: v.DiscountAmount,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode applied voucher")
	}
	return b, nil
}

func AppliedVoucherFromJSON(raw string) (*voucher.Applied, error) {
	if raw == "" {
		return nil, nil
	}
	var v appliedVoucherJSON
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, errs.Wrap(err, "failed to decode applied voucher")
	}
	return &voucher.Applied{
		VoucherID:      v.VoucherID,
		Code:           v.Code,
		Description:    v.Description,
		DiscountType:   voucher.DiscountType(v.DiscountType),
		DiscountValue:  v.DiscountValue,
		DiscountAmount: v.DiscountAmount,
	}, nil
}
