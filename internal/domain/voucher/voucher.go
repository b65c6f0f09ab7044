package voucher

import (
	"strings"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountPercentage  DiscountType = "PERCENTAGE"
	DiscountFixedAmount DiscountType = "FIXED_AMOUNT"
)

var hundred = decimal.NewFromInt(100)

// Record is the voucher as returned by the voucher service on a successful
// apply call.
type Record struct {
	VoucherID     int64
	Code          string
	Description   string
	DiscountType  DiscountType
	DiscountValue decimal.Decimal
}

func (r *Record) isValid() bool {
	return r != nil && r.VoucherID > 0 && strings.TrimSpace(r.Code) != ""
}

// Applied is the single voucher currently attached to the checkout.
type Applied struct {
	VoucherID      int64
	Code           string
	Description    string
	DiscountType   DiscountType
	DiscountValue  decimal.Decimal
	DiscountAmount decimal.Decimal
}

// ComputeDiscount is shared by apply and reconcile so both paths agree.
// Unknown types yield zero.
func ComputeDiscount(discountType DiscountType, value, subtotal decimal.Decimal) decimal.Decimal {
	switch discountType {
	case DiscountPercentage:
		return subtotal.Mul(value).Div(hundred)
	case DiscountFixedAmount:
		return value
	default:
		return decimal.Zero
	}
}

func newApplied(r *Record, subtotal decimal.Decimal) *Applied {
	return &Applied{
		VoucherID:      r.VoucherID,
		Code:           r.Code,
		Description:    r.Description,
		DiscountType:   r.DiscountType,
		DiscountValue:  r.DiscountValue,
		DiscountAmount: ComputeDiscount(r.DiscountType, r.DiscountValue, subtotal),
	}
}
