package discount

import "github.com/shopspring/decimal"

// State is derived on every pass and never stored.
type State struct {
	Subtotal          decimal.Decimal
	PromotionDiscount decimal.Decimal
	VoucherDiscount   decimal.Decimal
	TotalDiscount     decimal.Decimal
	ShippingFee       decimal.Decimal
	FinalTotal        decimal.Decimal
}

// Aggregate clamps the final total at zero and rounds nothing; currency
// rounding belongs to whoever renders the amounts.
func Aggregate(promotionDiscount, voucherDiscount, subtotal, shippingFee decimal.Decimal) State {
	total := promotionDiscount.Add(voucherDiscount)
	final := subtotal.Sub(total).Add(shippingFee)
	if final.IsNegative() {
		final = decimal.Zero
	}
	return State{
		Subtotal:          subtotal,
		PromotionDiscount: promotionDiscount,
		VoucherDiscount:   voucherDiscount,
		TotalDiscount:     total,
		ShippingFee:       shippingFee,
		FinalTotal:        final,
	}
}
