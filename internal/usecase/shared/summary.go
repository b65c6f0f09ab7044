package shared

import (
	"petshop-checkout/internal/usecase/readmodel"
)

func summarize(p *Pass) *readmodel.CheckoutSummaryRM {
	state := p.Engine.State()
	rm := &readmodel.CheckoutSummaryRM{
		Subtotal:          state.Subtotal,
		PromotionDiscount: state.PromotionDiscount,
		VoucherDiscount:   state.VoucherDiscount,
		TotalDiscount:     state.TotalDiscount,
		ShippingFee:       state.ShippingFee,
		FinalTotal:        state.FinalTotal,
		VoucherInput:      p.Engine.Validator().Input(),
		Items:             make([]readmodel.CartItemRM, 0),
	}

	if code, ok := p.Engine.SelectedPromotion(); ok {
		rm.SelectedPromotion = &code
	}
	if applied, ok := p.Engine.AppliedVoucher(); ok {
		rm.AppliedVoucher = &readmodel.AppliedVoucherRM{
			VoucherID:      applied.VoucherID,
			Code:           applied.Code,
			Description:    applied.Description,
			DiscountType:   string(applied.DiscountType),
			DiscountValue:  applied.DiscountValue,
			DiscountAmount: applied.DiscountAmount,
		}
	}
	if msg := p.Engine.Validator().ErrorMessage(); msg != "" {
		rm.VoucherError = &msg
	}

	for _, it := range p.Cart.Items() {
		rm.Items = append(rm.Items, readmodel.CartItemRM{
			ProductID:           it.ProductID(),
			Quantity:            it.Quantity(),
			UnitPrice:           it.UnitPrice(),
			DiscountedUnitPrice: it.DiscountedUnitPrice(),
			LineTotal:           it.LineTotal(),
		})
	}
	return rm
}
