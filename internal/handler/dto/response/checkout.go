package response

import (
	"time"

	"petshop-checkout/internal/usecase/readmodel"

	"github.com/shopspring/decimal"
)

type CheckoutSummaryResponse struct {
	Subtotal          decimal.Decimal         `json:"subtotal"`
	PromotionDiscount decimal.Decimal         `json:"promotionDiscount"`
	VoucherDiscount   decimal.Decimal         `json:"voucherDiscount"`
	TotalDiscount     decimal.Decimal         `json:"totalDiscount"`
	ShippingFee       decimal.Decimal         `json:"shippingFee"`
	FinalTotal        decimal.Decimal         `json:"finalTotal"`
	SelectedPromotion *string                 `json:"selectedPromotion,omitempty"`
	AppliedVoucher    *AppliedVoucherResponse `json:"appliedVoucher,omitempty"`
	VoucherInput      string                  `json:"voucherInput"`
	VoucherError      *string                 `json:"voucherError,omitempty"`
	Items             []CartItemResponse      `json:"items"`
}

type AppliedVoucherResponse struct {
	VoucherID      int64           `json:"voucherId"`
	Code           string          `json:"code"`
	Description    string          `json:"description"`
	DiscountType   string          `json:"discountType"`
	DiscountValue  decimal.Decimal `json:"discountValue"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
}

type CartItemResponse struct {
	ProductID           int64            `json:"productId"`
	Quantity            int              `json:"quantity"`
	UnitPrice           decimal.Decimal  `json:"unitPrice"`
	DiscountedUnitPrice *decimal.Decimal `json:"discountedUnitPrice,omitempty"`
	LineTotal           decimal.Decimal  `json:"lineTotal"`
}

type PromotionResponse struct {
	Code             string           `json:"code"`
	Type             string           `json:"type"`
	DiscountValue    decimal.Decimal  `json:"discountValue"`
	IsPercentage     bool             `json:"isPercentage"`
	MinOrderAmount   *decimal.Decimal `json:"minOrderAmount,omitempty"`
	StartDate        time.Time        `json:"startDate"`
	EndDate          time.Time        `json:"endDate"`
	Eligible         bool             `json:"eligible"`
	IneligibleReason string           `json:"ineligibleReason,omitempty"`
	Selected         bool             `json:"selected"`
	Discount         decimal.Decimal  `json:"discount"`
}

type FormDefaultsResponse struct {
	DeliveryType      string                 `json:"deliveryType"`
	SelectedAddressID *int64                 `json:"selectedAddressId,omitempty"`
	Province          string                 `json:"province"`
	District          string                 `json:"district"`
	Street            string                 `json:"street"`
	CustomerName      string                 `json:"customerName"`
	CustomerPhone     string                 `json:"customerPhone"`
	Email             string                 `json:"email"`
	PaymentMethod     string                 `json:"paymentMethod"`
	Addresses         []SavedAddressResponse `json:"addresses"`
}

type SavedAddressResponse struct {
	ID        int64  `json:"id"`
	Province  string `json:"province"`
	District  string `json:"district"`
	Ward      string `json:"ward"`
	Street    string `json:"street"`
	IsDefault bool   `json:"isDefault"`
}

type OrderPlacedResponse struct {
	OrderID       string          `json:"orderId"`
	Status        string          `json:"status"`
	TotalDiscount decimal.Decimal `json:"totalDiscount"`
	FinalTotal    decimal.Decimal `json:"finalTotal"`
}

func FromCheckoutSummaryRM(rm *readmodel.CheckoutSummaryRM) *CheckoutSummaryResponse {
	res := &CheckoutSummaryResponse{
		Subtotal:          rm.Subtotal,
		PromotionDiscount: rm.PromotionDiscount,
		VoucherDiscount:   rm.VoucherDiscount,
		TotalDiscount:     rm.TotalDiscount,
		ShippingFee:       rm.ShippingFee,
		FinalTotal:        rm.FinalTotal,
		SelectedPromotion: rm.SelectedPromotion,
		VoucherInput:      rm.VoucherInput,
		VoucherError:      rm.VoucherError,
		Items:             make([]CartItemResponse, len(rm.Items)),
	}
	if v := rm.AppliedVoucher; v != nil {
		res.AppliedVoucher = &AppliedVoucherResponse{
			VoucherID:      v.VoucherID,
			Code:           v.Code,
			Description:    v.Description,
			DiscountType:   v.DiscountType,
			DiscountValue:  v.DiscountValue,
			DiscountAmount: v.DiscountAmount,
		}
	}
	for i, it := range rm.Items {
		res.Items[i] = CartItemResponse{
			ProductID:           it.ProductID,
			Quantity:            it.Quantity,
			UnitPrice:           it.UnitPrice,
			DiscountedUnitPrice: it.DiscountedUnitPrice,
			LineTotal:           it.LineTotal,
		}
	}
	return res
}

func FromPromotionRMs(rms []readmodel.PromotionRM) []PromotionResponse {
	res := make([]PromotionResponse, len(rms))
	for i, rm := range rms {
		res[i] = PromotionResponse{
			Code:             rm.Code,
			Type:             rm.Type,
			DiscountValue:    rm.DiscountValue,
			IsPercentage:     rm.IsPercentage,
			MinOrderAmount:   rm.MinOrderAmount,
			StartDate:        rm.StartDate,
			EndDate:          rm.EndDate,
			Eligible:         rm.Eligible,
			IneligibleReason: rm.IneligibleReason,
			Selected:         rm.Selected,
			Discount:         rm.Discount,
		}
	}
	return res
}

func FromFormDefaultsRM(rm *readmodel.FormDefaultsRM) *FormDefaultsResponse {
	res := &FormDefaultsResponse{
		DeliveryType:      rm.Form.DeliveryType,
		SelectedAddressID: rm.Form.SelectedAddressID,
		Province:          rm.Form.Province,
		District:          rm.Form.District,
		Street:            rm.Form.Street,
		CustomerName:      rm.Form.CustomerName,
		CustomerPhone:     rm.Form.CustomerPhone,
		Email:             rm.Form.Email,
		PaymentMethod:     rm.Form.PaymentMethod,
		Addresses:         make([]SavedAddressResponse, len(rm.Addresses)),
	}
	for i, a := range rm.Addresses {
		res.Addresses[i] = SavedAddressResponse{
			ID:        a.ID,
			Province:  a.Province,
			District:  a.District,
			Ward:      a.Ward,
			Street:    a.Street,
			IsDefault: a.IsDefault,
		}
	}
	return res
}

func FromOrderPlacedRM(rm *readmodel.OrderPlacedRM) *OrderPlacedResponse {
	return &OrderPlacedResponse{
		OrderID:       rm.OrderID,
		Status:        rm.Status,
		TotalDiscount: rm.TotalDiscount,
		FinalTotal:    rm.FinalTotal,
	}
}
