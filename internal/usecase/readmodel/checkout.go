package readmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

type CheckoutSummaryRM struct {
	Subtotal          decimal.Decimal   `json:"subtotal"`
	PromotionDiscount decimal.Decimal   `json:"promotion_discount"`
	VoucherDiscount   decimal.Decimal   `json:"voucher_discount"`
	TotalDiscount     decimal.Decimal   `json:"total_discount"`
	ShippingFee       decimal.Decimal   `json:"shipping_fee"`
	FinalTotal        decimal.Decimal   `json:"final_total"`
	SelectedPromotion *string           `json:"selected_promotion,omitempty"`
	AppliedVoucher    *AppliedVoucherRM `json:"applied_voucher,omitempty"`
	VoucherInput      string            `json:"voucher_input"`
	VoucherError      *string           `json:"voucher_error,omitempty"`
	Items             []CartItemRM      `json:"items"`
}

type AppliedVoucherRM struct {
	VoucherID      int64           `json:"voucher_id"`
	Code           string          `json:"code"`
	Description    string          `json:"description"`
	DiscountType   string          `json:"discount_type"`
	DiscountValue  decimal.Decimal `json:"discount_value"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
}

type CartItemRM struct {
	ProductID           int64            `json:"product_id"`
	Quantity            int              `json:"quantity"`
	UnitPrice           decimal.Decimal  `json:"unit_price"`
	DiscountedUnitPrice *decimal.Decimal `json:"discounted_unit_price,omitempty"`
	LineTotal           decimal.Decimal  `json:"line_total"`
}

type PromotionRM struct {
	Code             string           `json:"code"`
	Type             string           `json:"type"`
	DiscountValue    decimal.Decimal  `json:"discount_value"`
	IsPercentage     bool             `json:"is_percentage"`
	MinOrderAmount   *decimal.Decimal `json:"min_order_amount,omitempty"`
	StartDate        time.Time        `json:"start_date"`
	EndDate          time.Time        `json:"end_date"`
	Eligible         bool             `json:"eligible"`
	IneligibleReason string           `json:"ineligible_reason,omitempty"`
	Selected         bool             `json:"selected"`
	Discount         decimal.Decimal  `json:"discount"`
}

type FormRM struct {
	DeliveryType      string `json:"delivery_type"`
	SelectedAddressID *int64 `json:"selected_address_id,omitempty"`
	Province          string `json:"province"`
	District          string `json:"district"`
	Street            string `json:"street"`
	CustomerName      string `json:"customer_name"`
	CustomerPhone     string `json:"customer_phone"`
	Email             string `json:"email"`
	OnBehalf          bool   `json:"on_behalf"`
	RecipientName     string `json:"recipient_name"`
	RecipientPhone    string `json:"recipient_phone"`
	PaymentMethod     string `json:"payment_method"`
	Note              string `json:"note"`
}

type SavedAddressRM struct {
	ID        int64  `json:"id"`
	Province  string `json:"province"`
	District  string `json:"district"`
	Ward      string `json:"ward"`
	Street    string `json:"street"`
	IsDefault bool   `json:"is_default"`
}

type FormDefaultsRM struct {
	Form      FormRM           `json:"form"`
	Addresses []SavedAddressRM `json:"addresses"`
}

type OrderPlacedRM struct {
	OrderID       string          `json:"order_id"`
	Status        string          `json:"status"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	FinalTotal    decimal.Decimal `json:"final_total"`
}
