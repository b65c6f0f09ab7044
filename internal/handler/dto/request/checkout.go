package request

import (
	"petshop-checkout/internal/domain/order"
)

type SelectPromotionRequest struct {
	Code string `json:"code"`
}

// Code is not bound as required: an empty code has its own error message.
type ApplyVoucherRequest struct {
	Code string `json:"code"`
}

// PlaceOrderRequest carries the checkout form as shown to the customer. Field
// presence is checked by the order builder so each missing field is reported
// by name in form order.
type PlaceOrderRequest struct {
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
	Note              string `json:"note" binding:"max=1000"`
}

func (r PlaceOrderRequest) ToDomain() order.Form {
	return order.Form{
		DeliveryType:      order.DeliveryType(r.DeliveryType),
		SelectedAddressID: r.SelectedAddressID,
		Province:          r.Province,
		District:          r.District,
		Street:            r.Street,
		CustomerName:      r.CustomerName,
		CustomerPhone:     r.CustomerPhone,
		Email:             r.Email,
		OnBehalf:          r.OnBehalf,
		RecipientName:     r.RecipientName,
		RecipientPhone:    r.RecipientPhone,
		PaymentMethod:     order.PaymentMethod(r.PaymentMethod),
		Note:              r.Note,
	}
}
