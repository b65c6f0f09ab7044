//go:build unit || e2e

package builder

import (
	"time"

	"petshop-checkout/internal/domain/cart"
	"petshop-checkout/internal/domain/order"
	"petshop-checkout/internal/domain/promotion"
	reqdto "petshop-checkout/internal/handler/dto/request"
	"petshop-checkout/internal/infra/client"

	"github.com/shopspring/decimal"
)

// Now is the fixed instant every checkout fixture is valid at.
var Now = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func Amount(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func AmountPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

type CartLine struct {
	ProductID  int64
	UnitPrice  decimal.Decimal
	Discounted *decimal.Decimal
	Quantity   int
}

type CartBuilder struct {
	Lines []CartLine
}

func NewCartBuilder() *CartBuilder {
	return &CartBuilder{
		Lines: []CartLine{
			{ProductID: 101, UnitPrice: Amount(400_000), Quantity: 2},
			{ProductID: 102, UnitPrice: Amount(250_000), Discounted: AmountPtr(200_000), Quantity: 1},
		},
	}
}

// WithSubtotal replaces the cart with one line worth exactly v.
func (c *CartBuilder) WithSubtotal(v int64) *CartBuilder {
	c.Lines = []CartLine{{ProductID: 101, UnitPrice: Amount(v), Quantity: 1}}
	return c
}

func (c *CartBuilder) Empty() *CartBuilder {
	c.Lines = nil
	return c
}

func (c *CartBuilder) With(mutate func(*CartBuilder)) *CartBuilder {
	mutate(c)
	return c
}

// Build methods
func (c *CartBuilder) BuildDomain() (cart.Snapshot, error) {
	items := make([]cart.Item, 0, len(c.Lines))
	for _, l := range c.Lines {
		it, err := cart.NewItem(l.ProductID, l.UnitPrice, l.Discounted, l.Quantity)
		if err != nil {
			return cart.Snapshot{}, err
		}
		items = append(items, it)
	}
	return cart.NewSnapshot(items), nil
}

func (c *CartBuilder) MustBuildDomain() cart.Snapshot {
	s, err := c.BuildDomain()
	if err != nil {
		panic(err)
	}
	return s
}

type PromotionBuilder struct {
	Code           string
	Type           promotion.Type
	DiscountValue  decimal.Decimal
	MinOrderAmount *decimal.Decimal
	StartDate      time.Time
	EndDate        time.Time
}

func NewPromotionBuilder() *PromotionBuilder {
	return &PromotionBuilder{
		Code:          "SUMMER10",
		Type:          promotion.TypeDiscount,
		DiscountValue: Amount(10),
		StartDate:     Now.AddDate(0, 0, -7),
		EndDate:       Now.AddDate(0, 0, 7),
	}
}

func (p *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	mutate(p)
	return p
}

func (p *PromotionBuilder) BuildDomain() (promotion.Promotion, error) {
	return promotion.NewPromotion(p.Code, p.Type, p.DiscountValue, p.MinOrderAmount, p.StartDate, p.EndDate)
}

func (p *PromotionBuilder) MustBuildDomain() promotion.Promotion {
	promo, err := p.BuildDomain()
	if err != nil {
		panic(err)
	}
	return promo
}

func (p *PromotionBuilder) BuildDTO() client.PromotionDTO {
	return client.PromotionDTO{
		Code:           p.Code,
		Type:           string(p.Type),
		DiscountValue:  p.DiscountValue,
		MinOrderAmount: p.MinOrderAmount,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
	}
}

// Catalog is SUMMER10 (10%, min 500,000) and FLAT200K (flat 200,000, no minimum).
func Catalog() promotion.Catalog {
	return promotion.Catalog{
		NewPromotionBuilder().With(func(p *PromotionBuilder) {
			p.MinOrderAmount = AmountPtr(500_000)
		}).MustBuildDomain(),
		NewPromotionBuilder().With(func(p *PromotionBuilder) {
			p.Code = "FLAT200K"
			p.DiscountValue = Amount(200_000)
		}).MustBuildDomain(),
	}
}

type FormBuilder struct {
	Form order.Form
}

func NewFormBuilder() *FormBuilder {
	return &FormBuilder{
		Form: order.Form{
			DeliveryType:  order.DeliveryHome,
			Province:      "Hà Nội",
			District:      "Cầu Giấy",
			Street:        "12 Trần Thái Tông",
			CustomerName:  "Nguyễn Văn A",
			CustomerPhone: "0901234567",
			Email:         "a@example.com",
			PaymentMethod: order.PaymentCash,
		},
	}
}

func (f *FormBuilder) With(mutate func(*order.Form)) *FormBuilder {
	mutate(&f.Form)
	return f
}

func (f *FormBuilder) BuildDomain() order.Form {
	return f.Form
}

func (f *FormBuilder) BuildRequestDTO() reqdto.PlaceOrderRequest {
	return reqdto.PlaceOrderRequest{
		DeliveryType:      string(f.Form.DeliveryType),
		SelectedAddressID: f.Form.SelectedAddressID,
		Province:          f.Form.Province,
		District:          f.Form.District,
		Street:            f.Form.Street,
		CustomerName:      f.Form.CustomerName,
		CustomerPhone:     f.Form.CustomerPhone,
		Email:             f.Form.Email,
		OnBehalf:          f.Form.OnBehalf,
		RecipientName:     f.Form.RecipientName,
		RecipientPhone:    f.Form.RecipientPhone,
		PaymentMethod:     string(f.Form.PaymentMethod),
		Note:              f.Form.Note,
	}
}

// AddressBook holds one default saved address matching NewFormBuilder's fields.
func AddressBook() order.AddressBook {
	return order.AddressBook{
		{ID: 7, Province: "Hà Nội", District: "Đống Đa", Ward: "Đống Đa", Street: "3 Tây Sơn"},
		{ID: 9, Province: "Hà Nội", District: "Cầu Giấy", Ward: "Cầu Giấy", Street: "12 Trần Thái Tông", IsDefault: true},
	}
}

func Profile() order.Profile {
	return order.Profile{FullName: "Nguyễn Văn A", Phone: "0901234567", Email: "a@example.com"}
}
