package promotion

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyPromotionCode  = errors.New("promotion code is required")
	ErrInvalidValidity     = errors.New("promotion start date must not be after end date")
	ErrNegativeDiscount    = errors.New("promotion discount value cannot be negative")
	ErrNegativeMinOrderAmt = errors.New("promotion minimum order amount cannot be negative")
)

type Type string

const (
	// TypeDiscount values up to 100 are read as a percentage of the subtotal.
	TypeDiscount Type = "DISCOUNT"
)

var percentageCeiling = decimal.NewFromInt(100)

type Eligibility string

const (
	Eligible           Eligibility = "eligible"
	IneligibleNotStart Eligibility = "not_started"
	IneligibleExpired  Eligibility = "expired"
	IneligibleMinOrder Eligibility = "below_min_order"
)

func (e Eligibility) IsEligible() bool {
	return e == Eligible
}

// Promotion is an immutable catalog entry sourced from the promotion service.
type Promotion struct {
	code           string
	promotionType  Type
	discountValue  decimal.Decimal
	minOrderAmount *decimal.Decimal
	startDate      time.Time
	endDate        time.Time
}

func NewPromotion(
	code string,
	promotionType Type,
	discountValue decimal.Decimal,
	minOrderAmount *decimal.Decimal,
	startDate, endDate time.Time,
) (Promotion, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Promotion{}, ErrEmptyPromotionCode
	}
	if startDate.After(endDate) {
		return Promotion{}, ErrInvalidValidity
	}
	if discountValue.IsNegative() {
		return Promotion{}, ErrNegativeDiscount
	}
	if minOrderAmount != nil && minOrderAmount.IsNegative() {
		return Promotion{}, ErrNegativeMinOrderAmt
	}

	return Promotion{
		code:           code,
		promotionType:  promotionType,
		discountValue:  discountValue,
		minOrderAmount: minOrderAmount,
		startDate:      startDate,
		endDate:        endDate,
	}, nil
}

func (p Promotion) Eligibility(now time.Time, subtotal decimal.Decimal) Eligibility {
	if now.Before(p.startDate) {
		return IneligibleNotStart
	}
	if now.After(p.endDate) {
		return IneligibleExpired
	}
	if p.minOrderAmount != nil && subtotal.LessThan(*p.minOrderAmount) {
		return IneligibleMinOrder
	}
	return Eligible
}

func (p Promotion) IsEligible(now time.Time, subtotal decimal.Decimal) bool {
	return p.Eligibility(now, subtotal).IsEligible()
}

// IsPercentage reports whether DiscountValue is a percentage. A DISCOUNT
// above 100 is stored as a flat amount by the promotion service.
func (p Promotion) IsPercentage() bool {
	return p.promotionType == TypeDiscount && p.discountValue.LessThanOrEqual(percentageCeiling)
}

// DiscountFor does not check eligibility.
func (p Promotion) DiscountFor(subtotal decimal.Decimal) decimal.Decimal {
	if p.IsPercentage() {
		return subtotal.Mul(p.discountValue).Div(percentageCeiling)
	}
	return p.discountValue
}

func (p Promotion) Code() string                     { return p.code }
func (p Promotion) Type() Type                       { return p.promotionType }
func (p Promotion) DiscountValue() decimal.Decimal   { return p.discountValue }
func (p Promotion) MinOrderAmount() *decimal.Decimal { return p.minOrderAmount }
func (p Promotion) StartDate() time.Time             { return p.startDate }
func (p Promotion) EndDate() time.Time               { return p.endDate }

// Catalog is the read-only list of currently knowable promotions.
type Catalog []Promotion

func (c Catalog) Find(code string) (Promotion, bool) {
	for _, p := range c {
		if p.code == code {
			return p, true
		}
	}
	return Promotion{}, false
}
