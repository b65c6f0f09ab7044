package cart

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrNegativeUnitPrice = errors.New("unit price cannot be negative")
)

// Item is a read-only line of the externally owned cart.
type Item struct {
	productID           int64
	unitPrice           decimal.Decimal
	discountedUnitPrice *decimal.Decimal
	quantity            int
}

func NewItem(productID int64, unitPrice decimal.Decimal, discountedUnitPrice *decimal.Decimal, quantity int) (Item, error) {
	if quantity < 1 {
		return Item{}, ErrInvalidQuantity
	}
	if unitPrice.IsNegative() || (discountedUnitPrice != nil && discountedUnitPrice.IsNegative()) {
		return Item{}, ErrNegativeUnitPrice
	}
	return Item{
		productID:           productID,
		unitPrice:           unitPrice,
		discountedUnitPrice: discountedUnitPrice,
		quantity:            quantity,
	}, nil
}

// EffectiveUnitPrice prefers the discounted price when the product carries one.
func (i Item) EffectiveUnitPrice() decimal.Decimal {
	if i.discountedUnitPrice != nil {
		return *i.discountedUnitPrice
	}
	return i.unitPrice
}

func (i Item) LineTotal() decimal.Decimal {
	return i.EffectiveUnitPrice().Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i Item) ProductID() int64                      { return i.productID }
func (i Item) UnitPrice() decimal.Decimal            { return i.unitPrice }
func (i Item) DiscountedUnitPrice() *decimal.Decimal { return i.discountedUnitPrice }
func (i Item) Quantity() int                         { return i.quantity }

type Snapshot struct {
	items []Item
}

func NewSnapshot(items []Item) Snapshot {
	copied := make([]Item, len(items))
	copy(copied, items)
	return Snapshot{items: copied}
}

func (s Snapshot) Items() []Item {
	copied := make([]Item, len(s.items))
	copy(copied, s.items)
	return copied
}

func (s Snapshot) IsEmpty() bool {
	return len(s.items) == 0
}

// Subtotal is derived on every call and never cached.
func (s Snapshot) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.LineTotal())
	}
	return total
}
