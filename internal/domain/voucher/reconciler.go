package voucher

import "github.com/shopspring/decimal"

// Reconciler keeps the applied voucher's discount in step with the subtotal.
// It never re-contacts the voucher service and never re-checks minimum order
// or expiry: once approved, the voucher stays applied until removed.
type Reconciler struct{}

func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// Reconcile reports whether the stored amount changed.
func (r *Reconciler) Reconcile(v *Validator, subtotal decimal.Decimal) bool {
	if v == nil || v.applied == nil {
		return false
	}
	amount := ComputeDiscount(v.applied.DiscountType, v.applied.DiscountValue, subtotal)
	if amount.Equal(v.applied.DiscountAmount) {
		return false
	}
	v.applied.DiscountAmount = amount
	return true
}
