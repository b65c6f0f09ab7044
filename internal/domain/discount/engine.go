package discount

import (
	"context"
	"errors"
	"strings"

	"petshop-checkout/internal/domain/promotion"
	"petshop-checkout/internal/domain/voucher"
	"petshop-checkout/internal/pkg/clock"

	"github.com/shopspring/decimal"
)

var (
	ErrPromotionNotFound    = errors.New("promotion not found in catalog")
	ErrPromotionNotEligible = errors.New("promotion is not eligible for this order")
)

type Services struct {
	Clock       clock.Clock
	ShippingFee decimal.Decimal
}

// Changes tells the caller which slots a pass mutated, so it only persists
// when something actually moved.
type Changes struct {
	PromotionCleared  bool
	VoucherRecomputed bool
}

func (c Changes) Any() bool {
	return c.PromotionCleared || c.VoucherRecomputed
}

// Engine runs one checkout's reconciliation. Every mutation finishes with a
// synchronous recompute so the returned State never carries a stale discount.
type Engine struct {
	services   Services
	catalog    promotion.Catalog
	selector   *promotion.Selector
	validator  *voucher.Validator
	reconciler *voucher.Reconciler
	subtotal   decimal.Decimal
}

func NewEngine(
	services Services,
	catalog promotion.Catalog,
	selector *promotion.Selector,
	validator *voucher.Validator,
) *Engine {
	if selector == nil {
		selector = promotion.NewSelector()
	}
	if validator == nil {
		validator = voucher.NewValidator()
	}
	return &Engine{
		services:   services,
		catalog:    catalog,
		selector:   selector,
		validator:  validator,
		reconciler: voucher.NewReconciler(),
	}
}

// OnSubtotalChanged runs promotion auto-deselection before the voucher
// recompute; both observe the same subtotal.
func (e *Engine) OnSubtotalChanged(subtotal decimal.Decimal) (State, Changes) {
	e.subtotal = subtotal
	now := e.services.Clock.Now()

	var changes Changes
	changes.PromotionCleared = e.selector.Reconcile(now, subtotal, e.catalog)
	changes.VoucherRecomputed = e.reconciler.Reconcile(e.validator, subtotal)

	return e.State(), changes
}

// SelectPromotion toggles like Selector.Select but refuses to select a code
// that the customer could not use at the current subtotal. A refused code
// leaves the prior selection in place. A blank code clears.
func (e *Engine) SelectPromotion(code string) (State, error) {
	code = strings.TrimSpace(code)
	current, _ := e.selector.Selected()
	if code != "" && code != current {
		p, ok := e.catalog.Find(code)
		if !ok {
			return e.State(), ErrPromotionNotFound
		}
		if !p.IsEligible(e.services.Clock.Now(), e.subtotal) {
			return e.State(), ErrPromotionNotEligible
		}
	}
	e.selector.Select(code)
	return e.State(), nil
}

func (e *Engine) ClearPromotion() State {
	e.selector.Clear()
	return e.State()
}

func (e *Engine) ApplyVoucher(ctx context.Context, applier voucher.Applier, code string) (State, error) {
	_, err := e.validator.Apply(ctx, applier, code, e.subtotal)
	return e.State(), err
}

func (e *Engine) RemoveVoucher() State {
	e.validator.Remove()
	return e.State()
}

func (e *Engine) State() State {
	promotionDiscount := e.selector.ComputeDiscount(e.services.Clock.Now(), e.subtotal, e.catalog)
	return Aggregate(promotionDiscount, e.validator.Discount(), e.subtotal, e.services.ShippingFee)
}

func (e *Engine) SelectedPromotion() (string, bool)        { return e.selector.Selected() }
func (e *Engine) AppliedVoucher() (*voucher.Applied, bool) { return e.validator.Applied() }
func (e *Engine) Validator() *voucher.Validator            { return e.validator }
func (e *Engine) Subtotal() decimal.Decimal                { return e.subtotal }
