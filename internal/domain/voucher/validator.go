package voucher

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Applier validates and applies a code against an order amount on the
// voucher service. It is the only suspending call in the checkout core.
type Applier interface {
	ApplyVoucher(ctx context.Context, code string, orderAmount decimal.Decimal) (*Record, error)
}

// Validator owns the single applied-voucher slot together with the pending
// input and the last error shown next to it. It is not safe for concurrent
// use; callers serialise access per checkout.
type Validator struct {
	applied  *Applied
	input    string
	errMsg   string
	applying bool
}

func NewValidator() *Validator {
	return &Validator{}
}

func RestoreValidator(applied *Applied, input, errMsg string) *Validator {
	var copied *Applied
	if applied != nil {
		a := *applied
		copied = &a
	}
	return &Validator{applied: copied, input: input, errMsg: errMsg}
}

func (v *Validator) SetInput(code string) {
	v.input = code
}

// Apply fails fast without contacting the service when the code is blank,
// a voucher is already applied, or another apply is still in flight.
func (v *Validator) Apply(ctx context.Context, applier Applier, code string, subtotal decimal.Decimal) (*Applied, error) {
	v.input = code
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyVoucherCode
	}
	if v.applied != nil {
		return nil, ErrVoucherAlreadyApplied
	}
	if v.applying {
		return nil, ErrApplyInProgress
	}

	v.applying = true
	defer func() { v.applying = false }()

	record, err := applier.ApplyVoucher(ctx, code, subtotal)
	if err != nil {
		var rejection *Rejection
		if !errors.As(err, &rejection) {
			rejection = NewRejection(ReasonInvalidCode, "", err)
		}
		v.errMsg = rejection.Message
		return nil, rejection
	}
	if !record.isValid() {
		v.errMsg = ReasonInapplicable.DefaultMessage()
		return nil, ErrInvalidVoucher
	}

	v.applied = newApplied(record, subtotal)
	v.input = ""
	v.errMsg = ""

	a := *v.applied
	return &a, nil
}

// Remove needs no server call.
func (v *Validator) Remove() {
	v.applied = nil
	v.errMsg = ""
}

func (v *Validator) Applied() (*Applied, bool) {
	if v.applied == nil {
		return nil, false
	}
	a := *v.applied
	return &a, true
}

func (v *Validator) Discount() decimal.Decimal {
	if v.applied == nil {
		return decimal.Zero
	}
	return v.applied.DiscountAmount
}

func (v *Validator) Input() string        { return v.input }
func (v *Validator) ErrorMessage() string { return v.errMsg }
func (v *Validator) IsApplying() bool     { return v.applying }
