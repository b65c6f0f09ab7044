package voucher

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyVoucherCode      = errors.New("voucher code is required")
	ErrVoucherAlreadyApplied = errors.New("a voucher is already applied")
	ErrApplyInProgress       = errors.New("voucher application already in progress")
	ErrInvalidVoucher        = errors.New("voucher response is missing id or code")
	ErrVoucherRejected       = errors.New("voucher rejected")
)

type RejectionReason string

const (
	ReasonNotEligible  RejectionReason = "not_eligible"
	ReasonNotFound     RejectionReason = "not_found"
	ReasonInapplicable RejectionReason = "inapplicable"
	ReasonInvalidCode  RejectionReason = "invalid_code"
)

// Rejection is returned when the voucher service declines a code.
type Rejection struct {
	Reason  RejectionReason
	Message string
	Err     error
}

func (r *Rejection) Error() string {
	if r.Err != nil {
		return fmt.Sprintf("voucher rejected (%s): %s: %v", r.Reason, r.Message, r.Err)
	}
	return fmt.Sprintf("voucher rejected (%s): %s", r.Reason, r.Message)
}

func (r *Rejection) Unwrap() error {
	return r.Err
}

func (r *Rejection) Is(target error) bool {
	return target == ErrVoucherRejected
}

func NewRejection(reason RejectionReason, message string, err error) *Rejection {
	if message == "" {
		message = reason.DefaultMessage()
	}
	return &Rejection{Reason: reason, Message: message, Err: err}
}

func (r RejectionReason) DefaultMessage() string {
	switch r {
	case ReasonNotEligible:
		return "order is not eligible for this voucher"
	case ReasonNotFound:
		return "voucher code not found"
	case ReasonInapplicable:
		return "voucher is invalid or cannot be applied"
	default:
		return "invalid voucher code"
	}
}
