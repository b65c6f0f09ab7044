package shared

import (
	"errors"

	"petshop-checkout/internal/domain/order"
	"petshop-checkout/internal/pkg/errs"
)

var (
	ErrUpstreamUnavailable = errs.New("upstream service unavailable")
	ErrSessionStoreFailed  = errs.New("checkout session store failed")
)

// UpstreamErr marks a collaborator failure as unavailable, except an expired
// login which the caller must see as such.
func UpstreamErr(err error, msg string) error {
	if errors.Is(err, order.ErrAuthRequired) {
		return err
	}
	return errs.Mark(errs.Wrap(err, msg), ErrUpstreamUnavailable)
}
