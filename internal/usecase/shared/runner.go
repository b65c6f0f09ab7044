package shared

import (
	"context"
	"log/slog"

	"petshop-checkout/internal/domain/cart"
	"petshop-checkout/internal/domain/discount"
	"petshop-checkout/internal/domain/promotion"
	"petshop-checkout/internal/domain/voucher"
	"petshop-checkout/internal/infra"
	"petshop-checkout/internal/pkg/clock"
	"petshop-checkout/internal/pkg/errs"
	"petshop-checkout/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pass is one reconciliation pass for a single customer, handed to the
// mutation run under the customer's lock.
type Pass struct {
	UserID  uuid.UUID
	Cart    cart.Snapshot
	Catalog promotion.Catalog
	Engine  *discount.Engine
	Changes discount.Changes

	discard bool
}

// Discard drops the persisted session instead of saving it once the pass ends.
func (p *Pass) Discard() {
	p.discard = true
}

type SessionRunner struct {
	carts    CartSource
	catalog  PromotionCatalog
	sessions SessionRepository
	locks    *KeyedMutex
	services discount.Services
}

func NewSessionRunner(
	carts CartSource,
	catalog PromotionCatalog,
	sessions SessionRepository,
	clk clock.Clock,
	shippingFee decimal.Decimal,
) *SessionRunner {
	return &SessionRunner{
		carts:    carts,
		catalog:  catalog,
		sessions: sessions,
		locks:    NewKeyedMutex(),
		services: discount.Services{Clock: clk, ShippingFee: shippingFee},
	}
}

// Run loads the live cart, catalog and stored slots, reconciles them against
// the current subtotal, then applies mutate. The session is written back only
// when a slot moved. A mutate error is returned after the slots are saved so
// that rejection messages survive to the next read.
func (r *SessionRunner) Run(
	ctx context.Context,
	userID uuid.UUID,
	mutate func(ctx context.Context, p *Pass) error,
) (*readmodel.CheckoutSummaryRM, error) {
	unlock := r.locks.Lock(userID)
	defer unlock()

	snapshot, err := r.carts.GetCart(ctx, userID)
	if err != nil {
		return nil, UpstreamErr(err, "failed to load cart")
	}
	catalog, err := r.catalog.FetchPromotions(ctx)
	if err != nil {
		return nil, UpstreamErr(err, "failed to load promotions")
	}
	session, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	before := slotsOf(session)

	engine := discount.NewEngine(
		r.services,
		catalog,
		promotion.RestoreSelector(session.SelectedPromotion),
		voucher.RestoreValidator(session.AppliedVoucher, session.VoucherInput, session.VoucherError),
	)
	_, changes := engine.OnSubtotalChanged(snapshot.Subtotal())

	pass := &Pass{
		UserID:  userID,
		Cart:    snapshot,
		Catalog: catalog,
		Engine:  engine,
		Changes: changes,
	}

	var mutateErr error
	if mutate != nil {
		mutateErr = mutate(ctx, pass)
	}

	if pass.discard {
		if err := r.sessions.Delete(ctx, userID); err != nil && !infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("failed to delete checkout session", "user_id", userID, "error", err)
		}
		return summarize(pass), mutateErr
	}

	after := slotsFromEngine(engine)
	if !after.equal(before) {
		session.SelectedPromotion = after.promotion
		session.AppliedVoucher = after.voucher
		session.VoucherInput = after.input
		session.VoucherError = after.errMsg
		session.UpdatedAt = r.services.Clock.Now()
		if err := r.sessions.Save(ctx, session); err != nil {
			if mutateErr != nil {
				slog.Warn("failed to save checkout session", "user_id", userID, "error", err)
				return nil, mutateErr
			}
			return nil, errs.Mark(err, ErrSessionStoreFailed)
		}
	}

	if mutateErr != nil {
		return nil, mutateErr
	}
	return summarize(pass), nil
}

func (r *SessionRunner) load(ctx context.Context, userID uuid.UUID) (*CheckoutSession, error) {
	session, err := r.sessions.Get(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &CheckoutSession{UserID: userID}, nil
		}
		return nil, errs.Mark(err, ErrSessionStoreFailed)
	}
	return session, nil
}

type slots struct {
	promotion string
	voucher   *voucher.Applied
	input     string
	errMsg    string
}

func slotsOf(s *CheckoutSession) slots {
	return slots{
		promotion: s.SelectedPromotion,
		voucher:   s.AppliedVoucher,
		input:     s.VoucherInput,
		errMsg:    s.VoucherError,
	}
}

func slotsFromEngine(e *discount.Engine) slots {
	code, _ := e.SelectedPromotion()
	applied, _ := e.AppliedVoucher()
	v := e.Validator()
	return slots{
		promotion: code,
		voucher:   applied,
		input:     v.Input(),
		errMsg:    v.ErrorMessage(),
	}
}

func (s slots) equal(o slots) bool {
	if s.promotion != o.promotion || s.input != o.input || s.errMsg != o.errMsg {
		return false
	}
	if s.voucher == nil || o.voucher == nil {
		return s.voucher == nil && o.voucher == nil
	}
	return s.voucher.VoucherID == o.voucher.VoucherID &&
		s.voucher.Code == o.voucher.Code &&
		s.voucher.DiscountAmount.Equal(o.voucher.DiscountAmount)
}
