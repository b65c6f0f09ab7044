package queries

import (
	"context"

	"petshop-checkout/internal/domain/order"
	"petshop-checkout/internal/pkg/clock"
	"petshop-checkout/internal/pkg/errs"
	"petshop-checkout/internal/usecase/readmodel"
	"petshop-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type CheckoutQueries interface {
	GetSummary(ctx context.Context, userID uuid.UUID) (*readmodel.CheckoutSummaryRM, error)
	ListPromotions(ctx context.Context, userID uuid.UUID) ([]readmodel.PromotionRM, error)
	GetFormDefaults(ctx context.Context) (*readmodel.FormDefaultsRM, error)
}

type checkoutQueriesImpl struct {
	runner   *shared.SessionRunner
	profiles shared.ProfileSource
	clock    clock.Clock
}

func NewCheckoutQueries(runner *shared.SessionRunner, profiles shared.ProfileSource, clock clock.Clock) CheckoutQueries {
	return &checkoutQueriesImpl{runner: runner, profiles: profiles, clock: clock}
}

// GetSummary is a read, but it still persists a promotion that went
// ineligible or a voucher amount that moved with the cart.
func (q *checkoutQueriesImpl) GetSummary(ctx context.Context, userID uuid.UUID) (*readmodel.CheckoutSummaryRM, error) {
	return q.runner.Run(ctx, userID, nil)
}

func (q *checkoutQueriesImpl) ListPromotions(ctx context.Context, userID uuid.UUID) ([]readmodel.PromotionRM, error) {
	var items []readmodel.PromotionRM
	_, err := q.runner.Run(ctx, userID, func(_ context.Context, p *shared.Pass) error {
		now := q.clock.Now()
		subtotal := p.Engine.Subtotal()
		selected, _ := p.Engine.SelectedPromotion()

		items = make([]readmodel.PromotionRM, 0, len(p.Catalog))
		for _, promo := range p.Catalog {
			eligibility := promo.Eligibility(now, subtotal)
			item := readmodel.PromotionRM{
				Code:           promo.Code(),
				Type:           string(promo.Type()),
				DiscountValue:  promo.DiscountValue(),
				IsPercentage:   promo.IsPercentage(),
				MinOrderAmount: promo.MinOrderAmount(),
				StartDate:      promo.StartDate(),
				EndDate:        promo.EndDate(),
				Eligible:       eligibility.IsEligible(),
				Selected:       promo.Code() == selected,
				Discount:       decimal.Zero,
			}
			if eligibility.IsEligible() {
				item.Discount = promo.DiscountFor(subtotal)
			} else {
				item.IneligibleReason = string(eligibility)
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (q *checkoutQueriesImpl) GetFormDefaults(ctx context.Context) (*readmodel.FormDefaultsRM, error) {
	profile, err := q.profiles.FetchUserProfile(ctx)
	if err != nil {
		return nil, shared.UpstreamErr(err, "failed to load user profile")
	}
	book, err := q.profiles.FetchUserAddresses(ctx)
	if err != nil {
		return nil, shared.UpstreamErr(err, "failed to load user addresses")
	}

	form := order.DefaultForm(profile, book)

	rm := &readmodel.FormDefaultsRM{Addresses: make([]readmodel.SavedAddressRM, 0, len(book))}
	if err := copier.Copy(&rm.Form, &form); err != nil {
		return nil, errs.Wrap(err, "failed to map checkout form")
	}
	if len(book) > 0 {
		if err := copier.Copy(&rm.Addresses, []order.SavedAddress(book)); err != nil {
			return nil, errs.Wrap(err, "failed to map saved addresses")
		}
	}
	return rm, nil
}
