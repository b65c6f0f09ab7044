//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"petshop-checkout/internal/domain/order"
	"petshop-checkout/internal/domain/promotion"
	"petshop-checkout/internal/infra"
	"petshop-checkout/internal/pkg/clock"
	"petshop-checkout/internal/pkg/errs"
	"petshop-checkout/internal/usecase/queries"
	"petshop-checkout/internal/usecase/readmodel"
	"petshop-checkout/internal/usecase/shared"
	"petshop-checkout/tests/common/builder"
	sharedmock "petshop-checkout/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutQueriesTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockCarts    *sharedmock.MockCartSource
	mockCatalog  *sharedmock.MockPromotionCatalog
	mockSessions *sharedmock.MockSessionRepository
	mockProfiles *sharedmock.MockProfileSource
	q            queries.CheckoutQueries
	userID       uuid.UUID
}

func (s *CheckoutQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCarts = sharedmock.NewMockCartSource(s.mockCtrl)
	s.mockCatalog = sharedmock.NewMockPromotionCatalog(s.mockCtrl)
	s.mockSessions = sharedmock.NewMockSessionRepository(s.mockCtrl)
	s.mockProfiles = sharedmock.NewMockProfileSource(s.mockCtrl)
	s.userID = uuid.New()

	clk := clock.NewMockClock(builder.Now)
	runner := shared.NewSessionRunner(s.mockCarts, s.mockCatalog, s.mockSessions, clk, builder.Amount(30_000))
	s.q = queries.NewCheckoutQueries(runner, s.mockProfiles, clk)
}

func (s *CheckoutQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutQueriesSuite(t *testing.T) {
	suite.Run(t, new(CheckoutQueriesTestSuite))
}

func (s *CheckoutQueriesTestSuite) expectLoad(subtotal int64, stored *shared.CheckoutSession, catalog promotion.Catalog) {
	snap := builder.NewCartBuilder().WithSubtotal(subtotal).MustBuildDomain()
	s.mockCarts.EXPECT().GetCart(gomock.Any(), s.userID).Return(snap, nil)
	s.mockCatalog.EXPECT().FetchPromotions(gomock.Any()).Return(catalog, nil)
	if stored == nil {
		s.mockSessions.EXPECT().Get(gomock.Any(), s.userID).Return(nil, infra.NotFound("checkout session"))
		return
	}
	stored.UserID = s.userID
	s.mockSessions.EXPECT().Get(gomock.Any(), s.userID).Return(stored, nil)
}

func (s *CheckoutQueriesTestSuite) TestGetSummary() {
	ctx := context.Background()

	s.Run("success: shipping fee is added", func() {
		s.expectLoad(1_000_000, &shared.CheckoutSession{SelectedPromotion: "FLAT200K"}, builder.Catalog())

		summary, err := s.q.GetSummary(ctx, s.userID)

		s.Require().NoError(err)
		s.True(builder.Amount(830_000).Equal(summary.FinalTotal), summary.FinalTotal.String())
		s.True(builder.Amount(30_000).Equal(summary.ShippingFee))
	})

	s.Run("success: promotion gone from catalog is dropped", func() {
		s.expectLoad(1_000_000, &shared.CheckoutSession{SelectedPromotion: "RETIRED"}, builder.Catalog())
		s.mockSessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, session *shared.CheckoutSession) error {
				s.Empty(session.SelectedPromotion)
				return nil
			})

		summary, err := s.q.GetSummary(ctx, s.userID)

		s.Require().NoError(err)
		s.Nil(summary.SelectedPromotion)
	})

	s.Run("success: stored voucher error is shown", func() {
		s.expectLoad(1_000_000, &shared.CheckoutSession{VoucherInput: "BAD", VoucherError: "voucher code not found"}, builder.Catalog())

		summary, err := s.q.GetSummary(ctx, s.userID)

		s.Require().NoError(err)
		s.Equal("BAD", summary.VoucherInput)
		s.Require().NotNil(summary.VoucherError)
		s.Equal("voucher code not found", *summary.VoucherError)
	})

	s.Run("error: catalog unavailable", func() {
		s.mockCarts.EXPECT().GetCart(gomock.Any(), s.userID).Return(builder.NewCartBuilder().MustBuildDomain(), nil)
		s.mockCatalog.EXPECT().FetchPromotions(gomock.Any()).Return(nil, errors.New("503"))

		_, err := s.q.GetSummary(ctx, s.userID)

		s.Require().Error(err)
		s.True(errs.Is(err, shared.ErrUpstreamUnavailable))
	})
}

func (s *CheckoutQueriesTestSuite) TestListPromotions() {
	ctx := context.Background()
	notStarted := builder.NewPromotionBuilder().With(func(p *builder.PromotionBuilder) {
		p.Code = "AUTUMN"
		p.StartDate = builder.Now.AddDate(0, 1, 0)
		p.EndDate = builder.Now.AddDate(0, 2, 0)
	}).MustBuildDomain()
	catalog := append(builder.Catalog(), notStarted)

	s.expectLoad(400_000, &shared.CheckoutSession{SelectedPromotion: "FLAT200K"}, catalog)

	items, err := s.q.ListPromotions(ctx, s.userID)

	s.Require().NoError(err)
	s.Require().Len(items, 3)

	byCode := make(map[string]readmodel.PromotionRM, len(items))
	for _, it := range items {
		byCode[it.Code] = it
	}

	summer := byCode["SUMMER10"]
	s.False(summer.Eligible)
	s.Equal(string(promotion.IneligibleMinOrder), summer.IneligibleReason)
	s.True(summer.IsPercentage)
	s.True(summer.Discount.IsZero())

	flat := byCode["FLAT200K"]
	s.True(flat.Eligible)
	s.True(flat.Selected)
	s.False(flat.IsPercentage)
	s.True(decimal.NewFromInt(200_000).Equal(flat.Discount))

	autumn := byCode["AUTUMN"]
	s.False(autumn.Eligible)
	s.Equal(string(promotion.IneligibleNotStart), autumn.IneligibleReason)
}

func (s *CheckoutQueriesTestSuite) TestGetFormDefaults() {
	ctx := context.Background()

	s.Run("success: default address prefilled", func() {
		s.mockProfiles.EXPECT().FetchUserProfile(gomock.Any()).Return(builder.Profile(), nil)
		s.mockProfiles.EXPECT().FetchUserAddresses(gomock.Any()).Return(builder.AddressBook(), nil)

		rm, err := s.q.GetFormDefaults(ctx)

		s.Require().NoError(err)
		s.Equal(string(order.DeliveryHome), rm.Form.DeliveryType)
		s.Equal(string(order.PaymentCash), rm.Form.PaymentMethod)
		s.Require().NotNil(rm.Form.SelectedAddressID)
		s.Equal(int64(9), *rm.Form.SelectedAddressID)
		s.Equal("Cầu Giấy", rm.Form.District)
		s.Equal("a@example.com", rm.Form.Email)
		s.Require().Len(rm.Addresses, 2)
		s.True(rm.Addresses[1].IsDefault)
		s.Equal("Đống Đa", rm.Addresses[0].Ward)
	})

	s.Run("success: no saved addresses", func() {
		s.mockProfiles.EXPECT().FetchUserProfile(gomock.Any()).Return(builder.Profile(), nil)
		s.mockProfiles.EXPECT().FetchUserAddresses(gomock.Any()).Return(nil, nil)

		rm, err := s.q.GetFormDefaults(ctx)

		s.Require().NoError(err)
		s.NotNil(rm.Addresses)
		s.Empty(rm.Addresses)
		s.Nil(rm.Form.SelectedAddressID)
	})

	s.Run("error: expired login", func() {
		s.mockProfiles.EXPECT().FetchUserProfile(gomock.Any()).Return(order.Profile{}, order.ErrAuthRequired)

		_, err := s.q.GetFormDefaults(ctx)

		s.Require().ErrorIs(err, order.ErrAuthRequired)
	})
}
