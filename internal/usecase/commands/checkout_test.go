//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"petshop-checkout/internal/domain/discount"
	"petshop-checkout/internal/domain/order"
	"petshop-checkout/internal/domain/voucher"
	"petshop-checkout/internal/infra"
	"petshop-checkout/internal/pkg/clock"
	"petshop-checkout/internal/pkg/errs"
	"petshop-checkout/internal/usecase/commands"
	"petshop-checkout/internal/usecase/shared"
	"petshop-checkout/tests/common/builder"
	sharedmock "petshop-checkout/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockCarts    *sharedmock.MockCartSource
	mockCatalog  *sharedmock.MockPromotionCatalog
	mockSessions *sharedmock.MockSessionRepository
	mockVouchers *sharedmock.MockVoucherService
	mockOrders   *sharedmock.MockOrderSubmitter
	mockProfiles *sharedmock.MockProfileSource
	mockEvents   *sharedmock.MockOrderEventPublisher
	clock        *clock.MockClock
	cmds         commands.CheckoutCommands
	userID       uuid.UUID
}

func (s *CheckoutCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCarts = sharedmock.NewMockCartSource(s.mockCtrl)
	s.mockCatalog = sharedmock.NewMockPromotionCatalog(s.mockCtrl)
	s.mockSessions = sharedmock.NewMockSessionRepository(s.mockCtrl)
	s.mockVouchers = sharedmock.NewMockVoucherService(s.mockCtrl)
	s.mockOrders = sharedmock.NewMockOrderSubmitter(s.mockCtrl)
	s.mockProfiles = sharedmock.NewMockProfileSource(s.mockCtrl)
	s.mockEvents = sharedmock.NewMockOrderEventPublisher(s.mockCtrl)
	s.clock = clock.NewMockClock(builder.Now)
	s.userID = uuid.New()

	runner := shared.NewSessionRunner(s.mockCarts, s.mockCatalog, s.mockSessions, s.clock, decimal.Zero)
	store := order.StoreAddress{Province: "Hà Nội", District: "Hoàn Kiếm", Ward: "Hàng Bạc", Street: "1 Hàng Bạc"}
	s.cmds = commands.NewCheckoutCommands(
		runner,
		s.mockVouchers,
		s.mockOrders,
		s.mockProfiles,
		s.mockEvents,
		order.NewBuilder(store),
		s.clock,
	)
}

func (s *CheckoutCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutCommandsSuite(t *testing.T) {
	suite.Run(t, new(CheckoutCommandsTestSuite))
}

func (s *CheckoutCommandsTestSuite) expectLoad(subtotal int64, stored *shared.CheckoutSession) {
	snap := builder.NewCartBuilder().WithSubtotal(subtotal).MustBuildDomain()
	s.mockCarts.EXPECT().GetCart(gomock.Any(), s.userID).Return(snap, nil)
	s.mockCatalog.EXPECT().FetchPromotions(gomock.Any()).Return(builder.Catalog(), nil)
	if stored == nil {
		s.mockSessions.EXPECT().Get(gomock.Any(), s.userID).Return(nil, infra.NotFound("checkout session"))
		return
	}
	stored.UserID = s.userID
	s.mockSessions.EXPECT().Get(gomock.Any(), s.userID).Return(stored, nil)
}

func save50k() *voucher.Applied {
	return &voucher.Applied{
		VoucherID:      7,
		Code:           "SAVE50K",
		DiscountType:   voucher.DiscountFixedAmount,
		DiscountValue:  builder.Amount(50_000),
		DiscountAmount: builder.Amount(50_000),
	}
}

// ================================================================================
// Promotion
// ================================================================================

func (s *CheckoutCommandsTestSuite) TestSelectPromotion() {
	ctx := context.Background()

	s.Run("success: selection is saved and priced", func() {
		s.expectLoad(1_000_000, nil)
		s.mockSessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, session *shared.CheckoutSession) error {
				s.Equal("SUMMER10", session.SelectedPromotion)
				return nil
			})

		summary, err := s.cmds.SelectPromotion(ctx, s.userID, "SUMMER10")

		s.Require().NoError(err)
		s.Require().NotNil(summary.SelectedPromotion)
		s.Equal("SUMMER10", *summary.SelectedPromotion)
		s.True(builder.Amount(100_000).Equal(summary.PromotionDiscount))
		s.True(builder.Amount(900_000).Equal(summary.FinalTotal))
	})

	s.Run("success: same code toggles off", func() {
		s.expectLoad(1_000_000, &shared.CheckoutSession{SelectedPromotion: "SUMMER10"})
		s.mockSessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, session *shared.CheckoutSession) error {
				s.Empty(session.SelectedPromotion)
				return nil
			})

		summary, err := s.cmds.SelectPromotion(ctx, s.userID, "SUMMER10")

		s.Require().NoError(err)
		s.Nil(summary.SelectedPromotion)
	})

	s.Run("error: not eligible at current subtotal", func() {
		s.expectLoad(400_000, nil)

		summary, err := s.cmds.SelectPromotion(ctx, s.userID, "SUMMER10")

		s.Require().ErrorIs(err, discount.ErrPromotionNotEligible)
		s.Nil(summary)
	})

	s.Run("error: unknown code", func() {
		s.expectLoad(1_000_000, nil)

		_, err := s.cmds.SelectPromotion(ctx, s.userID, "NOPE")

		s.Require().ErrorIs(err, discount.ErrPromotionNotFound)
	})
}

func (s *CheckoutCommandsTestSuite) TestClearPromotion() {
	s.expectLoad(1_000_000, &shared.CheckoutSession{SelectedPromotion: "FLAT200K"})
	s.mockSessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	summary, err := s.cmds.ClearPromotion(context.Background(), s.userID)

	s.Require().NoError(err)
	s.Nil(summary.SelectedPromotion)
	s.True(summary.TotalDiscount.IsZero())
}

// ================================================================================
// Voucher
// ================================================================================

func (s *CheckoutCommandsTestSuite) TestApplyVoucher() {
	ctx := context.Background()

	s.Run("success: promotion and voucher stack", func() {
		s.expectLoad(1_000_000, &shared.CheckoutSession{SelectedPromotion: "SUMMER10", VoucherInput: "SAVE50K"})
		s.mockVouchers.EXPECT().ApplyVoucher(gomock.Any(), "SAVE50K", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, amount decimal.Decimal) (*voucher.Record, error) {
				s.True(builder.Amount(1_000_000).Equal(amount))
				return &voucher.Record{
					VoucherID:     7,
					Code:          "SAVE50K",
					DiscountType:  voucher.DiscountFixedAmount,
					DiscountValue: builder.Amount(50_000),
				}, nil
			})
		s.mockSessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, session *shared.CheckoutSession) error {
				s.Require().NotNil(session.AppliedVoucher)
				s.Equal(int64(7), session.AppliedVoucher.VoucherID)
				s.Empty(session.VoucherInput)
				return nil
			})

		summary, err := s.cmds.ApplyVoucher(ctx, s.userID, "SAVE50K")

		s.Require().NoError(err)
		s.True(builder.Amount(150_000).Equal(summary.TotalDiscount))
		s.True(builder.Amount(850_000).Equal(summary.FinalTotal))
	})

	s.Run("error: rejection message is kept for the next read", func() {
		s.expectLoad(1_000_000, nil)
		s.mockVouchers.EXPECT().ApplyVoucher(gomock.Any(), "EXPIRED", gomock.Any()).
			Return(nil, voucher.NewRejection(voucher.ReasonInapplicable, "", nil))
		s.mockSessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, session *shared.CheckoutSession) error {
				s.Nil(session.AppliedVoucher)
				s.Equal("EXPIRED", session.VoucherInput)
				s.Equal(voucher.ReasonInapplicable.DefaultMessage(), session.VoucherError)
				return nil
			})

		_, err := s.cmds.ApplyVoucher(ctx, s.userID, "EXPIRED")

		var rejection *voucher.Rejection
		s.Require().ErrorAs(err, &rejection)
		s.Equal(voucher.ReasonInapplicable, rejection.Reason)
	})

	s.Run("error: second voucher refused without a service call", func() {
		s.expectLoad(1_000_000, &shared.CheckoutSession{AppliedVoucher: save50k()})
		s.mockSessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.cmds.ApplyVoucher(ctx, s.userID, "OTHER")

		s.Require().ErrorIs(err, voucher.ErrVoucherAlreadyApplied)
	})

	s.Run("error: empty code", func() {
		s.expectLoad(1_000_000, nil)
		s.mockSessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.cmds.ApplyVoucher(ctx, s.userID, "  ")

		s.Require().ErrorIs(err, voucher.ErrEmptyVoucherCode)
	})

	s.Run("error: concurrent apply for the same customer", func() {
		entered := make(chan struct{})
		release := make(chan struct{})
		done := make(chan error, 1)

		s.expectLoad(1_000_000, nil)
		s.mockVouchers.EXPECT().ApplyVoucher(gomock.Any(), "SAVE50K", gomock.Any()).DoAndReturn(
			func(context.Context, string, decimal.Decimal) (*voucher.Record, error) {
				close(entered)
				<-release
				return nil, voucher.NewRejection(voucher.ReasonNotFound, "", nil)
			})
		s.mockSessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		go func() {
			_, err := s.cmds.ApplyVoucher(ctx, s.userID, "SAVE50K")
			done <- err
		}()
		<-entered

		_, err := s.cmds.ApplyVoucher(ctx, s.userID, "SAVE50K")
		close(release)

		s.Require().ErrorIs(err, voucher.ErrApplyInProgress)
		s.Require().ErrorIs(<-done, voucher.ErrVoucherRejected)
	})
}

func (s *CheckoutCommandsTestSuite) TestRemoveVoucher() {
	s.expectLoad(1_000_000, &shared.CheckoutSession{AppliedVoucher: save50k(), VoucherError: "old"})
	s.mockSessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, session *shared.CheckoutSession) error {
			s.Nil(session.AppliedVoucher)
			s.Empty(session.VoucherError)
			return nil
		})

	summary, err := s.cmds.RemoveVoucher(context.Background(), s.userID)

	s.Require().NoError(err)
	s.Nil(summary.AppliedVoucher)
	s.True(builder.Amount(1_000_000).Equal(summary.FinalTotal))
}

// ================================================================================
// PlaceOrder
// ================================================================================

func (s *CheckoutCommandsTestSuite) expectProfile() {
	s.mockProfiles.EXPECT().FetchUserProfile(gomock.Any()).Return(builder.Profile(), nil)
	s.mockProfiles.EXPECT().FetchUserAddresses(gomock.Any()).Return(builder.AddressBook(), nil)
}

func (s *CheckoutCommandsTestSuite) TestPlaceOrder() {
	ctx := context.Background()
	req := builder.NewFormBuilder().BuildRequestDTO()

	s.Run("success: submits, publishes and clears the session", func() {
		s.expectProfile()
		s.expectLoad(1_000_000, &shared.CheckoutSession{SelectedPromotion: "SUMMER10", AppliedVoucher: save50k()})
		s.mockOrders.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload *order.Payload) (*order.Result, error) {
				s.Equal([]int64{7}, payload.VoucherIDs)
				s.Equal(order.PaymentCodeCOD, payload.PaymentMethod)
				s.IsType(order.NewAddress{}, payload.Address)
				return &order.Result{OrderID: "ORD-1", Status: "PENDING"}, nil
			})
		s.mockEvents.EXPECT().PublishOrderSubmitted(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, event shared.OrderSubmittedEvent) error {
				s.Equal("ORD-1", event.OrderID)
				s.Equal("SUMMER10", event.PromotionCode)
				s.Equal(s.userID, event.UserID)
				s.Equal(builder.Now, event.OccurredAt)
				s.True(builder.Amount(850_000).Equal(event.FinalTotal))
				return nil
			})
		s.mockSessions.EXPECT().Delete(gomock.Any(), s.userID).Return(nil)

		placed, err := s.cmds.PlaceOrder(ctx, s.userID, req)

		s.Require().NoError(err)
		s.Equal("ORD-1", placed.OrderID)
		s.True(builder.Amount(150_000).Equal(placed.TotalDiscount))
		s.True(builder.Amount(850_000).Equal(placed.FinalTotal))
	})

	s.Run("success: lost event does not fail the order", func() {
		s.expectProfile()
		s.expectLoad(1_000_000, nil)
		s.mockOrders.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).Return(&order.Result{OrderID: "ORD-2"}, nil)
		s.mockEvents.EXPECT().PublishOrderSubmitted(gomock.Any(), gomock.Any()).Return(errors.New("channel closed"))
		s.mockSessions.EXPECT().Delete(gomock.Any(), s.userID).Return(infra.NotFound("checkout session"))

		placed, err := s.cmds.PlaceOrder(ctx, s.userID, req)

		s.Require().NoError(err)
		s.Equal("ORD-2", placed.OrderID)
	})

	s.Run("error: validation stops before submit", func() {
		s.expectProfile()
		s.expectLoad(1_000_000, nil)
		invalid := builder.NewFormBuilder().With(func(f *order.Form) { f.Street = "" }).BuildRequestDTO()

		_, err := s.cmds.PlaceOrder(ctx, s.userID, invalid)

		var verr *order.ValidationError
		s.Require().ErrorAs(err, &verr)
		s.Equal("street", verr.Field)
	})

	s.Run("error: failed submission keeps the session", func() {
		s.expectProfile()
		s.expectLoad(1_000_000, &shared.CheckoutSession{AppliedVoucher: save50k()})
		s.mockOrders.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).
			Return(nil, order.NewSubmissionError(500, "Hết hàng", nil))

		_, err := s.cmds.PlaceOrder(ctx, s.userID, req)

		var subErr *order.SubmissionError
		s.Require().ErrorAs(err, &subErr)
		s.Equal("Hết hàng", subErr.Message)
	})

	s.Run("error: expired login while loading profile", func() {
		s.mockProfiles.EXPECT().FetchUserProfile(gomock.Any()).Return(order.Profile{}, order.ErrAuthRequired)

		_, err := s.cmds.PlaceOrder(ctx, s.userID, req)

		s.Require().ErrorIs(err, order.ErrAuthRequired)
	})

	s.Run("error: address service down", func() {
		s.mockProfiles.EXPECT().FetchUserProfile(gomock.Any()).Return(builder.Profile(), nil)
		s.mockProfiles.EXPECT().FetchUserAddresses(gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := s.cmds.PlaceOrder(ctx, s.userID, req)

		s.Require().Error(err)
		s.True(errs.Is(err, shared.ErrUpstreamUnavailable))
	})
}
