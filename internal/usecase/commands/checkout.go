package commands

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"petshop-checkout/internal/domain/order"
	"petshop-checkout/internal/domain/voucher"
	reqdto "petshop-checkout/internal/handler/dto/request"
	"petshop-checkout/internal/pkg/clock"
	"petshop-checkout/internal/usecase/readmodel"
	"petshop-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutCommands interface {
	SelectPromotion(ctx context.Context, userID uuid.UUID, code string) (*readmodel.CheckoutSummaryRM, error)
	ClearPromotion(ctx context.Context, userID uuid.UUID) (*readmodel.CheckoutSummaryRM, error)
	ApplyVoucher(ctx context.Context, userID uuid.UUID, code string) (*readmodel.CheckoutSummaryRM, error)
	RemoveVoucher(ctx context.Context, userID uuid.UUID) (*readmodel.CheckoutSummaryRM, error)
	PlaceOrder(ctx context.Context, userID uuid.UUID, req reqdto.PlaceOrderRequest) (*readmodel.OrderPlacedRM, error)
}

type checkoutCommandsImpl struct {
	runner   *shared.SessionRunner
	vouchers shared.VoucherService
	orders   shared.OrderSubmitter
	profiles shared.ProfileSource
	events   shared.OrderEventPublisher
	builder  *order.Builder
	clock    clock.Clock

	// users with a voucher apply waiting on the voucher service
	applying sync.Map
}

func NewCheckoutCommands(
	runner *shared.SessionRunner,
	vouchers shared.VoucherService,
	orders shared.OrderSubmitter,
	profiles shared.ProfileSource,
	events shared.OrderEventPublisher,
	builder *order.Builder,
	clock clock.Clock,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		runner:   runner,
		vouchers: vouchers,
		orders:   orders,
		profiles: profiles,
		events:   events,
		builder:  builder,
		clock:    clock,
	}
}

func (c *checkoutCommandsImpl) SelectPromotion(ctx context.Context, userID uuid.UUID, code string) (*readmodel.CheckoutSummaryRM, error) {
	return c.runner.Run(ctx, userID, func(_ context.Context, p *shared.Pass) error {
		_, err := p.Engine.SelectPromotion(code)
		return err
	})
}

func (c *checkoutCommandsImpl) ClearPromotion(ctx context.Context, userID uuid.UUID) (*readmodel.CheckoutSummaryRM, error) {
	return c.runner.Run(ctx, userID, func(_ context.Context, p *shared.Pass) error {
		p.Engine.ClearPromotion()
		return nil
	})
}

// ApplyVoucher refuses a second apply for the same customer while the first
// is still waiting on the voucher service instead of queueing behind it.
func (c *checkoutCommandsImpl) ApplyVoucher(ctx context.Context, userID uuid.UUID, code string) (*readmodel.CheckoutSummaryRM, error) {
	if _, busy := c.applying.LoadOrStore(userID, struct{}{}); busy {
		return nil, voucher.ErrApplyInProgress
	}
	defer c.applying.Delete(userID)

	return c.runner.Run(ctx, userID, func(ctx context.Context, p *shared.Pass) error {
		_, err := p.Engine.ApplyVoucher(ctx, c.vouchers, code)
		if err != nil {
			var rejection *voucher.Rejection
			if errors.As(err, &rejection) {
				slog.Info("voucher rejected",
					"user_id", userID,
					"reason", rejection.Reason,
					"error", rejection.Err)
			}
		}
		return err
	})
}

func (c *checkoutCommandsImpl) RemoveVoucher(ctx context.Context, userID uuid.UUID) (*readmodel.CheckoutSummaryRM, error) {
	return c.runner.Run(ctx, userID, func(_ context.Context, p *shared.Pass) error {
		p.Engine.RemoveVoucher()
		return nil
	})
}

// PlaceOrder reconciles against the live cart before building the payload, so
// the order never carries a voucher amount computed for a stale subtotal. On
// failure every checkout slot is kept for a retry.
func (c *checkoutCommandsImpl) PlaceOrder(ctx context.Context, userID uuid.UUID, req reqdto.PlaceOrderRequest) (*readmodel.OrderPlacedRM, error) {
	profile, err := c.profiles.FetchUserProfile(ctx)
	if err != nil {
		return nil, shared.UpstreamErr(err, "failed to load user profile")
	}
	book, err := c.profiles.FetchUserAddresses(ctx)
	if err != nil {
		return nil, shared.UpstreamErr(err, "failed to load user addresses")
	}

	form := req.ToDomain()

	var placed *readmodel.OrderPlacedRM
	_, err = c.runner.Run(ctx, userID, func(ctx context.Context, p *shared.Pass) error {
		applied, _ := p.Engine.AppliedVoucher()

		payload, err := c.builder.Build(form, p.Cart, applied, profile, book)
		if err != nil {
			return err
		}

		result, err := c.orders.SubmitOrder(ctx, payload)
		if err != nil {
			return err
		}

		state := p.Engine.State()
		promotionCode, _ := p.Engine.SelectedPromotion()
		c.publishSubmitted(ctx, shared.OrderSubmittedEvent{
			EventID:       uuid.New(),
			UserID:        userID,
			OrderID:       result.OrderID,
			PromotionCode: promotionCode,
			VoucherIDs:    payload.VoucherIDs,
			Subtotal:      state.Subtotal,
			TotalDiscount: state.TotalDiscount,
			FinalTotal:    state.FinalTotal,
			OccurredAt:    c.clock.Now(),
		})

		p.Discard()
		placed = &readmodel.OrderPlacedRM{
			OrderID:       result.OrderID,
			Status:        result.Status,
			TotalDiscount: state.TotalDiscount,
			FinalTotal:    state.FinalTotal,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

// The order already exists once submit succeeds; a lost event is logged, not
// surfaced to the customer.
func (c *checkoutCommandsImpl) publishSubmitted(ctx context.Context, event shared.OrderSubmittedEvent) {
	if err := c.events.PublishOrderSubmitted(ctx, event); err != nil {
		slog.Error("failed to publish order submitted event",
			"order_id", event.OrderID,
			"user_id", event.UserID,
			"error", err)
	}
}
