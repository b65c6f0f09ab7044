package shared

import (
	"context"
	"time"

	"petshop-checkout/internal/domain/cart"
	"petshop-checkout/internal/domain/order"
	"petshop-checkout/internal/domain/promotion"
	"petshop-checkout/internal/domain/voucher"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Collaborators resolve the caller from the request context (reqctx.Bearer).

type CartSource interface {
	GetCart(ctx context.Context, userID uuid.UUID) (cart.Snapshot, error)
}

type PromotionCatalog interface {
	FetchPromotions(ctx context.Context) (promotion.Catalog, error)
}

type VoucherService interface {
	voucher.Applier
}

type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, payload *order.Payload) (*order.Result, error)
}

type ProfileSource interface {
	FetchUserProfile(ctx context.Context) (order.Profile, error)
	FetchUserAddresses(ctx context.Context) (order.AddressBook, error)
}

// CheckoutSession is the persisted form of the two mutable checkout slots
// plus the voucher input shown beside them.
type CheckoutSession struct {
	UserID            uuid.UUID
	SelectedPromotion string
	AppliedVoucher    *voucher.Applied
	VoucherInput      string
	VoucherError      string
	UpdatedAt         time.Time
}

type SessionRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (*CheckoutSession, error)
	Save(ctx context.Context, session *CheckoutSession) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type OrderSubmittedEvent struct {
	EventID       uuid.UUID
	UserID        uuid.UUID
	OrderID       string
	PromotionCode string
	VoucherIDs    []int64
	Subtotal      decimal.Decimal
	TotalDiscount decimal.Decimal
	FinalTotal    decimal.Decimal
	OccurredAt    time.Time
}

type OrderEventPublisher interface {
	PublishOrderSubmitted(ctx context.Context, event OrderSubmittedEvent) error
}
