package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"petshop-checkout/internal/pkg/errs"
	"petshop-checkout/internal/pkg/reqctx"
	"petshop-checkout/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
)

const (
	EventTypeOrderSubmitted = "OrderSubmitted"
	eventSource             = "checkout-service"
	publishTimeout          = 3 * time.Second
)

type EventEnvelope struct {
	EventID       string    `json:"eventId"`
	EventName     string    `json:"eventName"`
	EventVersion  int       `json:"eventVersion"`
	Source        string    `json:"source"`
	CorrelationID string    `json:"correlationId,omitempty"`
	PartitionKey  string    `json:"partitionKey"`
	OccurredAt    time.Time `json:"occurredAt"`
}

type OrderSubmittedPayload struct {
	OrderID       string          `json:"orderId"`
	UserID        string          `json:"userId"`
	PromotionCode string          `json:"promotionCode,omitempty"`
	VoucherIDs    []int64         `json:"voucherIds"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TotalDiscount decimal.Decimal `json:"totalDiscount"`
	FinalTotal    decimal.Decimal `json:"finalTotal"`
}

type OrderSubmittedEvent struct {
	EventEnvelope
	Payload OrderSubmittedPayload `json:"payload"`
}

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	ch    channel
	queue string
}

func NewPublisher(conn *amqp.Connection, queue string) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, errs.Wrap(err, "open channel")
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, errs.Wrapf(err, "declare %s", queue)
	}

	return &Publisher{ch: ch, queue: queue}, nil
}

func (p *Publisher) Close() error {
	return p.ch.Close()
}

func (p *Publisher) PublishOrderSubmitted(ctx context.Context, e shared.OrderSubmittedEvent) error {
	body, err := json.Marshal(newOrderSubmittedEvent(ctx, e))
	if err != nil {
		return errs.Wrap(err, "marshal OrderSubmitted")
	}
	return p.publishJSON(ctx, body)
}

func newOrderSubmittedEvent(ctx context.Context, e shared.OrderSubmittedEvent) OrderSubmittedEvent {
	voucherIDs := e.VoucherIDs
	if voucherIDs == nil {
		voucherIDs = []int64{}
	}
	return OrderSubmittedEvent{
		EventEnvelope: EventEnvelope{
			EventID:       e.EventID.String(),
			EventName:     EventTypeOrderSubmitted,
			EventVersion:  1,
			Source:        eventSource,
			CorrelationID: reqctx.RequestID(ctx),
			PartitionKey:  e.UserID.String(),
			OccurredAt:    e.OccurredAt.UTC(),
		},
		Payload: OrderSubmittedPayload{
			OrderID:       e.OrderID,
			UserID:        e.UserID.String(),
			PromotionCode: e.PromotionCode,
			VoucherIDs:    voucherIDs,
			Subtotal:      e.Subtotal,
			TotalDiscount: e.TotalDiscount,
			FinalTotal:    e.FinalTotal,
		},
	}
}

func (p *Publisher) publishJSON(ctx context.Context, body []byte) error {
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err := p.ch.PublishWithContext(
		pubCtx,
		"",      // default exchange
		p.queue, // queue name as routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return errs.Wrapf(err, "publish to %s", p.queue)
	}
	return nil
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderSubmitted(_ context.Context, e shared.OrderSubmittedEvent) error {
	slog.Debug("event publishing disabled", "event", EventTypeOrderSubmitted, "order_id", e.OrderID)
	return nil
}
