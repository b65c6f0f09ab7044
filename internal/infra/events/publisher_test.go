//go:build unit

package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"petshop-checkout/internal/pkg/reqctx"
	"petshop-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
	deadline bool
}

type fakeChannel struct {
	calls  []published
	err    error
	closed bool
}

func (c *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	_, hasDeadline := ctx.Deadline()
	c.calls = append(c.calls, published{exchange: exchange, key: key, msg: msg, deadline: hasDeadline})
	return c.err
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

func sampleEvent() shared.OrderSubmittedEvent {
	return shared.OrderSubmittedEvent{
		EventID:       uuid.MustParse("5b3c1f0e-8a51-4c39-9d0a-6f1f4c2b7e11"),
		UserID:        uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e"),
		OrderID:       "ORD-1001",
		PromotionCode: "SUMMER10",
		VoucherIDs:    []int64{42},
		Subtotal:      decimal.NewFromInt(1000000),
		TotalDiscount: decimal.NewFromInt(150000),
		FinalTotal:    decimal.NewFromInt(880000),
		OccurredAt:    time.Date(2025, 6, 15, 17, 0, 0, 0, time.FixedZone("ICT", 7*3600)),
	}
}

func TestPublisher_PublishOrderSubmitted(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{ch: ch, queue: "checkout.order-submitted"}
	ctx := reqctx.WithRequestID(context.Background(), "req-123")

	err := p.PublishOrderSubmitted(ctx, sampleEvent())
	require.NoError(t, err)
	require.Len(t, ch.calls, 1)

	call := ch.calls[0]
	assert.Equal(t, "", call.exchange)
	assert.Equal(t, "checkout.order-submitted", call.key)
	assert.True(t, call.deadline)
	assert.Equal(t, "application/json", call.msg.ContentType)
	assert.Equal(t, amqp.Persistent, call.msg.DeliveryMode)

	assert.JSONEq(t, `{
		"eventId": "5b3c1f0e-8a51-4c39-9d0a-6f1f4c2b7e11",
		"eventName": "OrderSubmitted",
		"eventVersion": 1,
		"source": "checkout-service",
		"correlationId": "req-123",
		"partitionKey": "0f8fad5b-d9cb-469f-a165-70867728950e",
		"occurredAt": "2025-06-15T10:00:00Z",
		"payload": {
			"orderId": "ORD-1001",
			"userId": "0f8fad5b-d9cb-469f-a165-70867728950e",
			"promotionCode": "SUMMER10",
			"voucherIds": [42],
			"subtotal": "1000000",
			"totalDiscount": "150000",
			"finalTotal": "880000"
		}
	}`, string(call.msg.Body))
}

func TestPublisher_PublishOrderSubmitted_NoVoucher(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{ch: ch, queue: "q"}

	e := sampleEvent()
	e.VoucherIDs = nil
	e.PromotionCode = ""

	require.NoError(t, p.PublishOrderSubmitted(context.Background(), e))
	require.Len(t, ch.calls, 1)

	var got OrderSubmittedEvent
	require.NoError(t, json.Unmarshal(ch.calls[0].msg.Body, &got))
	assert.Equal(t, []int64{}, got.Payload.VoucherIDs)
	assert.Empty(t, got.Payload.PromotionCode)
	assert.Empty(t, got.CorrelationID)
}

func TestPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{err: amqp.ErrClosed}
	p := &Publisher{ch: ch, queue: "checkout.order-submitted"}

	err := p.PublishOrderSubmitted(context.Background(), sampleEvent())

	assert.ErrorIs(t, err, amqp.ErrClosed)
	assert.Contains(t, err.Error(), "checkout.order-submitted")
}

func TestPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{ch: ch, queue: "q"}

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NoopPublisher{}.PublishOrderSubmitted(context.Background(), sampleEvent()))
}
