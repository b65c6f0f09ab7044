//go:build unit

package voucher_test

import (
	"context"
	"errors"
	"testing"

	"petshop-checkout/internal/domain/voucher"
	"petshop-checkout/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type applierFunc func(ctx context.Context, code string, orderAmount decimal.Decimal) (*voucher.Record, error)

func (f applierFunc) ApplyVoucher(ctx context.Context, code string, orderAmount decimal.Decimal) (*voucher.Record, error) {
	return f(ctx, code, orderAmount)
}

func respond(record *voucher.Record, err error) (applierFunc, *int) {
	calls := 0
	return func(context.Context, string, decimal.Decimal) (*voucher.Record, error) {
		calls++
		return record, err
	}, &calls
}

func percentVoucher() *voucher.Record {
	return &voucher.Record{
		VoucherID:     42,
		Code:          "PET10",
		Description:   "10% off",
		DiscountType:  voucher.DiscountPercentage,
		DiscountValue: builder.Amount(10),
	}
}

func TestValidator_Apply(t *testing.T) {
	ctx := context.Background()
	subtotal := builder.Amount(1_000_000)

	t.Run("success computes discount and clears input", func(t *testing.T) {
		v := voucher.NewValidator()
		var gotCode string
		var gotAmount decimal.Decimal
		applier := applierFunc(func(_ context.Context, code string, amount decimal.Decimal) (*voucher.Record, error) {
			gotCode, gotAmount = code, amount
			return percentVoucher(), nil
		})

		applied, err := v.Apply(ctx, applier, "  PET10 ", subtotal)

		require.NoError(t, err)
		assert.Equal(t, "PET10", gotCode)
		assert.True(t, subtotal.Equal(gotAmount))
		assert.Equal(t, int64(42), applied.VoucherID)
		assert.True(t, builder.Amount(100_000).Equal(applied.DiscountAmount))
		assert.True(t, builder.Amount(100_000).Equal(v.Discount()))
		assert.Empty(t, v.Input())
		assert.Empty(t, v.ErrorMessage())
		assert.False(t, v.IsApplying())
	})

	t.Run("blank code never calls the service", func(t *testing.T) {
		v := voucher.NewValidator()
		applier, calls := respond(percentVoucher(), nil)

		_, err := v.Apply(ctx, applier, "   ", subtotal)

		require.ErrorIs(t, err, voucher.ErrEmptyVoucherCode)
		assert.Zero(t, *calls)
	})

	t.Run("second voucher is refused locally", func(t *testing.T) {
		v := voucher.NewValidator()
		applier, calls := respond(percentVoucher(), nil)
		_, err := v.Apply(ctx, applier, "PET10", subtotal)
		require.NoError(t, err)

		_, err = v.Apply(ctx, applier, "OTHER", subtotal)

		require.ErrorIs(t, err, voucher.ErrVoucherAlreadyApplied)
		assert.Equal(t, 1, *calls)
		assert.Equal(t, "OTHER", v.Input())
	})

	t.Run("reentrant apply is refused while in flight", func(t *testing.T) {
		v := voucher.NewValidator()
		var inner error
		applier := applierFunc(func(ctx context.Context, _ string, amount decimal.Decimal) (*voucher.Record, error) {
			assert.True(t, v.IsApplying())
			_, inner = v.Apply(ctx, applierFunc(nil), "PET10", amount)
			return percentVoucher(), nil
		})

		_, err := v.Apply(ctx, applier, "PET10", subtotal)

		require.NoError(t, err)
		require.ErrorIs(t, inner, voucher.ErrApplyInProgress)
	})

	t.Run("service rejection keeps its reason", func(t *testing.T) {
		v := voucher.NewValidator()
		applier, _ := respond(nil, voucher.NewRejection(voucher.ReasonNotEligible, "", nil))

		_, err := v.Apply(ctx, applier, "PET10", subtotal)

		var rejection *voucher.Rejection
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, voucher.ReasonNotEligible, rejection.Reason)
		assert.ErrorIs(t, err, voucher.ErrVoucherRejected)
		assert.Equal(t, "order is not eligible for this voucher", v.ErrorMessage())
		assert.Equal(t, "PET10", v.Input())
		_, ok := v.Applied()
		assert.False(t, ok)
	})

	t.Run("server message is shown verbatim", func(t *testing.T) {
		v := voucher.NewValidator()
		applier, _ := respond(nil, voucher.NewRejection(voucher.ReasonNotFound, "Mã không tồn tại", nil))

		_, err := v.Apply(ctx, applier, "PET10", subtotal)

		require.Error(t, err)
		assert.Equal(t, "Mã không tồn tại", v.ErrorMessage())
	})

	t.Run("unexpected error becomes invalid code", func(t *testing.T) {
		v := voucher.NewValidator()
		cause := errors.New("connection reset")
		applier, _ := respond(nil, cause)

		_, err := v.Apply(ctx, applier, "PET10", subtotal)

		var rejection *voucher.Rejection
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, voucher.ReasonInvalidCode, rejection.Reason)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "invalid voucher code", v.ErrorMessage())
	})

	t.Run("record without id is not applied", func(t *testing.T) {
		v := voucher.NewValidator()
		record := percentVoucher()
		record.VoucherID = 0
		applier, _ := respond(record, nil)

		_, err := v.Apply(ctx, applier, "PET10", subtotal)

		require.ErrorIs(t, err, voucher.ErrInvalidVoucher)
		assert.NotEmpty(t, v.ErrorMessage())
		assert.True(t, v.Discount().IsZero())
	})

	t.Run("unknown discount type applies with zero amount", func(t *testing.T) {
		v := voucher.NewValidator()
		record := percentVoucher()
		record.DiscountType = "BOGO"
		applier, _ := respond(record, nil)

		applied, err := v.Apply(ctx, applier, "PET10", subtotal)

		require.NoError(t, err)
		assert.True(t, applied.DiscountAmount.IsZero())
	})
}

func TestValidator_Remove(t *testing.T) {
	applied := &voucher.Applied{VoucherID: 1, Code: "PET10", DiscountType: voucher.DiscountFixedAmount, DiscountValue: builder.Amount(50_000), DiscountAmount: builder.Amount(50_000)}
	v := voucher.RestoreValidator(applied, "", "stale error")

	v.Remove()

	_, ok := v.Applied()
	assert.False(t, ok)
	assert.Empty(t, v.ErrorMessage())
	assert.True(t, v.Discount().IsZero())
}

func TestRestoreValidator_CopiesApplied(t *testing.T) {
	applied := &voucher.Applied{VoucherID: 1, Code: "PET10", DiscountAmount: builder.Amount(50_000)}
	v := voucher.RestoreValidator(applied, "draft", "")

	applied.DiscountAmount = builder.Amount(1)

	got, ok := v.Applied()
	require.True(t, ok)
	assert.True(t, builder.Amount(50_000).Equal(got.DiscountAmount))
	assert.Equal(t, "draft", v.Input())
}
