//go:build unit

package converter_test

import (
	"testing"

	"petshop-checkout/internal/domain/voucher"
	"petshop-checkout/internal/infra/repository/converter"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppliedVoucherJSON(t *testing.T) {
	t.Run("nil voucher stores null", func(t *testing.T) {
		b, err := converter.AppliedVoucherToJSON(nil)
		require.NoError(t, err)
		assert.Nil(t, b)

		v, err := converter.AppliedVoucherFromJSON("")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("round trip keeps decimal amounts", func(t *testing.T) {
		in := &voucher.Applied{
			VoucherID:      7,
			Code:           "PET10",
			Description:    "10% off pet food",
			DiscountType:   voucher.DiscountPercentage,
			DiscountValue:  decimal.NewFromInt(10),
			DiscountAmount: decimal.RequireFromString("85000.5"),
		}

		b, err := converter.AppliedVoucherToJSON(in)
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"voucher_id":7,"code":"PET10","description":"10% off pet food","discount_type":"PERCENTAGE","discount_value":"10","discount_amount":"85000.5"}`,
			string(b))

		out, err := converter.AppliedVoucherFromJSON(string(b))
		require.NoError(t, err)
		require.NotNil(t, out)
		assert.Equal(t, in.VoucherID, out.VoucherID)
		assert.Equal(t, in.Code, out.Code)
		assert.Equal(t, in.Description, out.Description)
		assert.Equal(t, in.DiscountType, out.DiscountType)
		assert.True(t, in.DiscountValue.Equal(out.DiscountValue))
		assert.True(t, in.DiscountAmount.Equal(out.DiscountAmount))
	})

	t.Run("invalid json", func(t *testing.T) {
		v, err := converter.AppliedVoucherFromJSON(`{"voucher_id":`)
		assert.Error(t, err)
		assert.Nil(t, v)
	})
}
