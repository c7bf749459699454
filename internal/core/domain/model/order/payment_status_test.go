package order_test

import (
	"fmt"
	"testing"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentStatus_Validate(t *testing.T) {
	t.Run("should validate the three defined statuses", func(t *testing.T) {
		for _, status := range []order.PaymentStatus{
			order.PaymentPending,
			order.PaymentPaid,
			order.PaymentFailed,
		} {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.PaymentStatus{
			order.PaymentUnknown,
			order.PaymentStatus(-1),
			order.PaymentStatus(4),
		} {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Contains(t, err.Error(), "payment status")
			})
		}
	})
}

func TestPaymentStatus_String(t *testing.T) {
	t.Run("should return wire representation", func(t *testing.T) {
		assert.Equal(t, "pending", order.PaymentPending.String())
		assert.Equal(t, "paid", order.PaymentPaid.String())
		assert.Equal(t, "failed", order.PaymentFailed.String())
	})

	t.Run("should return unknown for invalid statuses", func(t *testing.T) {
		assert.Equal(t, "unknown", order.PaymentUnknown.String())
		assert.Equal(t, "unknown", order.PaymentStatus(42).String())
	})
}

func TestPaymentStatusFromString(t *testing.T) {
	t.Run("should parse every wire value", func(t *testing.T) {
		for _, s := range []string{"pending", "paid", "failed"} {
			status, err := order.PaymentStatusFromString(s)

			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		for _, s := range []string{"", "unknown", "Paid", "refunded"} {
			_, err := order.PaymentStatusFromString(s)

			require.Error(t, err, "expected error for input: %q", s)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}
