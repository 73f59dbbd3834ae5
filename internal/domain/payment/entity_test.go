//go:build unit

package payment_test

import (
	"testing"
	"time"

	"venuebook/internal/domain/payment"
	"venuebook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("positive minor amount", func(t *testing.T) {
		m, err := payment.NewMoney(300000)
		require.NoError(t, err)
		assert.Equal(t, int64(300000), m.Minor())
	})

	t.Run("zero and negative are rejected", func(t *testing.T) {
		_, err := payment.NewMoney(0)
		assert.ErrorIs(t, err, payment.ErrNonPositiveAmount)

		_, err = payment.NewMoney(-100)
		assert.ErrorIs(t, err, payment.ErrNonPositiveAmount)
	})

	t.Run("major unit conversion rounds to nearest", func(t *testing.T) {
		m, err := payment.MoneyFromMajor(3000)
		require.NoError(t, err)
		assert.Equal(t, int64(300000), m.Minor())

		m, err = payment.MoneyFromMajor(99.995)
		require.NoError(t, err)
		assert.Equal(t, int64(10000), m.Minor())
	})
}

func TestAttemptMarkPaid(t *testing.T) {
	t.Run("created to paid", func(t *testing.T) {
		attempt, err := builder.NewAttemptBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, attempt.MarkPaid("pay_123"))
		assert.Equal(t, payment.StatusPaid, attempt.Status())
		require.NotNil(t, attempt.PaymentID())
		assert.Equal(t, "pay_123", *attempt.PaymentID())
	})

	t.Run("replay with same payment id is a no-op", func(t *testing.T) {
		attempt, err := builder.NewAttemptBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, attempt.MarkPaid("pay_123"))
		require.NoError(t, attempt.MarkPaid("pay_123"))
		assert.Equal(t, payment.StatusPaid, attempt.Status())
	})

	t.Run("different payment id against paid attempt is rejected", func(t *testing.T) {
		attempt, err := builder.NewAttemptBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, attempt.MarkPaid("pay_123"))
		assert.ErrorIs(t, attempt.MarkPaid("pay_456"), payment.ErrAttemptNotOpen)
	})

	t.Run("empty payment id is rejected", func(t *testing.T) {
		attempt, err := builder.NewAttemptBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, attempt.MarkPaid(""), payment.ErrMissingPaymentID)
	})

	t.Run("mismatched attempt cannot be paid", func(t *testing.T) {
		attempt, err := builder.NewAttemptBuilder().
			With(func(b *builder.AttemptBuilder) { b.Status = payment.StatusSignatureMismatch }).
			BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, attempt.MarkPaid("pay_123"), payment.ErrAttemptNotOpen)
	})
}

func TestAttemptSignatureMismatch(t *testing.T) {
	t.Run("closes an open attempt", func(t *testing.T) {
		attempt, err := builder.NewAttemptBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, attempt.MarkSignatureMismatch())
		assert.Equal(t, payment.StatusSignatureMismatch, attempt.Status())
		assert.False(t, attempt.IsOpen())
	})

	t.Run("paid attempt cannot be marked mismatched", func(t *testing.T) {
		attempt, err := builder.NewAttemptBuilder().Paid("pay_123").BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, attempt.MarkSignatureMismatch(), payment.ErrAttemptNotOpen)
	})
}

func TestAttemptTransfer(t *testing.T) {
	t.Run("records the outcome", func(t *testing.T) {
		attempt, err := builder.NewAttemptBuilder().Paid("pay_123").BuildDomain()
		require.NoError(t, err)

		transferID := "trf_001"
		require.NoError(t, attempt.RecordTransfer(payment.TransferStatusTransferred, &transferID))
		assert.True(t, attempt.Transferred())
	})

	t.Run("a succeeded transfer is final", func(t *testing.T) {
		attempt, err := builder.NewAttemptBuilder().Paid("pay_123").BuildDomain()
		require.NoError(t, err)

		transferID := "trf_001"
		require.NoError(t, attempt.RecordTransfer(payment.TransferStatusTransferred, &transferID))
		assert.ErrorIs(t,
			attempt.RecordTransfer(payment.TransferStatusFailed, nil),
			payment.ErrAlreadyTransferred)
		assert.True(t, attempt.Transferred())
	})

	t.Run("failed transfer may be retried", func(t *testing.T) {
		attempt, err := builder.NewAttemptBuilder().Paid("pay_123").BuildDomain()
		require.NoError(t, err)

		require.NoError(t, attempt.RecordTransfer(payment.TransferStatusFailed, nil))
		assert.False(t, attempt.Transferred())

		transferID := "trf_002"
		require.NoError(t, attempt.RecordTransfer(payment.TransferStatusTransferred, &transferID))
		assert.True(t, attempt.Transferred())
	})
}

func TestAttemptReuse(t *testing.T) {
	now := time.Now()

	t.Run("open attempt within the window is reusable", func(t *testing.T) {
		attempt, err := builder.NewAttemptBuilder().
			With(func(b *builder.AttemptBuilder) { b.CreatedAt = now.Add(-5 * time.Minute) }).
			BuildDomain()
		require.NoError(t, err)

		assert.True(t, attempt.Reusable(now.Add(-15*time.Minute)))
	})

	t.Run("stale attempt is not reusable", func(t *testing.T) {
		attempt, err := builder.NewAttemptBuilder().
			With(func(b *builder.AttemptBuilder) { b.CreatedAt = now.Add(-30 * time.Minute) }).
			BuildDomain()
		require.NoError(t, err)

		assert.False(t, attempt.Reusable(now.Add(-15*time.Minute)))
	})

	t.Run("paid attempt is never reusable", func(t *testing.T) {
		attempt, err := builder.NewAttemptBuilder().
			Paid("pay_123").
			With(func(b *builder.AttemptBuilder) { b.CreatedAt = now }).
			BuildDomain()
		require.NoError(t, err)

		assert.False(t, attempt.Reusable(now.Add(-15*time.Minute)))
	})
}

func TestAttemptReplayDetection(t *testing.T) {
	attempt, err := builder.NewAttemptBuilder().Paid("pay_123").BuildDomain()
	require.NoError(t, err)

	assert.True(t, attempt.IsReplayOf("pay_123"))
	assert.False(t, attempt.IsReplayOf("pay_456"))

	open, err := builder.NewAttemptBuilder().BuildDomain()
	require.NoError(t, err)
	assert.False(t, open.IsReplayOf("pay_123"))
	assert.NotEqual(t, uuid.Nil, open.ID())
}
