//go:build unit || e2e

package builder

import (
	"time"

	"venuebook/internal/domain/payment"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type AttemptBuilder struct {
	ID             uuid.UUID
	ReservationID  uuid.UUID
	OrderID        string
	AmountMinor    int64
	Currency       string
	Status         payment.Status
	PaymentID      *string
	TransferStatus *payment.TransferStatus
	TransferID     *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewAttemptBuilder() *AttemptBuilder {
	now := time.Now()
	return &AttemptBuilder{
		ID:            uuid.New(),
		ReservationID: uuid.New(),
		OrderID:       "order_test123",
		AmountMinor:   300000,
		Currency:      "INR",
		Status:        payment.StatusCreated,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *AttemptBuilder) With(mutate func(*AttemptBuilder)) *AttemptBuilder {
	mutate(b)
	return b
}

func (b *AttemptBuilder) Paid(paymentID string) *AttemptBuilder {
	b.Status = payment.StatusPaid
	b.PaymentID = &paymentID
	return b
}

func (b *AttemptBuilder) BuildDomain() (*payment.Attempt, error) {
	amount, err := payment.NewMoney(b.AmountMinor)
	if err != nil {
		return nil, err
	}
	return payment.ReconstructAttempt(
		b.ID, b.ReservationID, b.OrderID, amount, b.Currency,
		b.Status, b.PaymentID, b.TransferStatus, b.TransferID,
		b.CreatedAt, b.UpdatedAt,
	), nil
}

func (b *AttemptBuilder) BuildView() *queries.AttemptView {
	var transfer *string
	if b.TransferStatus != nil {
		s := b.TransferStatus.String()
		transfer = &s
	}
	return &queries.AttemptView{
		ID:             b.ID,
		ReservationID:  b.ReservationID,
		OrderID:        b.OrderID,
		AmountMinor:    b.AmountMinor,
		Currency:       b.Currency,
		Status:         b.Status.String(),
		PaymentID:      b.PaymentID,
		TransferStatus: transfer,
		TransferID:     b.TransferID,
		CreatedAt:      b.CreatedAt,
	}
}
