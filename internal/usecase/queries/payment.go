package queries

import (
	"context"

	"github.com/google/uuid"
)

type PaymentQueries interface {
	ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]*AttemptView, error)
}

type AttemptViewRepo interface {
	FindByReservation(ctx context.Context, reservationID uuid.UUID) ([]*AttemptView, error)
}

type paymentQueriesImpl struct {
	repo AttemptViewRepo
}

func NewPaymentQueries(repo AttemptViewRepo) PaymentQueries {
	return &paymentQueriesImpl{repo: repo}
}

func (q *paymentQueriesImpl) ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]*AttemptView, error) {
	return q.repo.FindByReservation(ctx, reservationID)
}
