package readstore

import (
	"context"

	"venuebook/internal/domain/payment"
	"venuebook/internal/infra"
	"venuebook/internal/infra/repository/converter"
	sqlc "venuebook/internal/infra/sqlc"
	"venuebook/internal/pkg/pgconv"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentViewQueries interface {
	GetPaymentAttemptByOrderID(ctx context.Context, db sqlc.DBTX, orderID string) (sqlc.PaymentAttempt, error)
	GetOpenPaymentAttemptByReservation(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) (sqlc.PaymentAttempt, error)
	ListPaymentAttemptsByReservation(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) ([]sqlc.PaymentAttempt, error)
}

type PaymentReadStore struct {
	queries PaymentViewQueries
	db      sqlc.DBTX
}

func NewPaymentReadStore(queries PaymentViewQueries, db sqlc.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentReadStore) FindByOrderID(ctx context.Context, orderID string) (*payment.Attempt, error) {
	row, err := r.queries.GetPaymentAttemptByOrderID(ctx, r.db, orderID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment attempt not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment attempt by order ID", err)
	}

	attempt, err := converter.AttemptFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reconstruct payment attempt", err)
	}
	return attempt, nil
}

func (r *PaymentReadStore) FindOpenByReservation(ctx context.Context, reservationID uuid.UUID) (*payment.Attempt, error) {
	row, err := r.queries.GetOpenPaymentAttemptByReservation(ctx, r.db, reservationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no open payment attempt", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find open payment attempt", err)
	}

	attempt, err := converter.AttemptFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reconstruct payment attempt", err)
	}
	return attempt, nil
}

func (r *PaymentReadStore) FindByReservation(ctx context.Context, reservationID uuid.UUID) ([]*queries.AttemptView, error) {
	rows, err := r.queries.ListPaymentAttemptsByReservation(ctx, r.db, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payment attempts", err)
	}

	result := make([]*queries.AttemptView, len(rows))
	for i, row := range rows {
		result[i] = &queries.AttemptView{
			ID:             row.ID,
			ReservationID:  row.ReservationID,
			OrderID:        row.OrderID,
			AmountMinor:    row.AmountMinor,
			Currency:       row.Currency,
			Status:         row.Status,
			PaymentID:      pgconv.StringPtrFromPgtype(row.PaymentID),
			TransferStatus: pgconv.StringPtrFromPgtype(row.TransferStatus),
			TransferID:     pgconv.StringPtrFromPgtype(row.TransferID),
			CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}

	return result, nil
}
