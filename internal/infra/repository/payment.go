package repository

import (
	"context"

	"venuebook/internal/domain/payment"
	"venuebook/internal/infra"
	"venuebook/internal/infra/repository/converter"
	sqlc "venuebook/internal/infra/sqlc"
	"venuebook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	CreatePaymentAttempt(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentAttemptParams) (uuid.UUID, error)
	MarkPaymentAttemptPaid(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkPaymentAttemptPaidParams) (int64, error)
	MarkPaymentAttemptSignatureMismatch(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	SetPaymentAttemptTransfer(ctx context.Context, db sqlc.DBTX, arg sqlc.SetPaymentAttemptTransferParams) (int64, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) CreateAttempt(ctx context.Context, tx sqlc.DBTX, attempt *payment.Attempt) (uuid.UUID, error) {
	params := converter.AttemptToInfra(attempt)

	resultID, err := r.queries.CreatePaymentAttempt(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create payment attempt", err)
	}

	return resultID, nil
}

// MarkPaid flips an open attempt to paid. The guard on the current status
// makes a lost race show up as zero affected rows instead of a double write.
func (r *PaymentRepository) MarkPaid(ctx context.Context, tx sqlc.DBTX, attemptID uuid.UUID, paymentID string) error {
	params := sqlc.MarkPaymentAttemptPaidParams{
		ID:        attemptID,
		PaymentID: pgconv.StringToPgtype(paymentID),
	}

	affected, err := r.queries.MarkPaymentAttemptPaid(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to mark payment attempt paid", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("payment attempt not open", nil, infra.KindConflict)
	}
	return nil
}

func (r *PaymentRepository) MarkSignatureMismatch(ctx context.Context, tx sqlc.DBTX, attemptID uuid.UUID) error {
	affected, err := r.queries.MarkPaymentAttemptSignatureMismatch(ctx, tx, attemptID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark payment attempt signature mismatch", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("payment attempt not open", nil, infra.KindConflict)
	}
	return nil
}

func (r *PaymentRepository) SetTransfer(ctx context.Context, tx sqlc.DBTX, attemptID uuid.UUID, status payment.TransferStatus, transferID *string) error {
	params := sqlc.SetPaymentAttemptTransferParams{
		ID:             attemptID,
		TransferStatus: pgconv.StringToPgtype(status.String()),
		TransferID:     pgconv.StringPtrToPgtype(transferID),
	}

	affected, err := r.queries.SetPaymentAttemptTransfer(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to set payment attempt transfer", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("payment attempt not found", nil, infra.KindNotFound)
	}
	return nil
}
