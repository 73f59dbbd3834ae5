package repository

import (
	"context"

	"venuebook/internal/domain/booking"
	"venuebook/internal/infra"
	"venuebook/internal/infra/repository/converter"
	sqlc "venuebook/internal/infra/sqlc"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error)
	MarkReservationPaid(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts a confirmed reservation. A concurrent reservation for an
// overlapping stay trips the exclusion constraint and surfaces as
// KindConflict.
func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *booking.Reservation) (uuid.UUID, error) {
	params := converter.ReservationToInfra(res)

	resultID, err := r.queries.CreateReservation(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return resultID, nil
}

func (r *ReservationRepository) MarkPaid(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.MarkReservationPaid(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark reservation paid", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
