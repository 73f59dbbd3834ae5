package readstore

import (
	"context"

	"venuebook/internal/domain/booking"
	"venuebook/internal/infra"
	sqlc "venuebook/internal/infra/sqlc"
	"venuebook/internal/pkg/pgconv"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationRow, error)
	ListReservationsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListReservationsByUserRow, error)
	ListReservationsBySpace(ctx context.Context, db sqlc.DBTX, spaceID uuid.UUID) ([]sqlc.ListReservationsBySpaceRow, error)
	OverlappingReservationExists(ctx context.Context, db sqlc.DBTX, arg sqlc.OverlappingReservationExistsParams) (bool, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservation(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return &queries.ReservationView{
		ID:            row.ID,
		SpaceID:       row.SpaceID,
		UserID:        row.UserID,
		StartDate:     pgconv.DateFromPgtype(row.StartDate),
		EndDate:       pgconv.DateFromPgtype(row.EndDate),
		PaymentStatus: row.PaymentStatus,
		TotalAmount:   row.TotalAmount,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *ReservationReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationView{
			ID:            row.ID,
			SpaceID:       row.SpaceID,
			UserID:        row.UserID,
			StartDate:     pgconv.DateFromPgtype(row.StartDate),
			EndDate:       pgconv.DateFromPgtype(row.EndDate),
			PaymentStatus: row.PaymentStatus,
			TotalAmount:   row.TotalAmount,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}

	return result, nil
}

func (r *ReservationReadStore) FindBySpace(ctx context.Context, spaceID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsBySpace(ctx, r.db, spaceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by space", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationView{
			ID:            row.ID,
			SpaceID:       row.SpaceID,
			UserID:        row.UserID,
			StartDate:     pgconv.DateFromPgtype(row.StartDate),
			EndDate:       pgconv.DateFromPgtype(row.EndDate),
			PaymentStatus: row.PaymentStatus,
			TotalAmount:   row.TotalAmount,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}

	return result, nil
}

func (r *ReservationReadStore) OverlapExists(ctx context.Context, spaceID uuid.UUID, stay booking.DateRange) (bool, error) {
	params := sqlc.OverlappingReservationExistsParams{
		SpaceID:   spaceID,
		StartDate: pgconv.DateToPgtype(stay.Start()),
		EndDate:   pgconv.DateToPgtype(stay.End()),
	}

	exists, err := r.queries.OverlappingReservationExists(ctx, r.db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check overlapping reservations", err)
	}

	return exists, nil
}
