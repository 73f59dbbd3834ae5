package repository

import (
	"context"

	"venuebook/internal/domain/booking"
	"venuebook/internal/infra"
	"venuebook/internal/infra/repository/converter"
	sqlc "venuebook/internal/infra/sqlc"
	"venuebook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RequestWriteQueries interface {
	CreateBookingRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingRequestParams) (uuid.UUID, error)
	DeleteBookingRequest(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	DeleteOverlappingBookingRequests(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteOverlappingBookingRequestsParams) (int64, error)
}

type RequestRepository struct {
	queries RequestWriteQueries
	db      sqlc.DBTX
}

func NewRequestRepository(queries RequestWriteQueries, db sqlc.DBTX) *RequestRepository {
	return &RequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RequestRepository) Create(ctx context.Context, tx sqlc.DBTX, req *booking.Request) (uuid.UUID, error) {
	params := converter.RequestToInfra(req)

	resultID, err := r.queries.CreateBookingRequest(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking request", err)
	}

	return resultID, nil
}

func (r *RequestRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteBookingRequest(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking request", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RequestRepository) DeleteOverlapping(ctx context.Context, tx sqlc.DBTX, spaceID uuid.UUID, stay booking.DateRange) (int64, error) {
	params := sqlc.DeleteOverlappingBookingRequestsParams{
		SpaceID:   spaceID,
		StartDate: pgconv.DateToPgtype(stay.Start()),
		EndDate:   pgconv.DateToPgtype(stay.End()),
	}

	affected, err := r.queries.DeleteOverlappingBookingRequests(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete overlapping booking requests", err)
	}

	return affected, nil
}
