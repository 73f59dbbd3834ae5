package readstore

import (
	"context"

	"venuebook/internal/infra"
	sqlc "venuebook/internal/infra/sqlc"
	"venuebook/internal/pkg/pgconv"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestViewQueries interface {
	GetBookingRequest(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingRequestRow, error)
	ListBookingRequestsByRequester(ctx context.Context, db sqlc.DBTX, requesterID uuid.UUID) ([]sqlc.ListBookingRequestsByRequesterRow, error)
	ListBookingRequestsBySpace(ctx context.Context, db sqlc.DBTX, spaceID uuid.UUID) ([]sqlc.ListBookingRequestsBySpaceRow, error)
}

type RequestReadStore struct {
	queries RequestViewQueries
	db      sqlc.DBTX
}

func NewRequestReadStore(queries RequestViewQueries, db sqlc.DBTX) *RequestReadStore {
	return &RequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	row, err := r.queries.GetBookingRequest(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking request by ID", err)
	}

	return &queries.RequestView{
		ID:          row.ID,
		SpaceID:     row.SpaceID,
		RequesterID: row.RequesterID,
		StartDate:   pgconv.DateFromPgtype(row.StartDate),
		EndDate:     pgconv.DateFromPgtype(row.EndDate),
		Reason:      row.Reason,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *RequestReadStore) FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.RequestView, error) {
	rows, err := r.queries.ListBookingRequestsByRequester(ctx, r.db, requesterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking requests by requester", err)
	}

	result := make([]*queries.RequestView, len(rows))
	for i, row := range rows {
		result[i] = &queries.RequestView{
			ID:          row.ID,
			SpaceID:     row.SpaceID,
			RequesterID: row.RequesterID,
			StartDate:   pgconv.DateFromPgtype(row.StartDate),
			EndDate:     pgconv.DateFromPgtype(row.EndDate),
			Reason:      row.Reason,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}

	return result, nil
}

func (r *RequestReadStore) FindBySpace(ctx context.Context, spaceID uuid.UUID) ([]*queries.RequestView, error) {
	rows, err := r.queries.ListBookingRequestsBySpace(ctx, r.db, spaceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking requests by space", err)
	}

	result := make([]*queries.RequestView, len(rows))
	for i, row := range rows {
		result[i] = &queries.RequestView{
			ID:          row.ID,
			SpaceID:     row.SpaceID,
			RequesterID: row.RequesterID,
			StartDate:   pgconv.DateFromPgtype(row.StartDate),
			EndDate:     pgconv.DateFromPgtype(row.EndDate),
			Reason:      row.Reason,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}

	return result, nil
}
