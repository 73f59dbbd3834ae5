package readstore

import (
	"context"

	"venuebook/internal/infra"
	sqlc "venuebook/internal/infra/sqlc"
	"venuebook/internal/pkg/pgconv"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type SpaceViewQueries interface {
	GetSpace(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Space, error)
}

type SpaceReadStore struct {
	queries SpaceViewQueries
	db      sqlc.DBTX
}

func NewSpaceReadStore(queries SpaceViewQueries, db sqlc.DBTX) *SpaceReadStore {
	return &SpaceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SpaceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SpaceView, error) {
	row, err := r.queries.GetSpace(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("space not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find space by ID", err)
	}

	return &queries.SpaceView{
		ID:                  row.ID,
		OwnerID:             row.OwnerID,
		Name:                row.Name,
		PricePerDay:         row.PricePerDay,
		OwnerGatewayAccount: pgconv.StringPtrFromPgtype(row.OwnerGatewayAccount),
		CreatedAt:           pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:           pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
