package readstore

import (
	"context"

	"venuebook/internal/infra"
	sqlc "venuebook/internal/infra/sqlc"
	"venuebook/internal/pkg/pgconv"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserViewQueries interface {
	GetUser(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.User, error)
}

type UserReadStore struct {
	queries UserViewQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserViewQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.GetUser(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.UserView{
		ID:        row.ID,
		Email:     row.Email,
		Role:      row.Role,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
