package components

import (
	"venuebook/internal/infra/readstore"
	"venuebook/internal/infra/sqlc"
	"venuebook/internal/infra/uow"
	"venuebook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		// UnitOfWork
		uow.NewPostgresUoW,
		// Space
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SpaceViewQueries)),
		),
		fx.Annotate(
			readstore.NewSpaceReadStore,
			fx.As(new(queries.SpaceViewRepo)),
		),
		// Request
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RequestViewQueries)),
		),
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestViewRepo)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
		// Payment ledger
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PaymentViewQueries)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.AttemptViewRepo)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
