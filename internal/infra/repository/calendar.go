package repository

import (
	"context"

	"venuebook/internal/infra"
	sqlc "venuebook/internal/infra/sqlc"

	"github.com/google/uuid"
)

type CalendarJobWriteQueries interface {
	CreateCalendarJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCalendarJobParams) (uuid.UUID, error)
}

type CalendarJobRepository struct {
	queries CalendarJobWriteQueries
	db      sqlc.DBTX
}

func NewCalendarJobRepository(queries CalendarJobWriteQueries, db sqlc.DBTX) *CalendarJobRepository {
	return &CalendarJobRepository{
		queries: queries,
		db:      db,
	}
}

// Enqueue records a calendar sync job in the same transaction as the
// settlement so the notification cannot be lost between commit and dispatch.
func (r *CalendarJobRepository) Enqueue(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID, payload []byte) error {
	params := sqlc.CreateCalendarJobParams{
		ID:            uuid.New(),
		ReservationID: reservationID,
		Payload:       payload,
	}

	if _, err := r.queries.CreateCalendarJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to enqueue calendar job", err)
	}
	return nil
}
