package queries

import (
	"context"

	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
)

const RoleAdmin = "admin"

var ErrNotSpaceOwner = errs.New("actor does not own the space")

type RequestQueries interface {
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
	ListBySpace(ctx context.Context, spaceID, actorID uuid.UUID, actorRole string) ([]*RequestView, error)
}

type RequestViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
	FindBySpace(ctx context.Context, spaceID uuid.UUID) ([]*RequestView, error)
}

type SpaceViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SpaceView, error)
}

type requestQueriesImpl struct {
	repo   RequestViewRepo
	spaces SpaceViewRepo
}

func NewRequestQueries(repo RequestViewRepo, spaces SpaceViewRepo) RequestQueries {
	return &requestQueriesImpl{repo: repo, spaces: spaces}
}

func (q *requestQueriesImpl) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error) {
	return q.repo.FindByRequester(ctx, requesterID)
}

// ListBySpace is restricted to the space owner: pending requests expose other
// users' contact windows.
func (q *requestQueriesImpl) ListBySpace(ctx context.Context, spaceID, actorID uuid.UUID, actorRole string) ([]*RequestView, error) {
	space, err := q.spaces.FindByID(ctx, spaceID)
	if err != nil {
		return nil, err
	}
	if actorRole != RoleAdmin && space.OwnerID != actorID {
		return nil, ErrNotSpaceOwner
	}
	return q.repo.FindBySpace(ctx, spaceID)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	ListBySpace(ctx context.Context, spaceID uuid.UUID) ([]*ReservationView, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	FindBySpace(ctx context.Context, spaceID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error) {
	return q.repo.FindByUser(ctx, userID)
}

func (q *reservationQueriesImpl) ListBySpace(ctx context.Context, spaceID uuid.UUID) ([]*ReservationView, error) {
	return q.repo.FindBySpace(ctx, spaceID)
}
