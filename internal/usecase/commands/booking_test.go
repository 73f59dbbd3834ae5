//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"venuebook/internal/infra"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/shared"
	"venuebook/tests/common/builder"
	sharedmock "venuebook/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bookingFixture struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	requests     *sharedmock.MockRequestRepository
	reservations *sharedmock.MockReservationRepository
	cmds         commands.BookingCommands
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &bookingFixture{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		requests:     sharedmock.NewMockRequestRepository(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
	}

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Requests().Return(f.requests).AnyTimes()
	f.tx.EXPECT().Reservations().Return(f.reservations).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()

	f.cmds = commands.NewBookingUseCase(f.uow, clock.NewMockClock(time.Now()))
	return f
}

func notFoundErr() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

func TestSubmitRequest(t *testing.T) {
	ctx := context.Background()
	requesterID := uuid.New()

	t.Run("success", func(t *testing.T) {
		f := newBookingFixture(t)
		b := builder.NewRequestBuilder()
		input := b.BuildSubmitInput()
		createdID := uuid.New()

		f.reads.EXPECT().SpaceByID(ctx, input.SpaceID).Return(builder.NewSpaceBuilder().BuildSnapshot(), nil)
		f.requests.EXPECT().Create(ctx, nil, gomock.Any()).Return(createdID, nil)

		result, err := f.cmds.SubmitRequest(ctx, input, requesterID)
		require.NoError(t, err)
		assert.Equal(t, createdID, result.RequestID)
	})

	t.Run("end before start fails validation before any read", func(t *testing.T) {
		f := newBookingFixture(t)
		input := builder.NewRequestBuilder().
			With(func(b *builder.RequestBuilder) {
				b.StartDate = time.Date(2025, 8, 12, 0, 0, 0, 0, time.UTC)
				b.EndDate = time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)
			}).
			BuildSubmitInput()

		_, err := f.cmds.SubmitRequest(ctx, input, requesterID)
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("unknown space", func(t *testing.T) {
		f := newBookingFixture(t)
		input := builder.NewRequestBuilder().BuildSubmitInput()

		f.reads.EXPECT().SpaceByID(ctx, input.SpaceID).Return(nil, notFoundErr())

		_, err := f.cmds.SubmitRequest(ctx, input, requesterID)
		assert.ErrorIs(t, err, commands.ErrSpaceNotFound)
	})
}

func TestApproveRequest(t *testing.T) {
	ctx := context.Background()

	setup := func() (requestID uuid.UUID, space *shared.SpaceSnapshot, req *shared.RequestSnapshot) {
		space = builder.NewSpaceBuilder().BuildSnapshot()
		req = builder.NewRequestBuilder().
			With(func(b *builder.RequestBuilder) { b.SpaceID = space.ID }).
			BuildSnapshot()
		return req.ID, space, req
	}

	t.Run("success: reservation created, overlapping requests removed", func(t *testing.T) {
		f := newBookingFixture(t)
		requestID, space, req := setup()
		reservationID := uuid.New()

		f.reads.EXPECT().RequestByID(ctx, requestID).Return(req, nil)
		f.reads.EXPECT().SpaceByID(ctx, req.SpaceID).Return(space, nil)
		f.reads.EXPECT().OverlappingReservationExists(ctx, req.SpaceID, req.Stay).Return(false, nil)
		f.reservations.EXPECT().Create(ctx, nil, gomock.Any()).Return(reservationID, nil)
		f.requests.EXPECT().DeleteOverlapping(ctx, nil, req.SpaceID, req.Stay).Return(int64(2), nil)

		result, err := f.cmds.ApproveRequest(ctx, requestID, space.OwnerID, "member")
		require.NoError(t, err)
		assert.Equal(t, reservationID, result.ReservationID)
		assert.Equal(t, int64(3000), result.TotalAmount)
		assert.Equal(t, int64(2), result.RemovedRequests)
	})

	t.Run("admin may approve on behalf of the owner", func(t *testing.T) {
		f := newBookingFixture(t)
		requestID, space, req := setup()

		f.reads.EXPECT().RequestByID(ctx, requestID).Return(req, nil)
		f.reads.EXPECT().SpaceByID(ctx, req.SpaceID).Return(space, nil)
		f.reads.EXPECT().OverlappingReservationExists(ctx, req.SpaceID, req.Stay).Return(false, nil)
		f.reservations.EXPECT().Create(ctx, nil, gomock.Any()).Return(uuid.New(), nil)
		f.requests.EXPECT().DeleteOverlapping(ctx, nil, req.SpaceID, req.Stay).Return(int64(1), nil)

		_, err := f.cmds.ApproveRequest(ctx, requestID, uuid.New(), "admin")
		assert.NoError(t, err)
	})

	t.Run("unknown request", func(t *testing.T) {
		f := newBookingFixture(t)
		requestID := uuid.New()

		f.reads.EXPECT().RequestByID(ctx, requestID).Return(nil, notFoundErr())

		_, err := f.cmds.ApproveRequest(ctx, requestID, uuid.New(), "member")
		assert.ErrorIs(t, err, commands.ErrRequestNotFound)
	})

	t.Run("caller is not the space owner", func(t *testing.T) {
		f := newBookingFixture(t)
		requestID, space, req := setup()

		f.reads.EXPECT().RequestByID(ctx, requestID).Return(req, nil)
		f.reads.EXPECT().SpaceByID(ctx, req.SpaceID).Return(space, nil)

		_, err := f.cmds.ApproveRequest(ctx, requestID, uuid.New(), "member")
		assert.ErrorIs(t, err, commands.ErrNotSpaceOwner)
	})

	t.Run("overlap pre-check rejects", func(t *testing.T) {
		f := newBookingFixture(t)
		requestID, space, req := setup()

		f.reads.EXPECT().RequestByID(ctx, requestID).Return(req, nil)
		f.reads.EXPECT().SpaceByID(ctx, req.SpaceID).Return(space, nil)
		f.reads.EXPECT().OverlappingReservationExists(ctx, req.SpaceID, req.Stay).Return(true, nil)

		_, err := f.cmds.ApproveRequest(ctx, requestID, space.OwnerID, "member")
		assert.ErrorIs(t, err, commands.ErrSlotAlreadyBooked)
	})

	t.Run("exclusion constraint loss maps to slot already booked", func(t *testing.T) {
		f := newBookingFixture(t)
		requestID, space, req := setup()

		f.reads.EXPECT().RequestByID(ctx, requestID).Return(req, nil)
		f.reads.EXPECT().SpaceByID(ctx, req.SpaceID).Return(space, nil)
		f.reads.EXPECT().OverlappingReservationExists(ctx, req.SpaceID, req.Stay).Return(false, nil)
		f.reservations.EXPECT().Create(ctx, nil, gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("overlap", nil, infra.KindConflict))

		_, err := f.cmds.ApproveRequest(ctx, requestID, space.OwnerID, "member")
		assert.ErrorIs(t, err, commands.ErrSlotAlreadyBooked)
	})
}

func TestRejectRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes the request", func(t *testing.T) {
		f := newBookingFixture(t)
		space := builder.NewSpaceBuilder().BuildSnapshot()
		req := builder.NewRequestBuilder().
			With(func(b *builder.RequestBuilder) { b.SpaceID = space.ID }).
			BuildSnapshot()

		f.reads.EXPECT().RequestByID(ctx, req.ID).Return(req, nil)
		f.reads.EXPECT().SpaceByID(ctx, req.SpaceID).Return(space, nil)
		f.requests.EXPECT().Delete(ctx, nil, req.ID).Return(nil)

		assert.NoError(t, f.cmds.RejectRequest(ctx, req.ID, space.OwnerID, "member"))
	})

	t.Run("requester may withdraw their own request", func(t *testing.T) {
		f := newBookingFixture(t)
		space := builder.NewSpaceBuilder().BuildSnapshot()
		req := builder.NewRequestBuilder().
			With(func(b *builder.RequestBuilder) { b.SpaceID = space.ID }).
			BuildSnapshot()

		f.reads.EXPECT().RequestByID(ctx, req.ID).Return(req, nil)
		f.reads.EXPECT().SpaceByID(ctx, req.SpaceID).Return(space, nil)
		f.requests.EXPECT().Delete(ctx, nil, req.ID).Return(nil)

		assert.NoError(t, f.cmds.RejectRequest(ctx, req.ID, req.RequesterID, "member"))
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		f := newBookingFixture(t)
		space := builder.NewSpaceBuilder().BuildSnapshot()
		req := builder.NewRequestBuilder().
			With(func(b *builder.RequestBuilder) { b.SpaceID = space.ID }).
			BuildSnapshot()

		f.reads.EXPECT().RequestByID(ctx, req.ID).Return(req, nil)
		f.reads.EXPECT().SpaceByID(ctx, req.SpaceID).Return(space, nil)

		err := f.cmds.RejectRequest(ctx, req.ID, uuid.New(), "member")
		assert.ErrorIs(t, err, commands.ErrNotSpaceOwner)
	})
}
