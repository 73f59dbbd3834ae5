package commands

import (
	"context"
	"log/slog"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSpaceNotFound     = errs.New("space not found")
	ErrRequestNotFound   = errs.New("booking request not found")
	ErrSlotAlreadyBooked = errs.New("slot already booked")
	ErrNotSpaceOwner     = errs.New("actor does not own the space")
	ErrDomainValidation  = errs.New("domain validation error")
)

const roleAdmin = "admin"

type SubmitRequestInput struct {
	SpaceID   uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	Reason    string
}

type SubmitRequestResult struct {
	RequestID uuid.UUID
}

type ApproveRequestResult struct {
	ReservationID   uuid.UUID
	TotalAmount     int64
	RemovedRequests int64
}

type BookingCommands interface {
	SubmitRequest(ctx context.Context, input SubmitRequestInput, requesterID uuid.UUID) (*SubmitRequestResult, error)
	ApproveRequest(ctx context.Context, requestID, actorID uuid.UUID, actorRole string) (*ApproveRequestResult, error)
	RejectRequest(ctx context.Context, requestID, actorID uuid.UUID, actorRole string) error
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk}
}

func (uc *bookingUseCaseImpl) SubmitRequest(ctx context.Context, input SubmitRequestInput, requesterID uuid.UUID) (*SubmitRequestResult, error) {
	stay, err := booking.NewDateRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	reason, err := booking.NewReason(input.Reason)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().SpaceByID(ctx, input.SpaceID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrSpaceNotFound
			}
			return derr
		}

		req := booking.NewRequest(input.SpaceID, requesterID, stay, reason)
		id, derr := tx.Requests().Create(ctx, tx.DB(), req)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &SubmitRequestResult{RequestID: createdID}, nil
}

// ApproveRequest converts a pending request into a reservation. The overlap
// pre-check gives a friendly error; the exclusion constraint on the insert
// closes the race when two approvals commit concurrently.
func (uc *bookingUseCaseImpl) ApproveRequest(ctx context.Context, requestID, actorID uuid.UUID, actorRole string) (*ApproveRequestResult, error) {
	var result ApproveRequestResult

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, derr := tx.Reads().RequestByID(ctx, requestID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRequestNotFound
			}
			return derr
		}

		space, derr := tx.Reads().SpaceByID(ctx, req.SpaceID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrSpaceNotFound
			}
			return derr
		}
		if actorRole != roleAdmin && space.OwnerID != actorID {
			return ErrNotSpaceOwner
		}

		taken, derr := tx.Reads().OverlappingReservationExists(ctx, req.SpaceID, req.Stay)
		if derr != nil {
			return derr
		}
		if taken {
			return ErrSlotAlreadyBooked
		}

		res, derr := booking.NewReservation(req.SpaceID, req.RequesterID, req.Stay, space.PricePerDay)
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}

		reservationID, derr := tx.Reservations().Create(ctx, tx.DB(), res)
		if derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return ErrSlotAlreadyBooked
			}
			return derr
		}

		// Cascade: the approved request and every pending request that
		// overlaps the now-taken stay are removed together.
		removed, derr := tx.Requests().DeleteOverlapping(ctx, tx.DB(), req.SpaceID, req.Stay)
		if derr != nil {
			return derr
		}

		result = ApproveRequestResult{
			ReservationID:   reservationID,
			TotalAmount:     res.TotalAmount(),
			RemovedRequests: removed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking request approved",
		"request_id", requestID,
		"reservation_id", result.ReservationID,
		"removed_requests", result.RemovedRequests)

	return &result, nil
}

func (uc *bookingUseCaseImpl) RejectRequest(ctx context.Context, requestID, actorID uuid.UUID, actorRole string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, derr := tx.Reads().RequestByID(ctx, requestID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrRequestNotFound
			}
			return derr
		}

		space, derr := tx.Reads().SpaceByID(ctx, req.SpaceID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrSpaceNotFound
			}
			return derr
		}
		if actorRole != roleAdmin && space.OwnerID != actorID && req.RequesterID != actorID {
			return ErrNotSpaceOwner
		}

		return tx.Requests().Delete(ctx, tx.DB(), requestID)
	})
}
