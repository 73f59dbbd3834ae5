package booking

import (
	"time"

	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateRange    = errs.New("invalid date range")
	ErrReasonTooLong       = errs.New("reason too long")
	ErrNonPositivePrice    = errs.New("price per day must be positive")
	ErrAlreadyPaid         = errs.New("reservation is already paid")
	ErrInvalidPaymentState = errs.New("invalid payment status")
)

// Request is an unconfirmed ask to reserve a space for a date range. Requests
// are speculative: any number of them may overlap for the same space, and the
// conflict is resolved only when the owner approves one.
type Request struct {
	id          uuid.UUID
	spaceID     uuid.UUID
	requesterID uuid.UUID
	stay        DateRange
	reason      Reason
	createdAt   time.Time
}

func NewRequest(spaceID, requesterID uuid.UUID, stay DateRange, reason Reason) *Request {
	return &Request{
		id:          uuid.New(),
		spaceID:     spaceID,
		requesterID: requesterID,
		stay:        stay,
		reason:      reason,
	}
}

func ReconstructRequest(id, spaceID, requesterID uuid.UUID, stay DateRange, reason Reason, createdAt time.Time) *Request {
	return &Request{
		id:          id,
		spaceID:     spaceID,
		requesterID: requesterID,
		stay:        stay,
		reason:      reason,
		createdAt:   createdAt,
	}
}

func (r *Request) ID() uuid.UUID          { return r.id }
func (r *Request) SpaceID() uuid.UUID     { return r.spaceID }
func (r *Request) RequesterID() uuid.UUID { return r.requesterID }
func (r *Request) Stay() DateRange        { return r.stay }
func (r *Request) Reason() Reason         { return r.reason }
func (r *Request) CreatedAt() time.Time   { return r.createdAt }

// Reservation is a confirmed, conflict-checked allocation of a space. It is
// created only by approving a request and is immutable afterwards except for
// the pending -> paid transition.
type Reservation struct {
	id            uuid.UUID
	spaceID       uuid.UUID
	userID        uuid.UUID
	stay          DateRange
	paymentStatus PaymentStatus
	totalAmount   int64
	createdAt     time.Time
	updatedAt     time.Time
}

// NewReservation prices the stay at pricePerDay per inclusive day and starts
// the reservation in the pending payment state.
func NewReservation(spaceID, userID uuid.UUID, stay DateRange, pricePerDay int64) (*Reservation, error) {
	if pricePerDay <= 0 {
		return nil, ErrNonPositivePrice
	}
	return &Reservation{
		id:            uuid.New(),
		spaceID:       spaceID,
		userID:        userID,
		stay:          stay,
		paymentStatus: PaymentStatusPending,
		totalAmount:   stay.Days() * pricePerDay,
	}, nil
}

func ReconstructReservation(
	id, spaceID, userID uuid.UUID,
	stay DateRange,
	paymentStatus PaymentStatus,
	totalAmount int64,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		spaceID:       spaceID,
		userID:        userID,
		stay:          stay,
		paymentStatus: paymentStatus,
		totalAmount:   totalAmount,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// MarkPaid transitions pending -> paid. Marking an already-paid reservation
// again is a no-op so that settlement retries stay idempotent.
func (r *Reservation) MarkPaid() error {
	switch r.paymentStatus {
	case PaymentStatusPaid:
		return nil
	case PaymentStatusPending:
		r.paymentStatus = PaymentStatusPaid
		return nil
	default:
		return ErrInvalidPaymentState
	}
}

func (r *Reservation) IsPaid() bool {
	return r.paymentStatus == PaymentStatusPaid
}

func (r *Reservation) ID() uuid.UUID                { return r.id }
func (r *Reservation) SpaceID() uuid.UUID           { return r.spaceID }
func (r *Reservation) UserID() uuid.UUID            { return r.userID }
func (r *Reservation) Stay() DateRange              { return r.stay }
func (r *Reservation) PaymentStatus() PaymentStatus { return r.paymentStatus }
func (r *Reservation) TotalAmount() int64           { return r.totalAmount }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time         { return r.updatedAt }
