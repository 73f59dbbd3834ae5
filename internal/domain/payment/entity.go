package payment

import (
	"time"

	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveAmount  = errs.New("amount must be positive")
	ErrAttemptNotOpen     = errs.New("payment attempt is not open")
	ErrAlreadyTransferred = errs.New("transfer already recorded")
	ErrMissingPaymentID   = errs.New("payment id required")
)

// Attempt is one gateway order for one reservation. A reservation may
// accumulate several attempts over time (expired orders, failed checkouts)
// but at most one of them ends up paid.
type Attempt struct {
	id             uuid.UUID
	reservationID  uuid.UUID
	orderID        string
	amount         Money
	currency       string
	status         Status
	paymentID      *string
	transferStatus *TransferStatus
	transferID     *string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewAttempt(reservationID uuid.UUID, orderID string, amount Money, currency string) *Attempt {
	return &Attempt{
		id:            uuid.New(),
		reservationID: reservationID,
		orderID:       orderID,
		amount:        amount,
		currency:      currency,
		status:        StatusCreated,
	}
}

func ReconstructAttempt(
	id, reservationID uuid.UUID,
	orderID string,
	amount Money,
	currency string,
	status Status,
	paymentID *string,
	transferStatus *TransferStatus,
	transferID *string,
	createdAt, updatedAt time.Time,
) *Attempt {
	return &Attempt{
		id:             id,
		reservationID:  reservationID,
		orderID:        orderID,
		amount:         amount,
		currency:       currency,
		status:         status,
		paymentID:      paymentID,
		transferStatus: transferStatus,
		transferID:     transferID,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// MarkPaid attaches the gateway payment id and moves created -> paid.
// Replaying the same payment id against an already-paid attempt is a no-op.
func (a *Attempt) MarkPaid(paymentID string) error {
	if paymentID == "" {
		return ErrMissingPaymentID
	}
	if a.status == StatusPaid && a.paymentID != nil && *a.paymentID == paymentID {
		return nil
	}
	if a.status != StatusCreated {
		return ErrAttemptNotOpen
	}
	a.status = StatusPaid
	a.paymentID = &paymentID
	return nil
}

// MarkSignatureMismatch closes the attempt after a failed signature check.
// The order can never be settled afterwards.
func (a *Attempt) MarkSignatureMismatch() error {
	if a.status != StatusCreated {
		return ErrAttemptNotOpen
	}
	a.status = StatusSignatureMismatch
	return nil
}

// RecordTransfer stores the transfer outcome. A transfer that already
// succeeded is final; failed and not-onboarded outcomes may be overwritten by
// a later retry.
func (a *Attempt) RecordTransfer(status TransferStatus, transferID *string) error {
	if a.transferStatus != nil && *a.transferStatus == TransferStatusTransferred {
		return ErrAlreadyTransferred
	}
	a.transferStatus = &status
	a.transferID = transferID
	return nil
}

// IsReplayOf reports whether the incoming payment id matches a settlement
// that already happened, so the caller can acknowledge without re-settling.
func (a *Attempt) IsReplayOf(paymentID string) bool {
	return a.status == StatusPaid && a.paymentID != nil && *a.paymentID == paymentID
}

// IsOpen reports whether the attempt can still be paid or reused.
func (a *Attempt) IsOpen() bool {
	return a.status == StatusCreated
}

// Reusable reports whether a pending order created at or after cutoff can be
// handed back to the client instead of creating a fresh gateway order.
func (a *Attempt) Reusable(cutoff time.Time) bool {
	return a.status == StatusCreated && !a.createdAt.Before(cutoff)
}

func (a *Attempt) Transferred() bool {
	return a.transferStatus != nil && *a.transferStatus == TransferStatusTransferred
}

func (a *Attempt) ID() uuid.UUID                   { return a.id }
func (a *Attempt) ReservationID() uuid.UUID        { return a.reservationID }
func (a *Attempt) OrderID() string                 { return a.orderID }
func (a *Attempt) Amount() Money                   { return a.amount }
func (a *Attempt) Currency() string                { return a.currency }
func (a *Attempt) Status() Status                  { return a.status }
func (a *Attempt) PaymentID() *string              { return a.paymentID }
func (a *Attempt) TransferStatus() *TransferStatus { return a.transferStatus }
func (a *Attempt) TransferID() *string             { return a.transferID }
func (a *Attempt) CreatedAt() time.Time            { return a.createdAt }
func (a *Attempt) UpdatedAt() time.Time            { return a.updatedAt }
