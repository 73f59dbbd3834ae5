package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/payment"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/config"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrReservationNotOwned = errs.New("reservation not owned by user")
	ErrReservationPaid     = errs.New("reservation is already paid")
	ErrOrderNotFound       = errs.New("payment order not found")
	ErrSignatureMismatch   = errs.New("payment signature mismatch")
	ErrGatewayUnavailable  = errs.New("payment gateway unavailable")
)

type CreateOrderResult struct {
	OrderID     string
	AmountMinor int64
	Currency    string
	KeyID       string
	Reused      bool
}

type VerifyPaymentInput struct {
	OrderID   string
	PaymentID string
	Signature string
}

type SettleResult struct {
	ReservationID  uuid.UUID
	Settled        bool
	Replayed       bool
	TransferStatus *payment.TransferStatus
}

type SettlementCommands interface {
	CreateOrder(ctx context.Context, reservationID, actorID uuid.UUID, actorRole string) (*CreateOrderResult, error)
	VerifyAndSettle(ctx context.Context, input VerifyPaymentInput) (*SettleResult, error)
}

type settlementUseCaseImpl struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	verifier SignatureVerifier
	cfg      config.GatewayConfig
	clock    clock.Clock
}

func NewSettlementUseCase(
	uow shared.UnitOfWork,
	gateway PaymentGateway,
	verifier SignatureVerifier,
	cfg config.GatewayConfig,
	clk clock.Clock,
) SettlementCommands {
	return &settlementUseCaseImpl{
		uow:      uow,
		gateway:  gateway,
		verifier: verifier,
		cfg:      cfg,
		clock:    clk,
	}
}

// CreateOrder opens a gateway order for an unpaid reservation. An open order
// created within the retry window is handed back instead of minting a new
// one, so an interrupted checkout can resume.
func (uc *settlementUseCaseImpl) CreateOrder(ctx context.Context, reservationID, actorID uuid.UUID, actorRole string) (*CreateOrderResult, error) {
	reads := uc.uow.CommandReads()

	res, err := reads.ReservationByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if actorRole != roleAdmin && res.UserID != actorID {
		return nil, ErrReservationNotOwned
	}
	if res.PaymentStatus == booking.PaymentStatusPaid.String() {
		return nil, ErrReservationPaid
	}

	cutoff := uc.clock.Now().Add(-uc.cfg.OrderRetryWindow)
	if open, rerr := reads.OpenAttemptByReservation(ctx, reservationID); rerr == nil && open.Reusable(cutoff) {
		return &CreateOrderResult{
			OrderID:     open.OrderID(),
			AmountMinor: open.Amount().Minor(),
			Currency:    open.Currency(),
			KeyID:       uc.cfg.KeyID,
			Reused:      true,
		}, nil
	} else if rerr != nil && !infra.IsKind(rerr, infra.KindNotFound) {
		return nil, rerr
	}

	amount, err := payment.NewMoney(res.TotalAmount * 100)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	orderID, err := uc.gateway.CreateOrder(ctx, amount.Minor(), uc.cfg.Currency, reservationID.String())
	if err != nil {
		return nil, errs.Mark(err, ErrGatewayUnavailable)
	}

	attempt := payment.NewAttempt(reservationID, orderID, amount, uc.cfg.Currency)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Payments().CreateAttempt(ctx, tx.DB(), attempt)
		return derr
	})
	if err != nil {
		return nil, err
	}

	return &CreateOrderResult{
		OrderID:     orderID,
		AmountMinor: amount.Minor(),
		Currency:    uc.cfg.Currency,
		KeyID:       uc.cfg.KeyID,
	}, nil
}

// VerifyAndSettle confirms a checkout callback. The attempt and reservation
// flip to paid in one transaction together with the calendar job; the owner
// transfer runs after commit and its outcome never unsettles the payment.
func (uc *settlementUseCaseImpl) VerifyAndSettle(ctx context.Context, input VerifyPaymentInput) (*SettleResult, error) {
	reads := uc.uow.CommandReads()

	attempt, err := reads.AttemptByOrderID(ctx, input.OrderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if attempt.IsReplayOf(input.PaymentID) {
		return &SettleResult{
			ReservationID:  attempt.ReservationID(),
			Settled:        true,
			Replayed:       true,
			TransferStatus: attempt.TransferStatus(),
		}, nil
	}

	if !uc.verifier.Verify(input.OrderID, input.PaymentID, input.Signature) {
		if merr := uc.markMismatch(ctx, attempt.ID()); merr != nil {
			slog.Error("failed to record signature mismatch",
				"attempt_id", attempt.ID(), "error", merr.Error())
		}
		return nil, ErrSignatureMismatch
	}

	if err := attempt.MarkPaid(input.PaymentID); err != nil {
		return nil, errs.Mark(err, ErrOrderNotFound)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Payments().MarkPaid(ctx, tx.DB(), attempt.ID(), input.PaymentID); derr != nil {
			return derr
		}
		if derr := tx.Reservations().MarkPaid(ctx, tx.DB(), attempt.ReservationID()); derr != nil {
			return derr
		}
		return uc.enqueueCalendarJob(ctx, tx, attempt.ReservationID())
	})
	if err != nil {
		return nil, err
	}

	transferStatus := uc.runTransfer(ctx, attempt, input.PaymentID)

	return &SettleResult{
		ReservationID:  attempt.ReservationID(),
		Settled:        true,
		TransferStatus: transferStatus,
	}, nil
}

func (uc *settlementUseCaseImpl) markMismatch(ctx context.Context, attemptID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Payments().MarkSignatureMismatch(ctx, tx.DB(), attemptID)
	})
}

func (uc *settlementUseCaseImpl) enqueueCalendarJob(ctx context.Context, tx shared.Tx, reservationID uuid.UUID) error {
	payload, err := json.Marshal(map[string]any{
		"reservation_id": reservationID,
		"type":           "reservation_paid",
	})
	if err != nil {
		return err
	}
	return tx.CalendarJobs().Enqueue(ctx, tx.DB(), reservationID, payload)
}

// runTransfer routes funds to the space owner. Every outcome is recorded but
// none of them affects the settled payment.
func (uc *settlementUseCaseImpl) runTransfer(ctx context.Context, attempt *payment.Attempt, paymentID string) *payment.TransferStatus {
	if attempt.Transferred() {
		status := payment.TransferStatusTransferred
		return &status
	}

	res, err := uc.uow.CommandReads().ReservationByID(ctx, attempt.ReservationID())
	if err != nil {
		slog.Error("transfer skipped: failed to load reservation",
			"reservation_id", attempt.ReservationID(), "error", err.Error())
		return uc.recordTransfer(ctx, attempt.ID(), payment.TransferStatusFailed, nil)
	}

	space, err := uc.uow.CommandReads().SpaceByID(ctx, res.SpaceID)
	if err != nil {
		slog.Error("transfer skipped: failed to load space",
			"space_id", res.SpaceID, "error", err.Error())
		return uc.recordTransfer(ctx, attempt.ID(), payment.TransferStatusFailed, nil)
	}

	if space.OwnerGatewayAccount == nil {
		return uc.recordTransfer(ctx, attempt.ID(), payment.TransferStatusOwnerNotOnboarded, nil)
	}

	transferID, err := uc.gateway.CreateTransfer(ctx, paymentID, attempt.Amount().Minor(), attempt.Currency(), *space.OwnerGatewayAccount)
	if err != nil {
		slog.Error("owner transfer failed",
			"payment_id", paymentID, "space_id", res.SpaceID, "error", err.Error())
		return uc.recordTransfer(ctx, attempt.ID(), payment.TransferStatusFailed, nil)
	}

	return uc.recordTransfer(ctx, attempt.ID(), payment.TransferStatusTransferred, &transferID)
}

func (uc *settlementUseCaseImpl) recordTransfer(ctx context.Context, attemptID uuid.UUID, status payment.TransferStatus, transferID *string) *payment.TransferStatus {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Payments().SetTransfer(ctx, tx.DB(), attemptID, status, transferID)
	})
	if err != nil {
		slog.Error("failed to record transfer outcome",
			"attempt_id", attemptID, "status", status.String(), "error", err.Error())
	}
	return &status
}
