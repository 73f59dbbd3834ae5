package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/payment"
	"venuebook/internal/infra/readstore"
	"venuebook/internal/infra/repository"
	sqlc "venuebook/internal/infra/sqlc"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	requestRepo     shared.RequestRepository
	reservationRepo shared.ReservationRepository
	paymentRepo     shared.PaymentRepository
	calendarRepo    shared.CalendarJobRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Requests() shared.RequestRepository {
	if t.requestRepo == nil {
		t.requestRepo = repository.NewRequestRepository(t.uow.q, t.dbtx)
	}
	return t.requestRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = repository.NewPaymentRepository(t.uow.q, t.dbtx)
	}
	return t.paymentRepo
}

func (t *pgTx) CalendarJobs() shared.CalendarJobRepository {
	if t.calendarRepo == nil {
		t.calendarRepo = repository.NewCalendarJobRepository(t.uow.q, t.dbtx)
	}
	return t.calendarRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	spaceStore       *readstore.SpaceReadStore
	userStore        *readstore.UserReadStore
	requestStore     *readstore.RequestReadStore
	reservationStore *readstore.ReservationReadStore
	paymentStore     *readstore.PaymentReadStore
}

func (r *commandReads) SpaceByID(ctx context.Context, id uuid.UUID) (*shared.SpaceSnapshot, error) {
	if r.spaceStore == nil {
		r.spaceStore = readstore.NewSpaceReadStore(r.uow.q, r.dbtx)
	}

	space, err := r.spaceStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.SpaceSnapshot{
		ID:                  space.ID,
		OwnerID:             space.OwnerID,
		Name:                space.Name,
		PricePerDay:         space.PricePerDay,
		OwnerGatewayAccount: space.OwnerGatewayAccount,
	}
	return snapshot, nil
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.uow.q, r.dbtx)
	}

	u, err := r.userStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.UserSnapshot{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
	}
	return snapshot, nil
}

func (r *commandReads) RequestByID(ctx context.Context, id uuid.UUID) (*shared.RequestSnapshot, error) {
	if r.requestStore == nil {
		r.requestStore = readstore.NewRequestReadStore(r.uow.q, r.dbtx)
	}

	req, err := r.requestStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stay, err := booking.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.RequestSnapshot{
		ID:          req.ID,
		SpaceID:     req.SpaceID,
		RequesterID: req.RequesterID,
		Stay:        stay,
		Reason:      req.Reason,
		CreatedAt:   req.CreatedAt,
	}
	return snapshot, nil
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.uow.q, r.dbtx)
	}

	res, err := r.reservationStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stay, err := booking.NewDateRange(res.StartDate, res.EndDate)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.ReservationSnapshot{
		ID:            res.ID,
		SpaceID:       res.SpaceID,
		UserID:        res.UserID,
		Stay:          stay,
		PaymentStatus: res.PaymentStatus,
		TotalAmount:   res.TotalAmount,
	}
	return snapshot, nil
}

func (r *commandReads) OverlappingReservationExists(ctx context.Context, spaceID uuid.UUID, stay booking.DateRange) (bool, error) {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.uow.q, r.dbtx)
	}
	return r.reservationStore.OverlapExists(ctx, spaceID, stay)
}

func (r *commandReads) AttemptByOrderID(ctx context.Context, orderID string) (*payment.Attempt, error) {
	if r.paymentStore == nil {
		r.paymentStore = readstore.NewPaymentReadStore(r.uow.q, r.dbtx)
	}
	return r.paymentStore.FindByOrderID(ctx, orderID)
}

func (r *commandReads) OpenAttemptByReservation(ctx context.Context, reservationID uuid.UUID) (*payment.Attempt, error) {
	if r.paymentStore == nil {
		r.paymentStore = readstore.NewPaymentReadStore(r.uow.q, r.dbtx)
	}
	return r.paymentStore.FindOpenByReservation(ctx, reservationID)
}
