package shared

import (
	"context"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/payment"
	sqlc "venuebook/internal/infra/sqlc"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Requests() RequestRepository
	Reservations() ReservationRepository
	Payments() PaymentRepository
	CalendarJobs() CalendarJobRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	SpaceByID(ctx context.Context, id uuid.UUID) (*SpaceSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	RequestByID(ctx context.Context, id uuid.UUID) (*RequestSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	OverlappingReservationExists(ctx context.Context, spaceID uuid.UUID, stay booking.DateRange) (bool, error)
	AttemptByOrderID(ctx context.Context, orderID string) (*payment.Attempt, error)
	OpenAttemptByReservation(ctx context.Context, reservationID uuid.UUID) (*payment.Attempt, error)
}

type RequestRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, req *booking.Request) (uuid.UUID, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	DeleteOverlapping(ctx context.Context, tx sqlc.DBTX, spaceID uuid.UUID, stay booking.DateRange) (int64, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *booking.Reservation) (uuid.UUID, error)
	MarkPaid(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type PaymentRepository interface {
	CreateAttempt(ctx context.Context, tx sqlc.DBTX, attempt *payment.Attempt) (uuid.UUID, error)
	MarkPaid(ctx context.Context, tx sqlc.DBTX, attemptID uuid.UUID, paymentID string) error
	MarkSignatureMismatch(ctx context.Context, tx sqlc.DBTX, attemptID uuid.UUID) error
	SetTransfer(ctx context.Context, tx sqlc.DBTX, attemptID uuid.UUID, status payment.TransferStatus, transferID *string) error
}

type CalendarJobRepository interface {
	Enqueue(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID, payload []byte) error
}
