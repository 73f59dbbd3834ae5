package shared

import (
	"time"

	"venuebook/internal/domain/booking"

	"github.com/google/uuid"
)

type SpaceSnapshot struct {
	ID                  uuid.UUID
	OwnerID             uuid.UUID
	Name                string
	PricePerDay         int64
	OwnerGatewayAccount *string
}

type UserSnapshot struct {
	ID    uuid.UUID
	Email string
	Role  string
}

type RequestSnapshot struct {
	ID          uuid.UUID
	SpaceID     uuid.UUID
	RequesterID uuid.UUID
	Stay        booking.DateRange
	Reason      string
	CreatedAt   time.Time
}

type ReservationSnapshot struct {
	ID            uuid.UUID
	SpaceID       uuid.UUID
	UserID        uuid.UUID
	Stay          booking.DateRange
	PaymentStatus string
	TotalAmount   int64
}
