package queries

import (
	"time"

	"github.com/google/uuid"
)

type SpaceView struct {
	ID                  uuid.UUID
	OwnerID             uuid.UUID
	Name                string
	PricePerDay         int64
	OwnerGatewayAccount *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type UserView struct {
	ID        uuid.UUID
	Email     string
	Role      string
	CreatedAt time.Time
}

type RequestView struct {
	ID          uuid.UUID
	SpaceID     uuid.UUID
	RequesterID uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	Reason      string
	CreatedAt   time.Time
}

type ReservationView struct {
	ID            uuid.UUID
	SpaceID       uuid.UUID
	UserID        uuid.UUID
	StartDate     time.Time
	EndDate       time.Time
	PaymentStatus string
	TotalAmount   int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type AttemptView struct {
	ID             uuid.UUID
	ReservationID  uuid.UUID
	OrderID        string
	AmountMinor    int64
	Currency       string
	Status         string
	PaymentID      *string
	TransferStatus *string
	TransferID     *string
	CreatedAt      time.Time
}
