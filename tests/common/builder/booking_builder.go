//go:build unit || e2e

package builder

import (
	"time"

	"venuebook/internal/domain/booking"
	reqdto "venuebook/internal/handler/dto/request"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

type RequestBuilder struct {
	ID          uuid.UUID
	SpaceID     uuid.UUID
	RequesterID uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	Reason      string
	CreatedAt   time.Time
}

func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		ID:          uuid.New(),
		SpaceID:     uuid.New(),
		RequesterID: uuid.New(),
		StartDate:   time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 8, 12, 0, 0, 0, 0, time.UTC),
		Reason:      "Team offsite",
		CreatedAt:   time.Now(),
	}
}

func (b *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(b)
	return b
}

func (b *RequestBuilder) BuildDomain() (*booking.Request, error) {
	stay, err := booking.NewDateRange(b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}
	reason, err := booking.NewReason(b.Reason)
	if err != nil {
		return nil, err
	}
	return booking.NewRequest(b.SpaceID, b.RequesterID, stay, reason), nil
}

func (b *RequestBuilder) BuildSubmitDTO() reqdto.SubmitRequestRequest {
	return reqdto.SubmitRequestRequest{
		SpaceID:   b.SpaceID,
		StartDate: b.StartDate.Format(time.DateOnly),
		EndDate:   b.EndDate.Format(time.DateOnly),
		Reason:    b.Reason,
	}
}

func (b *RequestBuilder) BuildSubmitInput() commands.SubmitRequestInput {
	return commands.SubmitRequestInput{
		SpaceID:   b.SpaceID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Reason:    b.Reason,
	}
}

func (b *RequestBuilder) BuildView() *queries.RequestView {
	return &queries.RequestView{
		ID:          b.ID,
		SpaceID:     b.SpaceID,
		RequesterID: b.RequesterID,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		Reason:      b.Reason,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *RequestBuilder) BuildSnapshot() *shared.RequestSnapshot {
	stay, _ := booking.NewDateRange(b.StartDate, b.EndDate)
	return &shared.RequestSnapshot{
		ID:          b.ID,
		SpaceID:     b.SpaceID,
		RequesterID: b.RequesterID,
		Stay:        stay,
		Reason:      b.Reason,
		CreatedAt:   b.CreatedAt,
	}
}

type ReservationBuilder struct {
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

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	return &ReservationBuilder{
		ID:            uuid.New(),
		SpaceID:       uuid.New(),
		UserID:        uuid.New(),
		StartDate:     time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2025, 8, 12, 0, 0, 0, 0, time.UTC),
		PaymentStatus: "pending",
		TotalAmount:   3000,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:            b.ID,
		SpaceID:       b.SpaceID,
		UserID:        b.UserID,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		PaymentStatus: b.PaymentStatus,
		TotalAmount:   b.TotalAmount,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	stay, _ := booking.NewDateRange(b.StartDate, b.EndDate)
	return &shared.ReservationSnapshot{
		ID:            b.ID,
		SpaceID:       b.SpaceID,
		UserID:        b.UserID,
		Stay:          stay,
		PaymentStatus: b.PaymentStatus,
		TotalAmount:   b.TotalAmount,
	}
}

type SpaceBuilder struct {
	ID                  uuid.UUID
	OwnerID             uuid.UUID
	Name                string
	PricePerDay         int64
	OwnerGatewayAccount *string
}

func NewSpaceBuilder() *SpaceBuilder {
	return &SpaceBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Name:        "Riverside Hall",
		PricePerDay: 1000,
	}
}

func (b *SpaceBuilder) With(mutate func(*SpaceBuilder)) *SpaceBuilder {
	mutate(b)
	return b
}

func (b *SpaceBuilder) BuildSnapshot() *shared.SpaceSnapshot {
	return &shared.SpaceSnapshot{
		ID:                  b.ID,
		OwnerID:             b.OwnerID,
		Name:                b.Name,
		PricePerDay:         b.PricePerDay,
		OwnerGatewayAccount: b.OwnerGatewayAccount,
	}
}
