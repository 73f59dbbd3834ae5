package response

import (
	"time"

	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestResponse struct {
	ID          uuid.UUID `json:"id"`
	SpaceID     uuid.UUID `json:"spaceId"`
	RequesterID uuid.UUID `json:"requesterId"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Reason      string    `json:"reason,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ReservationResponse struct {
	ID            uuid.UUID `json:"id"`
	SpaceID       uuid.UUID `json:"spaceId"`
	UserID        uuid.UUID `json:"userId"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	PaymentStatus string    `json:"paymentStatus"`
	TotalAmount   int64     `json:"totalAmount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type ApproveResponse struct {
	ReservationID   uuid.UUID `json:"reservationId"`
	TotalAmount     int64     `json:"totalAmount"`
	RemovedRequests int64     `json:"removedRequests"`
}

func FromRequestView(rm *queries.RequestView) *RequestResponse {
	return &RequestResponse{
		ID:          rm.ID,
		SpaceID:     rm.SpaceID,
		RequesterID: rm.RequesterID,
		StartDate:   rm.StartDate.Format(time.DateOnly),
		EndDate:     rm.EndDate.Format(time.DateOnly),
		Reason:      rm.Reason,
		CreatedAt:   rm.CreatedAt,
	}
}

func FromRequestList(items []*queries.RequestView) []*RequestResponse {
	result := make([]*RequestResponse, len(items))
	for i, rm := range items {
		result[i] = FromRequestView(rm)
	}
	return result
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:            rm.ID,
		SpaceID:       rm.SpaceID,
		UserID:        rm.UserID,
		StartDate:     rm.StartDate.Format(time.DateOnly),
		EndDate:       rm.EndDate.Format(time.DateOnly),
		PaymentStatus: rm.PaymentStatus,
		TotalAmount:   rm.TotalAmount,
		CreatedAt:     rm.CreatedAt,
		UpdatedAt:     rm.UpdatedAt,
	}
}

func FromReservationList(items []*queries.ReservationView) []*ReservationResponse {
	result := make([]*ReservationResponse, len(items))
	for i, rm := range items {
		result[i] = FromReservationView(rm)
	}
	return result
}
