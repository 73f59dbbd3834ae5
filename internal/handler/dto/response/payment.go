package response

import (
	"time"

	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
)

// Field names follow the checkout client contract, hence snake_case.
type OrderResponse struct {
	KeyID    string `json:"key_id"`
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Reused   bool   `json:"reused,omitempty"`
}

type VerifyResponse struct {
	Success        bool      `json:"success"`
	BookingID      uuid.UUID `json:"bookingId"`
	TransferStatus *string   `json:"transfer_status,omitempty"`
}

func FromOrderResult(r *commands.CreateOrderResult) *OrderResponse {
	return &OrderResponse{
		KeyID:    r.KeyID,
		OrderID:  r.OrderID,
		Amount:   r.AmountMinor,
		Currency: r.Currency,
		Reused:   r.Reused,
	}
}

func FromSettleResult(r *commands.SettleResult) *VerifyResponse {
	resp := &VerifyResponse{
		Success:   true,
		BookingID: r.ReservationID,
	}
	if r.TransferStatus != nil {
		s := r.TransferStatus.String()
		resp.TransferStatus = &s
	}
	return resp
}

type AttemptResponse struct {
	ID             uuid.UUID `json:"id"`
	ReservationID  uuid.UUID `json:"reservationId"`
	OrderID        string    `json:"order_id"`
	Amount         int64     `json:"amount"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	PaymentID      *string   `json:"payment_id,omitempty"`
	TransferStatus *string   `json:"transfer_status,omitempty"`
	TransferID     *string   `json:"transfer_id,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func FromAttemptList(items []*queries.AttemptView) []*AttemptResponse {
	result := make([]*AttemptResponse, len(items))
	for i, a := range items {
		result[i] = &AttemptResponse{
			ID:             a.ID,
			ReservationID:  a.ReservationID,
			OrderID:        a.OrderID,
			Amount:         a.AmountMinor,
			Currency:       a.Currency,
			Status:         a.Status,
			PaymentID:      a.PaymentID,
			TransferStatus: a.TransferStatus,
			TransferID:     a.TransferID,
			CreatedAt:      a.CreatedAt,
		}
	}
	return result
}
