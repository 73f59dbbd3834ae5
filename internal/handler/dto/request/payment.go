package request

import (
	"github.com/google/uuid"
)

// Amount arrives in the major currency unit. The reservation row is the
// system of record for the price; the field is validated for presence and
// plausibility only.
type CreateOrderRequest struct {
	BookingID uuid.UUID `json:"bookingId" binding:"required"`
	OwnerID   uuid.UUID `json:"ownerId" binding:"required"`
	Amount    int64     `json:"amount" binding:"required,gt=0"`
}

type VerifyPaymentRequest struct {
	BookingID uuid.UUID `json:"bookingId" binding:"required"`
	OrderID   string    `json:"order_id" binding:"required"`
	PaymentID string    `json:"payment_id" binding:"required"`
	Signature string    `json:"signature" binding:"required"`
}
