package converter

import (
	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/payment"
	sqlc "venuebook/internal/infra/sqlc"
	"venuebook/internal/pkg/pgconv"
)

func RequestToInfra(req *booking.Request) sqlc.CreateBookingRequestParams {
	return sqlc.CreateBookingRequestParams{
		ID:          req.ID(),
		SpaceID:     req.SpaceID(),
		RequesterID: req.RequesterID(),
		StartDate:   pgconv.DateToPgtype(req.Stay().Start()),
		EndDate:     pgconv.DateToPgtype(req.Stay().End()),
		Reason:      req.Reason().String(),
	}
}

func ReservationToInfra(res *booking.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		ID:            res.ID(),
		SpaceID:       res.SpaceID(),
		UserID:        res.UserID(),
		StartDate:     pgconv.DateToPgtype(res.Stay().Start()),
		EndDate:       pgconv.DateToPgtype(res.Stay().End()),
		PaymentStatus: res.PaymentStatus().String(),
		TotalAmount:   res.TotalAmount(),
	}
}

func AttemptToInfra(a *payment.Attempt) sqlc.CreatePaymentAttemptParams {
	return sqlc.CreatePaymentAttemptParams{
		ID:            a.ID(),
		ReservationID: a.ReservationID(),
		OrderID:       a.OrderID(),
		AmountMinor:   a.Amount().Minor(),
		Currency:      a.Currency(),
		Status:        a.Status().String(),
	}
}

func AttemptFromInfra(row sqlc.PaymentAttempt) (*payment.Attempt, error) {
	amount, err := payment.NewMoney(row.AmountMinor)
	if err != nil {
		return nil, err
	}

	var transferStatus *payment.TransferStatus
	if s := pgconv.StringPtrFromPgtype(row.TransferStatus); s != nil {
		ts := payment.TransferStatus(*s)
		transferStatus = &ts
	}

	return payment.ReconstructAttempt(
		row.ID,
		row.ReservationID,
		row.OrderID,
		amount,
		row.Currency,
		payment.Status(row.Status),
		pgconv.StringPtrFromPgtype(row.PaymentID),
		transferStatus,
		pgconv.StringPtrFromPgtype(row.TransferID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
