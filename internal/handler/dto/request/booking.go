package request

import (
	"time"

	"venuebook/internal/usecase/commands"

	"github.com/google/uuid"
)

// Dates travel as plain "2006-01-02" strings; both endpoints are inclusive
// whole days.
type SubmitRequestRequest struct {
	SpaceID   uuid.UUID `json:"space_id" binding:"required"`
	StartDate string    `json:"start_date" binding:"required"`
	EndDate   string    `json:"end_date" binding:"required"`
	Reason    string    `json:"reason"`
}

func (r SubmitRequestRequest) ToInput() (commands.SubmitRequestInput, error) {
	start, err := time.Parse(time.DateOnly, r.StartDate)
	if err != nil {
		return commands.SubmitRequestInput{}, err
	}
	end, err := time.Parse(time.DateOnly, r.EndDate)
	if err != nil {
		return commands.SubmitRequestInput{}, err
	}

	return commands.SubmitRequestInput{
		SpaceID:   r.SpaceID,
		StartDate: start,
		EndDate:   end,
		Reason:    r.Reason,
	}, nil
}
