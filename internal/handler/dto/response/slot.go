package response

import (
	"time"

	"appointment-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	ID           uuid.UUID `json:"id"`
	ProviderID   uuid.UUID `json:"provider_id"`
	ProviderName string    `json:"provider_name"`
	AvailableAt  time.Time `json:"available_at"`
	Booked       bool      `json:"booked"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromSlotView(v *queries.SlotView) *SlotResponse {
	var resp SlotResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromSlotViews(views []*queries.SlotView) []*SlotResponse {
	resp := make([]*SlotResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, FromSlotView(v))
	}
	return resp
}
