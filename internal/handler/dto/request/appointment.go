package request

import (
	"time"

	"github.com/google/uuid"
)

type BookAppointmentRequest struct {
	ProviderID uuid.UUID  `json:"provider_id" binding:"required"`
	SlotID     *uuid.UUID `json:"slot_id,omitempty"`
	// ScheduledAt is optional on slot-backed bookings; the slot time wins.
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

func (r BookAppointmentRequest) ScheduledAtOrZero() time.Time {
	if r.ScheduledAt == nil {
		return time.Time{}
	}
	return *r.ScheduledAt
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
