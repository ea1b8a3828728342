package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateSlotRequest struct {
	// ProviderID is only honored for admin callers; providers always create
	// slots under their own profile.
	ProviderID  *uuid.UUID `json:"provider_id,omitempty"`
	AvailableAt time.Time  `json:"available_at" binding:"required"`
}

type UpdateSlotRequest struct {
	AvailableAt time.Time `json:"available_at" binding:"required"`
}
