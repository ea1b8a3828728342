package slot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProviderRequired = errors.New("slot must belong to a provider")
	ErrTimeRequired     = errors.New("slot time is required")
	ErrAlreadyBooked    = errors.New("slot is already booked")
	ErrNotOwned         = errors.New("slot belongs to another provider")
)

// Slot is a provider-published bookable time unit. The booked flag is owned
// by the booking flow; slot updates never touch it.
type Slot struct {
	id          uuid.UUID
	providerID  uuid.UUID
	availableAt time.Time
	booked      bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewSlot(providerID uuid.UUID, availableAt time.Time) (*Slot, error) {
	if providerID == uuid.Nil {
		return nil, ErrProviderRequired
	}
	if availableAt.IsZero() {
		return nil, ErrTimeRequired
	}

	return &Slot{
		id:          uuid.New(),
		providerID:  providerID,
		availableAt: availableAt,
		booked:      false,
	}, nil
}

func ReconstructSlot(
	id, providerID uuid.UUID,
	availableAt time.Time,
	booked bool,
	createdAt, updatedAt time.Time,
) *Slot {
	return &Slot{
		id:          id,
		providerID:  providerID,
		availableAt: availableAt,
		booked:      booked,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Slot) IsOwnedBy(providerID uuid.UUID) bool {
	return s.providerID == providerID
}

func (s *Slot) MarkBooked() error {
	if s.booked {
		return ErrAlreadyBooked
	}
	s.booked = true
	return nil
}

// Release is idempotent: releasing an unbooked slot is a no-op.
func (s *Slot) Release() {
	s.booked = false
}

// Reschedule moves the slot to a new time. The booked flag is deliberately
// preserved so an update request cannot smuggle in a booking-state change.
func (s *Slot) Reschedule(availableAt time.Time) error {
	if availableAt.IsZero() {
		return ErrTimeRequired
	}
	s.availableAt = availableAt
	return nil
}

func (s *Slot) ID() uuid.UUID          { return s.id }
func (s *Slot) ProviderID() uuid.UUID  { return s.providerID }
func (s *Slot) AvailableAt() time.Time { return s.availableAt }
func (s *Slot) Booked() bool           { return s.booked }
func (s *Slot) CreatedAt() time.Time   { return s.createdAt }
func (s *Slot) UpdatedAt() time.Time   { return s.updatedAt }
