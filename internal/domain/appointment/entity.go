package appointment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUserRequired     = errors.New("appointment must reference a user")
	ErrProviderRequired = errors.New("appointment must reference a provider")
	ErrTimeRequired     = errors.New("appointment time is required")
)

// Appointment binds a user to a provider, optionally to a slot. References
// are plain ids; the slot is not owned and must be released explicitly when
// the appointment is cancelled or deleted.
type Appointment struct {
	id          uuid.UUID
	userID      uuid.UUID
	providerID  uuid.UUID
	slotID      *uuid.UUID
	scheduledAt time.Time
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

// NewAppointment always starts in PENDING; a caller-supplied status is never
// trusted at booking time.
func NewAppointment(userID, providerID uuid.UUID, slotID *uuid.UUID, scheduledAt time.Time) (*Appointment, error) {
	if userID == uuid.Nil {
		return nil, ErrUserRequired
	}
	if providerID == uuid.Nil {
		return nil, ErrProviderRequired
	}
	if scheduledAt.IsZero() {
		return nil, ErrTimeRequired
	}
	if slotID != nil && *slotID == uuid.Nil {
		slotID = nil
	}

	return &Appointment{
		id:          uuid.New(),
		userID:      userID,
		providerID:  providerID,
		slotID:      slotID,
		scheduledAt: scheduledAt,
		status:      StatusPending,
	}, nil
}

func ReconstructAppointment(
	id, userID, providerID uuid.UUID,
	slotID *uuid.UUID,
	scheduledAt time.Time,
	status Status,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:          id,
		userID:      userID,
		providerID:  providerID,
		slotID:      slotID,
		scheduledAt: scheduledAt,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ChangeStatus applies the transition table. It returns false without error
// for no-op transitions so callers can skip the write and the slot release.
func (a *Appointment) ChangeStatus(target Status) (bool, error) {
	changed, err := a.status.TransitionTo(target)
	if err != nil {
		return false, err
	}
	if changed {
		a.status = target
	}
	return changed, nil
}

func (a *Appointment) IsCancelled() bool {
	return a.status == StatusCancelled
}

func (a *Appointment) HasSlot() bool {
	return a.slotID != nil
}

func (a *Appointment) ID() uuid.UUID          { return a.id }
func (a *Appointment) UserID() uuid.UUID      { return a.userID }
func (a *Appointment) ProviderID() uuid.UUID  { return a.providerID }
func (a *Appointment) SlotID() *uuid.UUID     { return a.slotID }
func (a *Appointment) ScheduledAt() time.Time { return a.scheduledAt }
func (a *Appointment) Status() Status         { return a.status }
func (a *Appointment) CreatedAt() time.Time   { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time   { return a.updatedAt }
