//go:build unit || e2e

package builder

import (
	"time"

	"appointment-booking/internal/domain/appointment"
	"appointment-booking/internal/usecase/queries"
	"appointment-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	UserEmail    string
	ProviderID   uuid.UUID
	ProviderName string
	SlotID       *uuid.UUID
	ScheduledAt  time.Time
	Status       string
}

func NewAppointmentBuilder() *AppointmentBuilder {
	slotID := uuid.New()
	return &AppointmentBuilder{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		UserEmail:    "patient@example.com",
		ProviderID:   uuid.New(),
		ProviderName: "Dr. Example",
		SlotID:       &slotID,
		ScheduledAt:  time.Now().Add(48 * time.Hour).Truncate(time.Second),
		Status:       "PENDING",
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *AppointmentBuilder) BuildDomain() (*appointment.Appointment, error) {
	return appointment.NewAppointment(b.UserID, b.ProviderID, b.SlotID, b.ScheduledAt)
}

func (b *AppointmentBuilder) BuildSnapshot() *shared.AppointmentSnapshot {
	return &shared.AppointmentSnapshot{
		ID:          b.ID,
		UserID:      b.UserID,
		ProviderID:  b.ProviderID,
		SlotID:      b.SlotID,
		ScheduledAt: b.ScheduledAt,
		Status:      b.Status,
	}
}

func (b *AppointmentBuilder) BuildReadModel() *queries.AppointmentView {
	now := time.Now()
	return &queries.AppointmentView{
		ID:           b.ID,
		UserID:       b.UserID,
		UserEmail:    b.UserEmail,
		ProviderID:   b.ProviderID,
		ProviderName: b.ProviderName,
		SlotID:       b.SlotID,
		ScheduledAt:  b.ScheduledAt,
		Status:       b.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// BuildReadModels renders n views with distinct IDs off the same template.
func (b *AppointmentBuilder) BuildReadModels(n int) []*queries.AppointmentView {
	views := make([]*queries.AppointmentView, 0, n)
	for i := 0; i < n; i++ {
		v := b.BuildReadModel()
		v.ID = uuid.New()
		views = append(views, v)
	}
	return views
}

// Fluent builder methods
func (b *AppointmentBuilder) WithUserID(id uuid.UUID) *AppointmentBuilder {
	b.UserID = id
	return b
}

func (b *AppointmentBuilder) WithProviderID(id uuid.UUID) *AppointmentBuilder {
	b.ProviderID = id
	return b
}

func (b *AppointmentBuilder) WithSlotID(id *uuid.UUID) *AppointmentBuilder {
	b.SlotID = id
	return b
}

func (b *AppointmentBuilder) WithScheduledAt(t time.Time) *AppointmentBuilder {
	b.ScheduledAt = t
	return b
}

func (b *AppointmentBuilder) WithStatus(status string) *AppointmentBuilder {
	b.Status = status
	return b
}
