//go:build unit || e2e

package builder

import (
	"time"

	"appointment-booking/internal/domain/slot"
	"appointment-booking/internal/usecase/queries"
	"appointment-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	ID           uuid.UUID
	ProviderID   uuid.UUID
	ProviderName string
	AvailableAt  time.Time
	Booked       bool
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		ID:           uuid.New(),
		ProviderID:   uuid.New(),
		ProviderName: "Dr. Example",
		AvailableAt:  time.Now().Add(48 * time.Hour).Truncate(time.Second),
		Booked:       false,
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *SlotBuilder) BuildDomain() (*slot.Slot, error) {
	return slot.NewSlot(b.ProviderID, b.AvailableAt)
}

func (b *SlotBuilder) BuildSnapshot() *shared.SlotSnapshot {
	return &shared.SlotSnapshot{
		ID:          b.ID,
		ProviderID:  b.ProviderID,
		AvailableAt: b.AvailableAt,
		Booked:      b.Booked,
	}
}

func (b *SlotBuilder) BuildReadModel() *queries.SlotView {
	now := time.Now()
	return &queries.SlotView{
		ID:           b.ID,
		ProviderID:   b.ProviderID,
		ProviderName: b.ProviderName,
		AvailableAt:  b.AvailableAt,
		Booked:       b.Booked,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// BuildReadModels renders n views with distinct IDs off the same template.
func (b *SlotBuilder) BuildReadModels(n int) []*queries.SlotView {
	views := make([]*queries.SlotView, 0, n)
	for i := 0; i < n; i++ {
		v := b.BuildReadModel()
		v.ID = uuid.New()
		views = append(views, v)
	}
	return views
}

// Fluent builder methods
func (b *SlotBuilder) WithProviderID(id uuid.UUID) *SlotBuilder {
	b.ProviderID = id
	return b
}

func (b *SlotBuilder) WithAvailableAt(t time.Time) *SlotBuilder {
	b.AvailableAt = t
	return b
}

func (b *SlotBuilder) WithBooked(booked bool) *SlotBuilder {
	b.Booked = booked
	return b
}
