package queries

import (
	"context"

	"github.com/google/uuid"
)

type SlotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	// FindByProviderID returns only unbooked slots when availableOnly is set,
	// matching what a booking client needs to see.
	FindByProviderID(ctx context.Context, providerID uuid.UUID, availableOnly bool) ([]*SlotView, error)
	FindAll(ctx context.Context) ([]*SlotView, error)
}

type SlotQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID, availableOnly bool) ([]*SlotView, error)
	ListAll(ctx context.Context) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	store SlotReadStore
}

func NewSlotQueries(store SlotReadStore) SlotQueries {
	return &slotQueriesImpl{store: store}
}

func (q *slotQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *slotQueriesImpl) ListByProvider(ctx context.Context, providerID uuid.UUID, availableOnly bool) ([]*SlotView, error) {
	return q.store.FindByProviderID(ctx, providerID, availableOnly)
}

func (q *slotQueriesImpl) ListAll(ctx context.Context) ([]*SlotView, error) {
	return q.store.FindAll(ctx)
}
