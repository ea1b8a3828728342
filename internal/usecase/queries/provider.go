package queries

import (
	"context"

	"github.com/google/uuid"
)

type ProviderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProviderView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*ProviderView, error)
	FindAll(ctx context.Context) ([]*ProviderView, error)
}

type ProviderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ProviderView, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*ProviderView, error)
	ListAll(ctx context.Context) ([]*ProviderView, error)
}

type providerQueriesImpl struct {
	store ProviderReadStore
}

func NewProviderQueries(store ProviderReadStore) ProviderQueries {
	return &providerQueriesImpl{store: store}
}

func (q *providerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProviderView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *providerQueriesImpl) GetByUserID(ctx context.Context, userID uuid.UUID) (*ProviderView, error) {
	return q.store.FindByUserID(ctx, userID)
}

func (q *providerQueriesImpl) ListAll(ctx context.Context) ([]*ProviderView, error) {
	return q.store.FindAll(ctx)
}
