//go:build unit || e2e

package builder

import (
	"time"

	"appointment-booking/internal/domain/provider"
	"appointment-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProviderBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Specialty string
	Bio       string
}

func NewProviderBuilder() *ProviderBuilder {
	return &ProviderBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Name:      "Dr. Example",
		Specialty: "General Practice",
		Bio:       "Accepting new patients.",
	}
}

func (b *ProviderBuilder) With(mutate func(*ProviderBuilder)) *ProviderBuilder {
	mutate(b)
	return b
}

func (b *ProviderBuilder) BuildDomain() (*provider.Provider, error) {
	return provider.NewProvider(b.UserID, b.Name, b.Specialty, b.Bio)
}

func (b *ProviderBuilder) BuildReadModel() *queries.ProviderView {
	return &queries.ProviderView{
		ID:        b.ID,
		UserID:    b.UserID,
		Name:      b.Name,
		Specialty: b.Specialty,
		Bio:       b.Bio,
		CreatedAt: time.Now(),
	}
}

func (b *ProviderBuilder) WithUserID(id uuid.UUID) *ProviderBuilder {
	b.UserID = id
	return b
}

func (b *ProviderBuilder) WithName(name string) *ProviderBuilder {
	b.Name = name
	return b
}
