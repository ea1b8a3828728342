package repository

import (
	"context"

	"appointment-booking/internal/domain/provider"
	"appointment-booking/internal/infra"
	"appointment-booking/internal/infra/db"

	"github.com/google/uuid"
)

type ProviderRepository struct{}

func NewProviderRepository() *ProviderRepository {
	return &ProviderRepository{}
}

func (r *ProviderRepository) Create(ctx context.Context, tx db.DBTX, p *provider.Provider) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO providers (id, user_id, name, specialty, bio)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		p.ID(), p.UserID(), p.Name(), p.Specialty(), p.Bio(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create provider", err)
	}
	return id, nil
}
