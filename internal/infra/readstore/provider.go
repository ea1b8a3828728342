package readstore

import (
	"context"
	"errors"

	"appointment-booking/internal/infra"
	"appointment-booking/internal/infra/db"
	"appointment-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProviderReadStore struct {
	db db.DBTX
}

func NewProviderReadStore(dbtx db.DBTX) *ProviderReadStore {
	return &ProviderReadStore{db: dbtx}
}

func (r *ProviderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProviderView, error) {
	return r.findBy(ctx, `
		SELECT id, user_id, name, specialty, bio, created_at
		FROM providers WHERE id = $1`, id)
}

func (r *ProviderReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*queries.ProviderView, error) {
	return r.findBy(ctx, `
		SELECT id, user_id, name, specialty, bio, created_at
		FROM providers WHERE user_id = $1`, userID)
}

func (r *ProviderReadStore) FindAll(ctx context.Context) ([]*queries.ProviderView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, specialty, bio, created_at
		FROM providers ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list providers", err)
	}
	defer rows.Close()

	var result []*queries.ProviderView
	for rows.Next() {
		var v queries.ProviderView
		if scanErr := rows.Scan(&v.ID, &v.UserID, &v.Name, &v.Specialty, &v.Bio, &v.CreatedAt); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan provider row", scanErr)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate provider rows", err)
	}
	return result, nil
}

func (r *ProviderReadStore) findBy(ctx context.Context, query string, arg uuid.UUID) (*queries.ProviderView, error) {
	var v queries.ProviderView
	err := r.db.QueryRow(ctx, query, arg).Scan(&v.ID, &v.UserID, &v.Name, &v.Specialty, &v.Bio, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("provider not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find provider", err)
	}
	return &v, nil
}
