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

const slotViewSelect = `
	SELECT s.id, s.provider_id, p.name, s.available_at, s.booked, s.created_at, s.updated_at
	FROM slots s
	JOIN providers p ON p.id = s.provider_id`

type SlotReadStore struct {
	db db.DBTX
}

func NewSlotReadStore(dbtx db.DBTX) *SlotReadStore {
	return &SlotReadStore{db: dbtx}
}

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	row := r.db.QueryRow(ctx, slotViewSelect+` WHERE s.id = $1`, id)

	view, err := scanSlotView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}
	return view, nil
}

func (r *SlotReadStore) FindByProviderID(ctx context.Context, providerID uuid.UUID, availableOnly bool) ([]*queries.SlotView, error) {
	query := slotViewSelect + ` WHERE s.provider_id = $1`
	if availableOnly {
		query += ` AND s.booked = FALSE`
	}
	query += ` ORDER BY s.available_at`

	return r.list(ctx, query, providerID)
}

func (r *SlotReadStore) FindAll(ctx context.Context) ([]*queries.SlotView, error) {
	return r.list(ctx, slotViewSelect+` ORDER BY s.available_at`)
}

func (r *SlotReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.SlotView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	defer rows.Close()

	var result []*queries.SlotView
	for rows.Next() {
		view, scanErr := scanSlotView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slot rows", err)
	}
	return result, nil
}

func scanSlotView(row pgx.Row) (*queries.SlotView, error) {
	var v queries.SlotView
	err := row.Scan(&v.ID, &v.ProviderID, &v.ProviderName, &v.AvailableAt, &v.Booked, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
