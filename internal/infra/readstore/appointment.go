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

const appointmentViewSelect = `
	SELECT a.id, a.user_id, u.email, a.provider_id, p.name, a.slot_id,
	       a.scheduled_at, a.status, a.created_at, a.updated_at
	FROM appointments a
	JOIN users u ON u.id = a.user_id
	JOIN providers p ON p.id = a.provider_id`

type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(dbtx db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: dbtx}
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	row := r.db.QueryRow(ctx, appointmentViewSelect+` WHERE a.id = $1`, id)

	view, err := scanAppointmentView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}
	return view, nil
}

func (r *AppointmentReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.AppointmentView, error) {
	return r.list(ctx, appointmentViewSelect+` WHERE a.user_id = $1 ORDER BY a.scheduled_at`, userID)
}

func (r *AppointmentReadStore) FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]*queries.AppointmentView, error) {
	return r.list(ctx, appointmentViewSelect+` WHERE a.provider_id = $1 ORDER BY a.scheduled_at`, providerID)
}

func (r *AppointmentReadStore) FindBySlotID(ctx context.Context, slotID uuid.UUID) ([]*queries.AppointmentView, error) {
	return r.list(ctx, appointmentViewSelect+` WHERE a.slot_id = $1 ORDER BY a.created_at`, slotID)
}

func (r *AppointmentReadStore) FindAll(ctx context.Context) ([]*queries.AppointmentView, error) {
	return r.list(ctx, appointmentViewSelect+` ORDER BY a.scheduled_at`)
}

func (r *AppointmentReadStore) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM appointments WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count appointments by status", err)
	}
	return count, nil
}

func (r *AppointmentReadStore) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM appointments`).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count appointments", err)
	}
	return count, nil
}

func (r *AppointmentReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.AppointmentView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	defer rows.Close()

	var result []*queries.AppointmentView
	for rows.Next() {
		view, scanErr := scanAppointmentView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment row", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointment rows", err)
	}
	return result, nil
}

func scanAppointmentView(row pgx.Row) (*queries.AppointmentView, error) {
	var v queries.AppointmentView
	err := row.Scan(
		&v.ID, &v.UserID, &v.UserEmail, &v.ProviderID, &v.ProviderName,
		&v.SlotID, &v.ScheduledAt, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
