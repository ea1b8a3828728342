package uow

import (
	"context"
	"errors"

	"appointment-booking/internal/infra"
	"appointment-booking/internal/infra/db"
	"appointment-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// commandReads runs against whichever DBTX it was bound to, so the same
// queries serve both pool-level validation and in-transaction reads.
type commandReads struct {
	dbtx db.DBTX
}

func (r *commandReads) SlotByID(ctx context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	var snap shared.SlotSnapshot
	err := r.dbtx.QueryRow(ctx, `
		SELECT id, provider_id, available_at, booked, created_at, updated_at
		FROM slots WHERE id = $1`,
		id,
	).Scan(&snap.ID, &snap.ProviderID, &snap.AvailableAt, &snap.Booked, &snap.CreatedAt, &snap.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read slot", err)
	}
	return &snap, nil
}

func (r *commandReads) AppointmentByID(ctx context.Context, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	var snap shared.AppointmentSnapshot
	err := r.dbtx.QueryRow(ctx, `
		SELECT id, user_id, provider_id, slot_id, scheduled_at, status, created_at, updated_at
		FROM appointments WHERE id = $1`,
		id,
	).Scan(&snap.ID, &snap.UserID, &snap.ProviderID, &snap.SlotID, &snap.ScheduledAt, &snap.Status, &snap.CreatedAt, &snap.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read appointment", err)
	}
	return &snap, nil
}

func (r *commandReads) ProviderByID(ctx context.Context, id uuid.UUID) (*shared.ProviderSnapshot, error) {
	return r.providerBy(ctx, `SELECT id, user_id, name FROM providers WHERE id = $1`, id)
}

func (r *commandReads) ProviderByUserID(ctx context.Context, userID uuid.UUID) (*shared.ProviderSnapshot, error) {
	return r.providerBy(ctx, `SELECT id, user_id, name FROM providers WHERE user_id = $1`, userID)
}

func (r *commandReads) providerBy(ctx context.Context, query string, arg uuid.UUID) (*shared.ProviderSnapshot, error) {
	var snap shared.ProviderSnapshot
	err := r.dbtx.QueryRow(ctx, query, arg).Scan(&snap.ID, &snap.UserID, &snap.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("provider not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read provider", err)
	}
	return &snap, nil
}

func (r *commandReads) CountAppointmentsBySlot(ctx context.Context, slotID uuid.UUID) (int64, error) {
	var count int64
	err := r.dbtx.QueryRow(ctx, `
		SELECT count(*) FROM appointments WHERE slot_id = $1`,
		slotID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count appointments by slot", err)
	}
	return count, nil
}
