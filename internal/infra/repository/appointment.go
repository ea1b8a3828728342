package repository

import (
	"context"

	"appointment-booking/internal/domain/appointment"
	"appointment-booking/internal/infra"
	"appointment-booking/internal/infra/db"

	"github.com/google/uuid"
)

type AppointmentRepository struct{}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

func (r *AppointmentRepository) Create(ctx context.Context, tx db.DBTX, a *appointment.Appointment) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO appointments (id, user_id, provider_id, slot_id, scheduled_at, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		a.ID(), a.UserID(), a.ProviderID(), a.SlotID(), a.ScheduledAt(), a.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create appointment", err)
	}
	return id, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to appointment.Status) error {
	tag, err := tx.Exec(ctx, `
		UPDATE appointments SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2`,
		id, from.String(), to.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment status", err)
	}
	if tag.RowsAffected() == 0 {
		// The status changed under us between read and write.
		return infra.NewRepoErr(infra.KindConflict, "appointment status changed concurrently")
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "appointment not found")
	}
	return nil
}
