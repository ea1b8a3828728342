package repository

import (
	"context"
	"errors"
	"time"

	"appointment-booking/internal/domain/slot"
	"appointment-booking/internal/infra"
	"appointment-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SlotRepository struct{}

func NewSlotRepository() *SlotRepository {
	return &SlotRepository{}
}

func (r *SlotRepository) Create(ctx context.Context, tx db.DBTX, s *slot.Slot) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO slots (id, provider_id, available_at, booked)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		s.ID(), s.ProviderID(), s.AvailableAt(), s.Booked(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create slot", err)
	}
	return id, nil
}

// MarkBooked is the single conditional update that makes double-booking
// structurally impossible: only one writer can observe booked=false.
func (r *SlotRepository) MarkBooked(ctx context.Context, tx db.DBTX, id uuid.UUID) (time.Time, error) {
	var availableAt time.Time
	err := tx.QueryRow(ctx, `
		UPDATE slots SET booked = TRUE, updated_at = now()
		WHERE id = $1 AND booked = FALSE
		RETURNING available_at`,
		id,
	).Scan(&availableAt)
	if err == nil {
		return availableAt, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, infra.WrapRepoErr("failed to mark slot booked", err)
	}

	// Zero rows: either the slot is gone or someone else booked it.
	var booked bool
	probeErr := tx.QueryRow(ctx, `SELECT booked FROM slots WHERE id = $1`, id).Scan(&booked)
	if errors.Is(probeErr, pgx.ErrNoRows) {
		return time.Time{}, infra.WrapRepoErr("slot not found", probeErr, infra.KindNotFound)
	}
	if probeErr != nil {
		return time.Time{}, infra.WrapRepoErr("failed to probe slot", probeErr)
	}
	return time.Time{}, infra.NewRepoErr(infra.KindConflict, "slot is already booked")
}

func (r *SlotRepository) Release(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	// Conditional in the other direction; releasing twice is harmless.
	_, err := tx.Exec(ctx, `
		UPDATE slots SET booked = FALSE, updated_at = now()
		WHERE id = $1 AND booked = TRUE`,
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to release slot", err)
	}
	return nil
}

// UpdateTime never touches the booked column.
func (r *SlotRepository) UpdateTime(ctx context.Context, tx db.DBTX, id uuid.UUID, availableAt time.Time) error {
	tag, err := tx.Exec(ctx, `
		UPDATE slots SET available_at = $2, updated_at = now()
		WHERE id = $1`,
		id, availableAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update slot time", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "slot not found")
	}
	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM slots WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "slot not found")
	}
	return nil
}
