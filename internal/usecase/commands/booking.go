package commands

import (
	"context"
	"time"

	"appointment-booking/internal/domain/appointment"
	"appointment-booking/internal/infra"
	"appointment-booking/internal/pkg/errs"
	"appointment-booking/internal/usecase/queries"
	"appointment-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound            = errs.New("slot not found")
	ErrSlotAlreadyBooked       = errs.New("this time slot is already booked")
	ErrSlotRequired            = errs.New("slot reference is required")
	ErrProviderNotFound        = errs.New("provider not found")
	ErrAppointmentNotFound     = errs.New("appointment not found")
	ErrInvalidStatus           = errs.New("invalid appointment status")
	ErrInvalidTransition       = errs.New("status transition not allowed")
	ErrConcurrentUpdate        = errs.New("appointment was modified concurrently")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookAppointmentParams struct {
	UserID     uuid.UUID
	ProviderID uuid.UUID
	SlotID     *uuid.UUID
	// ScheduledAt may be zero for slot-backed bookings; the slot time is used.
	ScheduledAt time.Time
	// RequireSlot marks a flow where booking without a slot is a caller error
	// rather than a provider-less direct appointment.
	RequireSlot bool
}

type BookingCommands interface {
	BookAppointment(ctx context.Context, params BookAppointmentParams) (*queries.AppointmentView, error)
	UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, targetStatus string) (*queries.AppointmentView, error)
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow             shared.UnitOfWork
	appointmentView queries.AppointmentReadStore
}

func NewBookingCommands(uow shared.UnitOfWork, appointmentView queries.AppointmentReadStore) BookingCommands {
	return &bookingCommandsImpl{
		uow:             uow,
		appointmentView: appointmentView,
	}
}

// BookAppointment binds the candidate appointment to its slot. The slot flip
// and the appointment insert commit as one transaction; the conditional
// UPDATE inside MarkBooked guarantees at most one booking wins a race.
func (b *bookingCommandsImpl) BookAppointment(ctx context.Context, params BookAppointmentParams) (*queries.AppointmentView, error) {
	if params.RequireSlot && params.SlotID == nil {
		return nil, ErrSlotRequired
	}

	if _, err := b.uow.CommandReads().ProviderByID(ctx, params.ProviderID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrProviderNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var appointmentID uuid.UUID
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		scheduledAt := params.ScheduledAt

		if params.SlotID != nil {
			slotTime, err := tx.Slots().MarkBooked(ctx, tx.DB(), *params.SlotID)
			if err != nil {
				switch {
				case infra.IsKind(err, infra.KindNotFound):
					return errs.Mark(err, ErrSlotNotFound)
				case infra.IsKind(err, infra.KindConflict):
					return errs.Mark(err, ErrSlotAlreadyBooked)
				default:
					return errs.Mark(err, ErrDatabaseOperationFailed)
				}
			}
			if scheduledAt.IsZero() {
				scheduledAt = slotTime
			}
		}

		// Status is forced to PENDING inside the constructor; a caller can
		// never book straight into CONFIRMED.
		entity, err := appointment.NewAppointment(params.UserID, params.ProviderID, params.SlotID, scheduledAt)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		appointmentID, err = tx.Appointments().Create(ctx, tx.DB(), entity)
		if err != nil {
			// The partial unique index on active slot references backs up the
			// conditional update; treat a violation the same as a lost race.
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrSlotAlreadyBooked)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: return the full view including the assigned id.
	view, err := b.appointmentView.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// UpdateAppointmentStatus applies the transition table and releases the bound
// slot when the appointment enters CANCELLED, in the same transaction.
func (b *bookingCommandsImpl) UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, targetStatus string) (*queries.AppointmentView, error) {
	target, err := appointment.ParseStatus(targetStatus)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStatus)
	}

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().AppointmentByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrAppointmentNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entity := appointment.ReconstructAppointment(
			snap.ID, snap.UserID, snap.ProviderID, snap.SlotID,
			snap.ScheduledAt, appointment.Status(snap.Status),
			snap.CreatedAt, snap.UpdatedAt,
		)

		observed := entity.Status()
		changed, err := entity.ChangeStatus(target)
		if err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
		if !changed {
			// Re-cancelling is a no-op and must never double-release the slot.
			return nil
		}

		if err := tx.Appointments().UpdateStatus(ctx, tx.DB(), id, observed, entity.Status()); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrConcurrentUpdate)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if entity.IsCancelled() && entity.HasSlot() {
			if err := tx.Slots().Release(ctx, tx.DB(), *entity.SlotID()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := b.appointmentView.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// DeleteAppointment removes the record after releasing any bound slot; an
// orphaned-booked slot would be unbookable forever. Cancelled appointments
// released their slot already, and the slot may have been rebooked since, so
// those must not release again.
func (b *bookingCommandsImpl) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().AppointmentByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrAppointmentNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entity := appointment.ReconstructAppointment(
			snap.ID, snap.UserID, snap.ProviderID, snap.SlotID,
			snap.ScheduledAt, appointment.Status(snap.Status),
			snap.CreatedAt, snap.UpdatedAt,
		)

		if entity.HasSlot() && !entity.IsCancelled() {
			if err := tx.Slots().Release(ctx, tx.DB(), *entity.SlotID()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		if err := tx.Appointments().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrAppointmentNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
