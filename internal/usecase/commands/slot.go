package commands

import (
	"context"
	"time"

	"appointment-booking/internal/domain/slot"
	"appointment-booking/internal/infra"
	"appointment-booking/internal/pkg/clock"
	"appointment-booking/internal/pkg/errs"
	"appointment-booking/internal/usecase/queries"
	"appointment-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNotSlotOwner        = errs.New("slot belongs to another provider")
	ErrSlotHasAppointments = errs.New("slot is referenced by appointments")
	ErrSlotInPast          = errs.New("slot time is in the past")
)

type SlotCommands interface {
	CreateSlot(ctx context.Context, providerID uuid.UUID, availableAt time.Time) (*queries.SlotView, error)
	// UpdateSlot and DeleteSlot enforce ownership against requestingProviderID;
	// uuid.Nil skips the check (admin callers).
	UpdateSlot(ctx context.Context, id uuid.UUID, availableAt time.Time, requestingProviderID uuid.UUID) (*queries.SlotView, error)
	DeleteSlot(ctx context.Context, id uuid.UUID, requestingProviderID uuid.UUID) error
	MarkSlotBooked(ctx context.Context, id uuid.UUID) (*queries.SlotView, error)
}

type slotCommandsImpl struct {
	uow      shared.UnitOfWork
	slotView queries.SlotReadStore
	clock    clock.Clock
}

func reconstructSlot(snap *shared.SlotSnapshot) *slot.Slot {
	return slot.ReconstructSlot(snap.ID, snap.ProviderID, snap.AvailableAt, snap.Booked, snap.CreatedAt, snap.UpdatedAt)
}

func NewSlotCommands(uow shared.UnitOfWork, slotView queries.SlotReadStore, clk clock.Clock) SlotCommands {
	return &slotCommandsImpl{
		uow:      uow,
		slotView: slotView,
		clock:    clk,
	}
}

func (s *slotCommandsImpl) CreateSlot(ctx context.Context, providerID uuid.UUID, availableAt time.Time) (*queries.SlotView, error) {
	if !availableAt.IsZero() && availableAt.Before(s.clock.Now()) {
		return nil, ErrSlotInPast
	}

	if _, err := s.uow.CommandReads().ProviderByID(ctx, providerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrProviderNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := slot.NewSlot(providerID, availableAt)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var slotID uuid.UUID
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		slotID, err = tx.Slots().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrProviderNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := s.slotView.FindByID(ctx, slotID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// UpdateSlot reschedules the slot. The booked flag is never writable here;
// only the booking flow may flip it.
func (s *slotCommandsImpl) UpdateSlot(ctx context.Context, id uuid.UUID, availableAt time.Time, requestingProviderID uuid.UUID) (*queries.SlotView, error) {
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().SlotByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrSlotNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entity := reconstructSlot(snap)
		if requestingProviderID != uuid.Nil && !entity.IsOwnedBy(requestingProviderID) {
			return errs.Mark(slot.ErrNotOwned, ErrNotSlotOwner)
		}

		if err := entity.Reschedule(availableAt); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Slots().UpdateTime(ctx, tx.DB(), id, entity.AvailableAt()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrSlotNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := s.slotView.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// DeleteSlot refuses to remove a slot while any appointment references it,
// regardless of appointment status. Cancelled history still pins the slot.
func (s *slotCommandsImpl) DeleteSlot(ctx context.Context, id uuid.UUID, requestingProviderID uuid.UUID) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().SlotByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrSlotNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if requestingProviderID != uuid.Nil && !reconstructSlot(snap).IsOwnedBy(requestingProviderID) {
			return errs.Mark(slot.ErrNotOwned, ErrNotSlotOwner)
		}

		refs, err := tx.Reads().CountAppointmentsBySlot(ctx, id)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if refs > 0 {
			return ErrSlotHasAppointments
		}

		if err := tx.Slots().Delete(ctx, tx.DB(), id); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return errs.Mark(err, ErrSlotNotFound)
			case infra.IsKind(err, infra.KindForeignKeyViolated):
				return errs.Mark(err, ErrSlotHasAppointments)
			default:
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
}

// MarkSlotBooked exposes the conditional flip on its own, without an
// appointment write. Mostly useful for provider-side blocking of a slot.
func (s *slotCommandsImpl) MarkSlotBooked(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Slots().MarkBooked(ctx, tx.DB(), id); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return errs.Mark(err, ErrSlotNotFound)
			case infra.IsKind(err, infra.KindConflict):
				return errs.Mark(err, ErrSlotAlreadyBooked)
			default:
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := s.slotView.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
