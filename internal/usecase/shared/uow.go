package shared

import (
	"context"
	"time"

	"appointment-booking/internal/domain/appointment"
	"appointment-booking/internal/domain/provider"
	"appointment-booking/internal/domain/slot"
	"appointment-booking/internal/domain/user"
	"appointment-booking/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork spans a slot write and an appointment write in one transaction.
// Within retries only on serialization/deadlock failures; logical failures
// surface to the caller untouched.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single-query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: pool-bound reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Slots() SlotRepository
	Appointments() AppointmentRepository
	Users() UserRepository
	Providers() ProviderRepository
	// Reads bound to this transaction, for read-check-write sequences
	Reads() CommandReads
	DB() db.DBTX
}

// Minimal snapshots for command-side reads (write side stays independent of
// the read-model views).
type SlotSnapshot struct {
	ID          uuid.UUID
	ProviderID  uuid.UUID
	AvailableAt time.Time
	Booked      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type AppointmentSnapshot struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ProviderID  uuid.UUID
	SlotID      *uuid.UUID
	ScheduledAt time.Time
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProviderSnapshot struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Name   string
}

type CommandReads interface {
	SlotByID(ctx context.Context, id uuid.UUID) (*SlotSnapshot, error)
	AppointmentByID(ctx context.Context, id uuid.UUID) (*AppointmentSnapshot, error)
	ProviderByID(ctx context.Context, id uuid.UUID) (*ProviderSnapshot, error)
	ProviderByUserID(ctx context.Context, userID uuid.UUID) (*ProviderSnapshot, error)
	// CountAppointmentsBySlot counts referencing appointments of ANY status;
	// the slot deletion guard depends on that.
	CountAppointmentsBySlot(ctx context.Context, slotID uuid.UUID) (int64, error)
}

type SlotRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *slot.Slot) (uuid.UUID, error)
	// MarkBooked flips booked false->true as one conditional update and
	// returns the slot time. KindConflict when the slot was already booked,
	// KindNotFound when the id does not resolve.
	MarkBooked(ctx context.Context, tx db.DBTX, id uuid.UUID) (time.Time, error)
	// Release flips booked true->false. Releasing an unbooked slot is a no-op.
	Release(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	UpdateTime(ctx context.Context, tx db.DBTX, id uuid.UUID, availableAt time.Time) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx db.DBTX, a *appointment.Appointment) (uuid.UUID, error)
	// UpdateStatus is a compare-and-set from the observed status; zero rows
	// affected means a concurrent writer got there first.
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to appointment.Status) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}

type ProviderRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *provider.Provider) (uuid.UUID, error)
}
