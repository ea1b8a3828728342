package queries

import (
	"context"

	"github.com/google/uuid"
)

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*AppointmentView, error)
	FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]*AppointmentView, error)
	FindBySlotID(ctx context.Context, slotID uuid.UUID) ([]*AppointmentView, error)
	FindAll(ctx context.Context) ([]*AppointmentView, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountAll(ctx context.Context) (int64, error)
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*AppointmentView, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*AppointmentView, error)
	ListAll(ctx context.Context) ([]*AppointmentView, error)
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}

type appointmentQueriesImpl struct {
	store AppointmentReadStore
}

func NewAppointmentQueries(store AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{store: store}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *appointmentQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*AppointmentView, error) {
	return q.store.FindByUserID(ctx, userID)
}

func (q *appointmentQueriesImpl) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*AppointmentView, error) {
	return q.store.FindByProviderID(ctx, providerID)
}

func (q *appointmentQueriesImpl) ListAll(ctx context.Context) ([]*AppointmentView, error) {
	return q.store.FindAll(ctx)
}

func (q *appointmentQueriesImpl) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	total, err := q.store.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	upcoming, err := q.store.CountByStatus(ctx, "PENDING")
	if err != nil {
		return nil, err
	}
	return &DashboardStats{
		TotalAppointments:    total,
		UpcomingAppointments: upcoming,
	}, nil
}
