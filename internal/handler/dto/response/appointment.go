package response

import (
	"time"

	"appointment-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	UserEmail    string     `json:"user_email"`
	ProviderID   uuid.UUID  `json:"provider_id"`
	ProviderName string     `json:"provider_name"`
	SlotID       *uuid.UUID `json:"slot_id,omitempty"`
	ScheduledAt  time.Time  `json:"scheduled_at"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	var resp AppointmentResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromAppointmentViews(views []*queries.AppointmentView) []*AppointmentResponse {
	resp := make([]*AppointmentResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, FromAppointmentView(v))
	}
	return resp
}

type DashboardStatsResponse struct {
	TotalAppointments    int64 `json:"total_appointments"`
	UpcomingAppointments int64 `json:"upcoming_appointments"`
}

func FromDashboardStats(s *queries.DashboardStats) *DashboardStatsResponse {
	var resp DashboardStatsResponse
	_ = copier.Copy(&resp, s)
	return &resp
}
