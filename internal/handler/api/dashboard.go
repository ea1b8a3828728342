package api

import (
	"net/http"

	resdto "appointment-booking/internal/handler/dto/response"
	"appointment-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	appointments queries.AppointmentQueries
}

func NewDashboardHandler(appointments queries.AppointmentQueries) *DashboardHandler {
	return &DashboardHandler{appointments: appointments}
}

// @Summary Dashboard statistics
// @Description Total and upcoming (pending) appointment counts
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardStatsResponse
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.appointments.GetDashboardStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDashboardStats(stats))
}
