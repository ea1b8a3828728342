package api

import (
	"errors"
	"net/http"

	"appointment-booking/internal/domain/user"
	reqdto "appointment-booking/internal/handler/dto/request"
	resdto "appointment-booking/internal/handler/dto/response"
	"appointment-booking/internal/handler/middleware"
	"appointment-booking/internal/infra"
	"appointment-booking/internal/usecase/commands"
	"appointment-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	booking      commands.BookingCommands
	appointments queries.AppointmentQueries
	providers    queries.ProviderQueries
}

func NewAppointmentHandler(booking commands.BookingCommands, appointments queries.AppointmentQueries, providers queries.ProviderQueries) *AppointmentHandler {
	return &AppointmentHandler{
		booking:      booking,
		appointments: appointments,
		providers:    providers,
	}
}

// @Summary Book appointment
// @Description Book an appointment, optionally bound to an availability slot
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookAppointmentRequest true "Booking request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments [post]
func (h *AppointmentHandler) Book(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.booking.BookAppointment(c.Request.Context(), commands.BookAppointmentParams{
		UserID:      userID,
		ProviderID:  req.ProviderID,
		SlotID:      req.SlotID,
		ScheduledAt: req.ScheduledAtOrZero(),
		// Without an explicit time the slot is the only source of one, so
		// its absence is a caller error, not a direct appointment.
		RequireSlot: req.ScheduledAt == nil,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		case errors.Is(err, commands.ErrProviderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Provider not found",
			})
		case errors.Is(err, commands.ErrSlotAlreadyBooked):
			c.JSON(http.StatusConflict, gin.H{
				"error": "This time slot is already booked",
			})
		case errors.Is(err, commands.ErrSlotRequired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Slot reference is required",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid appointment data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAppointmentView(view))
}

// @Summary Get appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 404 {object} map[string]string
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID",
		})
		return
	}

	view, err := h.appointments.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary List appointments
// @Description List appointments scoped to the caller: users see their own,
// @Description providers see their practice, admins see everything
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AppointmentResponse
// @Router /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	var (
		views []*queries.AppointmentView
		err   error
	)
	switch role {
	case user.RoleAdmin:
		views, err = h.appointments.ListAll(c.Request.Context())
	case user.RoleProvider:
		var prof *queries.ProviderView
		prof, err = h.providers.GetByUserID(c.Request.Context(), userID)
		if err == nil {
			views, err = h.appointments.ListByProvider(c.Request.Context(), prof.ID)
		}
	default:
		views, err = h.appointments.ListByUser(c.Request.Context(), userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentViews(views))
}

// @Summary Update appointment status
// @Description Move an appointment through its status lifecycle
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.UpdateAppointmentStatusRequest true "Target status"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID",
		})
		return
	}

	var req reqdto.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.booking.UpdateAppointmentStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
		case errors.Is(err, commands.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown appointment status",
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Status transition not allowed",
			})
		case errors.Is(err, commands.ErrConcurrentUpdate):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Appointment was modified concurrently",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Delete appointment
// @Description Delete an appointment and free its slot
// @Tags appointments
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID",
		})
		return
	}

	if err := h.booking.DeleteAppointment(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
