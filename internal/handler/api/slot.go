package api

import (
	"errors"
	"net/http"
	"strconv"

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

type SlotHandler struct {
	slots     commands.SlotCommands
	slotReads queries.SlotQueries
	providers queries.ProviderQueries
}

func NewSlotHandler(slots commands.SlotCommands, slotReads queries.SlotQueries, providers queries.ProviderQueries) *SlotHandler {
	return &SlotHandler{
		slots:     slots,
		slotReads: slotReads,
		providers: providers,
	}
}

// resolveProviderID maps the authenticated caller to the provider the slot
// operation acts for. Admins get uuid.Nil, which skips ownership checks.
func (h *SlotHandler) resolveProviderID(c *gin.Context) (uuid.UUID, bool) {
	role, _ := middleware.GetUserRole(c)
	if role == user.RoleAdmin {
		return uuid.Nil, true
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, false
	}

	prof, err := h.providers.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		return uuid.Nil, false
	}
	return prof.ID, true
}

// @Summary Create slot
// @Description Publish an availability slot for booking
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSlotRequest true "Slot request"
// @Success 201 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /slots [post]
func (h *SlotHandler) Create(c *gin.Context) {
	var req reqdto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	role, _ := middleware.GetUserRole(c)

	var providerID uuid.UUID
	if role == user.RoleAdmin {
		if req.ProviderID == nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "provider_id is required for admin slot creation",
			})
			return
		}
		providerID = *req.ProviderID
	} else {
		userID, ok := middleware.GetUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
		prof, err := h.providers.GetByUserID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "No provider profile for this account",
			})
			return
		}
		providerID = prof.ID
	}

	view, err := h.slots.CreateSlot(c.Request.Context(), providerID, req.AvailableAt)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrProviderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Provider not found",
			})
		case errors.Is(err, commands.ErrSlotInPast):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Slot time is in the past",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid slot data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSlotView(view))
}

// @Summary Get slot
// @Tags slots
// @Produce json
// @Param id path string true "Slot ID"
// @Success 200 {object} resdto.SlotResponse
// @Failure 404 {object} map[string]string
// @Router /slots/{id} [get]
func (h *SlotHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID",
		})
		return
	}

	view, err := h.slotReads.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}

// @Summary List slots
// @Description List all slots, or a provider's slots with ?provider_id=;
// @Description available=true narrows to unbooked slots
// @Tags slots
// @Produce json
// @Param provider_id query string false "Provider ID"
// @Param available query bool false "Only unbooked slots"
// @Success 200 {array} resdto.SlotResponse
// @Router /slots [get]
func (h *SlotHandler) List(c *gin.Context) {
	availableOnly, _ := strconv.ParseBool(c.Query("available"))

	if providerParam := c.Query("provider_id"); providerParam != "" {
		providerID, err := uuid.Parse(providerParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid provider ID",
			})
			return
		}

		views, err := h.slotReads.ListByProvider(c.Request.Context(), providerID, availableOnly)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, resdto.FromSlotViews(views))
		return
	}

	views, err := h.slotReads.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}

// @Summary Update slot
// @Description Reschedule a slot; only the owning provider or an admin may
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Param request body reqdto.UpdateSlotRequest true "Slot update"
// @Success 200 {object} resdto.SlotResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /slots/{id} [put]
func (h *SlotHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID",
		})
		return
	}

	var req reqdto.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	requestingProviderID, ok := h.resolveProviderID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "No provider profile for this account",
		})
		return
	}

	view, err := h.slots.UpdateSlot(c.Request.Context(), id, req.AvailableAt, requestingProviderID)
	if err != nil {
		h.writeSlotError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}

// @Summary Delete slot
// @Description Delete a slot that no appointment references
// @Tags slots
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /slots/{id} [delete]
func (h *SlotHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID",
		})
		return
	}

	requestingProviderID, ok := h.resolveProviderID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "No provider profile for this account",
		})
		return
	}

	if err := h.slots.DeleteSlot(c.Request.Context(), id, requestingProviderID); err != nil {
		h.writeSlotError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Block slot
// @Description Mark a slot booked without an appointment (provider-side hold)
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 200 {object} resdto.SlotResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /slots/{id}/book [post]
func (h *SlotHandler) MarkBooked(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID",
		})
		return
	}

	view, err := h.slots.MarkSlotBooked(c.Request.Context(), id)
	if err != nil {
		h.writeSlotError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}

func (h *SlotHandler) writeSlotError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrSlotNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Slot not found",
		})
	case errors.Is(err, commands.ErrNotSlotOwner):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Slot belongs to another provider",
		})
	case errors.Is(err, commands.ErrSlotHasAppointments):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Slot is referenced by appointments",
		})
	case errors.Is(err, commands.ErrSlotAlreadyBooked):
		c.JSON(http.StatusConflict, gin.H{
			"error": "This time slot is already booked",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid slot data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
