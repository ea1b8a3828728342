package api

import (
	"net/http"

	resdto "appointment-booking/internal/handler/dto/response"
	"appointment-booking/internal/infra"
	"appointment-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProviderHandler struct {
	providers queries.ProviderQueries
}

func NewProviderHandler(providers queries.ProviderQueries) *ProviderHandler {
	return &ProviderHandler{providers: providers}
}

// @Summary List providers
// @Tags providers
// @Produce json
// @Success 200 {array} resdto.ProviderResponse
// @Router /providers [get]
func (h *ProviderHandler) List(c *gin.Context) {
	views, err := h.providers.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromProviderViews(views))
}

// @Summary Get provider
// @Tags providers
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {object} resdto.ProviderResponse
// @Failure 404 {object} map[string]string
// @Router /providers/{id} [get]
func (h *ProviderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid provider ID",
		})
		return
	}

	view, err := h.providers.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Provider not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromProviderView(view))
}
