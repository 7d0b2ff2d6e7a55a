package api

import (
	"net/http"

	resdto "slotdesk/internal/handler/dto/response"
	"slotdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	dashboardQueries queries.DashboardQueries
}

func NewAdminHandler(dashboardQueries queries.DashboardQueries) *AdminHandler {
	return &AdminHandler{
		dashboardQueries: dashboardQueries,
	}
}

// @Summary Admin dashboard
// @Description Aggregate counters for the admin dashboard
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	view, err := h.dashboardQueries.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDashboardView(view))
}
