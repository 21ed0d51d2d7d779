package v1

import (
	"net/http"

	"go-recruitment-ops/internal/delivery/http/response"
	"go-recruitment-ops/internal/domain"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

// NewDashboardHandler registers dashboard routes
func NewDashboardHandler(protected *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}

	protected.GET("/dashboard/statistics", handler.Statistics)
}

// Statistics godoc
// @Summary      Dashboard statistics
// @Description  Client and project counts, candidate basics (total, interviewed, knowledge tested, talent scored, blacklisted) and per-code work-experience counts
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=domain.Statistics}
// @Failure      401  {object}  response.Response
// @Router       /dashboard/statistics [get]
func (h *DashboardHandler) Statistics(c *gin.Context) {
	stats, err := h.dashboardUC.Statistics(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Statistics retrieved", stats)
}
