package handler

import (
	"github.com/gbmfoods/admin-api/internal/application/service"
	"github.com/gbmfoods/admin-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats returns the headline counts shown on the dashboard landing page
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved", stats)
}
