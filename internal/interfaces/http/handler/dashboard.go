package handler

import (
	dashboardapp "github.com/bizdash/backend/internal/application/dashboard"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles the landing overview endpoint
type DashboardHandler struct {
	BaseHandler
	overviewService *dashboardapp.OverviewService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(overviewService *dashboardapp.OverviewService) *DashboardHandler {
	return &DashboardHandler{
		overviewService: overviewService,
	}
}

// RegisterRoutes registers dashboard routes
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard/overview", h.Overview)
}

// Overview returns the aggregate landing view
func (h *DashboardHandler) Overview(c *gin.Context) {
	resp, err := h.overviewService.Overview(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
