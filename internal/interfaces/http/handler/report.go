package handler

import (
	"strconv"

	reportapp "github.com/bizdash/backend/internal/application/report"
	"github.com/bizdash/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles analytics API endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/sales-trend", h.SalesTrend)
		reports.GET("/products", h.TopProducts)
		reports.GET("/customers", h.Customers)
		reports.POST("/customers/:id/toggle", h.ToggleCustomerDetail)
		reports.POST("/export", h.Export)
	}
}

// SalesTrend generates the sales trend series
func (h *ReportHandler) SalesTrend(c *gin.Context) {
	var req reportapp.SalesTrendRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := h.reportService.SalesTrend(req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// TopProducts returns the top products report
func (h *ReportHandler) TopProducts(c *gin.Context) {
	h.Success(c, h.reportService.TopProducts())
}

// Customers returns the customer spend report
func (h *ReportHandler) Customers(c *gin.Context) {
	h.Success(c, h.reportService.Customers())
}

// ToggleCustomerDetail expands or collapses a customer's history
func (h *ReportHandler) ToggleCustomerDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.reportService.ToggleCustomerDetail(id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, h.reportService.Customers())
}

// Export simulates exporting the current report
func (h *ReportHandler) Export(c *gin.Context) {
	var req reportapp.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	h.Success(c, h.reportService.Export(req))
}
