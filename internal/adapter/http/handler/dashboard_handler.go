package handler

import (
	"strconv"

	"charity-donation-service/internal/adapter/http/dto"
	"charity-donation-service/internal/core/ports"
	"charity-donation-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the read-only admin query endpoints.
type DashboardHandler struct {
	reportingSvc ports.ReportingService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(reportingSvc ports.ReportingService) *DashboardHandler {
	return &DashboardHandler{reportingSvc: reportingSvc}
}

// ListTransactions handles GET /api/v1/admin/transactions.
func (h *DashboardHandler) ListTransactions(c *gin.Context) {
	txns, err := h.reportingSvc.ListTransactions(c.Request.Context(), limitParam(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, txns)
}

// ListDonations handles GET /api/v1/admin/donations.
func (h *DashboardHandler) ListDonations(c *gin.Context) {
	donations, err := h.reportingSvc.ListDonations(c.Request.Context(), limitParam(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, donations)
}

// GetStats handles GET /api/v1/admin/stats.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.reportingSvc.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.StatsResponse{
		TotalDonations:     stats.Total,
		CompletedDonations: stats.Completed,
		TotalUSD:           stats.TotalUSD,
	})
}

// limitParam parses the optional ?limit= query value. Anything unparseable
// falls back to zero and lets the service apply its default.
func limitParam(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return limit
}
