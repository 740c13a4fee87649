package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rideshare/internal/service"
)

// ReportHandler handles HTTP requests for aggregate reports.
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// TierRevenueResponse is one tier row of a revenue report.
type TierRevenueResponse struct {
	RideCount int     `json:"ride_count"`
	Revenue   float64 `json:"revenue"`
}

// RevenueResponse is the HTTP response for the revenue report.
type RevenueResponse struct {
	ID           string                         `json:"id"`
	RideCount    int                            `json:"ride_count"`
	TotalRevenue float64                        `json:"total_revenue"`
	ByTier       map[string]TierRevenueResponse `json:"by_tier"`
	GeneratedAt  string                         `json:"generated_at"`
}

// Revenue handles GET /v1/reports/revenue
// With ?format=text the printable report is returned instead of JSON.
func (h *ReportHandler) Revenue(c *gin.Context) {
	report, err := h.reportService.Revenue(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("format") == "text" {
		respondText(c, h.reportService.FormatReport(report))
		return
	}

	byTier := make(map[string]TierRevenueResponse, len(report.ByTier))
	for tier, tr := range report.ByTier {
		byTier[string(tier)] = TierRevenueResponse{RideCount: tr.RideCount, Revenue: tr.Revenue}
	}

	respondJSON(c, http.StatusOK, RevenueResponse{
		ID:           report.ID,
		RideCount:    report.RideCount,
		TotalRevenue: report.TotalRevenue,
		ByTier:       byTier,
		GeneratedAt:  report.GeneratedAt.Format(time.RFC3339),
	})
}

// Overview handles GET /v1/reports/overview
func (h *ReportHandler) Overview(c *gin.Context) {
	text, err := h.reportService.Overview(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondText(c, text)
}
