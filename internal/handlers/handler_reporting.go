package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fechasapp/fechas_backend/internal/apperrors"
	portssvc "github.com/fechasapp/fechas_backend/internal/core/ports/services"
	"github.com/fechasapp/fechas_backend/internal/dto"
	"github.com/fechasapp/fechas_backend/internal/middleware"
	"github.com/fechasapp/fechas_backend/pkg/config"
)

// reportingHandler handles HTTP requests for the dashboard and reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	cfg              *config.Config
}

func newReportingHandler(rs portssvc.ReportingSvcFacade, cfg *config.Config) *reportingHandler {
	return &reportingHandler{reportingService: rs, cfg: cfg}
}

// registerReportingRoutes registers the dashboard and report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, cfg *config.Config) {
	h := newReportingHandler(reportingService, cfg)

	rg.GET("/dashboard", h.getDashboard)

	reports := rg.Group("/reports")
	{
		reports.GET("/finance", h.getFinanceReport)
		reports.GET("/finance/export", h.exportFinanceCSV)
	}
}

// getDashboard godoc
// @Summary Get the dashboard
// @Description Returns counts per status, the next upcoming events and the portfolio finance totals.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.reportingService.GetDashboard(c.Request.Context(), h.cfg.DashboardUpcomingLimit)
	if err != nil {
		logger.Error("Failed to build dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getFinanceReport godoc
// @Summary Get the per-event finance report
// @Description Lists negotiated totals, collected payments, expenses, outstanding balance and profit per event, optionally windowed by date.
// @Tags reports
// @Produce json
// @Param fromDate query string false "Earliest event date (YYYY-MM-DD)"
// @Param toDate query string false "Latest event date (YYYY-MM-DD)"
// @Success 200 {object} dto.FinanceReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/finance [get]
func (h *reportingHandler) getFinanceReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.FinanceReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.reportingService.GetFinanceReport(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to build finance report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build finance report"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// exportFinanceCSV godoc
// @Summary Export the finance report as CSV
// @Description Streams the filtered per-event finance report as a CSV attachment.
// @Tags reports
// @Produce text/csv
// @Param fromDate query string false "Earliest event date (YYYY-MM-DD)"
// @Param toDate query string false "Latest event date (YYYY-MM-DD)"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/finance/export [get]
func (h *reportingHandler) exportFinanceCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.FinanceReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	data, err := h.reportingService.ExportEventsCSV(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to export finance report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export finance report"})
		return
	}

	filename := fmt.Sprintf("events_finance_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
