package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/nvallejos/contable/internal/core/ports/services"
	"github.com/nvallejos/contable/internal/middleware"
)

// reportingHandler handles HTTP requests for financial statements.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)
	reports := rg.Group("/reports")
	{
		reports.GET("/income-statement", h.getIncomeStatement)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/trial-balance", h.getTrialBalance)
	}
}

func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}
	if from == nil || to == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required, expected YYYY-MM-DD"})
		return
	}

	stmt, err := h.reportingService.IncomeStatement(c.Request.Context(), *from, *to)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build income statement")
		return
	}

	c.JSON(http.StatusOK, stmt)
}

// asOfOrToday returns the asOf query date, defaulting to today.
func asOfOrToday(c *gin.Context) (time.Time, bool) {
	asOf, ok := parseDateQuery(c, "asOf")
	if !ok {
		return time.Time{}, false
	}
	if asOf == nil {
		now := time.Now().UTC().Truncate(24 * time.Hour)
		return now, true
	}
	return *asOf, true
}

func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, ok := asOfOrToday(c)
	if !ok {
		return
	}

	sheet, err := h.reportingService.BalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build balance sheet")
		return
	}

	c.JSON(http.StatusOK, sheet)
}

func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, ok := asOfOrToday(c)
	if !ok {
		return
	}

	rows, err := h.reportingService.TrialBalance(c.Request.Context(), asOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build trial balance")
		return
	}

	c.JSON(http.StatusOK, gin.H{"asOf": asOf.Format("2006-01-02"), "rows": rows})
}
