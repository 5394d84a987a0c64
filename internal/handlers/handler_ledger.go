package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/nvallejos/contable/internal/core/ports/services"
	"github.com/nvallejos/contable/internal/dto"
	"github.com/nvallejos/contable/internal/middleware"
)

// ledgerHandler handles HTTP requests for the per-account ledger view.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ledgerService portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ledgerService}
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)
	rg.GET("/accounts/:code/ledger", h.getLedger)
}

// parseDateQuery parses an optional YYYY-MM-DD query parameter.
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " date, expected YYYY-MM-DD"})
		return nil, false
	}
	return &t, true
}

func (h *ledgerHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}
	if from != nil && to != nil && to.Before(*from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to precedes from"})
		return
	}

	ledger, err := h.ledgerService.GetLedger(c.Request.Context(), code, from, to)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute ledger")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerResponse(ledger))
}
