package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/nvallejos/contable/internal/core/ports/services"
	"github.com/nvallejos/contable/internal/dto"
	"github.com/nvallejos/contable/internal/middleware"
)

// reconciliationHandler handles HTTP requests for cash reconciliations.
type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

func newReconciliationHandler(reconciliationService portssvc.ReconciliationSvcFacade) *reconciliationHandler {
	return &reconciliationHandler{reconciliationService: reconciliationService}
}

func registerReconciliationRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvcFacade) {
	h := newReconciliationHandler(reconciliationService)
	rg.POST("/accounts/:code/reconciliations", h.reconcile)
	rg.GET("/accounts/:code/reconciliations", h.listReconciliations)
}

func (h *reconciliationHandler) reconcile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	var req dto.CreateReconciliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for reconcile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	operatorID := middleware.GetOperatorFromContext(c)
	rec, err := h.reconciliationService.Reconcile(c.Request.Context(), code, req, operatorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reconcile account")
		return
	}

	c.JSON(http.StatusCreated, rec)
}

func (h *reconciliationHandler) listReconciliations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	recs, err := h.reconciliationService.ListReconciliations(c.Request.Context(), code, limit)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list reconciliations")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reconciliations": recs})
}
