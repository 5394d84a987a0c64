package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nvallejos/contable/internal/apperrors"
	"github.com/nvallejos/contable/internal/core/services"
	"github.com/nvallejos/contable/internal/utils/accounting"
)

// respondServiceError maps service-layer errors to HTTP responses. Business
// rule violations are 422, state conflicts 409, lookups 404; anything else is
// a 500 with the detail kept in the logs.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	// An unbalanced entry carries its totals; surface them so the caller can
	// see the difference without parsing the message.
	var unbalanced *services.UnbalancedEntryError
	if errors.As(err, &unbalanced) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      unbalanced.Error(),
			"debits":     unbalanced.Debits,
			"credits":    unbalanced.Credits,
			"difference": unbalanced.Difference,
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, services.ErrUnknownAccount):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUnbalancedEntry),
		errors.Is(err, services.ErrEntryMinMovements),
		errors.Is(err, services.ErrEntryMinAccounts),
		errors.Is(err, services.ErrDescriptionMissing),
		errors.Is(err, services.ErrMissingExchangeRate),
		errors.Is(err, services.ErrNotImputable),
		errors.Is(err, accounting.ErrInvalidRate):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEntryLocked),
		errors.Is(err, services.ErrAlreadySuperseded),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
