package repositories

import (
	"context"

	"github.com/nvallejos/contable/internal/core/domain"
)

// ReconciliationRepository defines operations for reconciliation records.
// Records are append-only; there is no update or delete.
type ReconciliationRepository interface {
	// SaveReconciliation persists a new reconciliation record.
	SaveReconciliation(ctx context.Context, rec domain.Reconciliation) error

	// ListReconciliationsByAccount retrieves reconciliations of an account,
	// most recent first.
	ListReconciliationsByAccount(ctx context.Context, accountCode string, limit int) ([]domain.Reconciliation, error)
}
