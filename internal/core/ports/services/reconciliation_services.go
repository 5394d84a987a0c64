package services

import (
	"context"

	"github.com/nvallejos/contable/internal/core/domain"
	"github.com/nvallejos/contable/internal/dto"
)

// ReconciliationSvcFacade compares computed balances against physical counts.
// It only ever reads ledger data; variances are corrected through ordinary
// journal entries elsewhere.
type ReconciliationSvcFacade interface {
	Reconcile(ctx context.Context, accountCode string, req dto.CreateReconciliationRequest, operatorID string) (*domain.Reconciliation, error)
	ListReconciliations(ctx context.Context, accountCode string, limit int) ([]domain.Reconciliation, error)
}
