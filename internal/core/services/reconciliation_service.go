package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nvallejos/contable/internal/core/domain"
	portsrepo "github.com/nvallejos/contable/internal/core/ports/repositories"
	portssvc "github.com/nvallejos/contable/internal/core/ports/services"
	"github.com/nvallejos/contable/internal/dto"
	"github.com/nvallejos/contable/internal/utils/accounting"
)

// reconciliationTolerance bounds |physical - book| for a count to be deemed
// reconciled. Cash counts absorb small rounding drift that journal entries
// must not, so this is wider than the entry balance tolerance on purpose.
var reconciliationTolerance = decimal.RequireFromString("1.00")

// reconciliationService compares ledger balances against physical counts.
type reconciliationService struct {
	BaseService
	chartSvc  portssvc.ChartOfAccountsSvcFacade
	ledgerSvc portssvc.LedgerSvcFacade
	reconRepo portsrepo.ReconciliationRepository
	now       func() time.Time
}

// NewReconciliationService creates a new ReconciliationSvcFacade.
func NewReconciliationService(reconRepo portsrepo.ReconciliationRepository, ledgerSvc portssvc.LedgerSvcFacade, chartSvc portssvc.ChartOfAccountsSvcFacade) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{
		chartSvc:  chartSvc,
		ledgerSvc: ledgerSvc,
		reconRepo: reconRepo,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

// Reconcile computes the book balance of an account as of a date, converts the
// counted physical balance to the reporting currency when needed, and records
// the outcome. The record is append-only; a variance is never corrected here.
func (s *reconciliationService) Reconcile(ctx context.Context, accountCode string, req dto.CreateReconciliationRequest, operatorID string) (*domain.Reconciliation, error) {
	account, err := s.chartSvc.GetAccountByCode(ctx, accountCode)
	if err != nil {
		return nil, err
	}
	if !account.Imputable {
		return nil, fmt.Errorf("%w: %s", ErrNotImputable, accountCode)
	}

	asOf := req.AsOf
	ledger, err := s.ledgerSvc.GetLedger(ctx, accountCode, nil, &asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to compute book balance for %s: %w", accountCode, err)
	}
	book := ledger.ClosingBalance

	physical := req.PhysicalBalance
	if account.RequiresRate {
		if req.Rate == nil {
			return nil, fmt.Errorf("%w: account %s", ErrMissingExchangeRate, accountCode)
		}
		physical, err = accounting.ToReportingCurrency(req.PhysicalBalance, *req.Rate)
		if err != nil {
			return nil, fmt.Errorf("physical balance for account %s: %w", accountCode, err)
		}
	} else {
		physical = accounting.Round2(physical)
	}

	difference := accounting.Round2(physical.Sub(book))
	status := domain.Reconciled
	if difference.Abs().GreaterThan(reconciliationTolerance) {
		status = domain.Variance
	}

	rec := domain.Reconciliation{
		ReconciliationID: uuid.NewString(),
		AccountCode:      accountCode,
		AsOf:             asOf,
		BookBalance:      book,
		PhysicalBalance:  physical,
		Difference:       difference,
		Status:           status,
		Notes:            req.Notes,
		PerformedBy:      operatorID,
		CreatedAt:        s.now(),
	}

	if err := s.reconRepo.SaveReconciliation(ctx, rec); err != nil {
		s.LogError(ctx, err, "Failed to save reconciliation", slog.String("account_code", accountCode))
		return nil, fmt.Errorf("failed to save reconciliation: %w", err)
	}

	if status == domain.Variance {
		s.LogWarn(ctx, "Reconciliation variance detected",
			slog.String("account_code", accountCode),
			slog.String("difference", difference.String()))
	} else {
		s.LogInfo(ctx, "Account reconciled", slog.String("account_code", accountCode))
	}
	return &rec, nil
}

// ListReconciliations retrieves the reconciliation history of an account,
// most recent first.
func (s *reconciliationService) ListReconciliations(ctx context.Context, accountCode string, limit int) ([]domain.Reconciliation, error) {
	if _, err := s.chartSvc.GetAccountByCode(ctx, accountCode); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	recs, err := s.reconRepo.ListReconciliationsByAccount(ctx, accountCode, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reconciliations for %s: %w", accountCode, err)
	}
	if recs == nil {
		recs = []domain.Reconciliation{}
	}
	return recs, nil
}
