package repositories

import (
	"context"
	"time"

	"github.com/nvallejos/contable/internal/core/domain"
)

// ReportingRepository defines operations for retrieving financial report data.
// All queries consider POSTED entries only; superseded history never enters a
// statement.
type ReportingRepository interface {
	// GetIncomeStatementData aggregates per-account debit/credit totals over
	// [from, to] for result accounts (REVENUE, COST, EXPENSE).
	GetIncomeStatementData(ctx context.Context, from, to time.Time) ([]domain.AccountTotals, error)

	// GetBalanceSheetData aggregates per-account debit/credit totals up to and
	// including asOf for patrimonial accounts (ASSET, LIABILITY, EQUITY).
	GetBalanceSheetData(ctx context.Context, asOf time.Time) ([]domain.AccountTotals, error)

	// GetTrialBalanceData retrieves per-account debit/credit totals for every
	// account with movements as of a date.
	GetTrialBalanceData(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error)
}
