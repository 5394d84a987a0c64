package services

import (
	"context"
	"time"

	"github.com/nvallejos/contable/internal/core/domain"
)

// ReportingSvcFacade aggregates posted movements into financial statements.
type ReportingSvcFacade interface {
	IncomeStatement(ctx context.Context, from, to time.Time) (*domain.IncomeStatement, error)
	BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheet, error)
	TrialBalance(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error)
}
