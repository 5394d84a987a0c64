package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nvallejos/contable/internal/core/domain"
	portsrepo "github.com/nvallejos/contable/internal/core/ports/repositories"
	portssvc "github.com/nvallejos/contable/internal/core/ports/services"
	"github.com/nvallejos/contable/internal/utils/accounting"
)

// equationTolerance bounds |assets - (liabilities + equity)| for the balance
// sheet equation to be considered satisfied. Anything beyond it is reported,
// never absorbed.
var equationTolerance = decimal.RequireFromString("0.01")

// reportingService aggregates posted movements into statements. All numbers
// are derived from the same SignedBalance rule the ledger uses; the statements
// and the libro mayor can never disagree on an account's balance.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingSvcFacade.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// IncomeStatement builds the estado de resultados over [from, to]. Revenue
// lines keep their sign; cost and expense lines are presented as positive
// magnitudes. Net result is revenue minus cost minus expense.
func (s *reportingService) IncomeStatement(ctx context.Context, from, to time.Time) (*domain.IncomeStatement, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("period end %s precedes period start %s", to.Format("2006-01-02"), from.Format("2006-01-02"))
	}

	totals, err := s.reportingRepo.GetIncomeStatementData(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate income statement data")
		return nil, fmt.Errorf("failed to aggregate income statement data: %w", err)
	}

	stmt := domain.IncomeStatement{
		RevenueLines: []domain.StatementLine{},
		CostLines:    []domain.StatementLine{},
		ExpenseLines: []domain.StatementLine{},
		TotalRevenue: decimal.Zero,
		TotalCost:    decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	for _, t := range totals {
		balance, err := accounting.SignedBalance(t.Nature, t.Debit, t.Credit)
		if err != nil {
			return nil, err
		}
		line := domain.StatementLine{AccountCode: t.AccountCode, AccountName: t.AccountName}

		switch t.Category {
		case domain.Revenue:
			line.Amount = balance
			stmt.RevenueLines = append(stmt.RevenueLines, line)
			stmt.TotalRevenue = stmt.TotalRevenue.Add(balance)
		case domain.Cost:
			line.Amount = balance.Abs()
			stmt.CostLines = append(stmt.CostLines, line)
			stmt.TotalCost = stmt.TotalCost.Add(line.Amount)
		case domain.Expense:
			line.Amount = balance.Abs()
			stmt.ExpenseLines = append(stmt.ExpenseLines, line)
			stmt.TotalExpense = stmt.TotalExpense.Add(line.Amount)
		default:
			return nil, fmt.Errorf("account %s has non-result category %s", t.AccountCode, t.Category)
		}
	}

	stmt.TotalRevenue = accounting.Round2(stmt.TotalRevenue)
	stmt.TotalCost = accounting.Round2(stmt.TotalCost)
	stmt.TotalExpense = accounting.Round2(stmt.TotalExpense)
	stmt.NetResult = accounting.Round2(stmt.TotalRevenue.Sub(stmt.TotalCost).Sub(stmt.TotalExpense))
	return &stmt, nil
}

// BalanceSheet builds the estado de situación patrimonial as of a date and
// checks the accounting equation. A violated equation flips EquationHolds and
// surfaces the signed difference.
func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheet, error) {
	totals, err := s.reportingRepo.GetBalanceSheetData(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate balance sheet data")
		return nil, fmt.Errorf("failed to aggregate balance sheet data: %w", err)
	}

	// Retained result: revenue/cost/expense from inception feed equity so the
	// equation can hold without a formal closing process.
	retained, err := s.retainedResult(ctx, asOf)
	if err != nil {
		return nil, err
	}

	sheet := domain.BalanceSheet{
		AssetLines:       []domain.StatementLine{},
		LiabilityLines:   []domain.StatementLine{},
		EquityLines:      []domain.StatementLine{},
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}

	for _, t := range totals {
		balance, err := accounting.SignedBalance(t.Nature, t.Debit, t.Credit)
		if err != nil {
			return nil, err
		}
		line := domain.StatementLine{AccountCode: t.AccountCode, AccountName: t.AccountName, Amount: balance}

		switch t.Category {
		case domain.Asset:
			sheet.AssetLines = append(sheet.AssetLines, line)
			sheet.TotalAssets = sheet.TotalAssets.Add(balance)
		case domain.Liability:
			sheet.LiabilityLines = append(sheet.LiabilityLines, line)
			sheet.TotalLiabilities = sheet.TotalLiabilities.Add(balance)
		case domain.Equity:
			sheet.EquityLines = append(sheet.EquityLines, line)
			sheet.TotalEquity = sheet.TotalEquity.Add(balance)
		default:
			return nil, fmt.Errorf("account %s has non-patrimonial category %s", t.AccountCode, t.Category)
		}
	}

	if !retained.IsZero() {
		sheet.EquityLines = append(sheet.EquityLines, domain.StatementLine{
			AccountName: "Resultado del ejercicio",
			Amount:      retained,
		})
		sheet.TotalEquity = sheet.TotalEquity.Add(retained)
	}

	sheet.TotalAssets = accounting.Round2(sheet.TotalAssets)
	sheet.TotalLiabilities = accounting.Round2(sheet.TotalLiabilities)
	sheet.TotalEquity = accounting.Round2(sheet.TotalEquity)
	sheet.Diff = accounting.Round2(sheet.TotalAssets.Sub(sheet.TotalLiabilities).Sub(sheet.TotalEquity))
	sheet.EquationHolds = sheet.Diff.Abs().LessThanOrEqual(equationTolerance)

	if !sheet.EquationHolds {
		s.LogWarn(ctx, "Accounting equation violated", "as_of", asOf.Format("2006-01-02"), "diff", sheet.Diff.String())
	}
	return &sheet, nil
}

// retainedResult computes the accumulated net result of all result accounts
// from inception through asOf.
func (s *reportingService) retainedResult(ctx context.Context, asOf time.Time) (decimal.Decimal, error) {
	// Inception is represented by the zero time; the repository treats it as
	// an open lower bound.
	totals, err := s.reportingRepo.GetIncomeStatementData(ctx, time.Time{}, asOf)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to aggregate retained result: %w", err)
	}
	// The net result is credit minus debit over all result accounts, whatever
	// their nature: revenue increases it, cost and expense reduce it. Folding
	// nature-signed balances here would add expense magnitudes to revenue.
	result := decimal.Zero
	for _, t := range totals {
		result = result.Add(t.Credit.Sub(t.Debit))
	}
	return accounting.Round2(result), nil
}

// TrialBalance returns per-account debit/credit totals as of a date. The grand
// debit and credit totals are equal by construction; the output is diagnostic.
func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	rows, err := s.reportingRepo.GetTrialBalanceData(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate trial balance data")
		return nil, fmt.Errorf("failed to aggregate trial balance data: %w", err)
	}
	if rows == nil {
		rows = []domain.TrialBalanceRow{}
	}
	return rows, nil
}
