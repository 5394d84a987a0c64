package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/nvallejos/contable/internal/core/domain"
	portssvc "github.com/nvallejos/contable/internal/core/ports/services"
	"github.com/nvallejos/contable/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	service           portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo)
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement_CostAndExpenseAsMagnitudes() {
	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	totals := []domain.AccountTotals{
		{AccountCode: "4.1.01", AccountName: "Ventas", Nature: domain.NatureCredit, Category: domain.Revenue, Debit: dec("0"), Credit: dec("10000.00")},
		{AccountCode: "5.1.01", AccountName: "CMV", Nature: domain.NatureDebit, Category: domain.Cost, Debit: dec("4000.00"), Credit: dec("0")},
		{AccountCode: "6.1.01", AccountName: "Alquileres", Nature: domain.NatureDebit, Category: domain.Expense, Debit: dec("1500.00"), Credit: dec("0")},
	}

	suite.mockReportingRepo.On("GetIncomeStatementData", ctx, from, to).Return(totals, nil).Once()

	stmt, err := suite.service.IncomeStatement(ctx, from, to)

	suite.Require().NoError(err)
	suite.True(stmt.TotalRevenue.Equal(dec("10000.00")))
	suite.True(stmt.TotalCost.Equal(dec("4000.00")))
	suite.True(stmt.TotalExpense.Equal(dec("1500.00")))
	suite.True(stmt.NetResult.Equal(dec("4500.00")))
	suite.Require().Len(stmt.CostLines, 1)
	// A debit-natured cost account shows as a positive magnitude.
	suite.True(stmt.CostLines[0].Amount.Equal(dec("4000.00")))
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement_RevenueKeepsSign() {
	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	// Refunds exceeding sales leave revenue negative; it must stay negative.
	totals := []domain.AccountTotals{
		{AccountCode: "4.1.01", AccountName: "Ventas", Nature: domain.NatureCredit, Category: domain.Revenue, Debit: dec("1200.00"), Credit: dec("1000.00")},
	}

	suite.mockReportingRepo.On("GetIncomeStatementData", ctx, from, to).Return(totals, nil).Once()

	stmt, err := suite.service.IncomeStatement(ctx, from, to)

	suite.Require().NoError(err)
	suite.True(stmt.TotalRevenue.Equal(dec("-200.00")))
	suite.True(stmt.RevenueLines[0].Amount.Equal(dec("-200.00")))
	suite.True(stmt.NetResult.Equal(dec("-200.00")))
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement_InvertedPeriodRejected() {
	ctx := context.Background()
	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	stmt, err := suite.service.IncomeStatement(ctx, from, to)

	suite.Require().Error(err)
	suite.Nil(stmt)
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_EquationHolds() {
	ctx := context.Background()
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	patrimonial := []domain.AccountTotals{
		{AccountCode: "1.1.01", AccountName: "Caja", Nature: domain.NatureDebit, Category: domain.Asset, Debit: dec("8000.00"), Credit: dec("1000.00")},
		{AccountCode: "2.1.01", AccountName: "Proveedores", Nature: domain.NatureCredit, Category: domain.Liability, Debit: dec("0"), Credit: dec("2000.00")},
		{AccountCode: "3.1.01", AccountName: "Capital", Nature: domain.NatureCredit, Category: domain.Equity, Debit: dec("0"), Credit: dec("4000.00")},
	}
	// Result accounts from inception: 1000 of accumulated gains.
	result := []domain.AccountTotals{
		{AccountCode: "4.1.01", AccountName: "Ventas", Nature: domain.NatureCredit, Category: domain.Revenue, Debit: dec("0"), Credit: dec("1000.00")},
	}

	suite.mockReportingRepo.On("GetBalanceSheetData", ctx, asOf).Return(patrimonial, nil).Once()
	suite.mockReportingRepo.On("GetIncomeStatementData", ctx, time.Time{}, asOf).Return(result, nil).Once()

	sheet, err := suite.service.BalanceSheet(ctx, asOf)

	suite.Require().NoError(err)
	suite.True(sheet.TotalAssets.Equal(dec("7000.00")))
	suite.True(sheet.TotalLiabilities.Equal(dec("2000.00")))
	suite.True(sheet.TotalEquity.Equal(dec("5000.00")))
	suite.True(sheet.EquationHolds)
	suite.True(sheet.Diff.IsZero())
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_ExpensesReduceRetainedResult() {
	ctx := context.Background()
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	// Cash holds the net of 10000 collected and 4000 spent; there is no
	// contributed capital, so equity is the retained result alone.
	patrimonial := []domain.AccountTotals{
		{AccountCode: "1.1.01", AccountName: "Caja", Nature: domain.NatureDebit, Category: domain.Asset, Debit: dec("10000.00"), Credit: dec("4000.00")},
	}
	result := []domain.AccountTotals{
		{AccountCode: "4.1.01", AccountName: "Ventas", Nature: domain.NatureCredit, Category: domain.Revenue, Debit: dec("0"), Credit: dec("10000.00")},
		{AccountCode: "6.1.01", AccountName: "Gastos varios", Nature: domain.NatureDebit, Category: domain.Expense, Debit: dec("4000.00"), Credit: dec("0")},
	}

	suite.mockReportingRepo.On("GetBalanceSheetData", ctx, asOf).Return(patrimonial, nil).Once()
	suite.mockReportingRepo.On("GetIncomeStatementData", ctx, time.Time{}, asOf).Return(result, nil).Once()

	sheet, err := suite.service.BalanceSheet(ctx, asOf)

	suite.Require().NoError(err)
	suite.True(sheet.TotalAssets.Equal(dec("6000.00")))
	suite.True(sheet.TotalEquity.Equal(dec("6000.00")))
	suite.Require().Len(sheet.EquityLines, 1)
	suite.True(sheet.EquityLines[0].Amount.Equal(dec("6000.00")))
	suite.True(sheet.EquationHolds)
	suite.True(sheet.Diff.IsZero())
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_ViolatedEquationReported() {
	ctx := context.Background()
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	patrimonial := []domain.AccountTotals{
		{AccountCode: "1.1.01", AccountName: "Caja", Nature: domain.NatureDebit, Category: domain.Asset, Debit: dec("7001.00"), Credit: dec("0")},
		{AccountCode: "2.1.01", AccountName: "Proveedores", Nature: domain.NatureCredit, Category: domain.Liability, Debit: dec("0"), Credit: dec("2000.00")},
		{AccountCode: "3.1.01", AccountName: "Capital", Nature: domain.NatureCredit, Category: domain.Equity, Debit: dec("0"), Credit: dec("5000.00")},
	}

	suite.mockReportingRepo.On("GetBalanceSheetData", ctx, asOf).Return(patrimonial, nil).Once()
	suite.mockReportingRepo.On("GetIncomeStatementData", ctx, time.Time{}, asOf).Return([]domain.AccountTotals{}, nil).Once()

	sheet, err := suite.service.BalanceSheet(ctx, asOf)

	suite.Require().NoError(err)
	suite.False(sheet.EquationHolds)
	suite.True(sheet.Diff.Equal(dec("1.00")))
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_PassThrough() {
	ctx := context.Background()
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	rows := []domain.TrialBalanceRow{
		{AccountCode: "1.1.01", AccountName: "Caja", Category: domain.Asset, Debit: dec("500.00"), Credit: dec("100.00")},
		{AccountCode: "4.1.01", AccountName: "Ventas", Category: domain.Revenue, Debit: decimal.Zero, Credit: dec("400.00")},
	}

	suite.mockReportingRepo.On("GetTrialBalanceData", ctx, asOf).Return(rows, nil).Once()

	got, err := suite.service.TrialBalance(ctx, asOf)

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal("1.1.01", got[0].AccountCode)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
