package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nvallejos/contable/internal/core/domain"
	portssvc "github.com/nvallejos/contable/internal/core/ports/services"
	"github.com/nvallejos/contable/internal/core/services"
	"github.com/nvallejos/contable/internal/dto"
)

type ReconciliationServiceTestSuite struct {
	suite.Suite
	mockReconRepo *MockReconciliationRepository
	mockLedgerSvc *MockLedgerService
	mockChartSvc  *MockChartService
	service       portssvc.ReconciliationSvcFacade
	cashAccount   domain.Account
	usdAccount    domain.Account
	operatorID    string
}

func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.mockReconRepo = new(MockReconciliationRepository)
	suite.mockLedgerSvc = new(MockLedgerService)
	suite.mockChartSvc = new(MockChartService)
	suite.service = services.NewReconciliationService(suite.mockReconRepo, suite.mockLedgerSvc, suite.mockChartSvc)

	suite.operatorID = uuid.NewString()
	suite.cashAccount = domain.Account{
		AccountID: uuid.NewString(),
		Code:      "1.1.01",
		Name:      "Caja",
		Nature:    domain.NatureDebit,
		Category:  domain.Asset,
		Imputable: true,
		IsActive:  true,
	}
	suite.usdAccount = domain.Account{
		AccountID:    uuid.NewString(),
		Code:         "1.1.03",
		Name:         "Caja USD",
		Nature:       domain.NatureDebit,
		Category:     domain.Asset,
		Imputable:    true,
		RequiresRate: true,
		IsActive:     true,
	}
}

func (suite *ReconciliationServiceTestSuite) mockBookBalance(account domain.Account, asOf time.Time, closing string) {
	suite.mockChartSvc.On("GetAccountByCode", mock.Anything, account.Code).Return(&account, nil).Once()
	suite.mockLedgerSvc.On("GetLedger", mock.Anything, account.Code, (*time.Time)(nil), &asOf).
		Return(&domain.Ledger{AccountCode: account.Code, ClosingBalance: dec(closing)}, nil).Once()
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_SmallDifferenceReconciled() {
	ctx := context.Background()
	asOf := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)

	suite.mockBookBalance(suite.cashAccount, asOf, "1000.00")
	suite.mockReconRepo.On("SaveReconciliation", ctx, mock.AnythingOfType("domain.Reconciliation")).Return(nil).Once()

	rec, err := suite.service.Reconcile(ctx, suite.cashAccount.Code, dto.CreateReconciliationRequest{
		AsOf:            asOf,
		PhysicalBalance: dec("1000.50"),
	}, suite.operatorID)

	suite.Require().NoError(err)
	suite.Equal(domain.Reconciled, rec.Status)
	suite.True(rec.BookBalance.Equal(dec("1000.00")))
	suite.True(rec.PhysicalBalance.Equal(dec("1000.50")))
	suite.True(rec.Difference.Equal(dec("0.50")))
	suite.Equal(suite.operatorID, rec.PerformedBy)

	suite.mockReconRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_ExactToleranceReconciled() {
	ctx := context.Background()
	asOf := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)

	suite.mockBookBalance(suite.cashAccount, asOf, "1000.00")
	suite.mockReconRepo.On("SaveReconciliation", ctx, mock.Anything).Return(nil).Once()

	rec, err := suite.service.Reconcile(ctx, suite.cashAccount.Code, dto.CreateReconciliationRequest{
		AsOf:            asOf,
		PhysicalBalance: dec("999.00"),
	}, suite.operatorID)

	suite.Require().NoError(err)
	suite.Equal(domain.Reconciled, rec.Status)
	suite.True(rec.Difference.Equal(dec("-1.00")))
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_LargeDifferenceVariance() {
	ctx := context.Background()
	asOf := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)

	suite.mockBookBalance(suite.cashAccount, asOf, "1000.00")
	suite.mockReconRepo.On("SaveReconciliation", ctx, mock.Anything).Return(nil).Once()

	rec, err := suite.service.Reconcile(ctx, suite.cashAccount.Code, dto.CreateReconciliationRequest{
		AsOf:            asOf,
		PhysicalBalance: dec("995.00"),
	}, suite.operatorID)

	suite.Require().NoError(err)
	suite.Equal(domain.Variance, rec.Status)
	suite.True(rec.Difference.Equal(dec("-5.00")))
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_NativeCountConverted() {
	ctx := context.Background()
	asOf := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)

	suite.mockBookBalance(suite.usdAccount, asOf, "100.00")
	suite.mockReconRepo.On("SaveReconciliation", ctx, mock.Anything).Return(nil).Once()

	// 150000 counted at rate 1500 is 100.00 in reporting terms, matching the book.
	rec, err := suite.service.Reconcile(ctx, suite.usdAccount.Code, dto.CreateReconciliationRequest{
		AsOf:            asOf,
		PhysicalBalance: dec("150000"),
		Rate:            decPtr("1500"),
	}, suite.operatorID)

	suite.Require().NoError(err)
	suite.Equal(domain.Reconciled, rec.Status)
	suite.True(rec.PhysicalBalance.Equal(dec("100.00")))
	suite.True(rec.Difference.IsZero())
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_MissingRateRejected() {
	ctx := context.Background()
	asOf := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)

	suite.mockBookBalance(suite.usdAccount, asOf, "100.00")

	rec, err := suite.service.Reconcile(ctx, suite.usdAccount.Code, dto.CreateReconciliationRequest{
		AsOf:            asOf,
		PhysicalBalance: dec("150000"),
	}, suite.operatorID)

	suite.Require().Error(err)
	suite.Nil(rec)
	suite.ErrorIs(err, services.ErrMissingExchangeRate)
	suite.mockReconRepo.AssertNotCalled(suite.T(), "SaveReconciliation", mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_CategoryAccountRejected() {
	ctx := context.Background()
	category := domain.Account{
		AccountID: uuid.NewString(),
		Code:      "1.1",
		Name:      "Caja y Bancos",
		Nature:    domain.NatureDebit,
		Category:  domain.Asset,
		Imputable: false,
		IsActive:  true,
	}

	suite.mockChartSvc.On("GetAccountByCode", mock.Anything, category.Code).Return(&category, nil).Once()

	rec, err := suite.service.Reconcile(ctx, category.Code, dto.CreateReconciliationRequest{
		AsOf:            time.Now(),
		PhysicalBalance: dec("100"),
	}, suite.operatorID)

	suite.Require().Error(err)
	suite.Nil(rec)
	suite.ErrorIs(err, services.ErrNotImputable)
}

func (suite *ReconciliationServiceTestSuite) TestListReconciliations() {
	ctx := context.Background()
	history := []domain.Reconciliation{
		{ReconciliationID: uuid.NewString(), AccountCode: suite.cashAccount.Code, Status: domain.Reconciled},
		{ReconciliationID: uuid.NewString(), AccountCode: suite.cashAccount.Code, Status: domain.Variance},
	}

	suite.mockChartSvc.On("GetAccountByCode", mock.Anything, suite.cashAccount.Code).Return(&suite.cashAccount, nil).Once()
	suite.mockReconRepo.On("ListReconciliationsByAccount", ctx, suite.cashAccount.Code, 20).Return(history, nil).Once()

	recs, err := suite.service.ListReconciliations(ctx, suite.cashAccount.Code, 0)

	suite.Require().NoError(err)
	suite.Require().Len(recs, 2)
}

func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
