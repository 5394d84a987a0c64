package services

import (
	portsrepo "github.com/nvallejos/contable/internal/core/ports/repositories"
	portssvc "github.com/nvallejos/contable/internal/core/ports/services"
)

// NewServiceContainer wires the full service graph from the repository
// provider. Services depend on each other only through their facades.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, correctionWindowDays int) *portssvc.ServiceContainer {
	chartSvc := NewChartService(repos.AccountRepo)
	entrySvc := NewEntryService(repos.EntryRepo, chartSvc, correctionWindowDays)
	ledgerSvc := NewLedgerService(repos.EntryRepo, chartSvc)
	reportingSvc := NewReportingService(repos.ReportingRepo)
	reconSvc := NewReconciliationService(repos.ReconciliationRepo, ledgerSvc, chartSvc)

	return &portssvc.ServiceContainer{
		Chart:          chartSvc,
		Entry:          entrySvc,
		Ledger:         ledgerSvc,
		Reporting:      reportingSvc,
		Reconciliation: reconSvc,
	}
}
