package services

// ServiceContainer holds all service facades for injection into handlers.
type ServiceContainer struct {
	Chart          ChartOfAccountsSvcFacade
	Entry          EntrySvcFacade
	Ledger         LedgerSvcFacade
	Reporting      ReportingSvcFacade
	Reconciliation ReconciliationSvcFacade
}
