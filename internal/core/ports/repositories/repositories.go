package repositories

// RepositoryProvider groups all repository implementations for injection.
type RepositoryProvider struct {
	AccountRepo        AccountRepositoryFacade
	EntryRepo          EntryRepositoryFacade
	ReportingRepo      ReportingRepository
	ReconciliationRepo ReconciliationRepository
}
