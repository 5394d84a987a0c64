package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/nvallejos/contable/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories over a single pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	entryRepo := newPgxEntryRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)
	reconciliationRepo := newPgxReconciliationRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:        accountRepo,
		EntryRepo:          entryRepo,
		ReportingRepo:      reportingRepo,
		ReconciliationRepo: reconciliationRepo,
	}
}
