package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nvallejos/contable/internal/apperrors"
	"github.com/nvallejos/contable/internal/core/domain"
	portsrepo "github.com/nvallejos/contable/internal/core/ports/repositories"
	"github.com/nvallejos/contable/internal/models"
	"github.com/nvallejos/contable/internal/utils/mapping"
)

type PgxReconciliationRepository struct {
	BaseRepository
}

// newPgxReconciliationRepository creates a new repository for reconciliation
// records.
func newPgxReconciliationRepository(pool *pgxpool.Pool) portsrepo.ReconciliationRepository {
	return &PgxReconciliationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReconciliationRepository = (*PgxReconciliationRepository)(nil)

const reconciliationColumns = `reconciliation_id, account_code, as_of, book_balance, physical_balance, difference, status, notes, performed_by, created_at`

// SaveReconciliation persists a new reconciliation record. The table has no
// update path; corrections are new records.
func (r *PgxReconciliationRepository) SaveReconciliation(ctx context.Context, rec domain.Reconciliation) error {
	m := mapping.ToModelReconciliation(rec)
	query := `
		INSERT INTO reconciliations (` + reconciliationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ReconciliationID,
		m.AccountCode,
		m.AsOf,
		m.BookBalance,
		m.PhysicalBalance,
		m.Difference,
		m.Status,
		m.Notes,
		m.PerformedBy,
		m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert reconciliation "+m.ReconciliationID, err)
	}
	return nil
}

// ListReconciliationsByAccount retrieves reconciliations of an account, most
// recent first.
func (r *PgxReconciliationRepository) ListReconciliationsByAccount(ctx context.Context, accountCode string, limit int) ([]domain.Reconciliation, error) {
	query := `
		SELECT ` + reconciliationColumns + `
		FROM reconciliations
		WHERE account_code = $1
		ORDER BY as_of DESC, created_at DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, accountCode, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query reconciliations for account "+accountCode, err)
	}
	defer rows.Close()

	recs := []domain.Reconciliation{}
	for rows.Next() {
		var m models.Reconciliation
		err := rows.Scan(
			&m.ReconciliationID,
			&m.AccountCode,
			&m.AsOf,
			&m.BookBalance,
			&m.PhysicalBalance,
			&m.Difference,
			&m.Status,
			&m.Notes,
			&m.PerformedBy,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan reconciliation row", err)
		}
		recs = append(recs, mapping.ToDomainReconciliation(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating reconciliation rows", err)
	}
	return recs, nil
}
