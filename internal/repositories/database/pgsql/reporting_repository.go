package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nvallejos/contable/internal/core/domain"
	portsrepo "github.com/nvallejos/contable/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface.
// Every query filters on status = 'POSTED': superseded history never enters
// a statement.
type reportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new reporting repository.
func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetIncomeStatementData aggregates per-account totals over [from, to] for
// result accounts. The zero time as lower bound means "from inception".
func (r *reportingRepository) GetIncomeStatementData(ctx context.Context, from, to time.Time) ([]domain.AccountTotals, error) {
	query := `
		SELECT
			a.code,
			a.name,
			a.nature,
			a.category,
			COALESCE(SUM(m.debit), 0) AS total_debit,
			COALESCE(SUM(m.credit), 0) AS total_credit
		FROM movements m
		JOIN accounts a ON a.code = m.account_code
		JOIN entries e ON e.entry_id = m.entry_id
		WHERE e.status = 'POSTED'
			AND a.category IN ('REVENUE', 'COST', 'EXPENSE')
			AND ($1::timestamptz = '0001-01-01T00:00:00Z'::timestamptz OR e.entry_date >= $1)
			AND e.entry_date <= $2
		GROUP BY a.code, a.name, a.nature, a.category
		ORDER BY a.code;
	`
	return r.queryAccountTotals(ctx, query, from, to)
}

// GetBalanceSheetData aggregates per-account totals up to and including asOf
// for patrimonial accounts.
func (r *reportingRepository) GetBalanceSheetData(ctx context.Context, asOf time.Time) ([]domain.AccountTotals, error) {
	query := `
		SELECT
			a.code,
			a.name,
			a.nature,
			a.category,
			COALESCE(SUM(m.debit), 0) AS total_debit,
			COALESCE(SUM(m.credit), 0) AS total_credit
		FROM movements m
		JOIN accounts a ON a.code = m.account_code
		JOIN entries e ON e.entry_id = m.entry_id
		WHERE e.status = 'POSTED'
			AND a.category IN ('ASSET', 'LIABILITY', 'EQUITY')
			AND e.entry_date <= $1
		GROUP BY a.code, a.name, a.nature, a.category
		ORDER BY a.code;
	`
	return r.queryAccountTotals(ctx, query, asOf)
}

func (r *reportingRepository) queryAccountTotals(ctx context.Context, query string, args ...any) ([]domain.AccountTotals, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying account totals: %w", err)
	}
	defer rows.Close()

	result := []domain.AccountTotals{}
	for rows.Next() {
		var t domain.AccountTotals
		if err := rows.Scan(
			&t.AccountCode,
			&t.AccountName,
			&t.Nature,
			&t.Category,
			&t.Debit,
			&t.Credit,
		); err != nil {
			return nil, fmt.Errorf("error scanning account totals row: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account totals rows: %w", err)
	}
	return result, nil
}

// GetTrialBalanceData retrieves per-account debit/credit totals for every
// account with movements as of a date.
func (r *reportingRepository) GetTrialBalanceData(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT
			a.code,
			a.name,
			a.category,
			COALESCE(SUM(m.debit), 0) AS total_debit,
			COALESCE(SUM(m.credit), 0) AS total_credit
		FROM movements m
		JOIN accounts a ON a.code = m.account_code
		JOIN entries e ON e.entry_id = m.entry_id
		WHERE e.status = 'POSTED'
			AND e.entry_date <= $1
		GROUP BY a.code, a.name, a.category
		ORDER BY a.code;
	`
	rows, err := r.Pool.Query(ctx, query, asOf)
	if err != nil {
		return nil, fmt.Errorf("error querying trial balance data: %w", err)
	}
	defer rows.Close()

	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		if err := rows.Scan(
			&row.AccountCode,
			&row.AccountName,
			&row.Category,
			&row.Debit,
			&row.Credit,
		); err != nil {
			return nil, fmt.Errorf("error scanning trial balance row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}
	return result, nil
}
