package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/nvallejos/contable/internal/apperrors"
	"github.com/nvallejos/contable/internal/core/domain"
	portsrepo "github.com/nvallejos/contable/internal/core/ports/repositories"
	"github.com/nvallejos/contable/internal/models"
	"github.com/nvallejos/contable/internal/utils/mapping"
	"github.com/nvallejos/contable/internal/utils/pagination"
)

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for journal entry and
// movement data.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

const entryColumns = `entry_id, entry_number, entry_date, description, notes, exchange_rate, status, superseded_by_entry_id, supersedes_entry_id, created_at, created_by, last_updated_at, last_updated_by`

const movementColumns = `movement_id, entry_id, account_code, debit, credit, native_amount, rate_used, position, created_at, created_by, last_updated_at, last_updated_by`

func scanEntry(row pgx.Row) (models.Entry, error) {
	var m models.Entry
	err := row.Scan(
		&m.EntryID,
		&m.EntryNumber,
		&m.EntryDate,
		&m.Description,
		&m.Notes,
		&m.ExchangeRate,
		&m.Status,
		&m.SupersededByEntryID,
		&m.SupersedesEntryID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// nextEntryNumber claims the next gapless entry number inside tx. The single
// sequence row is locked until the surrounding transaction commits, which
// serializes entry numbering: a rolled-back insert releases its number and
// the next writer reuses it, so the sequence never gaps.
func (r *PgxEntryRepository) nextEntryNumber(ctx context.Context, tx pgx.Tx) (int64, error) {
	var number int64
	err := tx.QueryRow(ctx, `SELECT next_value FROM entry_sequence FOR UPDATE;`).Scan(&number)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to lock entry sequence", err)
	}
	if _, err := tx.Exec(ctx, `UPDATE entry_sequence SET next_value = next_value + 1;`); err != nil {
		return 0, apperrors.NewAppError(500, "failed to advance entry sequence", err)
	}
	return number, nil
}

// insertEntryInTx inserts the entry row with the given number.
func (r *PgxEntryRepository) insertEntryInTx(ctx context.Context, tx pgx.Tx, m models.Entry) error {
	query := `
		INSERT INTO entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := tx.Exec(ctx, query,
		m.EntryID,
		m.EntryNumber,
		m.EntryDate,
		m.Description,
		m.Notes,
		m.ExchangeRate,
		m.Status,
		m.SupersededByEntryID,
		m.SupersedesEntryID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert entry "+m.EntryID, err)
	}
	return nil
}

// insertMovementsInTx batch-inserts the movement rows of one entry.
func (r *PgxEntryRepository) insertMovementsInTx(ctx context.Context, tx pgx.Tx, movements []domain.Movement) error {
	batch := &pgx.Batch{}
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	for _, mv := range movements {
		m := mapping.ToModelMovement(mv)
		batch.Queue(query,
			m.MovementID,
			m.EntryID,
			m.AccountCode,
			m.Debit,
			m.Credit,
			m.NativeAmount,
			m.RateUsed,
			m.Position,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute movement batch", err)
	}
	return nil
}

// SaveEntry assigns the next gapless entry number and persists the entry with
// all its movements in one transaction.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry, movements []domain.Movement) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	number, err := r.nextEntryNumber(ctx, tx)
	if err != nil {
		return 0, err
	}

	m := mapping.ToModelEntry(entry)
	m.EntryNumber = number
	if err := r.insertEntryInTx(ctx, tx, m); err != nil {
		return 0, err
	}
	if err := r.insertMovementsInTx(ctx, tx, movements); err != nil {
		return 0, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return number, nil
}

// SupersedeAndReplace marks the original entry SUPERSEDED and inserts the
// replacement with a fresh number, all in one transaction. The original row
// is locked first so concurrent corrections of the same entry serialize; the
// loser then sees a non-POSTED status and fails with a conflict.
func (r *PgxEntryRepository) SupersedeAndReplace(ctx context.Context, originalEntryID string, replacement domain.Entry, movements []domain.Movement) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	var status models.EntryStatus
	err = tx.QueryRow(ctx, `SELECT status FROM entries WHERE entry_id = $1 FOR UPDATE;`, originalEntryID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNotFound
		}
		return 0, apperrors.NewAppError(500, "failed to lock entry "+originalEntryID, err)
	}
	if status != models.Posted {
		return 0, apperrors.NewAppError(409, "entry "+originalEntryID+" is not in POSTED status", apperrors.ErrConflict)
	}

	number, err := r.nextEntryNumber(ctx, tx)
	if err != nil {
		return 0, err
	}

	m := mapping.ToModelEntry(replacement)
	m.EntryNumber = number
	if err := r.insertEntryInTx(ctx, tx, m); err != nil {
		return 0, err
	}
	if err := r.insertMovementsInTx(ctx, tx, movements); err != nil {
		return 0, err
	}

	updateQuery := `
		UPDATE entries
		SET status = $2, superseded_by_entry_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE entry_id = $1;
	`
	_, err = tx.Exec(ctx, updateQuery, originalEntryID, models.Superseded, m.EntryID, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to mark entry "+originalEntryID+" superseded", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return number, nil
}

// FindEntryByID retrieves an entry by its ID.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE entry_id = $1;`
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find entry by ID "+entryID, err)
	}
	entry := mapping.ToDomainEntry(m)
	return &entry, nil
}

// FindEntryByNumber retrieves an entry by its sequential number.
func (r *PgxEntryRepository) FindEntryByNumber(ctx context.Context, entryNumber int64) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE entry_number = $1;`
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find entry by number", err)
	}
	entry := mapping.ToDomainEntry(m)
	return &entry, nil
}

// ListEntries retrieves a page of entries, most recent first, using
// token-based pagination over (entry_date, entry_number).
func (r *PgxEntryRepository) ListEntries(ctx context.Context, limit int, nextToken *string, includeSuperseded bool) ([]domain.Entry, *string, error) {
	query := `SELECT ` + entryColumns + ` FROM entries`
	args := []any{}
	conditions := []string{}

	if !includeSuperseded {
		conditions = append(conditions, `status = 'POSTED'`)
	}
	if nextToken != nil && *nextToken != "" {
		lastDate, lastNumber, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastDate, lastNumber)
		conditions = append(conditions, `(entry_date, entry_number) < ($1, $2)`)
	}

	for i, cond := range conditions {
		if i == 0 {
			query += ` WHERE ` + cond
		} else {
			query += ` AND ` + cond
		}
	}
	// Fetch one extra row to decide whether another page exists.
	args = append(args, limit+1)
	switch len(args) {
	case 1:
		query += ` ORDER BY entry_date DESC, entry_number DESC LIMIT $1;`
	default:
		query += ` ORDER BY entry_date DESC, entry_number DESC LIMIT $3;`
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query entries", err)
	}
	defer rows.Close()

	modelEntries := []models.Entry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan entry row", err)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating entry rows", err)
	}

	var nextTokenVal *string
	if len(modelEntries) > limit {
		modelEntries = modelEntries[:limit]
		last := modelEntries[len(modelEntries)-1]
		token := pagination.EncodeToken(last.EntryDate, last.EntryNumber)
		nextTokenVal = &token
	}

	entries := make([]domain.Entry, len(modelEntries))
	for i := range modelEntries {
		entries[i] = mapping.ToDomainEntry(modelEntries[i])
	}
	return entries, nextTokenVal, nil
}

// FindMovementsByEntryID retrieves all movements of an entry in line order.
func (r *PgxEntryRepository) FindMovementsByEntryID(ctx context.Context, entryID string) ([]domain.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE entry_id = $1 ORDER BY position;`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query movements for entry "+entryID, err)
	}
	defer rows.Close()

	movements := []models.Movement{}
	for rows.Next() {
		var m models.Movement
		err := rows.Scan(
			&m.MovementID,
			&m.EntryID,
			&m.AccountCode,
			&m.Debit,
			&m.Credit,
			&m.NativeAmount,
			&m.RateUsed,
			&m.Position,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan movement row for entry "+entryID, err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating movement rows", err)
	}
	return mapping.ToDomainMovementSlice(movements), nil
}

// FindLedgerLines retrieves the movements of an account within an optional
// date range, POSTED entries only, in the stable ledger order.
func (r *PgxEntryRepository) FindLedgerLines(ctx context.Context, accountCode string, from, to *time.Time) ([]domain.LedgerLine, error) {
	query := `
		SELECT e.entry_id, e.entry_number, e.entry_date, e.description,
		       m.movement_id, m.debit, m.credit, m.native_amount, m.rate_used
		FROM movements m
		JOIN entries e ON e.entry_id = m.entry_id
		WHERE m.account_code = $1 AND e.status = 'POSTED'
	`
	args := []any{accountCode}
	if from != nil {
		args = append(args, *from)
		query += ` AND e.entry_date >= $2`
	}
	if to != nil {
		args = append(args, *to)
		if from != nil {
			query += ` AND e.entry_date <= $3`
		} else {
			query += ` AND e.entry_date <= $2`
		}
	}
	query += ` ORDER BY e.entry_date, e.entry_number, m.position;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger lines for account "+accountCode, err)
	}
	defer rows.Close()

	lines := []domain.LedgerLine{}
	for rows.Next() {
		var l domain.LedgerLine
		err := rows.Scan(
			&l.EntryID,
			&l.EntryNumber,
			&l.EntryDate,
			&l.EntryDescription,
			&l.MovementID,
			&l.Debit,
			&l.Credit,
			&l.NativeAmount,
			&l.RateUsed,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger line for account "+accountCode, err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger line rows", err)
	}
	return lines, nil
}

// SumAccountMovements returns the debit and credit totals of an account for
// movements dated strictly before the given date, POSTED entries only.
func (r *PgxEntryRepository) SumAccountMovements(ctx context.Context, accountCode string, before time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(m.debit), 0), COALESCE(SUM(m.credit), 0)
		FROM movements m
		JOIN entries e ON e.entry_id = m.entry_id
		WHERE m.account_code = $1 AND e.status = 'POSTED' AND e.entry_date < $2;
	`
	var debit, credit decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, accountCode, before).Scan(&debit, &credit)
	if err != nil {
		return decimal.Zero, decimal.Zero, apperrors.NewAppError(500, "failed to sum movements for account "+accountCode, err)
	}
	return debit, credit, nil
}
