package repositories

import (
	"context"
	"time"

	"github.com/nvallejos/contable/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryReader defines read operations for journal entry data
type EntryReader interface {
	// FindEntryByID retrieves a specific entry by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)

	// FindEntryByNumber retrieves an entry by its sequential number.
	FindEntryByNumber(ctx context.Context, entryNumber int64) (*domain.Entry, error)

	// ListEntries retrieves a paginated list of entries, most recent first,
	// using token-based pagination. Superseded entries are included only when
	// requested; they remain retrievable for audit either way.
	ListEntries(ctx context.Context, limit int, nextToken *string, includeSuperseded bool) ([]domain.Entry, *string, error)
}

// EntryWriter defines write operations for journal entry data.
// Both operations run under a database transaction: entry-number assignment
// and the supersede transition are the only serialization points of the engine.
type EntryWriter interface {
	// SaveEntry assigns the next gapless entry number and persists the entry
	// with all its movements atomically. It returns the assigned number.
	SaveEntry(ctx context.Context, entry domain.Entry, movements []domain.Movement) (int64, error)

	// SupersedeAndReplace atomically marks the original entry SUPERSEDED,
	// persists the replacement (with a fresh entry number) linked back to the
	// original, and returns the replacement's assigned number.
	SupersedeAndReplace(ctx context.Context, originalEntryID string, replacement domain.Entry, movements []domain.Movement) (int64, error)
}

// MovementReader defines read operations for movement data
type MovementReader interface {
	// FindMovementsByEntryID retrieves all movements of a single entry in
	// line order.
	FindMovementsByEntryID(ctx context.Context, entryID string) ([]domain.Movement, error)

	// FindLedgerLines retrieves the movements of an account within [from, to]
	// (either bound optional), POSTED entries only, ordered by entry date,
	// entry number, then position. RunningBalance is left zero; the ledger
	// service computes it.
	FindLedgerLines(ctx context.Context, accountCode string, from, to *time.Time) ([]domain.LedgerLine, error)

	// SumAccountMovements returns the debit and credit totals of an account
	// for movements dated strictly before the given date, POSTED entries only.
	SumAccountMovements(ctx context.Context, accountCode string, before time.Time) (debit, credit decimal.Decimal, err error)
}

// EntryRepositoryFacade combines all entry-related repository interfaces
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
	MovementReader
}
