package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry row.
type EntryStatus string

const (
	Posted     EntryStatus = "POSTED"
	Superseded EntryStatus = "SUPERSEDED"
)

// Entry represents a journal entry row. EntryNumber comes from the gapless
// sequence table and is assigned inside the insert transaction.
type Entry struct {
	EntryID             string           `db:"entry_id"`
	EntryNumber         int64            `db:"entry_number"`
	EntryDate           time.Time        `db:"entry_date"`
	Description         string           `db:"description"`
	Notes               string           `db:"notes"`
	ExchangeRate        *decimal.Decimal `db:"exchange_rate"` // Nullable
	Status              EntryStatus      `db:"status"`
	SupersededByEntryID *string          `db:"superseded_by_entry_id"` // Nullable
	SupersedesEntryID   *string          `db:"supersedes_entry_id"`    // Nullable
	AuditFields
}
