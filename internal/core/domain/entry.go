package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry.
type EntryStatus string

const (
	Posted     EntryStatus = "POSTED"
	Superseded EntryStatus = "SUPERSEDED"
)

// Entry represents a single, balanced journal entry (asiento) composed of
// multiple movements. Entries are immutable once posted: a correction marks
// the original SUPERSEDED and links it to a replacement entry, it never
// rewrites history.
type Entry struct {
	EntryID     string      `json:"entryID"`     // Primary key (UUID)
	EntryNumber int64       `json:"entryNumber"` // Monotonic, gapless sequential number
	EntryDate   time.Time   `json:"entryDate"`   // Date the economic event occurred
	Description string      `json:"description"`
	Notes       string      `json:"notes"`
	// ExchangeRate is the entry-level rate applied to movements on accounts
	// that require conversion, unless the movement carries its own rate.
	ExchangeRate *decimal.Decimal `json:"exchangeRate,omitempty"`
	Status       EntryStatus      `json:"status"`

	// Correction links. SupersededByEntryID is set on the original when it is
	// corrected; SupersedesEntryID is set on the replacement.
	SupersededByEntryID *string `json:"supersededByEntryID,omitempty"`
	SupersedesEntryID   *string `json:"supersedesEntryID,omitempty"`

	AuditFields
	Movements []Movement `json:"movements,omitempty"` // Often loaded separately
}
