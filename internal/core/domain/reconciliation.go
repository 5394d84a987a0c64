package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReconciliationStatus is the outcome of comparing book vs physical balances.
type ReconciliationStatus string

const (
	Reconciled ReconciliationStatus = "RECONCILED"
	Variance   ReconciliationStatus = "VARIANCE"
)

// Reconciliation records one comparison of the ledger-computed balance of a
// cash-like account against a physically counted balance. Records are
// append-only: a correction is a new record, a discovered variance is fixed
// (if at all) through an ordinary journal entry elsewhere.
type Reconciliation struct {
	ReconciliationID string               `json:"reconciliationID"` // Primary key (UUID)
	AccountCode      string               `json:"accountCode"`
	AsOf             time.Time            `json:"asOf"`
	BookBalance      decimal.Decimal      `json:"bookBalance"`     // Ledger closing balance, reporting currency
	PhysicalBalance  decimal.Decimal      `json:"physicalBalance"` // Counted balance, converted to reporting currency
	Difference       decimal.Decimal      `json:"difference"`      // physical - book, signed
	Status           ReconciliationStatus `json:"status"`
	Notes            string               `json:"notes"`
	PerformedBy      string               `json:"performedBy"`
	CreatedAt        time.Time            `json:"createdAt"`
}
