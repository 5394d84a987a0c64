package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReconciliationStatus is the recorded outcome of a cash count.
type ReconciliationStatus string

// Reconciliation represents an append-only cash count row. There are no
// update or delete paths for this table.
type Reconciliation struct {
	ReconciliationID string               `db:"reconciliation_id"`
	AccountCode      string               `db:"account_code"`
	AsOf             time.Time            `db:"as_of"`
	BookBalance      decimal.Decimal      `db:"book_balance"`
	PhysicalBalance  decimal.Decimal      `db:"physical_balance"`
	Difference       decimal.Decimal      `db:"difference"`
	Status           ReconciliationStatus `db:"status"`
	Notes            string               `db:"notes"`
	PerformedBy      string               `db:"performed_by"`
	CreatedAt        time.Time            `db:"created_at"`
}
