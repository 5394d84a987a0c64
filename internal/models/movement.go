package models

import "github.com/shopspring/decimal"

// Movement represents one debit-or-credit line of an entry. Debit and Credit
// are reporting-currency amounts; native_amount and rate_used are populated
// only for secondary-currency accounts.
type Movement struct {
	MovementID   string           `db:"movement_id"`
	EntryID      string           `db:"entry_id"`
	AccountCode  string           `db:"account_code"`
	Debit        decimal.Decimal  `db:"debit"`
	Credit       decimal.Decimal  `db:"credit"`
	NativeAmount *decimal.Decimal `db:"native_amount"` // Nullable
	RateUsed     *decimal.Decimal `db:"rate_used"`     // Nullable
	Position     int              `db:"position"`
	AuditFields
}
