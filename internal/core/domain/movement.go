package domain

import "github.com/shopspring/decimal"

// Movement represents a single debit-or-credit line within an Entry, tied to
// one imputable account. Amounts are always stored in the reporting currency;
// when the account holds a secondary currency the original native amount and
// the rate used are preserved for audit and display.
//
// Invariant: exactly one of Debit/Credit is nonzero, never both.
type Movement struct {
	MovementID  string          `json:"movementID"`  // Primary key (UUID)
	EntryID     string          `json:"entryID"`     // FK -> Entry.entryID
	AccountCode string          `json:"accountCode"` // FK -> Account.code (imputable only)
	Debit       decimal.Decimal `json:"debit"`       // Reporting currency
	Credit      decimal.Decimal `json:"credit"`      // Reporting currency
	// NativeAmount and RateUsed are set only for accounts with RequiresRate.
	// NativeAmount / RateUsed must reproduce the reporting amount within
	// rounding tolerance.
	NativeAmount *decimal.Decimal `json:"nativeAmount,omitempty"`
	RateUsed     *decimal.Decimal `json:"rateUsed,omitempty"`
	Position     int              `json:"position"` // Line order within the entry
	AuditFields
}

// Amount returns the nonzero side of the movement.
func (m Movement) Amount() decimal.Decimal {
	if m.Debit.IsZero() {
		return m.Credit
	}
	return m.Debit
}

// IsDebit reports whether the movement sits on the debit side.
func (m Movement) IsDebit() bool {
	return !m.Debit.IsZero()
}
