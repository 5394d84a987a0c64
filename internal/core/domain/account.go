package domain

// AccountNature defines which side of an entry increases the account.
// It is the single input of the balance-sign convention; nothing else in the
// codebase may branch on account codes or names to decide signs.
type AccountNature string

const (
	// NatureDebit marks accounts whose balance is sum(debit) - sum(credit).
	NatureDebit AccountNature = "DEBIT"
	// NatureCredit marks accounts whose balance is sum(credit) - sum(debit).
	NatureCredit AccountNature = "CREDIT"
)

// AccountCategory classifies an account for financial statement grouping.
type AccountCategory string

const (
	Asset     AccountCategory = "ASSET"
	Liability AccountCategory = "LIABILITY"
	Equity    AccountCategory = "EQUITY"
	Revenue   AccountCategory = "REVENUE"
	Cost      AccountCategory = "COST"
	Expense   AccountCategory = "EXPENSE"
)

// NatureFor returns the conventional nature for a statement category.
// Used as the default when creating accounts; the stored nature is what the
// balance engine consults.
func NatureFor(category AccountCategory) AccountNature {
	switch category {
	case Asset, Cost, Expense:
		return NatureDebit
	default:
		return NatureCredit
	}
}

// Account represents one node of the chart of accounts.
// Codes are dot-segmented (e.g. "1.1.04.02"); the parent link is weak (by
// code), children are derived by lookup rather than owned collections.
type Account struct {
	AccountID    string          `json:"accountID"`   // Primary key (UUID)
	Code         string          `json:"code"`        // Unique, dot-segmented hierarchy
	Name         string          `json:"name"`        // Display name
	Nature       AccountNature   `json:"nature"`      // DEBIT or CREDIT natured
	Category     AccountCategory `json:"category"`    // Statement classification
	Imputable    bool            `json:"imputable"`   // Only imputable (leaf) accounts receive movements
	ParentCode   string          `json:"parentCode"`  // Nullable weak reference to the parent account
	RequiresRate bool            `json:"requiresRate"` // True when the native currency differs from the reporting currency
	Description  string          `json:"description"`
	IsActive     bool            `json:"isActive"` // Deactivated rather than deleted once referenced
	AuditFields
}
