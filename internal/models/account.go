package models

// AccountNature defines which side of an entry increases the account.
type AccountNature string

// AccountCategory classifies an account for statement grouping.
type AccountCategory string

// Account represents a chart-of-accounts row.
// ParentCode is a weak reference by code; the hierarchy is derived from the
// dot-segmented codes, not from owned collections.
type Account struct {
	AccountID    string          `db:"account_id"`
	Code         string          `db:"code"`
	Name         string          `db:"name"`
	Nature       AccountNature   `db:"nature"`
	Category     AccountCategory `db:"category"`
	Imputable    bool            `db:"imputable"`
	ParentCode   string          `db:"parent_code"` // Nullable
	RequiresRate bool            `db:"requires_rate"`
	Description  string          `db:"description"`
	IsActive     bool            `db:"is_active"`
	AuditFields
}
