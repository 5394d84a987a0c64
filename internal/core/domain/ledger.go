package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerLine is one movement of an account annotated with the running balance
// after the movement is applied. Lines are produced in chronological order
// (entry date, then entry number, then position); display layers may reverse
// them, the arithmetic never does.
type LedgerLine struct {
	EntryID          string           `json:"entryID"`
	EntryNumber      int64            `json:"entryNumber"`
	EntryDate        time.Time        `json:"entryDate"`
	EntryDescription string           `json:"entryDescription"`
	MovementID       string           `json:"movementID"`
	Debit            decimal.Decimal  `json:"debit"`
	Credit           decimal.Decimal  `json:"credit"`
	NativeAmount     *decimal.Decimal `json:"nativeAmount,omitempty"`
	RateUsed         *decimal.Decimal `json:"rateUsed,omitempty"`
	RunningBalance   decimal.Decimal  `json:"runningBalance"`
}

// Ledger is the per-account view (libro mayor) over an optional date range.
// Balances are signed by the account's nature; a balance whose sign is
// opposite to the nature is a legitimate output, never clamped.
type Ledger struct {
	AccountCode    string          `json:"accountCode"`
	AccountName    string          `json:"accountName"`
	Nature         AccountNature   `json:"nature"`
	From           *time.Time      `json:"from,omitempty"`
	To             *time.Time      `json:"to,omitempty"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Lines          []LedgerLine    `json:"lines"`
	PeriodDebit    decimal.Decimal `json:"periodDebit"`
	PeriodCredit   decimal.Decimal `json:"periodCredit"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}
