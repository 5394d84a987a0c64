package dto

import (
	"time"

	"github.com/nvallejos/contable/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerLineResponse is one ledger line with its post-movement running balance.
type LedgerLineResponse struct {
	EntryNumber      int64            `json:"entryNumber"`
	EntryDate        time.Time        `json:"entryDate"`
	EntryDescription string           `json:"entryDescription"`
	Debit            decimal.Decimal  `json:"debit"`
	Credit           decimal.Decimal  `json:"credit"`
	NativeAmount     *decimal.Decimal `json:"nativeAmount,omitempty"`
	RateUsed         *decimal.Decimal `json:"rateUsed,omitempty"`
	RunningBalance   decimal.Decimal  `json:"runningBalance"`
}

// LedgerResponse is the libro mayor of one account over an optional range.
type LedgerResponse struct {
	AccountCode    string               `json:"accountCode"`
	AccountName    string               `json:"accountName"`
	Nature         domain.AccountNature `json:"nature"`
	From           *time.Time           `json:"from,omitempty"`
	To             *time.Time           `json:"to,omitempty"`
	OpeningBalance decimal.Decimal      `json:"openingBalance"`
	Lines          []LedgerLineResponse `json:"lines"`
	PeriodDebit    decimal.Decimal      `json:"periodDebit"`
	PeriodCredit   decimal.Decimal      `json:"periodCredit"`
	ClosingBalance decimal.Decimal      `json:"closingBalance"`
}

// ToLedgerResponse converts a domain.Ledger to LedgerResponse DTO.
func ToLedgerResponse(l *domain.Ledger) LedgerResponse {
	lines := make([]LedgerLineResponse, len(l.Lines))
	for i, line := range l.Lines {
		lines[i] = LedgerLineResponse{
			EntryNumber:      line.EntryNumber,
			EntryDate:        line.EntryDate,
			EntryDescription: line.EntryDescription,
			Debit:            line.Debit,
			Credit:           line.Credit,
			NativeAmount:     line.NativeAmount,
			RateUsed:         line.RateUsed,
			RunningBalance:   line.RunningBalance,
		}
	}
	return LedgerResponse{
		AccountCode:    l.AccountCode,
		AccountName:    l.AccountName,
		Nature:         l.Nature,
		From:           l.From,
		To:             l.To,
		OpeningBalance: l.OpeningBalance,
		Lines:          lines,
		PeriodDebit:    l.PeriodDebit,
		PeriodCredit:   l.PeriodCredit,
		ClosingBalance: l.ClosingBalance,
	}
}
