package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nvallejos/contable/internal/core/domain"
	portsrepo "github.com/nvallejos/contable/internal/core/ports/repositories"
	portssvc "github.com/nvallejos/contable/internal/core/ports/services"
	"github.com/nvallejos/contable/internal/utils/accounting"
)

// ledgerService computes the libro mayor for one account at a time. Balances
// are always recomputed from the movement history on every call; nothing is
// cached, so a superseded entry disappears from the next read immediately.
type ledgerService struct {
	BaseService
	chartSvc  portssvc.ChartOfAccountsSvcFacade
	entryRepo portsrepo.EntryRepositoryFacade
}

// NewLedgerService creates a new LedgerSvcFacade.
func NewLedgerService(entryRepo portsrepo.EntryRepositoryFacade, chartSvc portssvc.ChartOfAccountsSvcFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{chartSvc: chartSvc, entryRepo: entryRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// GetLedger builds the per-account ledger over an optional [from, to] range.
// The opening balance folds every movement dated before the range start; each
// line then carries the running balance after it, signed by the account's
// nature. A balance on the "wrong" side of the nature is reported as-is.
func (s *ledgerService) GetLedger(ctx context.Context, accountCode string, from, to *time.Time) (*domain.Ledger, error) {
	account, err := s.chartSvc.GetAccountByCode(ctx, accountCode)
	if err != nil {
		return nil, err
	}
	if !account.Imputable {
		return nil, fmt.Errorf("%w: %s", ErrNotImputable, accountCode)
	}

	opening := decimal.Zero
	if from != nil {
		debit, credit, err := s.entryRepo.SumAccountMovements(ctx, accountCode, *from)
		if err != nil {
			return nil, fmt.Errorf("failed to compute opening balance for %s: %w", accountCode, err)
		}
		opening, err = accounting.SignedBalance(account.Nature, debit, credit)
		if err != nil {
			return nil, err
		}
	}

	lines, err := s.entryRepo.FindLedgerLines(ctx, accountCode, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ledger lines for %s: %w", accountCode, err)
	}

	periodDebit := decimal.Zero
	periodCredit := decimal.Zero
	running := opening
	for i := range lines {
		periodDebit = periodDebit.Add(lines[i].Debit)
		periodCredit = periodCredit.Add(lines[i].Credit)

		delta, err := accounting.SignedBalance(account.Nature, lines[i].Debit, lines[i].Credit)
		if err != nil {
			return nil, err
		}
		running = accounting.Round2(running.Add(delta))
		lines[i].RunningBalance = running
	}

	return &domain.Ledger{
		AccountCode:    account.Code,
		AccountName:    account.Name,
		Nature:         account.Nature,
		From:           from,
		To:             to,
		OpeningBalance: opening,
		Lines:          lines,
		PeriodDebit:    accounting.Round2(periodDebit),
		PeriodCredit:   accounting.Round2(periodCredit),
		ClosingBalance: running,
	}, nil
}
