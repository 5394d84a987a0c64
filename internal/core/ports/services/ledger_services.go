package services

import (
	"context"
	"time"

	"github.com/nvallejos/contable/internal/core/domain"
)

// LedgerSvcFacade computes the per-account view (libro mayor) on demand from
// the movement history. Results are never cached across calls.
type LedgerSvcFacade interface {
	GetLedger(ctx context.Context, accountCode string, from, to *time.Time) (*domain.Ledger, error)
}
