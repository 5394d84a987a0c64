package services

import (
	"context"

	"github.com/nvallejos/contable/internal/core/domain"
	"github.com/nvallejos/contable/internal/dto"
)

// ChartOfAccountsSvcFacade defines the structural lookup and administration
// operations over the chart of accounts. No balance logic lives here.
type ChartOfAccountsSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error)
	DescendantsOf(ctx context.Context, code string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, code string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, code string, userID string) error

	// ResolveImputable resolves the given codes to active accounts, failing
	// when any code is unknown or refers to a category account.
	ResolveImputable(ctx context.Context, codes []string) (map[string]domain.Account, error)
}
