package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nvallejos/contable/internal/apperrors"
	"github.com/nvallejos/contable/internal/core/domain"
	portsrepo "github.com/nvallejos/contable/internal/core/ports/repositories"
	portssvc "github.com/nvallejos/contable/internal/core/ports/services"
	"github.com/nvallejos/contable/internal/dto"
)

var (
	ErrUnknownAccount = errors.New("account not found")
	ErrNotImputable   = errors.New("account is a category and cannot receive movements")
)

// chartService provides structural lookup and administration over the chart
// of accounts. It owns no balance logic.
type chartService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewChartService creates a new ChartOfAccountsSvcFacade.
func NewChartService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.ChartOfAccountsSvcFacade {
	return &chartService{accountRepo: accountRepo}
}

var _ portssvc.ChartOfAccountsSvcFacade = (*chartService)(nil)

// CreateAccount persists a new account. The nature defaults to the
// conventional one for the category when not supplied.
func (s *chartService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	if req.ParentCode != "" {
		parent, err := s.accountRepo.FindAccountByCode(ctx, req.ParentCode)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: parent code %s", ErrUnknownAccount, req.ParentCode)
			}
			return nil, fmt.Errorf("failed to resolve parent account: %w", err)
		}
		if parent.Imputable {
			return nil, fmt.Errorf("%w: parent %s is imputable and cannot hold children", apperrors.ErrValidation, req.ParentCode)
		}
	}

	nature := req.Nature
	if nature == "" {
		nature = domain.NatureFor(req.Category)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:    uuid.NewString(),
		Code:         req.Code,
		Name:         req.Name,
		Nature:       nature,
		Category:     req.Category,
		Imputable:    req.Imputable,
		ParentCode:   req.ParentCode,
		RequiresRate: req.RequiresRate,
		Description:  req.Description,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created", slog.String("code", account.Code))
	return &account, nil
}

// GetAccountByCode retrieves a single account by its hierarchical code.
func (s *chartService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, code)
		}
		return nil, fmt.Errorf("failed to find account %s: %w", code, err)
	}
	return account, nil
}

// ListAccounts retrieves a page of the chart ordered by code.
func (s *chartService) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 100
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

// DescendantsOf returns every account nested under the given code. A category
// account's balance is only ever derived by summing its imputable descendants.
func (s *chartService) DescendantsOf(ctx context.Context, code string) ([]domain.Account, error) {
	if _, err := s.GetAccountByCode(ctx, code); err != nil {
		return nil, err
	}
	descendants, err := s.accountRepo.FindDescendants(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to find descendants of %s: %w", code, err)
	}
	if descendants == nil {
		descendants = []domain.Account{}
	}
	return descendants, nil
}

// UpdateAccount updates the mutable fields of an account.
func (s *chartService) UpdateAccount(ctx context.Context, code string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	account, err := s.GetAccountByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		account.Name = *req.Name
		updated = true
	}
	if req.Description != nil {
		account.Description = *req.Description
		updated = true
	}
	if !updated {
		return account, nil
	}

	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("code", code))
		return nil, fmt.Errorf("failed to update account %s: %w", code, err)
	}
	return account, nil
}

// DeactivateAccount marks an account inactive. Accounts are never deleted
// once they carry postings or descendants.
func (s *chartService) DeactivateAccount(ctx context.Context, code string, userID string) error {
	if _, err := s.GetAccountByCode(ctx, code); err != nil {
		return err
	}
	if err := s.accountRepo.DeactivateAccount(ctx, code, userID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("code", code))
		return fmt.Errorf("failed to deactivate account %s: %w", code, err)
	}
	s.LogInfo(ctx, "Account deactivated", slog.String("code", code))
	return nil
}

// ResolveImputable resolves codes to active, imputable accounts in one batch.
func (s *chartService) ResolveImputable(ctx context.Context, codes []string) (map[string]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByCodes(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, code := range codes {
		acc, found := accounts[code]
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, code)
		}
		if !acc.Imputable {
			return nil, fmt.Errorf("%w: %s", ErrNotImputable, code)
		}
		if !acc.IsActive {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, code)
		}
	}
	return accounts, nil
}
