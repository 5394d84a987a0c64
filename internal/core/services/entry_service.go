package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nvallejos/contable/internal/apperrors"
	"github.com/nvallejos/contable/internal/core/domain"
	portsrepo "github.com/nvallejos/contable/internal/core/ports/repositories"
	portssvc "github.com/nvallejos/contable/internal/core/ports/services"
	"github.com/nvallejos/contable/internal/dto"
	"github.com/nvallejos/contable/internal/utils/accounting"
)

// entryBalanceTolerance is the maximum allowed |sum(debit) - sum(credit)| for
// an entry to be considered balanced, in reporting-currency units. Pinned by
// tests on both sides of the boundary. The reconciliation workflow uses its
// own, wider tolerance; the two are deliberately separate constants.
var entryBalanceTolerance = decimal.RequireFromString("0.01")

var (
	ErrEntryMinMovements   = errors.New("entry must have at least two movements")
	ErrEntryMinAccounts    = errors.New("entry must affect at least two different accounts")
	ErrDescriptionMissing  = errors.New("entry description is required")
	ErrMissingExchangeRate = errors.New("exchange rate required for account in secondary currency")
	ErrUnbalancedEntry     = errors.New("entry debits and credits do not balance")
	ErrEntryLocked         = errors.New("entry is outside the correction window")
	ErrAlreadySuperseded   = errors.New("entry has already been superseded")
)

// UnbalancedEntryError carries the computed imbalance so callers can surface
// it; the engine never silently corrects an unbalanced entry.
type UnbalancedEntryError struct {
	Debits     decimal.Decimal
	Credits    decimal.Decimal
	Difference decimal.Decimal
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("entry debits and credits do not balance: debits %s, credits %s, difference %s",
		e.Debits.String(), e.Credits.String(), e.Difference.String())
}

func (e *UnbalancedEntryError) Is(target error) bool {
	return target == ErrUnbalancedEntry
}

// entryService provides journal entry posting and the correction workflow.
type entryService struct {
	BaseService
	chartSvc         portssvc.ChartOfAccountsSvcFacade
	entryRepo        portsrepo.EntryRepositoryFacade
	correctionWindow time.Duration
	now              func() time.Time
}

// NewEntryService creates a new EntrySvcFacade. correctionWindowDays bounds
// how long after creation an entry may still be corrected without override.
func NewEntryService(entryRepo portsrepo.EntryRepositoryFacade, chartSvc portssvc.ChartOfAccountsSvcFacade, correctionWindowDays int) portssvc.EntrySvcFacade {
	return &entryService{
		chartSvc:         chartSvc,
		entryRepo:        entryRepo,
		correctionWindow: time.Duration(correctionWindowDays) * 24 * time.Hour,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

// buildMovements resolves, converts and validates the proposed movements of
// an entry. Amounts end up in the reporting currency, rounded once; native
// amounts and rates are preserved for audit.
func (s *entryService) buildMovements(reqs []dto.CreateMovementRequest, entryRate *decimal.Decimal, accounts map[string]domain.Account, entryID string, userID string, now time.Time) ([]domain.Movement, error) {
	movements := make([]domain.Movement, len(reqs))
	for i, m := range reqs {
		acc := accounts[m.AccountCode] // Resolved by the caller

		var reportingAmount decimal.Decimal
		var nativeAmount, rateUsed *decimal.Decimal

		switch {
		case m.NativeAmount != nil:
			if !acc.RequiresRate {
				return nil, fmt.Errorf("%w: account %s holds the reporting currency, native amount not allowed", apperrors.ErrValidation, m.AccountCode)
			}
			// Movement-level rate takes precedence over the entry-level rate.
			rate := m.Rate
			if rate == nil {
				rate = entryRate
			}
			if rate == nil {
				if m.NativeAmount.IsZero() {
					return nil, fmt.Errorf("%w: zero amount for account %s", apperrors.ErrValidation, m.AccountCode)
				}
				return nil, fmt.Errorf("%w: account %s", ErrMissingExchangeRate, m.AccountCode)
			}
			converted, err := accounting.ToReportingCurrency(*m.NativeAmount, *rate)
			if err != nil {
				return nil, fmt.Errorf("movement for account %s: %w", m.AccountCode, err)
			}
			reportingAmount = converted
			nativeAmount = m.NativeAmount
			rateUsed = rate
		case m.Amount != nil:
			reportingAmount = accounting.Round2(*m.Amount)
		default:
			return nil, fmt.Errorf("%w: movement for account %s carries no amount", apperrors.ErrValidation, m.AccountCode)
		}

		if reportingAmount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: movement amount must be positive for account %s", apperrors.ErrValidation, m.AccountCode)
		}

		movement := domain.Movement{
			MovementID:   uuid.NewString(),
			EntryID:      entryID,
			AccountCode:  m.AccountCode,
			NativeAmount: nativeAmount,
			RateUsed:     rateUsed,
			Position:     i,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
		// Exactly one side is nonzero, never both.
		if m.Side == dto.SideDebit {
			movement.Debit = reportingAmount
			movement.Credit = decimal.Zero
		} else {
			movement.Debit = decimal.Zero
			movement.Credit = reportingAmount
		}
		movements[i] = movement
	}
	return movements, nil
}

// validateBalance checks the fundamental invariant: debits equal credits in
// reporting currency within the tolerance. Each amount was rounded when the
// movement was built; the sums are rounded again before comparing.
func (s *entryService) validateBalance(movements []domain.Movement) error {
	debits := decimal.Zero
	credits := decimal.Zero
	for _, m := range movements {
		debits = debits.Add(m.Debit)
		credits = credits.Add(m.Credit)
	}
	debits = accounting.Round2(debits)
	credits = accounting.Round2(credits)

	diff := debits.Sub(credits).Abs()
	if diff.GreaterThan(entryBalanceTolerance) {
		return &UnbalancedEntryError{Debits: debits, Credits: credits, Difference: diff}
	}
	return nil
}

// validateAndBuild runs the shared posting pipeline: structural checks,
// account resolution, conversion and the balance invariant.
func (s *entryService) validateAndBuild(ctx context.Context, date time.Time, description string, movementReqs []dto.CreateMovementRequest, entryRate *decimal.Decimal, entryID string, userID string, now time.Time) ([]domain.Movement, error) {
	if len(movementReqs) < 2 {
		return nil, ErrEntryMinMovements
	}

	codeSet := make(map[string]struct{})
	codes := make([]string, 0, len(movementReqs))
	for _, m := range movementReqs {
		if _, ok := codeSet[m.AccountCode]; !ok {
			codeSet[m.AccountCode] = struct{}{}
			codes = append(codes, m.AccountCode)
		}
	}
	if len(codes) < 2 {
		return nil, ErrEntryMinAccounts
	}

	if description == "" {
		return nil, ErrDescriptionMissing
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: entry date is required", apperrors.ErrValidation)
	}

	accounts, err := s.chartSvc.ResolveImputable(ctx, codes)
	if err != nil {
		return nil, err
	}

	movements, err := s.buildMovements(movementReqs, entryRate, accounts, entryID, userID, now)
	if err != nil {
		return nil, err
	}

	if err := s.validateBalance(movements); err != nil {
		return nil, err
	}
	return movements, nil
}

// PostEntry creates a new journal entry with its movements after validation.
// There is no code path that persists an unbalanced entry: the repository is
// only reached after the balance invariant holds, and it persists the entry
// and all movements in one transaction.
func (s *entryService) PostEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.Entry, error) {
	now := s.now()
	entryID := uuid.NewString()

	movements, err := s.validateAndBuild(ctx, req.Date, req.Description, req.Movements, req.ExchangeRate, entryID, creatorUserID, now)
	if err != nil {
		return nil, err
	}

	entry := domain.Entry{
		EntryID:      entryID,
		EntryDate:    req.Date,
		Description:  req.Description,
		Notes:        req.Notes,
		ExchangeRate: req.ExchangeRate,
		Status:       domain.Posted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	number, err := s.entryRepo.SaveEntry(ctx, entry, movements)
	if err != nil {
		s.LogError(ctx, err, "Failed to save entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}
	entry.EntryNumber = number
	entry.Movements = movements

	s.LogInfo(ctx, "Entry posted", slog.String("entry_id", entryID), slog.Int64("entry_number", number))
	return &entry, nil
}

// GetEntryByID retrieves an entry together with its movements.
func (s *entryService) GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find entry", slog.String("entry_id", entryID))
		}
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}

	movements, err := s.entryRepo.FindMovementsByEntryID(ctx, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch movements for entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to retrieve movements for entry %s: %w", entryID, err)
	}
	entry.Movements = movements
	return entry, nil
}

// ListEntries retrieves a page of the libro diario, most recent first.
func (s *entryService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	entries, nextToken, err := s.entryRepo.ListEntries(ctx, limit, params.NextToken, params.IncludeSuperseded)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries")
		return nil, fmt.Errorf("failed to retrieve entries: %w", err)
	}

	responses := make([]dto.EntryResponse, len(entries))
	for i := range entries {
		if params.IncludeMovements {
			movements, err := s.entryRepo.FindMovementsByEntryID(ctx, entries[i].EntryID)
			if err != nil {
				s.LogWarn(ctx, "Failed to fetch movements for entry", slog.String("entry_id", entries[i].EntryID), slog.String("error", err.Error()))
			} else {
				entries[i].Movements = movements
			}
		}
		responses[i] = dto.ToEntryResponse(&entries[i])
	}

	return &dto.ListEntriesResponse{Entries: responses, NextToken: nextToken}, nil
}

// CorrectEntry supersedes a posted entry with a replacement carrying the
// corrected movements. History is append-only: the original keeps its number
// and movements, gains a SUPERSEDED status and a forward link, and drops out
// of every subsequent balance computation.
func (s *entryService) CorrectEntry(ctx context.Context, entryID string, req dto.CorrectEntryRequest, userID string) (*domain.Entry, error) {
	original, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find entry for correction", slog.String("entry_id", entryID))
		}
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}

	if original.Status != domain.Posted {
		return nil, fmt.Errorf("%w: entry %d", ErrAlreadySuperseded, original.EntryNumber)
	}

	now := s.now()
	if !req.Override && now.Sub(original.CreatedAt) > s.correctionWindow {
		return nil, fmt.Errorf("%w: entry %d was created %s ago", ErrEntryLocked, original.EntryNumber, now.Sub(original.CreatedAt).Round(time.Hour))
	}

	replacementID := uuid.NewString()
	movements, err := s.validateAndBuild(ctx, original.EntryDate, req.Description, req.Movements, req.ExchangeRate, replacementID, userID, now)
	if err != nil {
		return nil, err
	}

	replacement := domain.Entry{
		EntryID:           replacementID,
		EntryDate:         original.EntryDate,
		Description:       req.Description,
		Notes:             req.Notes,
		ExchangeRate:      req.ExchangeRate,
		Status:            domain.Posted,
		SupersedesEntryID: &original.EntryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	number, err := s.entryRepo.SupersedeAndReplace(ctx, original.EntryID, replacement, movements)
	if err != nil {
		s.LogError(ctx, err, "Failed to supersede entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to supersede entry %s: %w", entryID, err)
	}
	replacement.EntryNumber = number
	replacement.Movements = movements

	s.LogInfo(ctx, "Entry corrected",
		slog.String("original_entry_id", original.EntryID),
		slog.Int64("original_entry_number", original.EntryNumber),
		slog.Int64("replacement_entry_number", number))
	return &replacement, nil
}
