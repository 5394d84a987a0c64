package services

import (
	"context"

	"github.com/nvallejos/contable/internal/core/domain"
	"github.com/nvallejos/contable/internal/dto"
)

// EntrySvcFacade defines journal entry construction, retrieval and the
// time-windowed correction workflow.
type EntrySvcFacade interface {
	// PostEntry validates, converts and persists a new balanced entry.
	// A returned entry always satisfies the balance invariant.
	PostEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.Entry, error)

	// GetEntryByID retrieves an entry with its movements populated.
	GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)

	// ListEntries retrieves the libro diario, newest first, with cursor
	// pagination.
	ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)

	// CorrectEntry supersedes a posted entry with a replacement carrying the
	// corrected movements. The original is never mutated beyond its status
	// and forward link.
	CorrectEntry(ctx context.Context, entryID string, req dto.CorrectEntryRequest, userID string) (*domain.Entry, error)
}
