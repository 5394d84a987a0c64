package dto

import (
	"time"

	"github.com/nvallejos/contable/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MovementSide is the debit/credit selector on a proposed movement.
type MovementSide string

const (
	SideDebit  MovementSide = "DEBIT"
	SideCredit MovementSide = "CREDIT"
)

// CreateMovementRequest is one proposed line of an entry. The amount is given
// either in the reporting currency (Amount) or in the account's native
// currency (NativeAmount, converted with Rate or the entry-level rate).
type CreateMovementRequest struct {
	AccountCode  string           `json:"accountCode" binding:"required,accountcode"`
	Side         MovementSide     `json:"side" binding:"required,oneof=DEBIT CREDIT"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	NativeAmount *decimal.Decimal `json:"nativeAmount,omitempty"`
	Rate         *decimal.Decimal `json:"rate,omitempty"` // Movement-level rate, takes precedence over the entry-level rate
}

// CreateEntryRequest defines the payload for posting a journal entry.
type CreateEntryRequest struct {
	Date         time.Time               `json:"date" binding:"required"`
	Description  string                  `json:"description" binding:"required"`
	Notes        string                  `json:"notes"`
	ExchangeRate *decimal.Decimal        `json:"exchangeRate,omitempty"`
	Movements    []CreateMovementRequest `json:"movements" binding:"required,min=2,dive"`
}

// CorrectEntryRequest defines the payload for correcting a posted entry.
// The replacement movements are validated exactly like a new entry's.
type CorrectEntryRequest struct {
	Description  string                  `json:"description" binding:"required"`
	Notes        string                  `json:"notes"`
	ExchangeRate *decimal.Decimal        `json:"exchangeRate,omitempty"`
	Movements    []CreateMovementRequest `json:"movements" binding:"required,min=2,dive"`
	// Override skips the correction window check. Whether the caller holds
	// that privilege is decided by the outer layer, not the engine.
	Override bool `json:"override"`
}

// MovementResponse defines the data returned for a movement.
type MovementResponse struct {
	MovementID   string           `json:"movementID"`
	AccountCode  string           `json:"accountCode"`
	Debit        decimal.Decimal  `json:"debit"`
	Credit       decimal.Decimal  `json:"credit"`
	NativeAmount *decimal.Decimal `json:"nativeAmount,omitempty"`
	RateUsed     *decimal.Decimal `json:"rateUsed,omitempty"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID             string             `json:"entryID"`
	EntryNumber         int64              `json:"entryNumber"`
	Date                time.Time          `json:"date"`
	Description         string             `json:"description"`
	Notes               string             `json:"notes,omitempty"`
	Status              domain.EntryStatus `json:"status"`
	SupersededByEntryID *string            `json:"supersededByEntryID,omitempty"`
	SupersedesEntryID   *string            `json:"supersedesEntryID,omitempty"`
	CreatedAt           time.Time          `json:"createdAt"`
	CreatedBy           string             `json:"createdBy"`
	Movements           []MovementResponse `json:"movements,omitempty"`
}

// ListEntriesParams holds parameters for listing journal entries.
type ListEntriesParams struct {
	Limit             int     `form:"limit"`
	NextToken         *string `form:"nextToken"`
	IncludeSuperseded bool    `form:"includeSuperseded"`
	IncludeMovements  bool    `form:"includeMovements"`
}

// ListEntriesResponse is the paginated libro diario page.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToMovementResponse converts a domain.Movement to MovementResponse DTO.
func ToMovementResponse(m *domain.Movement) MovementResponse {
	return MovementResponse{
		MovementID:   m.MovementID,
		AccountCode:  m.AccountCode,
		Debit:        m.Debit,
		Credit:       m.Credit,
		NativeAmount: m.NativeAmount,
		RateUsed:     m.RateUsed,
	}
}

// ToEntryResponse converts a domain.Entry to EntryResponse DTO.
func ToEntryResponse(e *domain.Entry) EntryResponse {
	resp := EntryResponse{
		EntryID:             e.EntryID,
		EntryNumber:         e.EntryNumber,
		Date:                e.EntryDate,
		Description:         e.Description,
		Notes:               e.Notes,
		Status:              e.Status,
		SupersededByEntryID: e.SupersededByEntryID,
		SupersedesEntryID:   e.SupersedesEntryID,
		CreatedAt:           e.CreatedAt,
		CreatedBy:           e.CreatedBy,
	}
	if len(e.Movements) > 0 {
		resp.Movements = make([]MovementResponse, len(e.Movements))
		for i := range e.Movements {
			resp.Movements[i] = ToMovementResponse(&e.Movements[i])
		}
	}
	return resp
}
