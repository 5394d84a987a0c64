package dto

import (
	"github.com/nvallejos/contable/internal/core/domain"
)

// CreateAccountRequest defines the payload for creating an account.
type CreateAccountRequest struct {
	Code         string                 `json:"code" binding:"required,accountcode"`
	Name         string                 `json:"name" binding:"required"`
	Category     domain.AccountCategory `json:"category" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE COST EXPENSE"`
	Nature       domain.AccountNature   `json:"nature" binding:"omitempty,oneof=DEBIT CREDIT"` // Defaults to the category's conventional nature
	Imputable    bool                   `json:"imputable"`
	ParentCode   string                 `json:"parentCode" binding:"omitempty,accountcode"`
	RequiresRate bool                   `json:"requiresRate"`
	Description  string                 `json:"description"`
}

// UpdateAccountRequest defines the payload for updating mutable account fields.
// Code, nature and category are fixed at creation.
type UpdateAccountRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	Code         string                 `json:"code"`
	Name         string                 `json:"name"`
	Nature       domain.AccountNature   `json:"nature"`
	Category     domain.AccountCategory `json:"category"`
	Imputable    bool                   `json:"imputable"`
	ParentCode   string                 `json:"parentCode,omitempty"`
	RequiresRate bool                   `json:"requiresRate"`
	Description  string                 `json:"description,omitempty"`
	IsActive     bool                   `json:"isActive"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		Code:         a.Code,
		Name:         a.Name,
		Nature:       a.Nature,
		Category:     a.Category,
		Imputable:    a.Imputable,
		ParentCode:   a.ParentCode,
		RequiresRate: a.RequiresRate,
		Description:  a.Description,
		IsActive:     a.IsActive,
	}
}

// ToAccountResponses converts a slice of domain.Account to []AccountResponse.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
