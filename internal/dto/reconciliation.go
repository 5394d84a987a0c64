package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateReconciliationRequest defines the payload for reconciling an account.
// PhysicalBalance is in the account's native currency when the account
// requires a rate; Rate then converts it to the reporting currency.
type CreateReconciliationRequest struct {
	AsOf            time.Time        `json:"asOf" binding:"required"`
	PhysicalBalance decimal.Decimal  `json:"physicalBalance" binding:"required"`
	Rate            *decimal.Decimal `json:"rate,omitempty"`
	Notes           string           `json:"notes"`
}
