package mapping

import (
	"github.com/nvallejos/contable/internal/core/domain"
	"github.com/nvallejos/contable/internal/models"
)

// ToModelReconciliation converts a domain Reconciliation to a model Reconciliation
func ToModelReconciliation(d domain.Reconciliation) models.Reconciliation {
	return models.Reconciliation{
		ReconciliationID: d.ReconciliationID,
		AccountCode:      d.AccountCode,
		AsOf:             d.AsOf,
		BookBalance:      d.BookBalance,
		PhysicalBalance:  d.PhysicalBalance,
		Difference:       d.Difference,
		Status:           models.ReconciliationStatus(d.Status),
		Notes:            d.Notes,
		PerformedBy:      d.PerformedBy,
		CreatedAt:        d.CreatedAt,
	}
}

// ToDomainReconciliation converts a model Reconciliation to a domain Reconciliation
func ToDomainReconciliation(m models.Reconciliation) domain.Reconciliation {
	return domain.Reconciliation{
		ReconciliationID: m.ReconciliationID,
		AccountCode:      m.AccountCode,
		AsOf:             m.AsOf,
		BookBalance:      m.BookBalance,
		PhysicalBalance:  m.PhysicalBalance,
		Difference:       m.Difference,
		Status:           domain.ReconciliationStatus(m.Status),
		Notes:            m.Notes,
		PerformedBy:      m.PerformedBy,
		CreatedAt:        m.CreatedAt,
	}
}
