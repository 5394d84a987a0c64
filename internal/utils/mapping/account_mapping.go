package mapping

import (
	"github.com/nvallejos/contable/internal/core/domain"
	"github.com/nvallejos/contable/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:    d.AccountID,
		Code:         d.Code,
		Name:         d.Name,
		Nature:       models.AccountNature(d.Nature),
		Category:     models.AccountCategory(d.Category),
		Imputable:    d.Imputable,
		ParentCode:   d.ParentCode,
		RequiresRate: d.RequiresRate,
		Description:  d.Description,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:    m.AccountID,
		Code:         m.Code,
		Name:         m.Name,
		Nature:       domain.AccountNature(m.Nature),
		Category:     domain.AccountCategory(m.Category),
		Imputable:    m.Imputable,
		ParentCode:   m.ParentCode,
		RequiresRate: m.RequiresRate,
		Description:  m.Description,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
