package mapping

import (
	"github.com/nvallejos/contable/internal/core/domain"
	"github.com/nvallejos/contable/internal/models"
)

// ToModelEntry converts a domain Entry to a model Entry
func ToModelEntry(d domain.Entry) models.Entry {
	return models.Entry{
		EntryID:             d.EntryID,
		EntryNumber:         d.EntryNumber,
		EntryDate:           d.EntryDate,
		Description:         d.Description,
		Notes:               d.Notes,
		ExchangeRate:        d.ExchangeRate,
		Status:              models.EntryStatus(d.Status),
		SupersededByEntryID: d.SupersededByEntryID,
		SupersedesEntryID:   d.SupersedesEntryID,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEntry converts a model Entry to a domain Entry
func ToDomainEntry(m models.Entry) domain.Entry {
	return domain.Entry{
		EntryID:             m.EntryID,
		EntryNumber:         m.EntryNumber,
		EntryDate:           m.EntryDate,
		Description:         m.Description,
		Notes:               m.Notes,
		ExchangeRate:        m.ExchangeRate,
		Status:              domain.EntryStatus(m.Status),
		SupersededByEntryID: m.SupersededByEntryID,
		SupersedesEntryID:   m.SupersedesEntryID,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelMovement converts a domain Movement to a model Movement
func ToModelMovement(d domain.Movement) models.Movement {
	return models.Movement{
		MovementID:   d.MovementID,
		EntryID:      d.EntryID,
		AccountCode:  d.AccountCode,
		Debit:        d.Debit,
		Credit:       d.Credit,
		NativeAmount: d.NativeAmount,
		RateUsed:     d.RateUsed,
		Position:     d.Position,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMovement converts a model Movement to a domain Movement
func ToDomainMovement(m models.Movement) domain.Movement {
	return domain.Movement{
		MovementID:   m.MovementID,
		EntryID:      m.EntryID,
		AccountCode:  m.AccountCode,
		Debit:        m.Debit,
		Credit:       m.Credit,
		NativeAmount: m.NativeAmount,
		RateUsed:     m.RateUsed,
		Position:     m.Position,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMovementSlice converts a slice of model Movements to domain Movements
func ToDomainMovementSlice(ms []models.Movement) []domain.Movement {
	out := make([]domain.Movement, len(ms))
	for i := range ms {
		out[i] = ToDomainMovement(ms[i])
	}
	return out
}
