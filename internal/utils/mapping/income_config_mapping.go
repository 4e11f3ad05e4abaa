package mapping

import (
	"fmt"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelIncomeConfig converts a domain IncomeConfig to a model IncomeConfig
func ToModelIncomeConfig(d domain.IncomeConfig) models.IncomeConfig {
	return models.IncomeConfig{
		ConfigID:    d.ConfigID,
		Name:        d.Name,
		Amount:      d.Amount.String(),
		DayOfMonth:  d.DayOfMonth,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainIncomeConfig converts a model IncomeConfig to a domain IncomeConfig
func ToDomainIncomeConfig(m models.IncomeConfig) (domain.IncomeConfig, error) {
	amount, err := decimal.NewFromString(m.Amount)
	if err != nil {
		return domain.IncomeConfig{}, fmt.Errorf("income config %s has invalid amount %q: %w", m.ConfigID, m.Amount, err)
	}
	return domain.IncomeConfig{
		ConfigID:    m.ConfigID,
		Name:        m.Name,
		Amount:      amount,
		DayOfMonth:  m.DayOfMonth,
		Status:      domain.Status(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToModelBank converts a domain Bank to a model Bank
func ToModelBank(d domain.Bank) models.Bank {
	return models.Bank{
		BankID:      d.BankID,
		Name:        d.Name,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBank converts a model Bank to a domain Bank
func ToDomainBank(m models.Bank) domain.Bank {
	return domain.Bank{
		BankID:      m.BankID,
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBankSlice converts a slice of model Banks to a slice of domain Banks
func ToDomainBankSlice(ms []models.Bank) []domain.Bank {
	ds := make([]domain.Bank, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBank(m)
	}
	return ds
}
