package mapping

import (
	"fmt"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelCheckpoint converts a domain BalanceCheckpoint to a model BalanceCheckpoint
func ToModelCheckpoint(d domain.BalanceCheckpoint) models.BalanceCheckpoint {
	m := models.BalanceCheckpoint{
		CheckpointID: d.CheckpointID,
		ScopeKey:     d.Scope.Key(),
		Year:         d.Year,
		Month:        d.Month,
		Amount:       d.Amount.String(),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
	if d.AmountAlt != nil {
		alt := d.AmountAlt.String()
		m.AmountAlt = &alt
	}
	return m
}

// ToDomainCheckpoint converts a model BalanceCheckpoint to a domain BalanceCheckpoint
func ToDomainCheckpoint(m models.BalanceCheckpoint) (domain.BalanceCheckpoint, error) {
	scope, err := domain.ParseScopeKey(m.ScopeKey)
	if err != nil {
		return domain.BalanceCheckpoint{}, fmt.Errorf("checkpoint %s: %w", m.CheckpointID, err)
	}
	amount, err := decimal.NewFromString(m.Amount)
	if err != nil {
		return domain.BalanceCheckpoint{}, fmt.Errorf("checkpoint %s has invalid amount %q: %w", m.CheckpointID, m.Amount, err)
	}
	d := domain.BalanceCheckpoint{
		CheckpointID: m.CheckpointID,
		Scope:        scope,
		Year:         m.Year,
		Month:        m.Month,
		Amount:       amount,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	if m.AmountAlt != nil {
		alt, err := decimal.NewFromString(*m.AmountAlt)
		if err != nil {
			return domain.BalanceCheckpoint{}, fmt.Errorf("checkpoint %s has invalid alternate amount %q: %w", m.CheckpointID, *m.AmountAlt, err)
		}
		d.AmountAlt = &alt
	}
	return d, nil
}
