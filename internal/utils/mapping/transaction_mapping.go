package mapping

import (
	"fmt"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		TxnDate:       domain.TruncateToDate(d.Date),
		Description:   d.Description,
		Category:      d.Category,
		Amount:        d.Amount.String(),
		TxnType:       string(d.Type),
		PaymentMethod: d.PaymentMethod,
		Currency:      string(d.Currency),
		Status:        string(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
// It fails only when the stored amount is not a number; type, currency and
// status are passed through for the classifier to normalize.
func ToDomainTransaction(m models.Transaction) (domain.Transaction, error) {
	amount, err := decimal.NewFromString(m.Amount)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("transaction %s has invalid amount %q: %w", m.TransactionID, m.Amount, err)
	}
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Date:          domain.TruncateToDate(m.TxnDate),
		Description:   m.Description,
		Category:      m.Category,
		Amount:        amount,
		Type:          domain.TransactionType(m.TxnType),
		PaymentMethod: m.PaymentMethod,
		Currency:      domain.Currency(m.Currency),
		Status:        domain.Status(m.Status),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}, nil
}
