package amqp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// TransactionCreatedEvent is the message type of a new ledger entry.
const TransactionCreatedEvent = "transaction.created"

// TransactionCreatedMessage announces a ledger entry to downstream consumers.
// Amounts travel as strings to keep their exact decimal value.
type TransactionCreatedMessage struct {
	Event         string    `json:"event"`
	TransactionID string    `json:"transactionID"`
	Date          string    `json:"date"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Amount        string    `json:"amount"`
	Type          string    `json:"type"`
	PaymentMethod string    `json:"paymentMethod"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	CreatedBy     string    `json:"createdBy"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewTransactionCreatedMessage builds the message for txn.
func NewTransactionCreatedMessage(txn domain.Transaction, now time.Time) *TransactionCreatedMessage {
	return &TransactionCreatedMessage{
		Event:         TransactionCreatedEvent,
		TransactionID: txn.TransactionID,
		Date:          txn.Date.Format(domain.DateLayout),
		Description:   txn.Description,
		Category:      txn.Category,
		Amount:        txn.Amount.String(),
		Type:          string(txn.Type),
		PaymentMethod: txn.PaymentMethod,
		Currency:      string(txn.Currency),
		Status:        string(txn.Status),
		CreatedBy:     txn.CreatedBy,
		Timestamp:     now,
	}
}

// ToJSON converts the message to JSON bytes
func (m *TransactionCreatedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionCreatedMessageFromJSON decodes a message body.
func TransactionCreatedMessageFromJSON(data []byte) (*TransactionCreatedMessage, error) {
	var msg TransactionCreatedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("decode %s message: %w", TransactionCreatedEvent, err)
	}
	return &msg, nil
}
