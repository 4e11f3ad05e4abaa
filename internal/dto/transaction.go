package dto

import (
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a ledger entry.
type CreateTransactionRequest struct {
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description   string          `json:"description" binding:"required"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type" binding:"required,txtype"`
	PaymentMethod string          `json:"paymentMethod"` // Empty means Cash
	Currency      string          `json:"currency" binding:"omitempty,currency"`
	Status        string          `json:"status" binding:"omitempty,txstatus"`
}

// UpdateTransactionRequest defines the editable fields of a ledger entry.
// Nil fields are left unchanged.
type UpdateTransactionRequest struct {
	Date          *string          `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Description   *string          `json:"description,omitempty" binding:"omitempty,min=1"`
	Category      *string          `json:"category,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Type          *string          `json:"type,omitempty" binding:"omitempty,txtype"`
	PaymentMethod *string          `json:"paymentMethod,omitempty"`
	Currency      *string          `json:"currency,omitempty" binding:"omitempty,currency"`
}

// SetStatusRequest activates or deactivates a record.
type SetStatusRequest struct {
	Status string `json:"status" binding:"required,txstatus"`
}

// ListTransactionsParams defines the query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken string `form:"nextToken"`
	Status    string `form:"status" binding:"omitempty,oneof=all active inactive"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	PaymentMethod string          `json:"paymentMethod"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ListTransactionsResponse is a page of transactions, newest first.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Date:          txn.Date.Format(domain.DateLayout),
		Description:   txn.Description,
		Category:      txn.Category,
		Amount:        txn.Amount,
		Type:          string(txn.Type),
		PaymentMethod: txn.PaymentMethod,
		Currency:      string(txn.Currency),
		Status:        string(txn.Status),
		CreatedAt:     txn.CreatedAt,
		CreatedBy:     txn.CreatedBy,
		LastUpdatedAt: txn.LastUpdatedAt,
		LastUpdatedBy: txn.LastUpdatedBy,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}
