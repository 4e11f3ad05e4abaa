package services

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/dto"
)

// TransactionReaderSvc defines read operations for ledger entries
type TransactionReaderSvc interface {
	// GetTransaction retrieves a specific transaction by its ID.
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of transactions, newest first.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines write operations for ledger entries
type TransactionWriterSvc interface {
	// CreateTransaction persists a new entry and announces it.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, actor string) (*domain.Transaction, error)

	// UpdateTransaction edits the fields set in req.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, actor string) (*domain.Transaction, error)

	// SetTransactionStatus activates or deactivates an entry. There is no hard delete.
	SetTransactionStatus(ctx context.Context, transactionID string, status domain.Status, actor string) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
