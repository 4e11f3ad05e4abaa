package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// TransactionReader defines read operations for ledger transactions
type TransactionReader interface {
	// ListTransactions returns every stored transaction, in no particular order.
	// Aggregation works on this full snapshot.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// FindTransactionByID returns apperrors.ErrNotFound when no row has the ID.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ExistsByNaturalKey reports whether a transaction with exactly this date,
	// category and type is stored, regardless of status.
	ExistsByNaturalKey(ctx context.Context, date time.Time, category string, txType domain.TransactionType) (bool, error)
}

// TransactionWriter defines write operations for ledger transactions
type TransactionWriter interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
