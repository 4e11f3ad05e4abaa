package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// EventPublisher announces ledger changes to downstream consumers.
// Implementations must be safe for concurrent use.
type EventPublisher interface {
	PublishTransactionCreated(ctx context.Context, txn domain.Transaction) error
}
