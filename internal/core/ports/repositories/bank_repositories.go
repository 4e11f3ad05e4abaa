package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// BankReader defines read operations for the bank registry
type BankReader interface {
	ListBanks(ctx context.Context) ([]domain.Bank, error)
	FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error)
}

// BankWriter defines write operations for the bank registry
type BankWriter interface {
	// SaveBank returns apperrors.ErrDuplicate when a bank with the same name exists.
	SaveBank(ctx context.Context, bank domain.Bank) error
}

// BankRepositoryFacade combines all bank-related repository interfaces
type BankRepositoryFacade interface {
	BankReader
	BankWriter
}
