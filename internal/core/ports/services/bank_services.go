package services

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/dto"
)

// BankSvcFacade defines operations on the bank registry
type BankSvcFacade interface {
	ListBanks(ctx context.Context) ([]domain.Bank, error)
	GetBank(ctx context.Context, bankID string) (*domain.Bank, error)
	CreateBank(ctx context.Context, req dto.CreateBankRequest, actor string) (*domain.Bank, error)
}
