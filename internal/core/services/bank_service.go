package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/google/uuid"
)

type bankService struct {
	BaseService
	bankRepo portsrepo.BankRepositoryFacade
}

// NewBankService creates a new bank registry service
func NewBankService(bankRepo portsrepo.BankRepositoryFacade, options ...ServiceOption) portssvc.BankSvcFacade {
	return &bankService{
		BaseService: newBaseService(options...),
		bankRepo:    bankRepo,
	}
}

var _ portssvc.BankSvcFacade = (*bankService)(nil)

func (s *bankService) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	banks, err := s.bankRepo.ListBanks(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list banks")
		return nil, fmt.Errorf("failed to list banks: %w", err)
	}
	if banks == nil {
		return []domain.Bank{}, nil
	}
	return banks, nil
}

func (s *bankService) GetBank(ctx context.Context, bankID string) (*domain.Bank, error) {
	bank, err := s.bankRepo.FindBankByID(ctx, bankID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bank %s: %w", bankID, err)
	}
	return bank, nil
}

// CreateBank registers a bank. Its name should match the payment method used
// on the ledger rows of that bank.
func (s *bankService) CreateBank(ctx context.Context, req dto.CreateBankRequest, actor string) (*domain.Bank, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: bank name is required", apperrors.ErrValidation)
	}
	if strings.EqualFold(name, domain.CashMethod) {
		return nil, fmt.Errorf("%w: %q is reserved for cash", apperrors.ErrValidation, name)
	}

	bank := domain.Bank{
		BankID:      uuid.NewString(),
		Name:        name,
		AuditFields: domain.NewAuditFields(actor, s.Now()),
	}
	if err := s.bankRepo.SaveBank(ctx, bank); err != nil {
		s.LogError(ctx, err, "Failed to save bank", slog.String("name", name))
		return nil, fmt.Errorf("failed to create bank: %w", err)
	}

	s.LogInfo(ctx, "Bank created", slog.String("bank_id", bank.BankID), slog.String("name", name))
	return &bank, nil
}
