package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock StatsService ---
type MockStatsService struct {
	mock.Mock
}

var _ portssvc.StatsService = (*MockStatsService)(nil)

func (m *MockStatsService) GetStats(ctx context.Context, month, year int, filter domain.StatsFilter) domain.StatsResult {
	args := m.Called(ctx, month, year, filter)
	return args.Get(0).(domain.StatsResult)
}

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

func (m *MockTransactionService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, actor string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, actor string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) SetTransactionStatus(ctx context.Context, transactionID string, status domain.Status, actor string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, status, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// --- Mock CheckpointService ---
type MockCheckpointService struct {
	mock.Mock
}

var _ portssvc.CheckpointSvcFacade = (*MockCheckpointService)(nil)

func (m *MockCheckpointService) ListCheckpoints(ctx context.Context) ([]domain.BalanceCheckpoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceCheckpoint), args.Error(1)
}

func (m *MockCheckpointService) CreateCheckpoint(ctx context.Context, req dto.CreateCheckpointRequest, actor string) (*domain.BalanceCheckpoint, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceCheckpoint), args.Error(1)
}

func (m *MockCheckpointService) UpdateCheckpoint(ctx context.Context, checkpointID string, req dto.UpdateCheckpointRequest, actor string) (*domain.BalanceCheckpoint, error) {
	args := m.Called(ctx, checkpointID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceCheckpoint), args.Error(1)
}

func (m *MockCheckpointService) DeleteCheckpoint(ctx context.Context, checkpointID string) error {
	args := m.Called(ctx, checkpointID)
	return args.Error(0)
}

// --- Mock IncomeService ---
type MockIncomeService struct {
	mock.Mock
}

var _ portssvc.IncomeSvcFacade = (*MockIncomeService)(nil)

func (m *MockIncomeService) ListIncomeConfigs(ctx context.Context) ([]domain.IncomeConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IncomeConfig), args.Error(1)
}

func (m *MockIncomeService) CreateIncomeConfig(ctx context.Context, req dto.CreateIncomeConfigRequest, actor string) (*domain.IncomeConfig, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeConfig), args.Error(1)
}

func (m *MockIncomeService) UpdateIncomeConfig(ctx context.Context, configID string, req dto.UpdateIncomeConfigRequest, actor string) (*domain.IncomeConfig, error) {
	args := m.Called(ctx, configID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeConfig), args.Error(1)
}

func (m *MockIncomeService) RunIncomeAutomation(ctx context.Context, mode domain.AutomationMode, date time.Time) (domain.AutomationResult, error) {
	args := m.Called(ctx, mode, date)
	return args.Get(0).(domain.AutomationResult), args.Error(1)
}

// --- Mock BankService ---
type MockBankService struct {
	mock.Mock
}

var _ portssvc.BankSvcFacade = (*MockBankService)(nil)

func (m *MockBankService) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bank), args.Error(1)
}

func (m *MockBankService) GetBank(ctx context.Context, bankID string) (*domain.Bank, error) {
	args := m.Called(ctx, bankID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bank), args.Error(1)
}

func (m *MockBankService) CreateBank(ctx context.Context, req dto.CreateBankRequest, actor string) (*domain.Bank, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bank), args.Error(1)
}
