package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ExistsByNaturalKey(ctx context.Context, date time.Time, category string, txType domain.TransactionType) (bool, error) {
	args := m.Called(ctx, date, category, txType)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

// --- Mock CheckpointRepository ---
type MockCheckpointRepository struct {
	mock.Mock
}

var _ portsrepo.CheckpointRepositoryFacade = (*MockCheckpointRepository)(nil)

func (m *MockCheckpointRepository) ListCheckpoints(ctx context.Context) ([]domain.BalanceCheckpoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceCheckpoint), args.Error(1)
}

func (m *MockCheckpointRepository) FindCheckpoint(ctx context.Context, scopeKey string, year, month int) (*domain.BalanceCheckpoint, error) {
	args := m.Called(ctx, scopeKey, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceCheckpoint), args.Error(1)
}

func (m *MockCheckpointRepository) FindCheckpointByID(ctx context.Context, checkpointID string) (*domain.BalanceCheckpoint, error) {
	args := m.Called(ctx, checkpointID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceCheckpoint), args.Error(1)
}

func (m *MockCheckpointRepository) SaveCheckpoint(ctx context.Context, checkpoint domain.BalanceCheckpoint) error {
	return m.Called(ctx, checkpoint).Error(0)
}

func (m *MockCheckpointRepository) UpdateCheckpoint(ctx context.Context, checkpoint domain.BalanceCheckpoint) error {
	return m.Called(ctx, checkpoint).Error(0)
}

func (m *MockCheckpointRepository) DeleteCheckpoint(ctx context.Context, checkpointID string) error {
	return m.Called(ctx, checkpointID).Error(0)
}

// --- Mock IncomeConfigRepository ---
type MockIncomeConfigRepository struct {
	mock.Mock
}

var _ portsrepo.IncomeConfigRepositoryFacade = (*MockIncomeConfigRepository)(nil)

func (m *MockIncomeConfigRepository) ListIncomeConfigs(ctx context.Context) ([]domain.IncomeConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IncomeConfig), args.Error(1)
}

func (m *MockIncomeConfigRepository) FindIncomeConfigByID(ctx context.Context, configID string) (*domain.IncomeConfig, error) {
	args := m.Called(ctx, configID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeConfig), args.Error(1)
}

func (m *MockIncomeConfigRepository) SaveIncomeConfig(ctx context.Context, config domain.IncomeConfig) error {
	return m.Called(ctx, config).Error(0)
}

func (m *MockIncomeConfigRepository) UpdateIncomeConfig(ctx context.Context, config domain.IncomeConfig) error {
	return m.Called(ctx, config).Error(0)
}

// --- Mock BankRepository ---
type MockBankRepository struct {
	mock.Mock
}

var _ portsrepo.BankRepositoryFacade = (*MockBankRepository)(nil)

func (m *MockBankRepository) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bank), args.Error(1)
}

func (m *MockBankRepository) FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error) {
	args := m.Called(ctx, bankID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bank), args.Error(1)
}

func (m *MockBankRepository) SaveBank(ctx context.Context, bank domain.Bank) error {
	return m.Called(ctx, bank).Error(0)
}

// --- Mock EventPublisher ---
type MockEventPublisher struct {
	mock.Mock
}

var _ portsrepo.EventPublisher = (*MockEventPublisher)(nil)

func (m *MockEventPublisher) PublishTransactionCreated(ctx context.Context, txn domain.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
