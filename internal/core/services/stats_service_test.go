package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type StatsServiceTestSuite struct {
	suite.Suite
	txnRepo  *MockTransactionRepository
	cpRepo   *MockCheckpointRepository
	bankRepo *MockBankRepository
	service  portssvc.StatsService
}

func (suite *StatsServiceTestSuite) SetupTest() {
	suite.txnRepo = new(MockTransactionRepository)
	suite.cpRepo = new(MockCheckpointRepository)
	suite.bankRepo = new(MockBankRepository)
	suite.service = services.NewStatsService(suite.txnRepo, suite.cpRepo, suite.bankRepo,
		services.WithClock(fixedClock(time.Date(2026, time.March, 15, 8, 0, 0, 0, time.UTC))),
		services.WithLocation(time.UTC),
	)
}

func (suite *StatsServiceTestSuite) ledger() []domain.Transaction {
	return []domain.Transaction{
		{
			TransactionID: "t1", Date: domain.NewDate(2026, time.February, 5), Description: "Salary",
			Category: "Salary", Amount: decimal.NewFromInt(1000), Type: domain.Income,
			PaymentMethod: "ABA Bank", Currency: domain.USD, Status: domain.StatusActive,
		},
		{
			TransactionID: "t2", Date: domain.NewDate(2026, time.February, 10), Description: "Groceries",
			Category: "Food", Amount: decimal.NewFromInt(200), Type: domain.Expense,
			PaymentMethod: "ABA Bank", Currency: domain.USD, Status: domain.StatusActive,
		},
		{
			TransactionID: "t4", Date: domain.NewDate(2026, time.March, 1), Description: "Rent",
			Category: "Rent", Amount: decimal.NewFromInt(999), Type: domain.Expense,
			PaymentMethod: "ABA Bank", Currency: domain.USD, Status: domain.StatusActive,
		},
	}
}

func (suite *StatsServiceTestSuite) TestGetStats_EndToEnd() {
	ctx := context.Background()
	suite.txnRepo.On("ListTransactions", mock.Anything).Return(suite.ledger(), nil).Once()
	suite.cpRepo.On("ListCheckpoints", mock.Anything).Return([]domain.BalanceCheckpoint{
		{CheckpointID: "c1", Scope: domain.BankScope, Year: 2026, Month: 1, Amount: decimal.NewFromInt(50)},
	}, nil).Once()

	result := suite.service.GetStats(ctx, 1, 2026, domain.StatsFilter{Status: domain.StatusFilterActive})

	suite.True(result.MonthlyIncome.Equal(decimal.NewFromInt(1000)))
	suite.True(result.MonthlyExpense.Equal(decimal.NewFromInt(200)))
	suite.True(result.StartingBalance.Equal(decimal.NewFromInt(50)))
	suite.True(result.ClosingBalance.Equal(decimal.NewFromInt(850)))
	suite.Equal("Food", result.TopCategory)
	suite.True(result.YearlyExpense.Equal(decimal.NewFromInt(1199)))
	suite.Len(result.Transactions, 2)
	suite.Equal(domain.MonthKey{Year: 2026, Month: 1}, result.Period)
	suite.txnRepo.AssertExpectations(suite.T())
	suite.cpRepo.AssertExpectations(suite.T())
}

func (suite *StatsServiceTestSuite) TestGetStats_FetchFailureReturnsEmptyStats() {
	ctx := context.Background()
	suite.txnRepo.On("ListTransactions", mock.Anything).Return(nil, errors.New("connection refused")).Once()
	suite.cpRepo.On("ListCheckpoints", mock.Anything).Return([]domain.BalanceCheckpoint{}, nil).Maybe()

	result := suite.service.GetStats(ctx, 1, 2026, domain.StatsFilter{})

	suite.True(result.ClosingBalance.IsZero())
	suite.True(result.MonthlyIncome.IsZero())
	suite.Equal(domain.NoCategory, result.TopCategory)
	suite.NotNil(result.Transactions)
	suite.Empty(result.Transactions)
}

func (suite *StatsServiceTestSuite) TestGetStats_InvalidMonthReturnsEmptyStats() {
	result := suite.service.GetStats(context.Background(), 12, 2026, domain.StatsFilter{})

	suite.Equal(domain.NoCategory, result.TopCategory)
	suite.txnRepo.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything)
}

func (suite *StatsServiceTestSuite) TestGetStats_SpecificBankResolvesName() {
	ctx := context.Background()
	ledger := append(suite.ledger(), domain.Transaction{
		TransactionID: "t3", Date: domain.NewDate(2026, time.February, 7), Description: "Transfer",
		Category: "Rent", Amount: decimal.NewFromInt(300), Type: domain.Expense,
		PaymentMethod: "From Chipmong bank to ACALEDA", Currency: domain.USD, Status: domain.StatusActive,
	})
	suite.txnRepo.On("ListTransactions", mock.Anything).Return(ledger, nil).Once()
	suite.cpRepo.On("ListCheckpoints", mock.Anything).Return([]domain.BalanceCheckpoint{
		{CheckpointID: "c1", Scope: domain.SpecificBankScope("b1"), Year: 2026, Month: 0, Amount: decimal.NewFromInt(500)},
		{CheckpointID: "c2", Scope: domain.BankScope, Year: 2026, Month: 0, Amount: decimal.NewFromInt(9999)},
	}, nil).Once()
	suite.bankRepo.On("FindBankByID", mock.Anything, "b1").Return(&domain.Bank{BankID: "b1", Name: "ACLEDA"}, nil).Once()

	result := suite.service.GetStats(ctx, 1, 2026, domain.StatsFilter{Scope: domain.SpecificBankScope("b1")})

	suite.True(result.StartingBalance.Equal(decimal.NewFromInt(500)))
	suite.True(result.MonthlyExpense.Equal(decimal.NewFromInt(300)))
	suite.True(result.MonthlyIncome.IsZero())
	suite.Len(result.Transactions, 1)
	suite.bankRepo.AssertExpectations(suite.T())
}

func (suite *StatsServiceTestSuite) TestGetStats_UnknownBankStillResolvesAnchor() {
	ctx := context.Background()
	suite.txnRepo.On("ListTransactions", mock.Anything).Return(suite.ledger(), nil).Once()
	suite.cpRepo.On("ListCheckpoints", mock.Anything).Return([]domain.BalanceCheckpoint{
		{CheckpointID: "c1", Scope: domain.SpecificBankScope("gone"), Year: 2026, Month: 0, Amount: decimal.NewFromInt(70)},
	}, nil).Once()
	suite.bankRepo.On("FindBankByID", mock.Anything, "gone").Return(nil, apperrors.ErrNotFound).Once()

	result := suite.service.GetStats(ctx, 1, 2026, domain.StatsFilter{Scope: domain.SpecificBankScope("gone")})

	suite.True(result.StartingBalance.Equal(decimal.NewFromInt(70)))
	suite.Empty(result.Transactions)
	suite.True(result.ClosingBalance.Equal(decimal.NewFromInt(70)))
}

func TestStatsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceTestSuite))
}
