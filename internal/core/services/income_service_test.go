package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/core/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type IncomeServiceTestSuite struct {
	suite.Suite
	configRepo *MockIncomeConfigRepository
	txnRepo    *MockTransactionRepository
	publisher  *MockEventPublisher
	service    portssvc.IncomeSvcFacade
}

func (suite *IncomeServiceTestSuite) SetupTest() {
	suite.configRepo = new(MockIncomeConfigRepository)
	suite.txnRepo = new(MockTransactionRepository)
	suite.publisher = new(MockEventPublisher)
	suite.service = services.NewIncomeService(suite.configRepo, suite.txnRepo,
		services.WithClock(fixedClock(time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC))),
		services.WithEventPublisher(suite.publisher),
	)
}

func salaryConfig() domain.IncomeConfig {
	return domain.IncomeConfig{
		ConfigID:   "cfg-1",
		Name:       "Salary",
		Amount:     decimal.NewFromInt(1000),
		DayOfMonth: 1,
		Status:     domain.StatusActive,
	}
}

func (suite *IncomeServiceTestSuite) TestRunIncomeAutomation_Idempotent() {
	ctx := context.Background()
	due := domain.NewDate(2026, time.March, 1)
	runDate := domain.NewDate(2026, time.March, 10)

	suite.configRepo.On("ListIncomeConfigs", ctx).Return([]domain.IncomeConfig{salaryConfig()}, nil).Twice()
	suite.txnRepo.On("ExistsByNaturalKey", ctx, due, "Salary", domain.Income).Return(false, nil).Once()
	suite.txnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Date.Equal(due) &&
			txn.Description == "Auto-Generated: Salary" &&
			txn.Category == "Salary" &&
			txn.Amount.Equal(decimal.NewFromInt(1000)) &&
			txn.Type == domain.Income &&
			txn.PaymentMethod == "Cash" &&
			txn.Currency == domain.USD &&
			txn.Status == domain.StatusActive &&
			txn.CreatedBy == domain.SystemActor
	})).Return(nil).Once()
	suite.publisher.On("PublishTransactionCreated", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	first, err := suite.service.RunIncomeAutomation(ctx, domain.AutomationMonthly, runDate)
	suite.Require().NoError(err)
	suite.Equal(domain.AutomationResult{Created: 1, Skipped: 0}, first)

	suite.txnRepo.On("ExistsByNaturalKey", ctx, due, "Salary", domain.Income).Return(true, nil).Once()

	second, err := suite.service.RunIncomeAutomation(ctx, domain.AutomationMonthly, runDate)
	suite.Require().NoError(err)
	suite.Equal(domain.AutomationResult{Created: 0, Skipped: 1}, second)

	suite.txnRepo.AssertNumberOfCalls(suite.T(), "SaveTransaction", 1)
	suite.txnRepo.AssertExpectations(suite.T())
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *IncomeServiceTestSuite) TestRunIncomeAutomation_YearlyClampsAndSkipsInactive() {
	ctx := context.Background()
	endOfMonth := salaryConfig()
	endOfMonth.DayOfMonth = 31
	inactive := salaryConfig()
	inactive.ConfigID = "cfg-2"
	inactive.Name = "Old job"
	inactive.Status = domain.StatusInactive

	var dates []time.Time
	suite.configRepo.On("ListIncomeConfigs", ctx).Return([]domain.IncomeConfig{endOfMonth, inactive}, nil).Once()
	suite.txnRepo.On("ExistsByNaturalKey", ctx, mock.AnythingOfType("time.Time"), "Salary", domain.Income).Return(false, nil).Times(12)
	suite.txnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Run(func(args mock.Arguments) {
			dates = append(dates, args.Get(1).(domain.Transaction).Date)
		}).Return(nil).Times(12)
	suite.publisher.On("PublishTransactionCreated", ctx, mock.Anything).Return(nil).Times(12)

	result, err := suite.service.RunIncomeAutomation(ctx, domain.AutomationYearly, domain.NewDate(2026, time.June, 1))
	suite.Require().NoError(err)
	suite.Equal(12, result.Created)
	suite.Require().Len(dates, 12)
	suite.Equal(domain.NewDate(2026, time.January, 31), dates[0])
	suite.Equal(domain.NewDate(2026, time.February, 28), dates[1])
	suite.Equal(domain.NewDate(2026, time.April, 30), dates[3])
	suite.txnRepo.AssertNotCalled(suite.T(), "ExistsByNaturalKey", ctx, mock.Anything, "Old job", domain.Income)
}

func (suite *IncomeServiceTestSuite) TestRunIncomeAutomation_PublishFailureDoesNotFailRun() {
	ctx := context.Background()
	suite.configRepo.On("ListIncomeConfigs", ctx).Return([]domain.IncomeConfig{salaryConfig()}, nil).Once()
	suite.txnRepo.On("ExistsByNaturalKey", ctx, mock.Anything, "Salary", domain.Income).Return(false, nil).Once()
	suite.txnRepo.On("SaveTransaction", ctx, mock.Anything).Return(nil).Once()
	suite.publisher.On("PublishTransactionCreated", ctx, mock.Anything).Return(assert.AnError).Once()

	result, err := suite.service.RunIncomeAutomation(ctx, domain.AutomationMonthly, domain.NewDate(2026, time.March, 2))
	suite.Require().NoError(err)
	suite.Equal(1, result.Created)
}

func (suite *IncomeServiceTestSuite) TestRunIncomeAutomation_InvalidMode() {
	_, err := suite.service.RunIncomeAutomation(context.Background(), "weekly", time.Time{})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.configRepo.AssertNotCalled(suite.T(), "ListIncomeConfigs", mock.Anything)
}

func (suite *IncomeServiceTestSuite) TestRunIncomeAutomation_SaveErrorStopsRun() {
	ctx := context.Background()
	suite.configRepo.On("ListIncomeConfigs", ctx).Return([]domain.IncomeConfig{salaryConfig()}, nil).Once()
	suite.txnRepo.On("ExistsByNaturalKey", ctx, mock.Anything, "Salary", domain.Income).Return(false, nil).Once()
	suite.txnRepo.On("SaveTransaction", ctx, mock.Anything).Return(assert.AnError).Once()

	result, err := suite.service.RunIncomeAutomation(ctx, domain.AutomationMonthly, domain.NewDate(2026, time.March, 2))
	suite.ErrorIs(err, assert.AnError)
	suite.Equal(0, result.Created)
	suite.publisher.AssertNotCalled(suite.T(), "PublishTransactionCreated", mock.Anything, mock.Anything)
}

func (suite *IncomeServiceTestSuite) TestCreateIncomeConfig() {
	ctx := context.Background()
	req := dto.CreateIncomeConfigRequest{Name: "Salary", Amount: decimal.NewFromInt(1000), DayOfMonth: 25}
	suite.configRepo.On("SaveIncomeConfig", ctx, mock.MatchedBy(func(cfg domain.IncomeConfig) bool {
		return cfg.Name == "Salary" && cfg.DayOfMonth == 25 && cfg.Status == domain.StatusActive && cfg.CreatedBy == "dara"
	})).Return(nil).Once()

	cfg, err := suite.service.CreateIncomeConfig(ctx, req, "dara")
	suite.Require().NoError(err)
	suite.NotEmpty(cfg.ConfigID)
	suite.configRepo.AssertExpectations(suite.T())
}

func (suite *IncomeServiceTestSuite) TestCreateIncomeConfig_Invalid() {
	req := dto.CreateIncomeConfigRequest{Name: "Salary", Amount: decimal.Zero, DayOfMonth: 25}

	_, err := suite.service.CreateIncomeConfig(context.Background(), req, "dara")
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.configRepo.AssertNotCalled(suite.T(), "SaveIncomeConfig", mock.Anything, mock.Anything)
}

func (suite *IncomeServiceTestSuite) TestUpdateIncomeConfig() {
	ctx := context.Background()
	existing := salaryConfig()
	suite.configRepo.On("FindIncomeConfigByID", ctx, "cfg-1").Return(&existing, nil).Once()
	suite.configRepo.On("UpdateIncomeConfig", ctx, mock.MatchedBy(func(cfg domain.IncomeConfig) bool {
		return cfg.Status == domain.StatusInactive && cfg.LastUpdatedBy == "dara"
	})).Return(nil).Once()

	status := "inactive"
	cfg, err := suite.service.UpdateIncomeConfig(ctx, "cfg-1", dto.UpdateIncomeConfigRequest{Status: &status}, "dara")
	suite.Require().NoError(err)
	suite.False(cfg.IsActive())
}

func TestIncomeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IncomeServiceTestSuite))
}
