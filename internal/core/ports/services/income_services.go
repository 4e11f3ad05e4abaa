package services

import (
	"context"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/dto"
)

// IncomeConfigSvc defines operations on recurring income rules
type IncomeConfigSvc interface {
	ListIncomeConfigs(ctx context.Context) ([]domain.IncomeConfig, error)
	CreateIncomeConfig(ctx context.Context, req dto.CreateIncomeConfigRequest, actor string) (*domain.IncomeConfig, error)
	UpdateIncomeConfig(ctx context.Context, configID string, req dto.UpdateIncomeConfigRequest, actor string) (*domain.IncomeConfig, error)
}

// IncomeAutomationSvc generates income entries from the active rules
type IncomeAutomationSvc interface {
	// RunIncomeAutomation creates the entries of the month (or whole year) of
	// date that do not exist yet. Running it twice creates nothing new.
	RunIncomeAutomation(ctx context.Context, mode domain.AutomationMode, date time.Time) (domain.AutomationResult, error)
}

// IncomeSvcFacade combines all income-related service interfaces
type IncomeSvcFacade interface {
	IncomeConfigSvc
	IncomeAutomationSvc
}
