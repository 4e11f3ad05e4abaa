package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// IncomeConfigReader defines read operations for recurring income configurations
type IncomeConfigReader interface {
	ListIncomeConfigs(ctx context.Context) ([]domain.IncomeConfig, error)
	FindIncomeConfigByID(ctx context.Context, configID string) (*domain.IncomeConfig, error)
}

// IncomeConfigWriter defines write operations for recurring income configurations
type IncomeConfigWriter interface {
	SaveIncomeConfig(ctx context.Context, config domain.IncomeConfig) error
	UpdateIncomeConfig(ctx context.Context, config domain.IncomeConfig) error
}

// IncomeConfigRepositoryFacade combines all income configuration repository interfaces
type IncomeConfigRepositoryFacade interface {
	IncomeConfigReader
	IncomeConfigWriter
}
