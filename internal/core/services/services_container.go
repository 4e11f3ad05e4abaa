package services

import (
	"log/slog"
	"time"

	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		slog.Warn("Unknown TIMEZONE, falling back to UTC", slog.String("timezone", cfg.Timezone), slog.String("error", err.Error()))
		loc = time.UTC
	}

	options := []ServiceOption{WithLocation(loc)}
	if repos.Publisher != nil {
		options = append(options, WithEventPublisher(repos.Publisher))
	}

	return &portssvc.ServiceContainer{
		Stats:       NewStatsService(repos.TransactionRepo, repos.CheckpointRepo, repos.BankRepo, options...),
		Transaction: NewTransactionService(repos.TransactionRepo, options...),
		Checkpoint:  NewCheckpointService(repos.CheckpointRepo, repos.BankRepo, options...),
		Income:      NewIncomeService(repos.IncomeConfigRepo, repos.TransactionRepo, options...),
		Bank:        NewBankService(repos.BankRepo, options...),
	}
}
