package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/google/uuid"
)

// incomeService implements the IncomeSvcFacade interface
type incomeService struct {
	BaseService
	configRepo      portsrepo.IncomeConfigRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewIncomeService creates a new income service with the provided options
func NewIncomeService(
	configRepo portsrepo.IncomeConfigRepositoryFacade,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	options ...ServiceOption,
) portssvc.IncomeSvcFacade {
	return &incomeService{
		BaseService:     newBaseService(options...),
		configRepo:      configRepo,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.IncomeSvcFacade = (*incomeService)(nil)

// RunIncomeAutomation walks every active rule over the month of date, or over
// all twelve months of its year in yearly mode. An entry whose (date, category,
// Income) key already exists is skipped, which makes reruns harmless.
//
// The existence check and the insert are separate statements, so two runs
// racing each other can still both insert.
func (s *incomeService) RunIncomeAutomation(ctx context.Context, mode domain.AutomationMode, date time.Time) (domain.AutomationResult, error) {
	var result domain.AutomationResult

	parsed, ok := domain.ParseAutomationMode(string(mode))
	if !ok {
		return result, fmt.Errorf("%w: unknown automation mode %q", apperrors.ErrValidation, mode)
	}
	mode = parsed
	if date.IsZero() {
		date = s.Today()
	}

	months := []time.Month{date.Month()}
	if mode == domain.AutomationYearly {
		months = make([]time.Month, 0, 12)
		for m := time.January; m <= time.December; m++ {
			months = append(months, m)
		}
	}

	configs, err := s.configRepo.ListIncomeConfigs(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list income configs for automation")
		return result, fmt.Errorf("failed to list income configs: %w", err)
	}

	for _, cfg := range configs {
		if !cfg.IsActive() {
			continue
		}
		for _, month := range months {
			due := cfg.DueDate(date.Year(), month)
			created, err := s.ensureIncome(ctx, cfg, due)
			if err != nil {
				s.LogError(ctx, err, "Income automation stopped",
					slog.String("config_id", cfg.ConfigID),
					slog.String("date", due.Format(domain.DateLayout)),
					slog.Int("created", result.Created),
					slog.Int("skipped", result.Skipped))
				return result, err
			}
			if created {
				result.Created++
			} else {
				result.Skipped++
			}
		}
	}

	s.LogInfo(ctx, "Income automation finished",
		slog.String("mode", string(mode)),
		slog.String("date", date.Format(domain.DateLayout)),
		slog.Int("created", result.Created),
		slog.Int("skipped", result.Skipped))
	return result, nil
}

func (s *incomeService) ensureIncome(ctx context.Context, cfg domain.IncomeConfig, due time.Time) (bool, error) {
	exists, err := s.transactionRepo.ExistsByNaturalKey(ctx, due, cfg.Name, domain.Income)
	if err != nil {
		return false, fmt.Errorf("failed to check existing income for %s: %w", cfg.Name, err)
	}
	if exists {
		return false, nil
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          due,
		Description:   domain.AutoGeneratedPrefix + cfg.Name,
		Category:      cfg.Name,
		Amount:        cfg.Amount,
		Type:          domain.Income,
		PaymentMethod: domain.CashMethod,
		Currency:      domain.USD,
		Status:        domain.StatusActive,
		AuditFields:   domain.NewAuditFields(domain.SystemActor, s.Now()),
	}
	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		return false, fmt.Errorf("failed to save income for %s: %w", cfg.Name, err)
	}
	s.announceCreated(ctx, txn)
	return true, nil
}

// ListIncomeConfigs retrieves all income rules.
func (s *incomeService) ListIncomeConfigs(ctx context.Context) ([]domain.IncomeConfig, error) {
	configs, err := s.configRepo.ListIncomeConfigs(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list income configs")
		return nil, fmt.Errorf("failed to list income configs: %w", err)
	}
	if configs == nil {
		return []domain.IncomeConfig{}, nil
	}
	return configs, nil
}

// CreateIncomeConfig persists a new income rule.
func (s *incomeService) CreateIncomeConfig(ctx context.Context, req dto.CreateIncomeConfigRequest, actor string) (*domain.IncomeConfig, error) {
	status, ok := domain.ParseStatus(req.Status)
	if !ok {
		return nil, fmt.Errorf("%w: %w: got %q", apperrors.ErrValidation, domain.ErrUnknownStatus, req.Status)
	}
	cfg := domain.IncomeConfig{
		ConfigID:    uuid.NewString(),
		Name:        req.Name,
		Amount:      req.Amount,
		DayOfMonth:  req.DayOfMonth,
		Status:      status,
		AuditFields: domain.NewAuditFields(actor, s.Now()),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	if err := s.configRepo.SaveIncomeConfig(ctx, cfg); err != nil {
		s.LogError(ctx, err, "Failed to save income config", slog.String("name", cfg.Name))
		return nil, fmt.Errorf("failed to create income config: %w", err)
	}

	s.LogInfo(ctx, "Income config created", slog.String("config_id", cfg.ConfigID), slog.String("name", cfg.Name))
	return &cfg, nil
}

// UpdateIncomeConfig applies the fields set in req.
func (s *incomeService) UpdateIncomeConfig(ctx context.Context, configID string, req dto.UpdateIncomeConfigRequest, actor string) (*domain.IncomeConfig, error) {
	cfg, err := s.configRepo.FindIncomeConfigByID(ctx, configID)
	if err != nil {
		return nil, fmt.Errorf("failed to find income config %s: %w", configID, err)
	}

	if req.Name != nil {
		cfg.Name = *req.Name
	}
	if req.Amount != nil {
		cfg.Amount = *req.Amount
	}
	if req.DayOfMonth != nil {
		cfg.DayOfMonth = *req.DayOfMonth
	}
	if req.Status != nil {
		status, ok := domain.ParseStatus(*req.Status)
		if !ok {
			return nil, fmt.Errorf("%w: %w: got %q", apperrors.ErrValidation, domain.ErrUnknownStatus, *req.Status)
		}
		cfg.Status = status
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	cfg.Touch(actor, s.Now())

	if err := s.configRepo.UpdateIncomeConfig(ctx, *cfg); err != nil {
		s.LogError(ctx, err, "Failed to update income config", slog.String("config_id", configID))
		return nil, fmt.Errorf("failed to update income config: %w", err)
	}
	return cfg, nil
}
