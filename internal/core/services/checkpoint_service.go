package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/google/uuid"
)

// checkpointService implements the CheckpointSvcFacade interface
type checkpointService struct {
	BaseService
	checkpointRepo portsrepo.CheckpointRepositoryFacade
	bankRepo       portsrepo.BankReader
}

// NewCheckpointService creates a new checkpoint service with the provided options
func NewCheckpointService(checkpointRepo portsrepo.CheckpointRepositoryFacade, bankRepo portsrepo.BankReader, options ...ServiceOption) portssvc.CheckpointSvcFacade {
	return &checkpointService{
		BaseService:    newBaseService(options...),
		checkpointRepo: checkpointRepo,
		bankRepo:       bankRepo,
	}
}

var _ portssvc.CheckpointSvcFacade = (*checkpointService)(nil)

// ListCheckpoints retrieves every checkpoint ordered by scope key and month.
func (s *checkpointService) ListCheckpoints(ctx context.Context) ([]domain.BalanceCheckpoint, error) {
	checkpoints, err := s.checkpointRepo.ListCheckpoints(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list checkpoints")
		return nil, fmt.Errorf("failed to list checkpoints: %w", err)
	}
	sort.SliceStable(checkpoints, func(i, j int) bool {
		a, b := checkpoints[i], checkpoints[j]
		if a.Scope.Key() != b.Scope.Key() {
			return a.Scope.Key() < b.Scope.Key()
		}
		return a.MonthKey().Ordinal() < b.MonthKey().Ordinal()
	})
	if checkpoints == nil {
		return []domain.BalanceCheckpoint{}, nil
	}
	return checkpoints, nil
}

// CreateCheckpoint records the starting balance of a scope for a month. Only
// one checkpoint may exist per (scope, year, month).
func (s *checkpointService) CreateCheckpoint(ctx context.Context, req dto.CreateCheckpointRequest, actor string) (*domain.BalanceCheckpoint, error) {
	month := 0
	if req.Month != nil {
		month = *req.Month
	}
	cp := domain.BalanceCheckpoint{
		CheckpointID: uuid.NewString(),
		Scope:        req.BalanceScope(),
		Year:         req.Year,
		Month:        month,
		Amount:       req.Amount,
		AmountAlt:    req.AmountAlt,
		AuditFields:  domain.NewAuditFields(actor, s.Now()),
	}
	if err := cp.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	if cp.Scope.Kind == domain.ScopeSpecificBank {
		if _, err := s.bankRepo.FindBankByID(ctx, cp.Scope.BankID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown bank %s", apperrors.ErrValidation, cp.Scope.BankID)
			}
			return nil, fmt.Errorf("failed to look up bank %s: %w", cp.Scope.BankID, err)
		}
	}

	existing, err := s.checkpointRepo.FindCheckpoint(ctx, cp.Scope.Key(), cp.Year, cp.Month)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing checkpoint: %w", err)
	}
	if existing != nil {
		s.LogWarn(ctx, "Rejected duplicate checkpoint",
			slog.String("scope", cp.Scope.Key()),
			slog.Int("year", cp.Year),
			slog.Int("month", cp.Month),
			slog.String("existing_id", existing.CheckpointID))
		return nil, fmt.Errorf("%w: checkpoint for %s %d-%02d", apperrors.ErrDuplicate, cp.Scope.Key(), cp.Year, cp.Month)
	}

	if err := s.checkpointRepo.SaveCheckpoint(ctx, cp); err != nil {
		s.LogError(ctx, err, "Failed to save checkpoint", slog.String("scope", cp.Scope.Key()))
		return nil, fmt.Errorf("failed to create checkpoint: %w", err)
	}

	s.LogInfo(ctx, "Checkpoint created",
		slog.String("checkpoint_id", cp.CheckpointID),
		slog.String("scope", cp.Scope.Key()),
		slog.Int("year", cp.Year),
		slog.Int("month", cp.Month))
	return &cp, nil
}

// UpdateCheckpoint changes the amounts of a checkpoint.
func (s *checkpointService) UpdateCheckpoint(ctx context.Context, checkpointID string, req dto.UpdateCheckpointRequest, actor string) (*domain.BalanceCheckpoint, error) {
	cp, err := s.checkpointRepo.FindCheckpointByID(ctx, checkpointID)
	if err != nil {
		return nil, fmt.Errorf("failed to find checkpoint %s: %w", checkpointID, err)
	}
	if req.Amount != nil {
		cp.Amount = *req.Amount
	}
	if req.AmountAlt != nil {
		alt := *req.AmountAlt
		cp.AmountAlt = &alt
	}
	if err := cp.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	cp.Touch(actor, s.Now())

	if err := s.checkpointRepo.UpdateCheckpoint(ctx, *cp); err != nil {
		s.LogError(ctx, err, "Failed to update checkpoint", slog.String("checkpoint_id", checkpointID))
		return nil, fmt.Errorf("failed to update checkpoint: %w", err)
	}
	return cp, nil
}

// DeleteCheckpoint removes a checkpoint. Months it anchored fall back to the
// previous checkpoint of the scope.
func (s *checkpointService) DeleteCheckpoint(ctx context.Context, checkpointID string) error {
	if err := s.checkpointRepo.DeleteCheckpoint(ctx, checkpointID); err != nil {
		return fmt.Errorf("failed to delete checkpoint %s: %w", checkpointID, err)
	}
	s.LogInfo(ctx, "Checkpoint deleted", slog.String("checkpoint_id", checkpointID))
	return nil
}
