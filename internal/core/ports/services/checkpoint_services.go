package services

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/dto"
)

// CheckpointSvcFacade defines operations on balance checkpoints
type CheckpointSvcFacade interface {
	// ListCheckpoints returns every checkpoint ordered by scope, year and month.
	ListCheckpoints(ctx context.Context) ([]domain.BalanceCheckpoint, error)

	// CreateCheckpoint rejects a second checkpoint for the same scope and month
	// with apperrors.ErrDuplicate.
	CreateCheckpoint(ctx context.Context, req dto.CreateCheckpointRequest, actor string) (*domain.BalanceCheckpoint, error)

	// UpdateCheckpoint changes amounts only.
	UpdateCheckpoint(ctx context.Context, checkpointID string, req dto.UpdateCheckpointRequest, actor string) (*domain.BalanceCheckpoint, error)

	DeleteCheckpoint(ctx context.Context, checkpointID string) error
}
