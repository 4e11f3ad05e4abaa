package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// CheckpointReader defines read operations for balance checkpoints
type CheckpointReader interface {
	// ListCheckpoints returns all checkpoints of every scope.
	ListCheckpoints(ctx context.Context) ([]domain.BalanceCheckpoint, error)

	// FindCheckpoint looks up the checkpoint of a scope key and 0-indexed month.
	FindCheckpoint(ctx context.Context, scopeKey string, year, month int) (*domain.BalanceCheckpoint, error)

	FindCheckpointByID(ctx context.Context, checkpointID string) (*domain.BalanceCheckpoint, error)
}

// CheckpointWriter defines write operations for balance checkpoints
type CheckpointWriter interface {
	// SaveCheckpoint returns apperrors.ErrDuplicate when the (scope, year, month) slot is taken.
	SaveCheckpoint(ctx context.Context, checkpoint domain.BalanceCheckpoint) error
	UpdateCheckpoint(ctx context.Context, checkpoint domain.BalanceCheckpoint) error
	DeleteCheckpoint(ctx context.Context, checkpointID string) error
}

// CheckpointRepositoryFacade combines all checkpoint-related repository interfaces
type CheckpointRepositoryFacade interface {
	CheckpointReader
	CheckpointWriter
}
