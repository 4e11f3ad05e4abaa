package services

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// StatsService computes monthly statements.
type StatsService interface {
	// GetStats aggregates the given 0-indexed month. It never fails: when the
	// ledger cannot be read it logs and returns domain.EmptyStats().
	GetStats(ctx context.Context, month, year int, filter domain.StatsFilter) domain.StatsResult
}
