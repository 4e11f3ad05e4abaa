package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/utils/accounting"
	"golang.org/x/sync/errgroup"
)

// statsService implements the StatsService interface
type statsService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
	checkpointRepo  portsrepo.CheckpointReader
	bankRepo        portsrepo.BankReader
}

// NewStatsService creates a new stats service with the provided options
func NewStatsService(
	transactionRepo portsrepo.TransactionReader,
	checkpointRepo portsrepo.CheckpointReader,
	bankRepo portsrepo.BankReader,
	options ...ServiceOption,
) portssvc.StatsService {
	return &statsService{
		BaseService:     newBaseService(options...),
		transactionRepo: transactionRepo,
		checkpointRepo:  checkpointRepo,
		bankRepo:        bankRepo,
	}
}

// Ensure statsService implements the StatsService interface
var _ portssvc.StatsService = (*statsService)(nil)

type statsSnapshot struct {
	transactions []domain.Transaction
	checkpoints  []domain.BalanceCheckpoint
	bankName     string
}

// GetStats reads a fresh snapshot of the ledger and aggregates it.
func (s *statsService) GetStats(ctx context.Context, month, year int, filter domain.StatsFilter) domain.StatsResult {
	period := domain.MonthKey{Year: year, Month: month}
	if filter.Scope.Kind == "" {
		filter.Scope = domain.AllScope
	}
	logAttrs := []any{
		slog.Int("year", year),
		slog.Int("month", month),
		slog.String("scope", filter.Scope.Key()),
		slog.String("status", string(filter.Status.Effective())),
	}

	if err := s.validate(period, filter); err != nil {
		s.LogWarn(ctx, "Rejected stats request, returning empty stats", append(logAttrs, slog.String("error", err.Error()))...)
		return emptyStatsFor(period)
	}

	snapshot, err := s.fetchSnapshot(ctx, filter.Scope)
	if err != nil {
		s.LogError(ctx, err, "Failed to read ledger snapshot, returning empty stats", logAttrs...)
		return emptyStatsFor(period)
	}

	result := accounting.Aggregate(snapshot.transactions, snapshot.checkpoints, accounting.AggregateParams{
		Year:     year,
		Month:    month,
		Filter:   filter,
		BankName: snapshot.bankName,
		Today:    s.Today(),
	})
	if err := accounting.ValidateClosingBalance(result); err != nil {
		s.LogError(ctx, err, "Closing balance does not reconcile", logAttrs...)
	}

	s.LogInfo(ctx, "Stats computed", append(logAttrs,
		slog.Int("records_scanned", len(snapshot.transactions)),
		slog.Int("ledger_entries", len(result.Transactions)),
		slog.String("closing_balance", result.ClosingBalance.String()))...)
	return result
}

func (s *statsService) validate(period domain.MonthKey, filter domain.StatsFilter) error {
	if err := period.Validate(); err != nil {
		return err
	}
	if !filter.Status.Valid() {
		return fmt.Errorf("unknown status filter %q", filter.Status)
	}
	return filter.Scope.Validate()
}

// fetchSnapshot reads the collections the aggregation needs concurrently.
func (s *statsService) fetchSnapshot(ctx context.Context, scope domain.BalanceScope) (statsSnapshot, error) {
	var snapshot statsSnapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		txns, err := s.transactionRepo.ListTransactions(gctx)
		if err != nil {
			return fmt.Errorf("failed to list transactions: %w", err)
		}
		snapshot.transactions = txns
		return nil
	})

	g.Go(func() error {
		checkpoints, err := s.checkpointRepo.ListCheckpoints(gctx)
		if err != nil {
			return fmt.Errorf("failed to list checkpoints: %w", err)
		}
		snapshot.checkpoints = checkpoints
		return nil
	})

	if scope.Kind == domain.ScopeSpecificBank {
		g.Go(func() error {
			bank, err := s.bankRepo.FindBankByID(gctx, scope.BankID)
			if errors.Is(err, apperrors.ErrNotFound) {
				// Checkpoints may still exist for the key; the ledger simply matches nothing.
				s.LogWarn(ctx, "Bank for specific bank scope not found", slog.String("bank_id", scope.BankID))
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to find bank %s: %w", scope.BankID, err)
			}
			snapshot.bankName = bank.Name
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return statsSnapshot{}, err
	}
	return snapshot, nil
}

func emptyStatsFor(period domain.MonthKey) domain.StatsResult {
	result := domain.EmptyStats()
	result.Period = period
	return result
}
