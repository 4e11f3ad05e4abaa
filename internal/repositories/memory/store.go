// Package memory keeps the ledger in process memory. It backs local
// development and tests; nothing survives a restart.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
)

// Store implements every repository port over guarded maps. Reads return
// copies so callers never alias stored values.
type Store struct {
	mu           sync.RWMutex
	transactions map[string]domain.Transaction
	checkpoints  map[string]domain.BalanceCheckpoint
	configs      map[string]domain.IncomeConfig
	banks        map[string]domain.Bank
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		transactions: make(map[string]domain.Transaction),
		checkpoints:  make(map[string]domain.BalanceCheckpoint),
		configs:      make(map[string]domain.IncomeConfig),
		banks:        make(map[string]domain.Bank),
	}
}

var (
	_ portsrepo.TransactionRepositoryFacade  = (*Store)(nil)
	_ portsrepo.CheckpointRepositoryFacade   = (*Store)(nil)
	_ portsrepo.IncomeConfigRepositoryFacade = (*Store)(nil)
	_ portsrepo.BankRepositoryFacade         = (*Store)(nil)
)

// NewRepositoryProvider wires one store behind every repository port.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo:  store,
		CheckpointRepo:   store,
		IncomeConfigRepo: store,
		BankRepo:         store,
	}
}

// --- transactions ---

func (s *Store) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Transaction, 0, len(s.transactions))
	for _, txn := range s.transactions {
		out = append(out, txn)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].TransactionID < out[j].TransactionID
	})
	return out, nil
}

func (s *Store) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txn, ok := s.transactions[transactionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &txn, nil
}

func (s *Store) ExistsByNaturalKey(ctx context.Context, date time.Time, category string, txType domain.TransactionType) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	day := domain.TruncateToDate(date)
	for _, txn := range s.transactions {
		if domain.TruncateToDate(txn.Date).Equal(day) &&
			txn.Category == category &&
			strings.EqualFold(string(txn.Type), string(txType)) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.transactions[txn.TransactionID]; ok {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrDuplicate, txn.TransactionID)
	}
	s.transactions[txn.TransactionID] = txn
	return nil
}

func (s *Store) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.transactions[txn.TransactionID]; !ok {
		return apperrors.ErrNotFound
	}
	s.transactions[txn.TransactionID] = txn
	return nil
}

// --- checkpoints ---

func (s *Store) ListCheckpoints(ctx context.Context) ([]domain.BalanceCheckpoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.BalanceCheckpoint, 0, len(s.checkpoints))
	for _, cp := range s.checkpoints {
		out = append(out, copyCheckpoint(cp))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Scope.Key() != out[j].Scope.Key() {
			return out[i].Scope.Key() < out[j].Scope.Key()
		}
		return out[i].MonthKey().Ordinal() < out[j].MonthKey().Ordinal()
	})
	return out, nil
}

func (s *Store) FindCheckpoint(ctx context.Context, scopeKey string, year, month int) (*domain.BalanceCheckpoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if cp, ok := s.findSlot(scopeKey, year, month); ok {
		found := copyCheckpoint(cp)
		return &found, nil
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) FindCheckpointByID(ctx context.Context, checkpointID string) (*domain.BalanceCheckpoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp, ok := s.checkpoints[checkpointID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	found := copyCheckpoint(cp)
	return &found, nil
}

func (s *Store) SaveCheckpoint(ctx context.Context, checkpoint domain.BalanceCheckpoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findSlot(checkpoint.Scope.Key(), checkpoint.Year, checkpoint.Month); ok {
		return fmt.Errorf("%w: checkpoint for %s %d-%02d", apperrors.ErrDuplicate, checkpoint.Scope.Key(), checkpoint.Year, checkpoint.Month)
	}
	if _, ok := s.checkpoints[checkpoint.CheckpointID]; ok {
		return fmt.Errorf("%w: checkpoint %s", apperrors.ErrDuplicate, checkpoint.CheckpointID)
	}
	s.checkpoints[checkpoint.CheckpointID] = copyCheckpoint(checkpoint)
	return nil
}

func (s *Store) UpdateCheckpoint(ctx context.Context, checkpoint domain.BalanceCheckpoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.checkpoints[checkpoint.CheckpointID]; !ok {
		return apperrors.ErrNotFound
	}
	s.checkpoints[checkpoint.CheckpointID] = copyCheckpoint(checkpoint)
	return nil
}

func (s *Store) DeleteCheckpoint(ctx context.Context, checkpointID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.checkpoints[checkpointID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.checkpoints, checkpointID)
	return nil
}

// findSlot expects s.mu to be held.
func (s *Store) findSlot(scopeKey string, year, month int) (domain.BalanceCheckpoint, bool) {
	for _, cp := range s.checkpoints {
		if cp.Scope.Key() == scopeKey && cp.Year == year && cp.Month == month {
			return cp, true
		}
	}
	return domain.BalanceCheckpoint{}, false
}

func copyCheckpoint(cp domain.BalanceCheckpoint) domain.BalanceCheckpoint {
	if cp.AmountAlt != nil {
		alt := *cp.AmountAlt
		cp.AmountAlt = &alt
	}
	return cp
}

// --- income configs ---

func (s *Store) ListIncomeConfigs(ctx context.Context) ([]domain.IncomeConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.IncomeConfig, 0, len(s.configs))
	for _, cfg := range s.configs {
		out = append(out, cfg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) FindIncomeConfigByID(ctx context.Context, configID string) (*domain.IncomeConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg, ok := s.configs[configID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &cfg, nil
}

func (s *Store) SaveIncomeConfig(ctx context.Context, config domain.IncomeConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.configs[config.ConfigID]; ok {
		return fmt.Errorf("%w: income config %s", apperrors.ErrDuplicate, config.ConfigID)
	}
	s.configs[config.ConfigID] = config
	return nil
}

func (s *Store) UpdateIncomeConfig(ctx context.Context, config domain.IncomeConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.configs[config.ConfigID]; !ok {
		return apperrors.ErrNotFound
	}
	s.configs[config.ConfigID] = config
	return nil
}

// --- banks ---

func (s *Store) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Bank, 0, len(s.banks))
	for _, bank := range s.banks {
		out = append(out, bank)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bank, ok := s.banks[bankID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &bank, nil
}

func (s *Store) SaveBank(ctx context.Context, bank domain.Bank) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.banks {
		if existing.BankID == bank.BankID || strings.EqualFold(existing.Name, bank.Name) {
			return fmt.Errorf("%w: bank %q", apperrors.ErrDuplicate, bank.Name)
		}
	}
	s.banks[bank.BankID] = bank
	return nil
}
