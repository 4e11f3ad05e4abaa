package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/SscSPs/expense_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, txn_date, description, category, amount::text, txn_type,
		payment_method, currency, status, created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger entries.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.TxnDate,
		&m.Description,
		&m.Category,
		&m.Amount,
		&m.TxnType,
		&m.PaymentMethod,
		&m.Currency,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// ListTransactions reads the whole ledger. Rows whose amount does not parse
// are logged and skipped.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY txn_date, created_at;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	txns := make([]domain.Transaction, 0, len(modelTxns))
	for _, m := range modelTxns {
		txn, err := mapping.ToDomainTransaction(m)
		if err != nil {
			slog.WarnContext(ctx, "Skipping malformed transaction row", "transaction_id", m.TransactionID, "error", err)
			continue
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// FindTransactionByID retrieves a single ledger entry.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	txn, err := mapping.ToDomainTransaction(m)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// ExistsByNaturalKey reports whether an entry with the given date, category
// and type exists, regardless of its status.
func (r *PgxTransactionRepository) ExistsByNaturalKey(ctx context.Context, date time.Time, category string, txType domain.TransactionType) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM transactions
			WHERE txn_date = $1 AND category = $2 AND lower(txn_type) = lower($3)
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, domain.TruncateToDate(date), category, string(txType)).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check transaction natural key: %w", err)
	}
	return exists, nil
}

// SaveTransaction inserts a new ledger entry.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (transaction_id, txn_date, description, category, amount, txn_type,
			payment_method, currency, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.TxnDate,
		m.Description,
		m.Category,
		m.Amount,
		m.TxnType,
		m.PaymentMethod,
		m.Currency,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// UpdateTransaction overwrites the mutable columns of an entry.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions SET
			txn_date = $2, description = $3, category = $4, amount = $5, txn_type = $6,
			payment_method = $7, currency = $8, status = $9, last_updated_at = $10, last_updated_by = $11
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.TxnDate,
		m.Description,
		m.Category,
		m.Amount,
		m.TxnType,
		m.PaymentMethod,
		m.Currency,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
