package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/SscSPs/expense_tracker/internal/utils/mapping"
)

const transactionColumns = `transaction_id, txn_date, description, category, amount, txn_type,
		payment_method, currency, status, created_at, created_by, last_updated_at, last_updated_by`

type SQLiteTransactionRepository struct {
	BaseRepository
}

func newSQLiteTransactionRepository(db *sql.DB) portsrepo.TransactionRepositoryFacade {
	return &SQLiteTransactionRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.TransactionRepositoryFacade = (*SQLiteTransactionRepository)(nil)

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var m models.Transaction
	var txnDate, createdAt, updatedAt string
	err := row.Scan(
		&m.TransactionID,
		&txnDate,
		&m.Description,
		&m.Category,
		&m.Amount,
		&m.TxnType,
		&m.PaymentMethod,
		&m.Currency,
		&m.Status,
		&createdAt,
		&m.CreatedBy,
		&updatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return m, err
	}
	if m.TxnDate, err = time.Parse(dateLayout, txnDate); err != nil {
		return m, fmt.Errorf("transaction %s has invalid date %q: %w", m.TransactionID, txnDate, err)
	}
	if m.CreatedAt, err = parseTimestamp("created_at", createdAt); err != nil {
		return m, err
	}
	if m.LastUpdatedAt, err = parseTimestamp("last_updated_at", updatedAt); err != nil {
		return m, err
	}
	return m, nil
}

// ListTransactions reads the whole ledger. Rows that do not decode are logged
// and skipped.
func (r *SQLiteTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+transactionColumns+` FROM transactions ORDER BY txn_date, created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err == nil {
			var txn domain.Transaction
			if txn, err = mapping.ToDomainTransaction(m); err == nil {
				txns = append(txns, txn)
				continue
			}
		}
		slog.WarnContext(ctx, "Skipping malformed transaction row", "transaction_id", m.TransactionID, "error", err)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return txns, nil
}

func (r *SQLiteTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE transaction_id = ?`, transactionID)
	m, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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

func (r *SQLiteTransactionRepository) ExistsByNaturalKey(ctx context.Context, date time.Time, category string, txType domain.TransactionType) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM transactions
			WHERE txn_date = ? AND category = ? AND lower(txn_type) = lower(?)
		)
	`
	var exists bool
	err := r.DB.QueryRowContext(ctx, query, date.Format(dateLayout), category, string(txType)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check transaction natural key: %w", err)
	}
	return exists, nil
}

func (r *SQLiteTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.DB.ExecContext(ctx, query,
		m.TransactionID,
		m.TxnDate.Format(dateLayout),
		m.Description,
		m.Category,
		m.Amount,
		m.TxnType,
		m.PaymentMethod,
		m.Currency,
		m.Status,
		formatTimestamp(m.CreatedAt),
		m.CreatedBy,
		formatTimestamp(m.LastUpdatedAt),
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

func (r *SQLiteTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions SET
			txn_date = ?, description = ?, category = ?, amount = ?, txn_type = ?,
			payment_method = ?, currency = ?, status = ?, last_updated_at = ?, last_updated_by = ?
		WHERE transaction_id = ?
	`
	res, err := r.DB.ExecContext(ctx, query,
		m.TxnDate.Format(dateLayout),
		m.Description,
		m.Category,
		m.Amount,
		m.TxnType,
		m.PaymentMethod,
		m.Currency,
		m.Status,
		formatTimestamp(m.LastUpdatedAt),
		m.LastUpdatedBy,
		m.TransactionID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	return checkAffected(res)
}
