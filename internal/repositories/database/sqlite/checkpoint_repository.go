package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/SscSPs/expense_tracker/internal/utils/mapping"
)

const checkpointColumns = `checkpoint_id, scope_key, year, month, amount, amount_alt,
		created_at, created_by, last_updated_at, last_updated_by`

type SQLiteCheckpointRepository struct {
	BaseRepository
}

func newSQLiteCheckpointRepository(db *sql.DB) portsrepo.CheckpointRepositoryFacade {
	return &SQLiteCheckpointRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.CheckpointRepositoryFacade = (*SQLiteCheckpointRepository)(nil)

func scanCheckpoint(row rowScanner) (models.BalanceCheckpoint, error) {
	var m models.BalanceCheckpoint
	var amountAlt sql.NullString
	var createdAt, updatedAt string
	err := row.Scan(
		&m.CheckpointID,
		&m.ScopeKey,
		&m.Year,
		&m.Month,
		&m.Amount,
		&amountAlt,
		&createdAt,
		&m.CreatedBy,
		&updatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return m, err
	}
	if amountAlt.Valid {
		m.AmountAlt = &amountAlt.String
	}
	if m.CreatedAt, err = parseTimestamp("created_at", createdAt); err != nil {
		return m, err
	}
	if m.LastUpdatedAt, err = parseTimestamp("last_updated_at", updatedAt); err != nil {
		return m, err
	}
	return m, nil
}

func (r *SQLiteCheckpointRepository) ListCheckpoints(ctx context.Context) ([]domain.BalanceCheckpoint, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+checkpointColumns+` FROM balance_checkpoints ORDER BY scope_key, year, month`)
	if err != nil {
		return nil, fmt.Errorf("failed to query checkpoints: %w", err)
	}
	defer rows.Close()

	checkpoints := []domain.BalanceCheckpoint{}
	for rows.Next() {
		m, err := scanCheckpoint(rows)
		if err == nil {
			var cp domain.BalanceCheckpoint
			if cp, err = mapping.ToDomainCheckpoint(m); err == nil {
				checkpoints = append(checkpoints, cp)
				continue
			}
		}
		slog.WarnContext(ctx, "Skipping malformed checkpoint row", "checkpoint_id", m.CheckpointID, "error", err)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate checkpoints: %w", err)
	}
	return checkpoints, nil
}

func (r *SQLiteCheckpointRepository) FindCheckpoint(ctx context.Context, scopeKey string, year, month int) (*domain.BalanceCheckpoint, error) {
	query := `SELECT ` + checkpointColumns + ` FROM balance_checkpoints WHERE scope_key = ? AND year = ? AND month = ?`
	return r.findOne(ctx, query, scopeKey, year, month)
}

func (r *SQLiteCheckpointRepository) FindCheckpointByID(ctx context.Context, checkpointID string) (*domain.BalanceCheckpoint, error) {
	return r.findOne(ctx, `SELECT `+checkpointColumns+` FROM balance_checkpoints WHERE checkpoint_id = ?`, checkpointID)
}

func (r *SQLiteCheckpointRepository) findOne(ctx context.Context, query string, args ...any) (*domain.BalanceCheckpoint, error) {
	m, err := scanCheckpoint(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find checkpoint: %w", err)
	}
	cp, err := mapping.ToDomainCheckpoint(m)
	if err != nil {
		return nil, err
	}
	return &cp, nil
}

func (r *SQLiteCheckpointRepository) SaveCheckpoint(ctx context.Context, checkpoint domain.BalanceCheckpoint) error {
	m := mapping.ToModelCheckpoint(checkpoint)
	query := `INSERT INTO balance_checkpoints (` + checkpointColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, query,
		m.CheckpointID,
		m.ScopeKey,
		m.Year,
		m.Month,
		m.Amount,
		m.AmountAlt,
		formatTimestamp(m.CreatedAt),
		m.CreatedBy,
		formatTimestamp(m.LastUpdatedAt),
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: checkpoint for %s %d-%02d", apperrors.ErrDuplicate, m.ScopeKey, m.Year, m.Month)
		}
		return fmt.Errorf("failed to save checkpoint %s: %w", m.CheckpointID, err)
	}
	return nil
}

func (r *SQLiteCheckpointRepository) UpdateCheckpoint(ctx context.Context, checkpoint domain.BalanceCheckpoint) error {
	m := mapping.ToModelCheckpoint(checkpoint)
	query := `
		UPDATE balance_checkpoints SET amount = ?, amount_alt = ?, last_updated_at = ?, last_updated_by = ?
		WHERE checkpoint_id = ?
	`
	res, err := r.DB.ExecContext(ctx, query, m.Amount, m.AmountAlt, formatTimestamp(m.LastUpdatedAt), m.LastUpdatedBy, m.CheckpointID)
	if err != nil {
		return fmt.Errorf("failed to update checkpoint %s: %w", m.CheckpointID, err)
	}
	return checkAffected(res)
}

func (r *SQLiteCheckpointRepository) DeleteCheckpoint(ctx context.Context, checkpointID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM balance_checkpoints WHERE checkpoint_id = ?`, checkpointID)
	if err != nil {
		return fmt.Errorf("failed to delete checkpoint %s: %w", checkpointID, err)
	}
	return checkAffected(res)
}
