package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/SscSPs/expense_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const checkpointColumns = `checkpoint_id, scope_key, year, month, amount::text, amount_alt::text,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxCheckpointRepository struct {
	BaseRepository
}

func newPgxCheckpointRepository(pool *pgxpool.Pool) portsrepo.CheckpointRepositoryFacade {
	return &PgxCheckpointRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CheckpointRepositoryFacade = (*PgxCheckpointRepository)(nil)

func scanCheckpoint(row pgx.Row) (models.BalanceCheckpoint, error) {
	var m models.BalanceCheckpoint
	err := row.Scan(
		&m.CheckpointID,
		&m.ScopeKey,
		&m.Year,
		&m.Month,
		&m.Amount,
		&m.AmountAlt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// ListCheckpoints reads every checkpoint. Malformed rows are logged and skipped.
func (r *PgxCheckpointRepository) ListCheckpoints(ctx context.Context) ([]domain.BalanceCheckpoint, error) {
	query := `SELECT ` + checkpointColumns + ` FROM balance_checkpoints ORDER BY scope_key, year, month;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query checkpoints: %w", err)
	}
	defer rows.Close()

	modelCps, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.BalanceCheckpoint, error) {
		return scanCheckpoint(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan checkpoints: %w", err)
	}

	checkpoints := make([]domain.BalanceCheckpoint, 0, len(modelCps))
	for _, m := range modelCps {
		cp, err := mapping.ToDomainCheckpoint(m)
		if err != nil {
			slog.WarnContext(ctx, "Skipping malformed checkpoint row", "checkpoint_id", m.CheckpointID, "error", err)
			continue
		}
		checkpoints = append(checkpoints, cp)
	}
	return checkpoints, nil
}

// FindCheckpoint retrieves the checkpoint of a scope for a 0-indexed month.
func (r *PgxCheckpointRepository) FindCheckpoint(ctx context.Context, scopeKey string, year, month int) (*domain.BalanceCheckpoint, error) {
	query := `SELECT ` + checkpointColumns + ` FROM balance_checkpoints WHERE scope_key = $1 AND year = $2 AND month = $3;`
	return r.findOne(ctx, query, scopeKey, year, month)
}

func (r *PgxCheckpointRepository) FindCheckpointByID(ctx context.Context, checkpointID string) (*domain.BalanceCheckpoint, error) {
	query := `SELECT ` + checkpointColumns + ` FROM balance_checkpoints WHERE checkpoint_id = $1;`
	return r.findOne(ctx, query, checkpointID)
}

func (r *PgxCheckpointRepository) findOne(ctx context.Context, query string, args ...any) (*domain.BalanceCheckpoint, error) {
	m, err := scanCheckpoint(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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

// SaveCheckpoint inserts a checkpoint. The (scope_key, year, month) unique
// index turns a second checkpoint for the same slot into ErrDuplicate.
func (r *PgxCheckpointRepository) SaveCheckpoint(ctx context.Context, checkpoint domain.BalanceCheckpoint) error {
	m := mapping.ToModelCheckpoint(checkpoint)
	query := `
		INSERT INTO balance_checkpoints (checkpoint_id, scope_key, year, month, amount, amount_alt,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CheckpointID,
		m.ScopeKey,
		m.Year,
		m.Month,
		m.Amount,
		m.AmountAlt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
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

func (r *PgxCheckpointRepository) UpdateCheckpoint(ctx context.Context, checkpoint domain.BalanceCheckpoint) error {
	m := mapping.ToModelCheckpoint(checkpoint)
	query := `
		UPDATE balance_checkpoints SET amount = $2, amount_alt = $3, last_updated_at = $4, last_updated_by = $5
		WHERE checkpoint_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.CheckpointID, m.Amount, m.AmountAlt, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update checkpoint %s: %w", m.CheckpointID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCheckpointRepository) DeleteCheckpoint(ctx context.Context, checkpointID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM balance_checkpoints WHERE checkpoint_id = $1;`, checkpointID)
	if err != nil {
		return fmt.Errorf("failed to delete checkpoint %s: %w", checkpointID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
