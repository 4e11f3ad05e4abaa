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

const incomeConfigColumns = `config_id, name, amount, day_of_month, status,
		created_at, created_by, last_updated_at, last_updated_by`

type SQLiteIncomeConfigRepository struct {
	BaseRepository
}

func newSQLiteIncomeConfigRepository(db *sql.DB) portsrepo.IncomeConfigRepositoryFacade {
	return &SQLiteIncomeConfigRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.IncomeConfigRepositoryFacade = (*SQLiteIncomeConfigRepository)(nil)

func scanIncomeConfig(row rowScanner) (models.IncomeConfig, error) {
	var m models.IncomeConfig
	var createdAt, updatedAt string
	err := row.Scan(&m.ConfigID, &m.Name, &m.Amount, &m.DayOfMonth, &m.Status,
		&createdAt, &m.CreatedBy, &updatedAt, &m.LastUpdatedBy)
	if err != nil {
		return m, err
	}
	if m.CreatedAt, err = parseTimestamp("created_at", createdAt); err != nil {
		return m, err
	}
	if m.LastUpdatedAt, err = parseTimestamp("last_updated_at", updatedAt); err != nil {
		return m, err
	}
	return m, nil
}

func (r *SQLiteIncomeConfigRepository) ListIncomeConfigs(ctx context.Context) ([]domain.IncomeConfig, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+incomeConfigColumns+` FROM income_configs ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query income configs: %w", err)
	}
	defer rows.Close()

	configs := []domain.IncomeConfig{}
	for rows.Next() {
		m, err := scanIncomeConfig(rows)
		if err == nil {
			var cfg domain.IncomeConfig
			if cfg, err = mapping.ToDomainIncomeConfig(m); err == nil {
				configs = append(configs, cfg)
				continue
			}
		}
		slog.WarnContext(ctx, "Skipping malformed income config row", "config_id", m.ConfigID, "error", err)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate income configs: %w", err)
	}
	return configs, nil
}

func (r *SQLiteIncomeConfigRepository) FindIncomeConfigByID(ctx context.Context, configID string) (*domain.IncomeConfig, error) {
	m, err := scanIncomeConfig(r.DB.QueryRowContext(ctx, `SELECT `+incomeConfigColumns+` FROM income_configs WHERE config_id = ?`, configID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find income config %s: %w", configID, err)
	}
	cfg, err := mapping.ToDomainIncomeConfig(m)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *SQLiteIncomeConfigRepository) SaveIncomeConfig(ctx context.Context, config domain.IncomeConfig) error {
	m := mapping.ToModelIncomeConfig(config)
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO income_configs (`+incomeConfigColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ConfigID, m.Name, m.Amount, m.DayOfMonth, m.Status,
		formatTimestamp(m.CreatedAt), m.CreatedBy, formatTimestamp(m.LastUpdatedAt), m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: income config %s", apperrors.ErrDuplicate, m.ConfigID)
		}
		return fmt.Errorf("failed to save income config %s: %w", m.ConfigID, err)
	}
	return nil
}

func (r *SQLiteIncomeConfigRepository) UpdateIncomeConfig(ctx context.Context, config domain.IncomeConfig) error {
	m := mapping.ToModelIncomeConfig(config)
	query := `
		UPDATE income_configs SET name = ?, amount = ?, day_of_month = ?, status = ?,
			last_updated_at = ?, last_updated_by = ?
		WHERE config_id = ?
	`
	res, err := r.DB.ExecContext(ctx, query,
		m.Name, m.Amount, m.DayOfMonth, m.Status, formatTimestamp(m.LastUpdatedAt), m.LastUpdatedBy, m.ConfigID)
	if err != nil {
		return fmt.Errorf("failed to update income config %s: %w", m.ConfigID, err)
	}
	return checkAffected(res)
}
