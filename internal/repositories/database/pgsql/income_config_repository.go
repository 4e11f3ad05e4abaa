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

const incomeConfigColumns = `config_id, name, amount::text AS amount, day_of_month, status,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxIncomeConfigRepository struct {
	BaseRepository
}

func newPgxIncomeConfigRepository(pool *pgxpool.Pool) portsrepo.IncomeConfigRepositoryFacade {
	return &PgxIncomeConfigRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.IncomeConfigRepositoryFacade = (*PgxIncomeConfigRepository)(nil)

// ListIncomeConfigs reads every income rule. Malformed rows are logged and skipped.
func (r *PgxIncomeConfigRepository) ListIncomeConfigs(ctx context.Context) ([]domain.IncomeConfig, error) {
	query := `SELECT ` + incomeConfigColumns + ` FROM income_configs ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query income configs: %w", err)
	}
	defer rows.Close()

	modelCfgs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.IncomeConfig])
	if err != nil {
		return nil, fmt.Errorf("failed to scan income configs: %w", err)
	}

	configs := make([]domain.IncomeConfig, 0, len(modelCfgs))
	for _, m := range modelCfgs {
		cfg, err := mapping.ToDomainIncomeConfig(m)
		if err != nil {
			slog.WarnContext(ctx, "Skipping malformed income config row", "config_id", m.ConfigID, "error", err)
			continue
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

func (r *PgxIncomeConfigRepository) FindIncomeConfigByID(ctx context.Context, configID string) (*domain.IncomeConfig, error) {
	query := `SELECT ` + incomeConfigColumns + ` FROM income_configs WHERE config_id = $1;`

	rows, err := r.Pool.Query(ctx, query, configID)
	if err != nil {
		return nil, fmt.Errorf("failed to query income config %s: %w", configID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.IncomeConfig])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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

func (r *PgxIncomeConfigRepository) SaveIncomeConfig(ctx context.Context, config domain.IncomeConfig) error {
	m := mapping.ToModelIncomeConfig(config)
	query := `
		INSERT INTO income_configs (config_id, name, amount, day_of_month, status,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ConfigID, m.Name, m.Amount, m.DayOfMonth, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: income config %s", apperrors.ErrDuplicate, m.ConfigID)
		}
		return fmt.Errorf("failed to save income config %s: %w", m.ConfigID, err)
	}
	return nil
}

func (r *PgxIncomeConfigRepository) UpdateIncomeConfig(ctx context.Context, config domain.IncomeConfig) error {
	m := mapping.ToModelIncomeConfig(config)
	query := `
		UPDATE income_configs SET name = $2, amount = $3, day_of_month = $4, status = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE config_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ConfigID, m.Name, m.Amount, m.DayOfMonth, m.Status, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update income config %s: %w", m.ConfigID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
