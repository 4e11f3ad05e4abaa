package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/SscSPs/expense_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBankRepository struct {
	BaseRepository
}

func newPgxBankRepository(pool *pgxpool.Pool) portsrepo.BankRepositoryFacade {
	return &PgxBankRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BankRepositoryFacade = (*PgxBankRepository)(nil)

func (r *PgxBankRepository) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	query := `
		SELECT bank_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM banks
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query banks: %w", err)
	}
	defer rows.Close()

	modelBanks, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Bank])
	if err != nil {
		return nil, fmt.Errorf("failed to scan banks: %w", err)
	}
	return mapping.ToDomainBankSlice(modelBanks), nil
}

func (r *PgxBankRepository) FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error) {
	query := `
		SELECT bank_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM banks
		WHERE bank_id = $1;
	`
	var m models.Bank
	err := r.Pool.QueryRow(ctx, query, bankID).Scan(
		&m.BankID,
		&m.Name,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank %s: %w", bankID, err)
	}
	bank := mapping.ToDomainBank(m)
	return &bank, nil
}

// SaveBank inserts a bank. Names are unique case-insensitively.
func (r *PgxBankRepository) SaveBank(ctx context.Context, bank domain.Bank) error {
	m := mapping.ToModelBank(bank)
	query := `
		INSERT INTO banks (bank_id, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.BankID, m.Name, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: bank %q", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save bank %s: %w", m.BankID, err)
	}
	return nil
}
