package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/SscSPs/expense_tracker/internal/utils/mapping"
)

const bankColumns = `bank_id, name, created_at, created_by, last_updated_at, last_updated_by`

type SQLiteBankRepository struct {
	BaseRepository
}

func newSQLiteBankRepository(db *sql.DB) portsrepo.BankRepositoryFacade {
	return &SQLiteBankRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.BankRepositoryFacade = (*SQLiteBankRepository)(nil)

func scanBank(row rowScanner) (models.Bank, error) {
	var m models.Bank
	var createdAt, updatedAt string
	if err := row.Scan(&m.BankID, &m.Name, &createdAt, &m.CreatedBy, &updatedAt, &m.LastUpdatedBy); err != nil {
		return m, err
	}
	var err error
	if m.CreatedAt, err = parseTimestamp("created_at", createdAt); err != nil {
		return m, err
	}
	if m.LastUpdatedAt, err = parseTimestamp("last_updated_at", updatedAt); err != nil {
		return m, err
	}
	return m, nil
}

func (r *SQLiteBankRepository) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+bankColumns+` FROM banks ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query banks: %w", err)
	}
	defer rows.Close()

	var modelBanks []models.Bank
	for rows.Next() {
		m, err := scanBank(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank: %w", err)
		}
		modelBanks = append(modelBanks, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate banks: %w", err)
	}
	return mapping.ToDomainBankSlice(modelBanks), nil
}

func (r *SQLiteBankRepository) FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error) {
	m, err := scanBank(r.DB.QueryRowContext(ctx, `SELECT `+bankColumns+` FROM banks WHERE bank_id = ?`, bankID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank %s: %w", bankID, err)
	}
	bank := mapping.ToDomainBank(m)
	return &bank, nil
}

func (r *SQLiteBankRepository) SaveBank(ctx context.Context, bank domain.Bank) error {
	m := mapping.ToModelBank(bank)
	_, err := r.DB.ExecContext(ctx, `INSERT INTO banks (`+bankColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		m.BankID, m.Name, formatTimestamp(m.CreatedAt), m.CreatedBy, formatTimestamp(m.LastUpdatedAt), m.LastUpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: bank %q", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save bank %s: %w", m.BankID, err)
	}
	return nil
}
