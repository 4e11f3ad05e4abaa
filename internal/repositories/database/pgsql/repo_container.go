package pgsql

import (
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL repositories. The event publisher
// is left for the caller to set.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo:  newPgxTransactionRepository(dbPool),
		CheckpointRepo:   newPgxCheckpointRepository(dbPool),
		IncomeConfigRepo: newPgxIncomeConfigRepository(dbPool),
		BankRepo:         newPgxBankRepository(dbPool),
	}
}
