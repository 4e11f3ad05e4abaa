package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the SQLite repositories onto one database handle.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo:  newSQLiteTransactionRepository(db),
		CheckpointRepo:   newSQLiteCheckpointRepository(db),
		IncomeConfigRepo: newSQLiteIncomeConfigRepository(db),
		BankRepo:         newSQLiteBankRepository(db),
	}
}
