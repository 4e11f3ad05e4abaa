package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/repositories/database/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	db    *sql.DB
	repos portsrepo.RepositoryProvider
	ctx   context.Context
	now   time.Time
}

func (suite *SQLiteRepositoryTestSuite) SetupTest() {
	path := filepath.Join(suite.T().TempDir(), "ledger.db")
	suite.Require().NoError(sqlite.RunMigrations(path))

	db, err := sql.Open("sqlite", path)
	suite.Require().NoError(err)
	db.SetMaxOpenConns(1)
	suite.db = db
	suite.repos = sqlite.NewRepositoryProvider(db)
	suite.ctx = context.Background()
	suite.now = time.Date(2026, time.March, 1, 10, 30, 0, 0, time.UTC)
}

func (suite *SQLiteRepositoryTestSuite) TearDownTest() {
	suite.db.Close()
}

func (suite *SQLiteRepositoryTestSuite) transaction(id string, date time.Time, category string) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		Date:          date,
		Description:   "desc " + id,
		Category:      category,
		Amount:        decimal.RequireFromString("12.34"),
		Type:          domain.Income,
		PaymentMethod: "ABA Bank",
		Currency:      domain.USD,
		Status:        domain.StatusActive,
		AuditFields:   domain.NewAuditFields("tester", suite.now),
	}
}

func (suite *SQLiteRepositoryTestSuite) TestTransactionRoundTrip() {
	repo := suite.repos.TransactionRepo
	txn := suite.transaction("t1", domain.NewDate(2026, time.March, 1), "Salary")
	suite.Require().NoError(repo.SaveTransaction(suite.ctx, txn))

	got, err := repo.FindTransactionByID(suite.ctx, "t1")
	suite.Require().NoError(err)
	suite.True(got.Amount.Equal(txn.Amount))
	suite.True(got.Date.Equal(txn.Date))
	suite.True(got.CreatedAt.Equal(suite.now))
	suite.Equal("ABA Bank", got.PaymentMethod)

	got.Status = domain.StatusInactive
	suite.Require().NoError(repo.UpdateTransaction(suite.ctx, *got))

	all, err := repo.ListTransactions(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 1)
	suite.Equal(domain.StatusInactive, all[0].Status)
}

func (suite *SQLiteRepositoryTestSuite) TestTransactionNotFound() {
	_, err := suite.repos.TransactionRepo.FindTransactionByID(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	err = suite.repos.TransactionRepo.UpdateTransaction(suite.ctx, suite.transaction("missing", suite.now, "X"))
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SQLiteRepositoryTestSuite) TestExistsByNaturalKey() {
	repo := suite.repos.TransactionRepo
	due := domain.NewDate(2026, time.March, 1)
	exists, err := repo.ExistsByNaturalKey(suite.ctx, due, "Salary", domain.Income)
	suite.Require().NoError(err)
	suite.False(exists)

	suite.Require().NoError(repo.SaveTransaction(suite.ctx, suite.transaction("t1", due, "Salary")))

	exists, err = repo.ExistsByNaturalKey(suite.ctx, due, "Salary", domain.Income)
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = repo.ExistsByNaturalKey(suite.ctx, due, "Salary", domain.Expense)
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *SQLiteRepositoryTestSuite) TestListSkipsMalformedRows() {
	repo := suite.repos.TransactionRepo
	suite.Require().NoError(repo.SaveTransaction(suite.ctx, suite.transaction("good", domain.NewDate(2026, time.March, 1), "Salary")))
	_, err := suite.db.Exec(`INSERT INTO transactions VALUES ('bad', '2026-03-02', 'x', 'Food', 'abc', 'Expense', 'Cash', 'USD', 'active',
		'2026-03-01T00:00:00Z', 'tester', '2026-03-01T00:00:00Z', 'tester')`)
	suite.Require().NoError(err)

	all, err := repo.ListTransactions(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 1)
	suite.Equal("good", all[0].TransactionID)
}

func (suite *SQLiteRepositoryTestSuite) TestCheckpointUniqueSlot() {
	repo := suite.repos.CheckpointRepo
	alt := decimal.NewFromInt(40000)
	cp := domain.BalanceCheckpoint{
		CheckpointID: "c1", Scope: domain.CashScope, Year: 2026, Month: 0,
		Amount: decimal.NewFromInt(10), AmountAlt: &alt, AuditFields: domain.NewAuditFields("tester", suite.now),
	}
	suite.Require().NoError(repo.SaveCheckpoint(suite.ctx, cp))

	dup := cp
	dup.CheckpointID = "c2"
	suite.ErrorIs(repo.SaveCheckpoint(suite.ctx, dup), apperrors.ErrDuplicate)

	got, err := repo.FindCheckpoint(suite.ctx, "cash", 2026, 0)
	suite.Require().NoError(err)
	suite.Require().NotNil(got.AmountAlt)
	suite.True(got.AmountAlt.Equal(alt))

	_, err = repo.FindCheckpoint(suite.ctx, "cash", 2026, 1)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.Require().NoError(repo.DeleteCheckpoint(suite.ctx, "c1"))
	suite.ErrorIs(repo.DeleteCheckpoint(suite.ctx, "c1"), apperrors.ErrNotFound)
}

func (suite *SQLiteRepositoryTestSuite) TestSpecificBankCheckpointKey() {
	repo := suite.repos.CheckpointRepo
	cp := domain.BalanceCheckpoint{
		CheckpointID: "c1", Scope: domain.SpecificBankScope("b1"), Year: 2026, Month: 3,
		Amount: decimal.NewFromInt(10), AuditFields: domain.NewAuditFields("tester", suite.now),
	}
	suite.Require().NoError(repo.SaveCheckpoint(suite.ctx, cp))

	all, err := repo.ListCheckpoints(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 1)
	suite.Equal(domain.SpecificBankScope("b1"), all[0].Scope)
	suite.Nil(all[0].AmountAlt)
}

func (suite *SQLiteRepositoryTestSuite) TestIncomeConfigs() {
	repo := suite.repos.IncomeConfigRepo
	cfg := domain.IncomeConfig{
		ConfigID: "cfg1", Name: "Salary", Amount: decimal.NewFromInt(1000), DayOfMonth: 25,
		Status: domain.StatusActive, AuditFields: domain.NewAuditFields("tester", suite.now),
	}
	suite.Require().NoError(repo.SaveIncomeConfig(suite.ctx, cfg))

	cfg.Status = domain.StatusInactive
	suite.Require().NoError(repo.UpdateIncomeConfig(suite.ctx, cfg))

	got, err := repo.FindIncomeConfigByID(suite.ctx, "cfg1")
	suite.Require().NoError(err)
	suite.Equal(domain.StatusInactive, got.Status)
	suite.Equal(25, got.DayOfMonth)

	list, err := repo.ListIncomeConfigs(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(list, 1)
}

func (suite *SQLiteRepositoryTestSuite) TestBankNamesUniqueIgnoringCase() {
	repo := suite.repos.BankRepo
	suite.Require().NoError(repo.SaveBank(suite.ctx, domain.Bank{BankID: "b1", Name: "ABA", AuditFields: domain.NewAuditFields("tester", suite.now)}))
	err := repo.SaveBank(suite.ctx, domain.Bank{BankID: "b2", Name: "aba", AuditFields: domain.NewAuditFields("tester", suite.now)})
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	banks, err := repo.ListBanks(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(banks, 1)

	_, err = repo.FindBankByID(suite.ctx, "b2")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}
