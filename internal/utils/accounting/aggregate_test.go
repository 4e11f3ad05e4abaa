package accounting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(date time.Time, typ domain.TransactionType, amount string, category string) domain.Transaction {
	return domain.Transaction{
		Date:          date,
		Description:   category,
		Category:      category,
		Amount:        decimal.RequireFromString(amount),
		Type:          typ,
		PaymentMethod: "ABA Bank",
		Currency:      domain.USD,
		Status:        domain.StatusActive,
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAggregate_EndToEnd(t *testing.T) {
	records := []domain.Transaction{
		txn(domain.NewDate(2026, time.February, 5), domain.Income, "1000", "Salary"),
		txn(domain.NewDate(2026, time.February, 10), domain.Expense, "200", "Food"),
		txn(domain.NewDate(2026, time.March, 1), domain.Expense, "999", "Rent"),
	}
	checkpoints := []domain.BalanceCheckpoint{checkpoint(domain.BankScope, 2026, 1, 50)}

	got := accounting.Aggregate(records, checkpoints, accounting.AggregateParams{
		Year:   2026,
		Month:  1,
		Filter: domain.StatsFilter{Status: domain.StatusFilterActive},
		Today:  domain.NewDate(2026, time.March, 15),
	})

	assert.True(t, got.StartingBalance.Equal(dec("50")))
	assert.True(t, got.MonthlyIncome.Equal(dec("1000")))
	assert.True(t, got.MonthlyExpense.Equal(dec("200")))
	assert.True(t, got.ClosingBalance.Equal(dec("850")))
	assert.Equal(t, "Food", got.TopCategory)
	assert.True(t, got.LargestExpense.Equal(dec("200")))
	assert.True(t, got.YearlyExpense.Equal(dec("1199")), "march expense counts toward the year only")
	require.Len(t, got.Transactions, 2)
	assert.True(t, got.Transactions[0].RunningBalance.Equal(dec("1050")))
	assert.True(t, got.Transactions[1].RunningBalance.Equal(dec("850")))
	require.Len(t, got.IncomeItems, 1)
	assert.Equal(t, "Salary", got.IncomeItems[0].Category)
	assert.NoError(t, accounting.ValidateClosingBalance(got))
}

func TestAggregate_CurrenciesNeverMix(t *testing.T) {
	riel := txn(domain.NewDate(2026, time.February, 10), domain.Expense, "40000", "Food")
	riel.Currency = domain.KHR
	records := []domain.Transaction{
		txn(domain.NewDate(2026, time.February, 5), domain.Income, "1000", "Salary"),
		riel,
	}
	checkpoints := []domain.BalanceCheckpoint{checkpoint(domain.BankScope, 2026, 1, 500)}
	params := accounting.AggregateParams{Year: 2026, Month: 1, Today: domain.NewDate(2026, time.March, 1)}

	params.Filter = domain.StatsFilter{Scope: domain.BankScope}
	usd := accounting.Aggregate(records, checkpoints, params)
	assert.True(t, usd.StartingBalance.Equal(dec("500")))
	assert.True(t, usd.MonthlyIncome.Equal(dec("1000")))
	assert.True(t, usd.MonthlyExpense.IsZero(), "riel expense stays out of the USD statement")
	assert.True(t, usd.ClosingBalance.Equal(dec("1500")))
	assert.Len(t, usd.Transactions, 1)

	params.Filter = domain.StatsFilter{Scope: domain.BankScope, Currency: domain.KHR}
	khr := accounting.Aggregate(records, checkpoints, params)
	assert.True(t, khr.StartingBalance.IsZero(), "bank checkpoints are USD")
	assert.True(t, khr.MonthlyIncome.IsZero())
	assert.True(t, khr.MonthlyExpense.Equal(dec("40000")))
	assert.True(t, khr.ClosingBalance.Equal(dec("-40000")))
	assert.Len(t, khr.Transactions, 1)
}

func TestAggregate_FutureIncomeExcludedFromHistory(t *testing.T) {
	base := []domain.Transaction{
		txn(domain.NewDate(2026, time.March, 2), domain.Income, "100", "Salary"),
		txn(domain.NewDate(2026, time.March, 3), domain.Expense, "30", "Food"),
	}
	params := accounting.AggregateParams{Year: 2026, Month: 2, Today: domain.NewDate(2026, time.March, 10)}

	before := accounting.Aggregate(base, nil, params)
	withFuture := append(append([]domain.Transaction{}, base...),
		txn(domain.NewDate(2026, time.March, 25), domain.Income, "50", "Bonus"))
	after := accounting.Aggregate(withFuture, nil, params)

	assert.True(t, after.MonthlyIncome.Equal(before.MonthlyIncome))
	assert.True(t, after.ClosingBalance.Equal(before.ClosingBalance))
	assert.True(t, after.YearlyIncome.Equal(before.YearlyIncome))
	assert.True(t, after.MonthlyIncomeWithFuture.Equal(before.MonthlyIncomeWithFuture.Add(dec("50"))))
	assert.Len(t, after.IncomeItems, len(before.IncomeItems))

	require.Len(t, after.Transactions, 3)
	last := after.Transactions[2]
	assert.Equal(t, "Bonus", last.Category)
	assert.True(t, last.IsFuture)
}

func TestAggregate_FutureExpenseExcludedFromCategories(t *testing.T) {
	records := []domain.Transaction{
		txn(domain.NewDate(2026, time.March, 20), domain.Expense, "500", "Rent"),
		txn(domain.NewDate(2026, time.March, 2), domain.Expense, "10", "Food"),
	}
	got := accounting.Aggregate(records, nil, accounting.AggregateParams{
		Year: 2026, Month: 2, Today: domain.NewDate(2026, time.March, 10),
	})

	assert.True(t, got.MonthlyExpense.Equal(dec("10")))
	assert.True(t, got.LargestExpense.Equal(dec("10")))
	assert.Equal(t, "Food", got.TopCategory)
	require.Len(t, got.Categories, 1)
	assert.Len(t, got.Transactions, 2)
}

func TestAggregate_YearlyTotalsAndMonthBoundaries(t *testing.T) {
	records := []domain.Transaction{
		txn(domain.NewDate(2025, time.December, 31), domain.Income, "7", "Salary"),
		txn(domain.NewDate(2026, time.January, 31), domain.Income, "100", "Salary"),
		txn(domain.NewDate(2026, time.February, 1), domain.Income, "200", "Salary"),
		txn(domain.NewDate(2026, time.February, 28), domain.Expense, "20", "Food"),
		txn(domain.NewDate(2026, time.March, 1), domain.Expense, "40", "Food"),
	}
	got := accounting.Aggregate(records, nil, accounting.AggregateParams{
		Year: 2026, Month: 1, Today: domain.NewDate(2026, time.December, 31),
	})

	assert.True(t, got.MonthlyIncome.Equal(dec("200")))
	assert.True(t, got.MonthlyExpense.Equal(dec("20")))
	assert.True(t, got.YearlyIncome.Equal(dec("300")))
	assert.True(t, got.YearlyExpense.Equal(dec("60")))
	assert.Len(t, got.Transactions, 2)
}

func TestAggregate_StatusFilter(t *testing.T) {
	inactive := txn(domain.NewDate(2026, time.January, 3), domain.Expense, "80", "Food")
	inactive.Status = domain.StatusInactive
	records := []domain.Transaction{
		txn(domain.NewDate(2026, time.January, 2), domain.Expense, "20", "Food"),
		inactive,
	}
	params := accounting.AggregateParams{Year: 2026, Month: 0, Today: domain.NewDate(2026, time.February, 1)}

	got := accounting.Aggregate(records, nil, params)
	assert.True(t, got.MonthlyExpense.Equal(dec("20")), "omitted filter means active only")

	params.Filter.Status = domain.StatusFilterAll
	got = accounting.Aggregate(records, nil, params)
	assert.True(t, got.MonthlyExpense.Equal(dec("100")))

	params.Filter.Status = domain.StatusFilterInactive
	got = accounting.Aggregate(records, nil, params)
	assert.True(t, got.MonthlyExpense.Equal(dec("80")))
}

func TestAggregate_CategoriesSortedDescending(t *testing.T) {
	day := domain.NewDate(2026, time.January, 5)
	records := []domain.Transaction{
		txn(day, domain.Expense, "10", "B"),
		txn(day, domain.Expense, "30", "C"),
		txn(day, domain.Expense, "10", "A"),
		txn(day, domain.Expense, "5", "C"),
	}
	got := accounting.Aggregate(records, nil, accounting.AggregateParams{
		Year: 2026, Month: 0, Today: domain.NewDate(2026, time.February, 1),
	})

	require.Len(t, got.Categories, 3)
	assert.Equal(t, "C", got.Categories[0].Name)
	assert.True(t, got.Categories[0].Total.Equal(dec("35")))
	assert.Equal(t, "A", got.Categories[1].Name)
	assert.Equal(t, "B", got.Categories[2].Name)
	assert.Equal(t, "C", got.TopCategory)
}

func TestAggregate_LedgerOrder(t *testing.T) {
	day := domain.NewDate(2026, time.January, 5)
	early := txn(day, domain.Expense, "1", "Second")
	early.CreatedAt = time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)
	late := txn(day, domain.Expense, "2", "Third")
	late.CreatedAt = time.Date(2026, time.January, 5, 18, 0, 0, 0, time.UTC)
	first := txn(domain.NewDate(2026, time.January, 1), domain.Income, "10", "First")

	got := accounting.Aggregate([]domain.Transaction{late, early, first}, nil, accounting.AggregateParams{
		Year: 2026, Month: 0, Today: domain.NewDate(2026, time.February, 1),
	})

	require.Len(t, got.Transactions, 3)
	assert.Equal(t, "First", got.Transactions[0].Category)
	assert.Equal(t, "Second", got.Transactions[1].Category)
	assert.Equal(t, "Third", got.Transactions[2].Category)
	assert.True(t, got.Transactions[2].RunningBalance.Equal(dec("7")))
}

func TestAggregate_EmptyMonth(t *testing.T) {
	got := accounting.Aggregate(nil, nil, accounting.AggregateParams{Year: 2026, Month: 4})

	assert.Equal(t, domain.NoCategory, got.TopCategory)
	assert.True(t, got.ClosingBalance.IsZero())
	assert.NotNil(t, got.Categories)
	assert.NotNil(t, got.Transactions)
	assert.NotNil(t, got.IncomeItems)
}

func TestAggregate_ClosingIdentityWithDecimals(t *testing.T) {
	day := domain.NewDate(2026, time.January, 5)
	records := []domain.Transaction{
		txn(day, domain.Income, "0.10", "Salary"),
		txn(day, domain.Income, "0.20", "Salary"),
		txn(day, domain.Expense, "0.30", "Food"),
	}
	got := accounting.Aggregate(records, []domain.BalanceCheckpoint{checkpoint(domain.BankScope, 2026, 0, 0)},
		accounting.AggregateParams{
			Year: 2026, Month: 0, Filter: domain.StatsFilter{Scope: domain.BankScope}, Today: day,
		})

	assert.True(t, got.ClosingBalance.IsZero(), "got %s", got.ClosingBalance)
	assert.NoError(t, accounting.ValidateClosingBalance(got))
}
