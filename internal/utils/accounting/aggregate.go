package accounting

import (
	"sort"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AggregateParams selects the month and filter set of an aggregation.
type AggregateParams struct {
	Year   int
	Month  int // 0-indexed
	Filter domain.StatsFilter
	// BankName is the payment method name of Filter.Scope.BankID. Only read for
	// the specific-bank scope.
	BankName string
	// Today is the calendar date records are compared against to decide
	// whether they are future-dated.
	Today time.Time
}

type ledgerRow struct {
	Classified
	index int
}

// Aggregate computes the stats of one month in a single pass over records.
// Malformed records are skipped. Amounts are accumulated as decimals, so the
// closing balance identity holds exactly.
func Aggregate(records []domain.Transaction, checkpoints []domain.BalanceCheckpoint, params AggregateParams) domain.StatsResult {
	target := domain.MonthKey{Year: params.Year, Month: params.Month}
	currency := params.Filter.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	result := domain.EmptyStats()
	result.Period = target
	result.StartingBalance = ResolveStartingBalanceIn(checkpoints, params.Filter.Scope, target, currency)

	matcher := NewMatcher(params.Filter, params.BankName)
	categoryTotals := make(map[string]decimal.Decimal)
	var ledger []ledgerRow

	for i, rec := range records {
		c, ok := Classify(rec, params.Today)
		if !ok || !matcher.ShouldInclude(c) {
			continue
		}

		if c.Date.Year() == target.Year && !c.IsFuture {
			switch c.Type {
			case domain.Income:
				result.YearlyIncome = result.YearlyIncome.Add(c.Amount)
			case domain.Expense:
				result.YearlyExpense = result.YearlyExpense.Add(c.Amount)
			}
		}

		if !InMonth(c, target) {
			continue
		}
		ledger = append(ledger, ledgerRow{Classified: c, index: i})

		switch c.Type {
		case domain.Income:
			result.MonthlyIncomeWithFuture = result.MonthlyIncomeWithFuture.Add(c.Amount)
			if !c.IsFuture {
				result.MonthlyIncome = result.MonthlyIncome.Add(c.Amount)
			}
		case domain.Expense:
			if c.IsFuture {
				continue
			}
			result.MonthlyExpense = result.MonthlyExpense.Add(c.Amount)
			if c.Amount.GreaterThan(result.LargestExpense) {
				result.LargestExpense = c.Amount
			}
			total, ok := categoryTotals[c.Category]
			if !ok {
				total = decimal.Zero
			}
			categoryTotals[c.Category] = total.Add(c.Amount)
		}
	}

	result.Categories = sortedCategories(categoryTotals)
	if len(result.Categories) > 0 {
		result.TopCategory = result.Categories[0].Name
	}

	sortLedger(ledger)
	balance := result.StartingBalance
	for _, row := range ledger {
		balance = ApplyToBalance(balance, row.Transaction)
		entry := domain.LedgerEntry{
			Transaction:    row.Transaction,
			IsFuture:       row.IsFuture,
			RunningBalance: balance,
		}
		result.Transactions = append(result.Transactions, entry)
		if row.Type == domain.Income && !row.IsFuture {
			result.IncomeItems = append(result.IncomeItems, entry)
		}
	}

	result.ClosingBalance = ClosingBalance(result.StartingBalance, result.MonthlyIncome, result.MonthlyExpense)
	return result
}

func sortedCategories(totals map[string]decimal.Decimal) []domain.CategoryTotal {
	out := make([]domain.CategoryTotal, 0, len(totals))
	for name, total := range totals {
		out = append(out, domain.CategoryTotal{Name: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if cmp := out[i].Total.Cmp(out[j].Total); cmp != 0 {
			return cmp > 0
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// sortLedger orders by date, then creation time, then input position.
func sortLedger(rows []ledgerRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.index < b.index
	})
}
