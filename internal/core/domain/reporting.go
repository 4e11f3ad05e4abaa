package domain

import (
	"github.com/shopspring/decimal"
)

// NoCategory is reported as the top category when a month has no expenses.
const NoCategory = "None"

// StatusFilter selects records by status.
type StatusFilter string

const (
	StatusFilterAll      StatusFilter = "all"
	StatusFilterActive   StatusFilter = "active"
	StatusFilterInactive StatusFilter = "inactive"
)

// DefaultStatusFilter applies when a caller leaves StatsFilter.Status empty.
// Dashboards rely on this; report pages pass an explicit filter.
const DefaultStatusFilter = StatusFilterActive

// Effective resolves the empty filter to DefaultStatusFilter.
func (f StatusFilter) Effective() StatusFilter {
	if f == "" {
		return DefaultStatusFilter
	}
	return f
}

// Valid reports whether f is empty or a known filter.
func (f StatusFilter) Valid() bool {
	switch f {
	case "", StatusFilterAll, StatusFilterActive, StatusFilterInactive:
		return true
	}
	return false
}

// StatsFilter is the caller-supplied filter set for a stats computation.
type StatsFilter struct {
	Status   StatusFilter
	Scope    BalanceScope
	Methods  []string // Payment method names; expanded with known aliases before matching
	Currency Currency // Empty means DefaultCurrency
}

// CategoryTotal is the expense total of one category.
type CategoryTotal struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

// LedgerEntry is a transaction included in a month, after classification.
type LedgerEntry struct {
	Transaction
	IsFuture       bool            `json:"isFuture"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// StatsResult is the aggregate for one month and filter set.
type StatsResult struct {
	Period                  MonthKey        `json:"period"`
	StartingBalance         decimal.Decimal `json:"startingBalance"`
	MonthlyIncome           decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpense          decimal.Decimal `json:"monthlyExpense"`
	MonthlyIncomeWithFuture decimal.Decimal `json:"monthlyIncomeWithFuture"`
	ClosingBalance          decimal.Decimal `json:"closingBalance"`
	YearlyIncome            decimal.Decimal `json:"yearlyIncome"`
	YearlyExpense           decimal.Decimal `json:"yearlyExpense"`
	LargestExpense          decimal.Decimal `json:"largestExpense"`
	TopCategory             string          `json:"topCategory"`
	Categories              []CategoryTotal `json:"categories"`
	IncomeItems             []LedgerEntry   `json:"incomeItems"`
	Transactions            []LedgerEntry   `json:"transactions"`
}

// EmptyStats is the result returned when no data could be read. Callers treat
// it as a legitimate "no data" state.
func EmptyStats() StatsResult {
	return StatsResult{
		StartingBalance:         decimal.Zero,
		MonthlyIncome:           decimal.Zero,
		MonthlyExpense:          decimal.Zero,
		MonthlyIncomeWithFuture: decimal.Zero,
		ClosingBalance:          decimal.Zero,
		YearlyIncome:            decimal.Zero,
		YearlyExpense:           decimal.Zero,
		LargestExpense:          decimal.Zero,
		TopCategory:             NoCategory,
		Categories:              []CategoryTotal{},
		IncomeItems:             []LedgerEntry{},
		Transactions:            []LedgerEntry{},
	}
}
