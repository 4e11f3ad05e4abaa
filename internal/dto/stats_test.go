package dto

import (
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsQuery_ToStatsFilter(t *testing.T) {
	month := 1
	q := StatsQuery{Month: &month, Year: 2026, Scope: "specific_bank", BankID: "b1", Currency: "khr", Methods: []string{"ABA"}}
	f := q.ToStatsFilter()
	assert.Equal(t, domain.SpecificBankScope("b1"), f.Scope)
	assert.Equal(t, domain.KHR, f.Currency)
	assert.Equal(t, []string{"ABA"}, f.Methods)
	assert.Equal(t, domain.StatusFilter(""), f.Status)

	f = StatsQuery{Month: &month, Year: 2026}.ToStatsFilter()
	assert.Equal(t, domain.AllScope, f.Scope)
	assert.Equal(t, domain.Currency(""), f.Currency, "no currency filter unless asked")
}

func TestToStatsResponse(t *testing.T) {
	result := domain.EmptyStats()
	result.Period = domain.MonthKey{Year: 2026, Month: 1}
	result.ClosingBalance = decimal.RequireFromString("850")
	result.Transactions = []domain.LedgerEntry{{
		Transaction: domain.Transaction{
			Date:     domain.NewDate(2026, time.February, 5),
			Amount:   decimal.RequireFromString("200"),
			Type:     domain.Expense,
			Currency: domain.USD,
		},
		RunningBalance: decimal.RequireFromString("850"),
	}}

	res := ToStatsResponse(result, "")
	assert.Equal(t, "USD", res.Currency)
	assert.Equal(t, "850.00", res.ClosingBalance)
	assert.Equal(t, "0.00", res.StartingBalance)
	assert.Equal(t, domain.NoCategory, res.TopCategory)
	require.Len(t, res.Transactions, 1)
	assert.Equal(t, "2026-02-05", res.Transactions[0].Date)
	assert.Equal(t, "200.00", res.Transactions[0].Amount)
	assert.NotNil(t, res.Categories)

	khr := ToStatsResponse(result, domain.KHR)
	assert.Equal(t, "850", khr.ClosingBalance)
}
