package accounting

import (
	"fmt"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ClosingBalance applies the month's historical movement to its starting balance.
// Future-dated income is never part of it.
func ClosingBalance(starting, income, expense decimal.Decimal) decimal.Decimal {
	return starting.Add(income).Sub(expense)
}

// ApplyToBalance returns balance after txn. Income adds, expense subtracts,
// regardless of the sign the amount was stored with.
func ApplyToBalance(balance decimal.Decimal, txn domain.Transaction) decimal.Decimal {
	return balance.Add(txn.SignedAmount())
}

// ValidateClosingBalance checks that a computed result satisfies the closing
// balance identity exactly.
func ValidateClosingBalance(result domain.StatsResult) error {
	want := ClosingBalance(result.StartingBalance, result.MonthlyIncome, result.MonthlyExpense)
	if !want.Equal(result.ClosingBalance) {
		return fmt.Errorf("closing balance %s does not match start %s + income %s - expense %s",
			result.ClosingBalance, result.StartingBalance, result.MonthlyIncome, result.MonthlyExpense)
	}
	return nil
}
