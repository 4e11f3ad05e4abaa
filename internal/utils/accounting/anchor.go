package accounting

import (
	"sort"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ResolveStartingBalance returns the amount of the latest checkpoint for scope
// that is not after (year, month), or zero if there is none. Month is 0-indexed.
//
// Only the single nearest checkpoint counts. Nothing is interpolated or summed
// across months; carrying balances between checkpoints is the caller's job.
func ResolveStartingBalance(checkpoints []domain.BalanceCheckpoint, scope domain.BalanceScope, year, month int) decimal.Decimal {
	return ResolveStartingBalanceIn(checkpoints, scope, domain.MonthKey{Year: year, Month: month}, domain.USD)
}

// ResolveStartingBalanceIn is ResolveStartingBalance for a given currency. Cash
// checkpoints answer KHR from their alternate amount.
//
// The all scope has no checkpoints of its own; it resolves the bank and cash
// anchors independently and adds them.
func ResolveStartingBalanceIn(checkpoints []domain.BalanceCheckpoint, scope domain.BalanceScope, target domain.MonthKey, currency domain.Currency) decimal.Decimal {
	if scope.Kind == domain.ScopeAll || scope.Kind == "" {
		bank := ResolveStartingBalanceIn(checkpoints, domain.BankScope, target, currency)
		cash := ResolveStartingBalanceIn(checkpoints, domain.CashScope, target, currency)
		return bank.Add(cash)
	}

	anchor, ok := FindAnchor(checkpoints, scope, target)
	if !ok {
		return decimal.Zero
	}
	return anchor.AmountIn(currency)
}

// FindAnchor returns the checkpoint ResolveStartingBalance would use.
func FindAnchor(checkpoints []domain.BalanceCheckpoint, scope domain.BalanceScope, target domain.MonthKey) (domain.BalanceCheckpoint, bool) {
	key := scope.Key()
	candidates := make([]domain.BalanceCheckpoint, 0, len(checkpoints))
	for _, cp := range checkpoints {
		if cp.Scope.Key() == key {
			candidates = append(candidates, cp)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].MonthKey().Ordinal() < candidates[j].MonthKey().Ordinal()
	})

	targetOrdinal := target.Ordinal()
	for i := len(candidates) - 1; i >= 0; i-- {
		if candidates[i].MonthKey().Ordinal() <= targetOrdinal {
			return candidates[i], true
		}
	}
	return domain.BalanceCheckpoint{}, false
}
