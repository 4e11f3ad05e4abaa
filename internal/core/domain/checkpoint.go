package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ScopeKind selects which slice of the ledger a report or checkpoint covers.
type ScopeKind string

const (
	// ScopeAll covers every payment method. It has no checkpoints of its own.
	ScopeAll          ScopeKind = "all"
	ScopeBank         ScopeKind = "bank"
	ScopeCash         ScopeKind = "cash"
	ScopeSpecificBank ScopeKind = "specific_bank"
)

const specificBankPrefix = "bank_"

// BalanceScope identifies a report scope. BankID is only set for ScopeSpecificBank.
type BalanceScope struct {
	Kind   ScopeKind `json:"kind"`
	BankID string    `json:"bankID,omitempty"`
}

// AllScope, BankScope and CashScope are the fixed scopes.
var (
	AllScope  = BalanceScope{Kind: ScopeAll}
	BankScope = BalanceScope{Kind: ScopeBank}
	CashScope = BalanceScope{Kind: ScopeCash}
)

// SpecificBankScope returns the scope of a single bank.
func SpecificBankScope(bankID string) BalanceScope {
	return BalanceScope{Kind: ScopeSpecificBank, BankID: bankID}
}

var ErrInvalidScope = errors.New("invalid balance scope")

// Key returns the identifier checkpoints are stored under: "bank", "cash" or "bank_<id>".
func (s BalanceScope) Key() string {
	switch s.Kind {
	case ScopeSpecificBank:
		return specificBankPrefix + s.BankID
	case "":
		return string(ScopeAll)
	default:
		return string(s.Kind)
	}
}

// Validate checks that the scope is well formed.
func (s BalanceScope) Validate() error {
	switch s.Kind {
	case ScopeAll, ScopeBank, ScopeCash:
		return nil
	case ScopeSpecificBank:
		if strings.TrimSpace(s.BankID) == "" {
			return fmt.Errorf("%w: bank ID required for %s", ErrInvalidScope, s.Kind)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidScope, s.Kind)
}

// ParseScopeKey is the inverse of Key.
func ParseScopeKey(key string) (BalanceScope, error) {
	switch key {
	case string(ScopeBank):
		return BankScope, nil
	case string(ScopeCash):
		return CashScope, nil
	case "", string(ScopeAll):
		return AllScope, nil
	}
	if id, ok := strings.CutPrefix(key, specificBankPrefix); ok && id != "" {
		return SpecificBankScope(id), nil
	}
	return BalanceScope{}, fmt.Errorf("%w: %q", ErrInvalidScope, key)
}

// MonthKey is a (year, month) pair with a 0-indexed month, 0 = January.
type MonthKey struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

var ErrInvalidMonth = errors.New("month must be between 0 and 11")

// Ordinal maps the month onto a single comparable integer.
func (m MonthKey) Ordinal() int {
	return m.Year*12 + m.Month
}

// Validate checks the month range.
func (m MonthKey) Validate() error {
	if m.Month < 0 || m.Month > 11 {
		return fmt.Errorf("%w: got %d", ErrInvalidMonth, m.Month)
	}
	return nil
}

// BalanceCheckpoint is a manually entered starting balance for a scope at the
// start of a month. AmountAlt carries the KHR balance for the cash scope.
type BalanceCheckpoint struct {
	CheckpointID string           `json:"checkpointID"`
	Scope        BalanceScope     `json:"scope"`
	Year         int              `json:"year"`
	Month        int              `json:"month"` // 0-indexed
	Amount       decimal.Decimal  `json:"amount"`
	AmountAlt    *decimal.Decimal `json:"amountAlt,omitempty"`
	AuditFields
}

// MonthKey returns the checkpoint's month.
func (c BalanceCheckpoint) MonthKey() MonthKey {
	return MonthKey{Year: c.Year, Month: c.Month}
}

// AmountIn returns the checkpoint amount for the given currency. Amount is in
// USD; only cash checkpoints carry a KHR amount, so every other scope starts a
// KHR statement from zero.
func (c BalanceCheckpoint) AmountIn(currency Currency) decimal.Decimal {
	if currency != KHR {
		return c.Amount
	}
	if c.Scope.Kind == ScopeCash && c.AmountAlt != nil {
		return *c.AmountAlt
	}
	return decimal.Zero
}

// Validate checks the checkpoint before it is persisted.
func (c BalanceCheckpoint) Validate() error {
	if c.Scope.Kind == ScopeAll || c.Scope.Kind == "" {
		return fmt.Errorf("%w: checkpoints need a bank, cash or specific bank scope", ErrInvalidScope)
	}
	if err := c.Scope.Validate(); err != nil {
		return err
	}
	if err := c.MonthKey().Validate(); err != nil {
		return err
	}
	if c.AmountAlt != nil && c.Scope.Kind != ScopeCash {
		return fmt.Errorf("%w: alternate amount is only valid for the cash scope", ErrInvalidScope)
	}
	return nil
}
