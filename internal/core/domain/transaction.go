package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a ledger entry brings money in or takes it out.
type TransactionType string

const (
	Income  TransactionType = "Income"
	Expense TransactionType = "Expense"
)

// Currency is the ISO code of the currency a ledger entry is denominated in.
type Currency string

const (
	USD Currency = "USD"
	KHR Currency = "KHR"
)

// DefaultCurrency is assumed for records stored without a currency.
const DefaultCurrency = USD

// Status marks a record as live or soft-deleted.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// CashMethod is the payment method name used for cash entries. Every other
// payment method is treated as a bank name.
const CashMethod = "Cash"

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// Transaction represents one ledger entry, either income or expense.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Date          time.Time       `json:"date"`          // Calendar date, UTC midnight
	Description   string          `json:"description"`
	Category      string          `json:"category"`      // May be empty; classified at read time
	Amount        decimal.Decimal `json:"amount"`        // Stored positive; sign comes from Type
	Type          TransactionType `json:"type"`
	PaymentMethod string          `json:"paymentMethod"` // "Cash" or a bank name
	Currency      Currency        `json:"currency"`
	Status        Status          `json:"status"`
	AuditFields
}

var (
	ErrMissingDate        = errors.New("transaction date is required")
	ErrNegativeAmount     = errors.New("transaction amount must not be negative")
	ErrUnknownType        = errors.New("transaction type must be Income or Expense")
	ErrUnknownCurrency    = errors.New("currency must be USD or KHR")
	ErrUnknownStatus      = errors.New("status must be active or inactive")
	ErrDescriptionMissing = errors.New("transaction description is required")
)

// Validate checks the invariants a transaction must hold before it is persisted.
func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return ErrMissingDate
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrDescriptionMissing
	}
	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if _, ok := ParseTransactionType(string(t.Type)); !ok {
		return fmt.Errorf("%w: got %q", ErrUnknownType, t.Type)
	}
	if _, ok := ParseCurrency(string(t.Currency)); !ok {
		return fmt.Errorf("%w: got %q", ErrUnknownCurrency, t.Currency)
	}
	if _, ok := ParseStatus(string(t.Status)); !ok {
		return fmt.Errorf("%w: got %q", ErrUnknownStatus, t.Status)
	}
	return nil
}

// SignedAmount returns the absolute amount, negated for expenses.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Abs().Neg()
	}
	return t.Amount.Abs()
}

// ParseTransactionType normalizes a stored type string. Matching is case-insensitive.
func ParseTransactionType(s string) (TransactionType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, true
	case "expense":
		return Expense, true
	}
	return "", false
}

// ParseCurrency normalizes a stored currency. An empty value means USD.
func ParseCurrency(s string) (Currency, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "USD":
		return USD, true
	case "KHR":
		return KHR, true
	}
	return "", false
}

// ParseStatus normalizes a stored status. An empty value means active.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "active":
		return StatusActive, true
	case "inactive":
		return StatusInactive, true
	}
	return "", false
}

// NormalizePaymentMethod trims the method and defaults an empty one to cash.
func NormalizePaymentMethod(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return CashMethod
	}
	return s
}

// IsCashMethod reports whether a payment method denotes cash.
func IsCashMethod(s string) bool {
	return strings.EqualFold(NormalizePaymentMethod(s), CashMethod)
}

// NewDate builds a calendar date. Month is 1-based as in time.Month.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// TruncateToDate drops the clock part of t, keeping its calendar day in t's location.
func TruncateToDate(t time.Time) time.Time {
	return NewDate(t.Year(), t.Month(), t.Day())
}
