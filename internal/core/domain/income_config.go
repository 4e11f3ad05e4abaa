package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AutomationMode selects how many months an income automation run covers.
type AutomationMode string

const (
	AutomationMonthly AutomationMode = "monthly"
	AutomationYearly  AutomationMode = "yearly"
)

// AutoGeneratedPrefix starts the description of every automation-created entry.
const AutoGeneratedPrefix = "Auto-Generated: "

// IncomeConfig is a recurring income rule: Amount is paid every month on DayOfMonth.
type IncomeConfig struct {
	ConfigID   string          `json:"configID"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	DayOfMonth int             `json:"dayOfMonth"`
	Status     Status          `json:"status"`
	AuditFields
}

// AutomationResult reports what an automation run did.
type AutomationResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

var (
	ErrInvalidDayOfMonth = errors.New("day of month must be between 1 and 31")
	ErrIncomeNameMissing = errors.New("income config name is required")
	ErrNonPositiveIncome = errors.New("income config amount must be positive")
)

// IsActive reports whether the rule participates in automation runs.
func (c IncomeConfig) IsActive() bool {
	return c.Status == StatusActive || c.Status == ""
}

// Validate checks the rule before it is persisted.
func (c IncomeConfig) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrIncomeNameMissing
	}
	if !c.Amount.IsPositive() {
		return ErrNonPositiveIncome
	}
	if c.DayOfMonth < 1 || c.DayOfMonth > 31 {
		return fmt.Errorf("%w: got %d", ErrInvalidDayOfMonth, c.DayOfMonth)
	}
	if _, ok := ParseStatus(string(c.Status)); !ok {
		return fmt.Errorf("%w: got %q", ErrUnknownStatus, c.Status)
	}
	return nil
}

// ParseAutomationMode validates a mode string.
func ParseAutomationMode(s string) (AutomationMode, bool) {
	switch AutomationMode(strings.ToLower(s)) {
	case AutomationMonthly:
		return AutomationMonthly, true
	case AutomationYearly:
		return AutomationYearly, true
	}
	return "", false
}

// Bank is a named bank account that payment methods and specific-bank
// checkpoints refer to.
type Bank struct {
	BankID string `json:"bankID"`
	Name   string `json:"name"`
	AuditFields
}

// DueDate returns the payment date of the rule in the given month. Days past
// the end of a short month fall on its last day, so a rule for the 31st pays
// on February 28th.
func (c IncomeConfig) DueDate(year int, month time.Month) time.Time {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	day := c.DayOfMonth
	if day > lastDay {
		day = lastDay
	}
	if day < 1 {
		day = 1
	}
	return NewDate(year, month, day)
}
