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

func TestCategorize(t *testing.T) {
	tests := []struct {
		category, description, want string
	}{
		{"Food", "anything", "Food"},
		{"", "Lunch with team", "Food & Drinks"},
		{"Uncategorized", "Grab to airport", "Transportation"},
		{"general/other", "EDC electricity bill", "Utilities"},
		{"N/A", "Pharmacy run", "Health"},
		{"Other", "Netflix subscription", "Entertainment"},
		{"", "Gift for wedding", "Gift & Donation"},
		{"", "Business lunch", "Food & Drinks"},
		{"", "Random thing", accounting.OtherCategory},
	}
	for _, tt := range tests {
		t.Run(tt.category+"/"+tt.description, func(t *testing.T) {
			assert.Equal(t, tt.want, accounting.Categorize(tt.category, tt.description))
		})
	}
}

func TestCategorize_Idempotent(t *testing.T) {
	for _, desc := range []string{"Coffee", "Taxi", "School fees", "Something else", ""} {
		first := accounting.Categorize("", desc)
		assert.Equal(t, first, accounting.Categorize(first, desc), desc)
		assert.Equal(t, first, accounting.Categorize("", desc), desc)
	}
}

func TestClassify(t *testing.T) {
	today := domain.NewDate(2026, time.March, 10)

	c, ok := accounting.Classify(domain.Transaction{
		Date:        time.Date(2026, time.March, 11, 15, 30, 0, 0, time.UTC),
		Description: "dinner",
		Amount:      decimal.NewFromInt(-12),
		Type:        "expense",
		Currency:    "khr",
	}, today)
	require.True(t, ok)
	assert.Equal(t, domain.Expense, c.Type)
	assert.Equal(t, domain.KHR, c.Currency)
	assert.Equal(t, domain.StatusActive, c.Status)
	assert.Equal(t, domain.CashMethod, c.PaymentMethod)
	assert.Equal(t, "Food & Drinks", c.Category)
	assert.True(t, c.Amount.Equal(decimal.NewFromInt(12)))
	assert.Equal(t, domain.NewDate(2026, time.March, 11), c.Date)
	assert.True(t, c.IsFuture)

	c, ok = accounting.Classify(domain.Transaction{Date: today, Type: domain.Income}, today)
	require.True(t, ok)
	assert.False(t, c.IsFuture, "today is not future")
	assert.Equal(t, domain.USD, c.Currency)
}

func TestClassify_SkipsMalformed(t *testing.T) {
	today := domain.NewDate(2026, time.March, 10)
	for name, tx := range map[string]domain.Transaction{
		"zero date":        {Type: domain.Income},
		"unknown type":     {Date: today, Type: "Transfer"},
		"unknown currency": {Date: today, Type: domain.Income, Currency: "EUR"},
		"unknown status":   {Date: today, Type: domain.Income, Status: "deleted"},
	} {
		_, ok := accounting.Classify(tx, today)
		assert.False(t, ok, name)
	}
}

func TestToday(t *testing.T) {
	loc := time.FixedZone("ICT", 7*60*60)
	now := time.Date(2026, time.January, 31, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, domain.NewDate(2026, time.February, 1), accounting.Today(now, loc))
	assert.Equal(t, domain.NewDate(2026, time.January, 31), accounting.Today(now, nil))
}
