package accounting

import (
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// OtherCategory is assigned when no keyword bucket matches.
const OtherCategory = "Other"

// CategoryRule maps a category to the description keywords that select it.
type CategoryRule struct {
	Category string
	Keywords []string
}

// CategoryRules is evaluated in order; the first rule with a matching keyword wins.
var CategoryRules = []CategoryRule{
	{Category: "Food & Drinks", Keywords: []string{
		"food", "drink", "coffee", "cafe", "lunch", "dinner", "breakfast", "restaurant",
		"meal", "snack", "noodle", "bbq", "beer", "grocery", "market",
	}},
	{Category: "Transportation", Keywords: []string{
		"transport", "taxi", "tuk", "grab", "passapp", "bus fare", "fuel", "gasoline", "petrol",
		"parking", "moto", "flight",
	}},
	{Category: "Utilities", Keywords: []string{
		"electric", "electricity", "edc", "water bill", "internet", "wifi", "phone", "mobile",
		"top up", "topup", "rent", "utility", "utilities",
	}},
	{Category: "Health", Keywords: []string{
		"hospital", "clinic", "doctor", "medicine", "pharmacy", "dental", "health", "medical",
	}},
	{Category: "Family", Keywords: []string{
		"family", "mom", "dad", "mother", "father", "parent", "kid", "child", "baby", "wife", "husband",
	}},
	{Category: "Shopping", Keywords: []string{
		"shop", "shopping", "clothes", "shoes", "mall", "amazon", "lazada", "aeon", "buy",
	}},
	{Category: "Entertainment", Keywords: []string{
		"movie", "cinema", "netflix", "spotify", "game", "concert", "party", "karaoke", "entertainment",
	}},
	{Category: "Education", Keywords: []string{
		"school", "tuition", "course", "book", "class", "university", "training", "education",
	}},
	{Category: "Investment", Keywords: []string{
		"invest", "investment", "stock", "saving", "savings", "deposit", "crypto", "bond",
	}},
	{Category: "Gift & Donation", Keywords: []string{
		"gift", "donation", "donate", "charity", "pagoda", "wedding", "funeral",
	}},
}

var genericCategories = map[string]struct{}{
	"":              {},
	"uncategorized": {},
	"general/other": {},
	"other":         {},
	"n/a":           {},
}

// IsGenericCategory reports whether category carries no information and may be
// replaced by auto-categorisation.
func IsGenericCategory(category string) bool {
	_, ok := genericCategories[strings.ToLower(strings.TrimSpace(category))]
	return ok
}

// Categorize keeps a meaningful category and otherwise derives one from the
// description using CategoryRules.
func Categorize(category, description string) string {
	if !IsGenericCategory(category) {
		return category
	}
	desc := strings.ToLower(description)
	for _, rule := range CategoryRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(desc, kw) {
				return rule.Category
			}
		}
	}
	return OtherCategory
}

// Classified is a normalized transaction ready for filtering and aggregation.
type Classified struct {
	domain.Transaction
	IsFuture bool
}

// Classify normalizes tx and derives its category and future flag against
// today, which must be a calendar date. It returns false for records that
// cannot take part in aggregation: no date, unknown type or currency.
func Classify(tx domain.Transaction, today time.Time) (Classified, bool) {
	if tx.Date.IsZero() {
		return Classified{}, false
	}
	txType, ok := domain.ParseTransactionType(string(tx.Type))
	if !ok {
		return Classified{}, false
	}
	currency, ok := domain.ParseCurrency(string(tx.Currency))
	if !ok {
		return Classified{}, false
	}
	status, ok := domain.ParseStatus(string(tx.Status))
	if !ok {
		return Classified{}, false
	}

	out := tx
	out.Date = domain.TruncateToDate(tx.Date)
	out.Type = txType
	out.Currency = currency
	out.Status = status
	out.Amount = tx.Amount.Abs()
	out.PaymentMethod = domain.NormalizePaymentMethod(tx.PaymentMethod)
	out.Category = Categorize(tx.Category, tx.Description)

	return Classified{
		Transaction: out,
		IsFuture:    IsFuture(out.Date, today),
	}, true
}

// IsFuture reports whether date falls strictly after today, at day granularity.
func IsFuture(date, today time.Time) bool {
	return domain.TruncateToDate(date).After(domain.TruncateToDate(today))
}

// Today returns the calendar date of now in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return domain.TruncateToDate(now.In(loc))
}
