package accounting

import (
	"strings"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// PaymentMethodAliases corrects known historical data-entry errors. A filter
// containing a tag also matches every pattern listed under it. Patterns are
// lower case and must stay byte-for-byte as stored in old records.
var PaymentMethodAliases = map[string][]string{
	"chip mong": {"from chipmong bank to acaleda", "chip mong bank"},
	"acleda":    {"acleda bank", "from chipmong bank to acaleda"},
}

// ExpandMethodAliases lower-cases methods and adds the alias patterns of every
// tag a method contains. Empty names are dropped and duplicates removed.
func ExpandMethodAliases(methods []string) []string {
	seen := make(map[string]struct{}, len(methods))
	out := make([]string, 0, len(methods))
	add := func(s string) {
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	for _, m := range methods {
		lower := strings.ToLower(strings.TrimSpace(m))
		add(lower)
		for tag, patterns := range PaymentMethodAliases {
			if !strings.Contains(lower, tag) {
				continue
			}
			for _, p := range patterns {
				add(p)
			}
		}
	}
	return out
}

// MatchesPaymentMethod reports whether stored matches any of the expanded
// filter names. Matching is a case-insensitive substring test in both
// directions, which tolerates naming drift like "Chip Mong Bank" against
// "From Chipmong bank to ACALEDA".
func MatchesPaymentMethod(stored string, expanded []string) bool {
	s := strings.ToLower(strings.TrimSpace(stored))
	if s == "" {
		return false
	}
	for _, f := range expanded {
		if strings.Contains(f, s) || strings.Contains(s, f) {
			return true
		}
	}
	return false
}

// MatchesStatus applies a status filter. The empty filter means DefaultStatusFilter.
func MatchesStatus(status domain.Status, filter domain.StatusFilter) bool {
	switch filter.Effective() {
	case domain.StatusFilterAll:
		return true
	case domain.StatusFilterInactive:
		return status == domain.StatusInactive
	default:
		return status == domain.StatusActive
	}
}

// InMonth reports whether date falls in the given 0-indexed month.
func InMonth(c Classified, target domain.MonthKey) bool {
	return c.Date.Year() == target.Year && int(c.Date.Month())-1 == target.Month
}

// Matcher is a compiled StatsFilter. Build one with NewMatcher.
type Matcher struct {
	status       domain.StatusFilter
	scope        domain.ScopeKind
	scopeMethods []string
	methods      []string
	currency     domain.Currency
}

// NewMatcher compiles filter. bankName is the name of the bank a specific-bank
// scope points at; it is ignored for other scopes. An empty currency selects
// DefaultCurrency, so one aggregation never mixes currencies.
func NewMatcher(filter domain.StatsFilter, bankName string) Matcher {
	m := Matcher{
		status:   filter.Status.Effective(),
		scope:    filter.Scope.Kind,
		currency: filter.Currency,
	}
	if m.currency == "" {
		m.currency = domain.DefaultCurrency
	}
	if m.scope == "" {
		m.scope = domain.ScopeAll
	}
	if m.scope == domain.ScopeSpecificBank {
		m.scopeMethods = ExpandMethodAliases([]string{bankName})
	}
	if len(filter.Methods) > 0 {
		m.methods = ExpandMethodAliases(filter.Methods)
	}
	return m
}

// ShouldInclude decides whether a classified record passes the filter set.
// The month is not checked here; aggregation needs records from the whole year.
func (m Matcher) ShouldInclude(c Classified) bool {
	if !MatchesStatus(c.Status, m.status) {
		return false
	}
	if !m.matchesScope(c.PaymentMethod) {
		return false
	}
	if m.methods != nil && !MatchesPaymentMethod(c.PaymentMethod, m.methods) {
		return false
	}
	if c.Currency != m.currency {
		return false
	}
	return true
}

func (m Matcher) matchesScope(method string) bool {
	switch m.scope {
	case domain.ScopeCash:
		return domain.IsCashMethod(method)
	case domain.ScopeBank:
		return !domain.IsCashMethod(method)
	case domain.ScopeSpecificBank:
		return MatchesPaymentMethod(method, m.scopeMethods)
	default:
		return true
	}
}
