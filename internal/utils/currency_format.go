package utils

import (
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

var currencyPrecision = map[domain.Currency]int32{
	domain.USD: 2,
	domain.KHR: 0,
}

// CurrencyPrecision returns the number of minor digits shown for a currency.
// Unknown currencies use two.
func CurrencyPrecision(currency domain.Currency) int32 {
	if p, ok := currencyPrecision[currency]; ok {
		return p
	}
	return 2
}

// FormatWithCurrencyPrecision formats an amount with the correct precision for a given currency
// Example: amount 12.345 with USD returns "12.35"
// Example: amount 41234.5 with KHR returns "41235"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return amount.StringFixed(CurrencyPrecision(currency))
}
