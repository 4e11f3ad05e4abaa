package dto

import (
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/utils"
)

// StatsQuery defines the query parameters of the stats endpoint. Month is 0-indexed.
type StatsQuery struct {
	Month    *int     `form:"month" binding:"required,min=0,max=11"`
	Year     int      `form:"year" binding:"required,min=1900,max=9999"`
	Status   string   `form:"status" binding:"omitempty,oneof=all active inactive"`
	Scope    string   `form:"scope" binding:"omitempty,oneof=all bank cash specific_bank"`
	BankID   string   `form:"bankID" binding:"required_if=Scope specific_bank"`
	Methods  []string `form:"method"`
	Currency string   `form:"currency" binding:"omitempty,currency"`
}

// ToStatsFilter converts the query into the filter set the stats service takes.
func (q StatsQuery) ToStatsFilter() domain.StatsFilter {
	scope := domain.BalanceScope{Kind: domain.ScopeKind(q.Scope)}
	if scope.Kind == "" {
		scope = domain.AllScope
	}
	if scope.Kind == domain.ScopeSpecificBank {
		scope.BankID = q.BankID
	}
	var currency domain.Currency
	if q.Currency != "" {
		currency, _ = domain.ParseCurrency(q.Currency)
	}
	return domain.StatsFilter{
		Status:   domain.StatusFilter(q.Status),
		Scope:    scope,
		Methods:  q.Methods,
		Currency: currency,
	}
}

// CategoryTotalResponse is one row of the expense breakdown.
type CategoryTotalResponse struct {
	Name  string `json:"name"`
	Total string `json:"total"`
}

// LedgerEntryResponse is one statement line.
type LedgerEntryResponse struct {
	TransactionID  string `json:"transactionID"`
	Date           string `json:"date"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	Amount         string `json:"amount"`
	Type           string `json:"type"`
	PaymentMethod  string `json:"paymentMethod"`
	Currency       string `json:"currency"`
	Status         string `json:"status"`
	IsFuture       bool   `json:"isFuture"`
	RunningBalance string `json:"runningBalance"`
}

// StatsResponse is the monthly statement. Amounts are decimal strings rounded
// to the precision of the statement currency.
type StatsResponse struct {
	Year                    int                     `json:"year"`
	Month                   int                     `json:"month"`
	Currency                string                  `json:"currency"`
	StartingBalance         string                  `json:"startingBalance"`
	MonthlyIncome           string                  `json:"monthlyIncome"`
	MonthlyExpense          string                  `json:"monthlyExpense"`
	MonthlyIncomeWithFuture string                  `json:"monthlyIncomeWithFuture"`
	ClosingBalance          string                  `json:"closingBalance"`
	YearlyIncome            string                  `json:"yearlyIncome"`
	YearlyExpense           string                  `json:"yearlyExpense"`
	LargestExpense          string                  `json:"largestExpense"`
	TopCategory             string                  `json:"topCategory"`
	Categories              []CategoryTotalResponse `json:"categories"`
	IncomeItems             []LedgerEntryResponse   `json:"incomeItems"`
	Transactions            []LedgerEntryResponse   `json:"transactions"`
}

// ToStatsResponse converts a stats result. currency selects display precision;
// empty means USD.
func ToStatsResponse(result domain.StatsResult, currency domain.Currency) StatsResponse {
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	format := func(entry domain.LedgerEntry) LedgerEntryResponse {
		return LedgerEntryResponse{
			TransactionID:  entry.TransactionID,
			Date:           entry.Date.Format(domain.DateLayout),
			Description:    entry.Description,
			Category:       entry.Category,
			Amount:         utils.FormatWithCurrencyPrecision(entry.Amount, entry.Currency),
			Type:           string(entry.Type),
			PaymentMethod:  entry.PaymentMethod,
			Currency:       string(entry.Currency),
			Status:         string(entry.Status),
			IsFuture:       entry.IsFuture,
			RunningBalance: utils.FormatWithCurrencyPrecision(entry.RunningBalance, currency),
		}
	}

	response := StatsResponse{
		Year:                    result.Period.Year,
		Month:                   result.Period.Month,
		Currency:                string(currency),
		StartingBalance:         utils.FormatWithCurrencyPrecision(result.StartingBalance, currency),
		MonthlyIncome:           utils.FormatWithCurrencyPrecision(result.MonthlyIncome, currency),
		MonthlyExpense:          utils.FormatWithCurrencyPrecision(result.MonthlyExpense, currency),
		MonthlyIncomeWithFuture: utils.FormatWithCurrencyPrecision(result.MonthlyIncomeWithFuture, currency),
		ClosingBalance:          utils.FormatWithCurrencyPrecision(result.ClosingBalance, currency),
		YearlyIncome:            utils.FormatWithCurrencyPrecision(result.YearlyIncome, currency),
		YearlyExpense:           utils.FormatWithCurrencyPrecision(result.YearlyExpense, currency),
		LargestExpense:          utils.FormatWithCurrencyPrecision(result.LargestExpense, currency),
		TopCategory:             result.TopCategory,
		Categories:              make([]CategoryTotalResponse, len(result.Categories)),
		IncomeItems:             make([]LedgerEntryResponse, len(result.IncomeItems)),
		Transactions:            make([]LedgerEntryResponse, len(result.Transactions)),
	}
	for i, cat := range result.Categories {
		response.Categories[i] = CategoryTotalResponse{
			Name:  cat.Name,
			Total: utils.FormatWithCurrencyPrecision(cat.Total, currency),
		}
	}
	for i, entry := range result.IncomeItems {
		response.IncomeItems[i] = format(entry)
	}
	for i, entry := range result.Transactions {
		response.Transactions[i] = format(entry)
	}
	return response
}
