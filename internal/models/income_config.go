package models

// IncomeConfig is a row of the income_configs table.
type IncomeConfig struct {
	ConfigID   string `db:"config_id"`
	Name       string `db:"name"`
	Amount     string `db:"amount"`
	DayOfMonth int    `db:"day_of_month"`
	Status     string `db:"status"`
	AuditFields
}

// Bank is a row of the banks table.
type Bank struct {
	BankID string `db:"bank_id"`
	Name   string `db:"name"`
	AuditFields
}
