package models

import "time"

// Transaction is a row of the transactions table. Amount is kept as text so
// the adapter can skip rows whose amount does not parse instead of failing the
// whole read.
type Transaction struct {
	TransactionID string    `db:"transaction_id"`
	TxnDate       time.Time `db:"txn_date"`
	Description   string    `db:"description"`
	Category      string    `db:"category"`
	Amount        string    `db:"amount"`
	TxnType       string    `db:"txn_type"`
	PaymentMethod string    `db:"payment_method"`
	Currency      string    `db:"currency"`
	Status        string    `db:"status"`
	AuditFields
}
