package models

// BalanceCheckpoint is a row of the balance_checkpoints table.
type BalanceCheckpoint struct {
	CheckpointID string  `db:"checkpoint_id"`
	ScopeKey     string  `db:"scope_key"` // "bank", "cash" or "bank_<id>"
	Year         int     `db:"year"`
	Month        int     `db:"month"` // 0-indexed
	Amount       string  `db:"amount"`
	AmountAlt    *string `db:"amount_alt"` // Nullable; cash scope only
	AuditFields
}
