package dto

import (
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCheckpointRequest defines the data needed to record a starting balance.
// Month is 0-indexed.
type CreateCheckpointRequest struct {
	Scope     string           `json:"scope" binding:"required,oneof=bank cash specific_bank"`
	BankID    string           `json:"bankID" binding:"required_if=Scope specific_bank"`
	Year      int              `json:"year" binding:"required,min=1900,max=9999"`
	Month     *int             `json:"month" binding:"required,min=0,max=11"`
	Amount    decimal.Decimal  `json:"amount"`
	AmountAlt *decimal.Decimal `json:"amountAlt,omitempty"`
}

// UpdateCheckpointRequest changes the amounts of a checkpoint. Its slot is fixed.
type UpdateCheckpointRequest struct {
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	AmountAlt *decimal.Decimal `json:"amountAlt,omitempty"`
}

// CheckpointResponse defines the data returned for a checkpoint.
type CheckpointResponse struct {
	CheckpointID  string           `json:"checkpointID"`
	Scope         string           `json:"scope"`
	BankID        string           `json:"bankID,omitempty"`
	Year          int              `json:"year"`
	Month         int              `json:"month"`
	Amount        decimal.Decimal  `json:"amount"`
	AmountAlt     *decimal.Decimal `json:"amountAlt,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	CreatedBy     string           `json:"createdBy"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
	LastUpdatedBy string           `json:"lastUpdatedBy"`
}

// BalanceScope returns the scope the request names.
func (r CreateCheckpointRequest) BalanceScope() domain.BalanceScope {
	if domain.ScopeKind(r.Scope) == domain.ScopeSpecificBank {
		return domain.SpecificBankScope(r.BankID)
	}
	return domain.BalanceScope{Kind: domain.ScopeKind(r.Scope)}
}

// ToCheckpointResponse converts a domain.BalanceCheckpoint to CheckpointResponse DTO.
func ToCheckpointResponse(cp *domain.BalanceCheckpoint) CheckpointResponse {
	return CheckpointResponse{
		CheckpointID:  cp.CheckpointID,
		Scope:         string(cp.Scope.Kind),
		BankID:        cp.Scope.BankID,
		Year:          cp.Year,
		Month:         cp.Month,
		Amount:        cp.Amount,
		AmountAlt:     cp.AmountAlt,
		CreatedAt:     cp.CreatedAt,
		CreatedBy:     cp.CreatedBy,
		LastUpdatedAt: cp.LastUpdatedAt,
		LastUpdatedBy: cp.LastUpdatedBy,
	}
}

// ToCheckpointResponses converts a slice of checkpoints.
func ToCheckpointResponses(cps []domain.BalanceCheckpoint) []CheckpointResponse {
	res := make([]CheckpointResponse, len(cps))
	for i, cp := range cps {
		res[i] = ToCheckpointResponse(&cp)
	}
	return res
}
