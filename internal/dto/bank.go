package dto

import (
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// CreateBankRequest defines the data needed to register a bank.
type CreateBankRequest struct {
	Name string `json:"name" binding:"required"`
}

// BankResponse defines the data returned for a bank.
type BankResponse struct {
	BankID    string    `json:"bankID"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// ToBankResponse converts a domain.Bank to BankResponse DTO.
func ToBankResponse(b *domain.Bank) BankResponse {
	return BankResponse{
		BankID:    b.BankID,
		Name:      b.Name,
		CreatedAt: b.CreatedAt,
		CreatedBy: b.CreatedBy,
	}
}

// ToBankResponses converts a slice of banks.
func ToBankResponses(banks []domain.Bank) []BankResponse {
	res := make([]BankResponse, len(banks))
	for i, b := range banks {
		res[i] = ToBankResponse(&b)
	}
	return res
}
