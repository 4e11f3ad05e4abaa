package dto

import (
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateIncomeConfigRequest defines the data needed to create a recurring income rule.
type CreateIncomeConfigRequest struct {
	Name       string          `json:"name" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
	DayOfMonth int             `json:"dayOfMonth" binding:"required,min=1,max=31"`
	Status     string          `json:"status" binding:"omitempty,txstatus"`
}

// UpdateIncomeConfigRequest defines the editable fields of an income rule.
type UpdateIncomeConfigRequest struct {
	Name       *string          `json:"name,omitempty" binding:"omitempty,min=1"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	DayOfMonth *int             `json:"dayOfMonth,omitempty" binding:"omitempty,min=1,max=31"`
	Status     *string          `json:"status,omitempty" binding:"omitempty,txstatus"`
}

// RunIncomeAutomationRequest triggers income generation. Date defaults to today.
type RunIncomeAutomationRequest struct {
	Mode string `json:"mode" binding:"required,oneof=monthly yearly"`
	Date string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// IncomeConfigResponse defines the data returned for an income rule.
type IncomeConfigResponse struct {
	ConfigID      string          `json:"configID"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	DayOfMonth    int             `json:"dayOfMonth"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// AutomationResponse reports the outcome of an automation run.
type AutomationResponse struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// ToIncomeConfigResponse converts a domain.IncomeConfig to IncomeConfigResponse DTO.
func ToIncomeConfigResponse(cfg *domain.IncomeConfig) IncomeConfigResponse {
	return IncomeConfigResponse{
		ConfigID:      cfg.ConfigID,
		Name:          cfg.Name,
		Amount:        cfg.Amount,
		DayOfMonth:    cfg.DayOfMonth,
		Status:        string(cfg.Status),
		CreatedAt:     cfg.CreatedAt,
		CreatedBy:     cfg.CreatedBy,
		LastUpdatedAt: cfg.LastUpdatedAt,
		LastUpdatedBy: cfg.LastUpdatedBy,
	}
}

// ToIncomeConfigResponses converts a slice of income rules.
func ToIncomeConfigResponses(cfgs []domain.IncomeConfig) []IncomeConfigResponse {
	res := make([]IncomeConfigResponse, len(cfgs))
	for i, cfg := range cfgs {
		res[i] = ToIncomeConfigResponse(&cfg)
	}
	return res
}
