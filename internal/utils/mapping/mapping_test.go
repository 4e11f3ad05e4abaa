package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainTransaction_InvalidAmount(t *testing.T) {
	_, err := ToDomainTransaction(models.Transaction{TransactionID: "t1", Amount: "twelve"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "t1")
}

func TestToDomainTransaction_KeepsRawEnums(t *testing.T) {
	got, err := ToDomainTransaction(models.Transaction{
		TransactionID: "t1",
		TxnDate:       time.Date(2026, time.May, 4, 0, 0, 0, 0, time.UTC),
		Amount:        "-3.50",
		TxnType:       "income",
		Currency:      "",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionType("income"), got.Type)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("-3.5")))
}

func TestCheckpointMapping(t *testing.T) {
	alt := decimal.NewFromInt(400000)
	d := domain.BalanceCheckpoint{
		CheckpointID: "c1",
		Scope:        domain.CashScope,
		Year:         2026,
		Month:        0,
		Amount:       decimal.NewFromInt(100),
		AmountAlt:    &alt,
	}
	m := ToModelCheckpoint(d)
	assert.Equal(t, "cash", m.ScopeKey)
	require.NotNil(t, m.AmountAlt)
	assert.Equal(t, "400000", *m.AmountAlt)

	m.ScopeKey = "bank_b9"
	m.AmountAlt = nil
	back, err := ToDomainCheckpoint(m)
	require.NoError(t, err)
	assert.Equal(t, domain.SpecificBankScope("b9"), back.Scope)
	assert.Nil(t, back.AmountAlt)

	m.ScopeKey = "savings"
	_, err = ToDomainCheckpoint(m)
	assert.ErrorIs(t, err, domain.ErrInvalidScope)
}
