package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/utils/accounting"
	"github.com/SscSPs/expense_tracker/internal/utils/pagination"
	"github.com/google/uuid"
)

// DefaultPageSize applies when a list request sets no limit.
const DefaultPageSize = 50

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, options ...ServiceOption) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService:     newBaseService(options...),
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction persists a new ledger entry and publishes transaction.created.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, actor string) (*domain.Transaction, error) {
	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}
	txType, ok := domain.ParseTransactionType(req.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %w: got %q", apperrors.ErrValidation, domain.ErrUnknownType, req.Type)
	}
	currency, ok := domain.ParseCurrency(req.Currency)
	if !ok {
		return nil, fmt.Errorf("%w: %w: got %q", apperrors.ErrValidation, domain.ErrUnknownCurrency, req.Currency)
	}
	status, ok := domain.ParseStatus(req.Status)
	if !ok {
		return nil, fmt.Errorf("%w: %w: got %q", apperrors.ErrValidation, domain.ErrUnknownStatus, req.Status)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          date,
		Description:   strings.TrimSpace(req.Description),
		Category:      strings.TrimSpace(req.Category),
		Amount:        req.Amount,
		Type:          txType,
		PaymentMethod: domain.NormalizePaymentMethod(req.PaymentMethod),
		Currency:      currency,
		Status:        status,
		AuditFields:   domain.NewAuditFields(actor, s.Now()),
	}
	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("date", req.Date))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	s.announceCreated(ctx, txn)

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

// GetTransaction retrieves a specific transaction by its ID.
func (s *transactionService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// UpdateTransaction applies the fields set in req.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, actor string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	if req.Date != nil {
		date, err := time.Parse(domain.DateLayout, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, *req.Date)
		}
		txn.Date = date
	}
	if req.Description != nil {
		txn.Description = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil {
		txn.Category = strings.TrimSpace(*req.Category)
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.Type != nil {
		txType, ok := domain.ParseTransactionType(*req.Type)
		if !ok {
			return nil, fmt.Errorf("%w: %w: got %q", apperrors.ErrValidation, domain.ErrUnknownType, *req.Type)
		}
		txn.Type = txType
	}
	if req.PaymentMethod != nil {
		txn.PaymentMethod = domain.NormalizePaymentMethod(*req.PaymentMethod)
	}
	if req.Currency != nil {
		currency, ok := domain.ParseCurrency(*req.Currency)
		if !ok {
			return nil, fmt.Errorf("%w: %w: got %q", apperrors.ErrValidation, domain.ErrUnknownCurrency, *req.Currency)
		}
		txn.Currency = currency
	}
	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	txn.Touch(actor, s.Now())

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return txn, nil
}

// SetTransactionStatus activates or deactivates an entry.
func (s *transactionService) SetTransactionStatus(ctx context.Context, transactionID string, status domain.Status, actor string) (*domain.Transaction, error) {
	parsed, ok := domain.ParseStatus(string(status))
	if !ok || status == "" {
		return nil, fmt.Errorf("%w: %w: got %q", apperrors.ErrValidation, domain.ErrUnknownStatus, status)
	}

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	if txn.Status == parsed {
		return txn, nil
	}
	txn.Status = parsed
	txn.Touch(actor, s.Now())

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to change transaction status", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to change transaction status: %w", err)
	}
	s.LogInfo(ctx, "Transaction status changed",
		slog.String("transaction_id", transactionID),
		slog.String("status", string(parsed)))
	return txn, nil
}

// ListTransactions returns a page of entries, newest first. The token is the
// cursor of the last entry of the previous page.
func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}
	statusFilter := domain.StatusFilter(params.Status)
	if !statusFilter.Valid() {
		return nil, fmt.Errorf("%w: unknown status filter %q", apperrors.ErrValidation, params.Status)
	}

	var after *pagination.Cursor
	if params.NextToken != "" {
		cursor, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
		after = &cursor
	}

	all, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	matching := make([]domain.Transaction, 0, len(all))
	for _, txn := range all {
		status, ok := domain.ParseStatus(string(txn.Status))
		if !ok || !accounting.MatchesStatus(status, statusFilter) {
			continue
		}
		if after != nil && !after.Before(cursorOf(txn)) {
			continue
		}
		matching = append(matching, txn)
	}
	sort.Slice(matching, func(i, j int) bool {
		return cursorOf(matching[i]).Before(cursorOf(matching[j]))
	})

	response := &dto.ListTransactionsResponse{}
	if len(matching) > limit {
		matching = matching[:limit]
		response.NextToken = pagination.EncodeToken(cursorOf(matching[limit-1]))
	}
	response.Transactions = dto.ToTransactionResponses(matching)
	return response, nil
}

func cursorOf(txn domain.Transaction) pagination.Cursor {
	return pagination.Cursor{Date: txn.Date, CreatedAt: txn.CreatedAt, ID: txn.TransactionID}
}
