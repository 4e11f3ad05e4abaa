package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/SscSPs/expense_tracker/internal/utils/accounting"
)

// BaseService provides common functionality for all services
type BaseService struct {
	clock     func() time.Time
	location  *time.Location
	publisher portsrepo.EventPublisher
}

// ServiceOption is a functional option shared by all services
type ServiceOption func(*BaseService)

// WithClock replaces time.Now, mainly for tests.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.clock = clock
	}
}

// WithLocation sets the time zone "today" is evaluated in.
func WithLocation(loc *time.Location) ServiceOption {
	return func(s *BaseService) {
		s.location = loc
	}
}

// WithEventPublisher sets where transaction.created events go.
func WithEventPublisher(publisher portsrepo.EventPublisher) ServiceOption {
	return func(s *BaseService) {
		s.publisher = publisher
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	base := BaseService{
		clock:    time.Now,
		location: time.UTC,
	}
	for _, option := range options {
		option(&base)
	}
	return base
}

// Now returns the current instant.
func (s *BaseService) Now() time.Time {
	if s.clock == nil {
		return time.Now().UTC()
	}
	return s.clock().UTC()
}

// Today returns the current calendar date in the configured time zone.
func (s *BaseService) Today() time.Time {
	now := time.Now()
	if s.clock != nil {
		now = s.clock()
	}
	return accounting.Today(now, s.location)
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// announceCreated publishes a transaction.created event. A publish failure is
// logged and does not undo the write.
func (s *BaseService) announceCreated(ctx context.Context, txn domain.Transaction) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishTransactionCreated(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to publish transaction.created event",
			slog.String("transaction_id", txn.TransactionID))
	}
}
