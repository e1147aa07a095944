package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
)

type contextKey string

// CorrelationIDKey carries the request's trace id through service calls
const CorrelationIDKey contextKey = "correlation_id"

// WithCorrelationID returns a copy of ctx tagged with id
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, id)
}

type EventLogger struct {
	logger *slog.Logger
}

func NewEventLogger(logger *slog.Logger) EventLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventLogger{
		logger: logger,
	}
}

func (el *EventLogger) LogPostingCompleted(ctx context.Context, txn *models.Transaction, operation string) {
	attrs := []slog.Attr{
		slog.String("event_type", "posting_completed"),
		slog.String("operation", operation),
		slog.String("transaction_id", txn.ID.String()),
		slog.String("transaction_type", txn.TransactionType),
		slog.String("account_id", txn.AccountID.String()),
		slog.String("amount", txn.Amount.StringFixed(2)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	}

	if txn.DestinationAccountID != nil {
		attrs = append(attrs, slog.String("destination_account_id", txn.DestinationAccountID.String()))
	}
	if txn.InstallmentPurchaseID != nil {
		attrs = append(attrs, slog.String("installment_purchase_id", txn.InstallmentPurchaseID.String()))
	}

	el.logger.LogAttrs(ctx, slog.LevelInfo, "posting completed", attrs...)
}

func (el *EventLogger) LogPostingRejected(ctx context.Context, userID uuid.UUID, operation, errorMsg string) {
	el.logger.WarnContext(ctx, "posting rejected",
		slog.String("event_type", "posting_rejected"),
		slog.String("user_id", userID.String()),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogBalanceUpdate(ctx context.Context, accountID uuid.UUID, oldBalance, newBalance string, transactionID uuid.UUID) {
	el.logger.InfoContext(ctx, "balance update",
		slog.String("event_type", "balance_update"),
		slog.String("account_id", accountID.String()),
		slog.String("old_balance", oldBalance),
		slog.String("new_balance", newBalance),
		slog.String("transaction_id", transactionID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogStatementPayment(ctx context.Context, accountID, batchID uuid.UUID, amount string, transactions int) {
	el.logger.InfoContext(ctx, "statement payment",
		slog.String("event_type", "statement_payment"),
		slog.String("account_id", accountID.String()),
		slog.String("payment_batch_id", batchID.String()),
		slog.String("amount", amount),
		slog.Int("transactions", transactions),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogPaymentReverted(ctx context.Context, transactionID uuid.UUID, amount string, transactions int) {
	el.logger.InfoContext(ctx, "payment reverted",
		slog.String("event_type", "payment_reverted"),
		slog.String("transaction_id", transactionID.String()),
		slog.String("amount", amount),
		slog.Int("transactions", transactions),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogStatementGenerated(ctx context.Context, accountID, statementID uuid.UUID, totalDue string) {
	el.logger.InfoContext(ctx, "statement generated",
		slog.String("event_type", "statement_generated"),
		slog.String("account_id", accountID.String()),
		slog.String("statement_id", statementID.String()),
		slog.String("total_due", totalDue),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogJobStarted(ctx context.Context, job string) {
	el.logger.InfoContext(ctx, "job started",
		slog.String("event_type", "job_started"),
		slog.String("job", job),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogJobCompleted(ctx context.Context, job string, durationMs int64, counts map[string]int) {
	attrs := []slog.Attr{
		slog.String("event_type", "job_completed"),
		slog.String("job", job),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, slog.Int(k, counts[k]))
	}

	el.logger.LogAttrs(ctx, slog.LevelInfo, "job completed", attrs...)
}

func (el *EventLogger) LogJobItemFailed(ctx context.Context, job string, entityID uuid.UUID, errorMsg string) {
	el.logger.ErrorContext(ctx, "job item failed",
		slog.String("event_type", "job_item_failed"),
		slog.String("job", job),
		slog.String("entity_id", entityID.String()),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

// LogRequestPanic records a handler panic together with the caller and route.
func (el *EventLogger) LogRequestPanic(ctx context.Context, method, route, userID, panicValue, stack string) {
	el.logger.ErrorContext(ctx, "request panic recovered",
		slog.String("event_type", "request_panic"),
		slog.String("method", method),
		slog.String("route", route),
		slog.String("user_id", userID),
		slog.String("panic", panicValue),
		slog.String("stack_trace", stack),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	return ""
}
