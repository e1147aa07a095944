package services

import (
	"context"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"

	"github.com/google/uuid"
)

// AccountServiceInterface defines account-related business operations
type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, userID uuid.UUID, req *dto.CreateAccountRequest) (*models.Account, error)
	GetUserAccounts(ctx context.Context, userID uuid.UUID) ([]models.Account, error)
	ArchiveAccount(ctx context.Context, userID, accountID uuid.UUID) error
	ListTransactions(ctx context.Context, userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, error)
}

// LedgerServiceInterface is the single entry point for anything that changes
// an account balance.
type LedgerServiceInterface interface {
	Post(ctx context.Context, userID uuid.UUID, req *dto.TransactionRequest) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, transactionID uuid.UUID, req *dto.TransactionRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error
}

// StatementGeneratorInterface runs the nightly statement jobs
type StatementGeneratorInterface interface {
	GenerateCreditCardStatements(ctx context.Context, today time.Time) (*dto.StatementRunResult, error)
	MarkOverdueStatements(ctx context.Context, now time.Time) (int, error)
}

// StatementServiceInterface provides the credit card statement views
type StatementServiceInterface interface {
	GetCurrentStatement(ctx context.Context, userID, accountID uuid.UUID, asOf time.Time) (*dto.CurrentStatementResponse, error)
	ListStatements(ctx context.Context, userID, accountID uuid.UUID, limit int) ([]models.CreditCardStatement, error)
}

// PaymentServiceInterface pays and reverts credit card payments
type PaymentServiceInterface interface {
	PayFullStatement(ctx context.Context, userID, accountID uuid.UUID, req *dto.PaymentRequest) (*dto.StatementPaymentResponse, error)
	PayMsiInstallment(ctx context.Context, userID, installmentID uuid.UUID, req *dto.PaymentRequest) (*dto.InstallmentPaymentResponse, error)
	RevertStatementPayment(ctx context.Context, userID, transactionID uuid.UUID) (*dto.RevertPaymentResponse, error)
}

// InstallmentServiceInterface manages the lifecycle of MSI purchases
type InstallmentServiceInterface interface {
	CreateInstallmentPurchase(ctx context.Context, userID uuid.UUID, req *dto.CreateInstallmentRequest) (*models.InstallmentPurchase, error)
	DeleteInstallmentPurchase(ctx context.Context, userID, installmentID uuid.UUID) error
}

// InstallmentTrackerInterface reconciles MSI progress with elapsed months
type InstallmentTrackerInterface interface {
	ProcessInstallmentPurchases(ctx context.Context, userID uuid.UUID, today time.Time) (*dto.InstallmentRunResult, error)
	ProcessAllUsers(ctx context.Context, today time.Time) (*dto.InstallmentRunResult, error)
}

// SnapshotServiceInterface records and reads daily balance history
type SnapshotServiceInterface interface {
	CreateDailyAccountSnapshots(ctx context.Context, today time.Time) (*dto.SnapshotRunResult, error)
	NetWorthAt(ctx context.Context, userID uuid.UUID, date time.Time) (*dto.NetWorthResponse, error)
}

// CategoryServiceInterface manages user categories and suggests one for a description
type CategoryServiceInterface interface {
	CreateCategory(ctx context.Context, userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error)
	ListCategories(ctx context.Context, userID uuid.UUID) ([]models.Category, error)
	SuggestCategory(ctx context.Context, userID uuid.UUID, description string) (*dto.CategorySuggestion, error)
}

// AuditServiceInterface reads the audit trail
type AuditServiceInterface interface {
	GetEntityHistory(ctx context.Context, userID uuid.UUID, entityType string, entityID uuid.UUID) ([]*models.AuditLog, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type TokenServiceInterface interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type EventLoggerInterface interface {
	LogPostingCompleted(ctx context.Context, txn *models.Transaction, operation string)
	LogPostingRejected(ctx context.Context, userID uuid.UUID, operation, errorMsg string)
	LogBalanceUpdate(ctx context.Context, accountID uuid.UUID, oldBalance, newBalance string, transactionID uuid.UUID)
	LogStatementPayment(ctx context.Context, accountID, batchID uuid.UUID, amount string, transactions int)
	LogPaymentReverted(ctx context.Context, transactionID uuid.UUID, amount string, transactions int)
	LogStatementGenerated(ctx context.Context, accountID, statementID uuid.UUID, totalDue string)
	LogJobStarted(ctx context.Context, job string)
	LogJobCompleted(ctx context.Context, job string, durationMs int64, counts map[string]int)
	LogJobItemFailed(ctx context.Context, job string, entityID uuid.UUID, errorMsg string)
	LogRequestPanic(ctx context.Context, method, route, userID, panicValue, stack string)
}
