package repositories

import (
	"context"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
)

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetForUpdate(id uuid.UUID) (*models.Account, error)
	GetByUserID(userID uuid.UUID) ([]models.Account, error)
	ListActive() ([]models.Account, error)
	ListActiveCredit() ([]models.Account, error)
	UpdateBalance(account *models.Account) error
	Archive(id uuid.UUID) error
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	Update(transaction *models.Transaction) error
	SoftDelete(id uuid.UUID) error
	GetByPaymentBatch(batchID uuid.UUID) ([]models.Transaction, error)
	GetByInstallment(installmentID uuid.UUID) ([]models.Transaction, error)
	GetUnbilledExpenses(accountID uuid.UUID, start, end time.Time) ([]models.Transaction, error)
	GetRegularExpenses(accountID uuid.UUID, start, end time.Time) ([]models.Transaction, error)
	GetPaymentsInto(accountID uuid.UUID, after, until time.Time) ([]models.Transaction, error)
	ListByAccount(filters models.TransactionFilters) ([]models.Transaction, error)
	AssignStatement(statementID uuid.UUID, transactionIDs []uuid.UUID) error
}

// InstallmentRepositoryInterface defines the contract for MSI purchase operations
type InstallmentRepositoryInterface interface {
	Create(purchase *models.InstallmentPurchase) error
	GetByID(id uuid.UUID) (*models.InstallmentPurchase, error)
	GetForUpdate(id uuid.UUID) (*models.InstallmentPurchase, error)
	GetActiveByAccount(accountID uuid.UUID) ([]models.InstallmentPurchase, error)
	GetActiveByUser(userID uuid.UUID) ([]models.InstallmentPurchase, error)
	ListUserIDsWithActive() ([]uuid.UUID, error)
	UpdateProgress(purchase *models.InstallmentPurchase) error
	Delete(id uuid.UUID) error
}

// StatementRepositoryInterface defines the contract for credit card statement operations
type StatementRepositoryInterface interface {
	Create(statement *models.CreditCardStatement) error
	GetByID(id uuid.UUID) (*models.CreditCardStatement, error)
	GetByAccountAndCycleEnd(accountID uuid.UUID, cycleEnd time.Time) (*models.CreditCardStatement, error)
	GetOldestOpen(accountID uuid.UUID) (*models.CreditCardStatement, error)
	ListByAccount(accountID uuid.UUID, limit int) ([]models.CreditCardStatement, error)
	ListPastDue(now time.Time) ([]models.CreditCardStatement, error)
	UpdatePayment(statement *models.CreditCardStatement) error
}

// SnapshotRepositoryInterface defines the contract for daily balance snapshots
type SnapshotRepositoryInterface interface {
	Create(snapshot *models.AccountSnapshot) error
	Exists(accountID uuid.UUID, snapshotDate time.Time) (bool, error)
	GetLatestOnOrBefore(userID uuid.UUID, date time.Time) ([]models.AccountSnapshot, error)
}

// CategoryRepositoryInterface defines the contract for category operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByIDs(userID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]models.Category, error)
	ListByUser(userID uuid.UUID) ([]models.Category, error)
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByEntity(entityType, entityID string) ([]*models.AuditLog, error)
}

// Repositories groups the repositories bound to one database handle.
type Repositories interface {
	Accounts() AccountRepositoryInterface
	Transactions() TransactionRepositoryInterface
	Installments() InstallmentRepositoryInterface
	Statements() StatementRepositoryInterface
	Snapshots() SnapshotRepositoryInterface
	Categories() CategoryRepositoryInterface
	AuditLogs() AuditLogRepositoryInterface
}

// UnitOfWork runs fn inside a single database transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
type UnitOfWork interface {
	WithinTransaction(ctx context.Context, fn func(repos Repositories) error) error
}
