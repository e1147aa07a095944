package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{db: db}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a live (not deleted) transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// Update saves every field of the transaction
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	transaction.Date = transaction.Date.UTC()
	if err := r.db.Save(transaction).Error; err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return nil
}

// SoftDelete marks the transaction deleted
func (r *transactionRepository) SoftDelete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Transaction{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// GetByPaymentBatch returns the transactions created by one statement payment
func (r *transactionRepository) GetByPaymentBatch(batchID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("payment_batch_id = ?", batchID).
		Order("created_at ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get payment batch: %w", err)
	}
	return transactions, nil
}

// GetByInstallment returns every live transaction linked to an MSI purchase
func (r *transactionRepository) GetByInstallment(installmentID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("installment_purchase_id = ?", installmentID).
		Order("date ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get installment transactions: %w", err)
	}
	return transactions, nil
}

// GetUnbilledExpenses returns regular (non-MSI) expenses in [start, end] that
// no statement has claimed yet.
func (r *transactionRepository) GetUnbilledExpenses(accountID uuid.UUID, start, end time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.regularExpenses(accountID, start, end).
		Where("statement_id IS NULL").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get unbilled expenses: %w", err)
	}
	return transactions, nil
}

// GetRegularExpenses returns regular (non-MSI) expenses in [start, end],
// billed or not.
func (r *transactionRepository) GetRegularExpenses(accountID uuid.UUID, start, end time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.regularExpenses(accountID, start, end).Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get cycle expenses: %w", err)
	}
	return transactions, nil
}

func (r *transactionRepository) regularExpenses(accountID uuid.UUID, start, end time.Time) *gorm.DB {
	return r.db.Where("account_id = ? AND transaction_type = ?", accountID, models.TransactionTypeExpense).
		Where("installment_purchase_id IS NULL").
		Where("date >= ? AND date <= ?", start.UTC(), end.UTC()).
		Order("date ASC")
}

// GetPaymentsInto returns income posted on the account and transfers into it
// dated in (after, until].
func (r *transactionRepository) GetPaymentsInto(accountID uuid.UUID, after, until time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.
		Where("((transaction_type = ? AND destination_account_id = ?) OR (transaction_type = ? AND account_id = ?))",
			models.TransactionTypeTransfer, accountID, models.TransactionTypeIncome, accountID).
		Where("date > ? AND date <= ?", after.UTC(), until.UTC()).
		Order("date ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}
	return transactions, nil
}

// ListByAccount returns the account history, incoming transfers included,
// newest first.
func (r *transactionRepository) ListByAccount(filters models.TransactionFilters) ([]models.Transaction, error) {
	query := r.db.Where("(account_id = ? OR destination_account_id = ?)", filters.AccountID, filters.AccountID)

	if filters.StartDate != nil {
		query = query.Where("date >= ?", filters.StartDate.UTC())
	}
	if filters.EndDate != nil {
		query = query.Where("date <= ?", filters.EndDate.UTC())
	}
	if filters.Type != "" {
		query = query.Where("transaction_type = ?", filters.Type)
	}
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.MinAmount != nil {
		query = query.Where("amount >= ?", *filters.MinAmount)
	}
	if filters.MaxAmount != nil {
		query = query.Where("amount <= ?", *filters.MaxAmount)
	}
	if filters.Description != "" {
		query = query.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(filters.Description)+"%")
	}
	if filters.Cursor != nil {
		cursorDate := filters.Cursor.Date.UTC()
		query = query.Where("(date < ? OR (date = ? AND id < ?))", cursorDate, cursorDate, filters.Cursor.ID)
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	var transactions []models.Transaction
	if err := query.Order("date DESC").Order("id DESC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// AssignStatement marks the transactions as billed by the statement
func (r *transactionRepository) AssignStatement(statementID uuid.UUID, transactionIDs []uuid.UUID) error {
	if len(transactionIDs) == 0 {
		return nil
	}

	if err := r.db.Model(&models.Transaction{}).
		Where("id IN ?", transactionIDs).
		Update("statement_id", statementID).Error; err != nil {
		return fmt.Errorf("failed to link transactions to statement: %w", err)
	}
	return nil
}
