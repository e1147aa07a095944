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

var (
	ErrStatementNotFound = errors.New("statement not found")
	ErrStatementExists   = errors.New("statement already exists for cycle")
)

type statementRepository struct {
	db *gorm.DB
}

// NewStatementRepository creates a new credit card statement repository
func NewStatementRepository(db *gorm.DB) StatementRepositoryInterface {
	return &statementRepository{db: db}
}

// Create inserts the statement. A second statement for the same account and
// cycle end returns ErrStatementExists.
func (r *statementRepository) Create(statement *models.CreditCardStatement) error {
	if err := r.db.Create(statement).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrStatementExists
		}
		return fmt.Errorf("failed to create statement: %w", err)
	}
	return nil
}

func (r *statementRepository) GetByID(id uuid.UUID) (*models.CreditCardStatement, error) {
	var statement models.CreditCardStatement
	if err := r.db.Where("id = ?", id).First(&statement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatementNotFound
		}
		return nil, fmt.Errorf("failed to get statement: %w", err)
	}
	return &statement, nil
}

func (r *statementRepository) GetByAccountAndCycleEnd(accountID uuid.UUID, cycleEnd time.Time) (*models.CreditCardStatement, error) {
	var statement models.CreditCardStatement
	if err := r.db.Where("account_id = ? AND cycle_end = ?", accountID, cycleEnd.UTC()).
		First(&statement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatementNotFound
		}
		return nil, fmt.Errorf("failed to get statement: %w", err)
	}
	return &statement, nil
}

// GetOldestOpen returns the earliest statement on the account that still has
// an outstanding balance.
func (r *statementRepository) GetOldestOpen(accountID uuid.UUID) (*models.CreditCardStatement, error) {
	var statement models.CreditCardStatement
	if err := r.db.Where("account_id = ? AND status IN ?", accountID, []string{
		models.StatementStatusPending,
		models.StatementStatusPartial,
		models.StatementStatusOverdue,
	}).Order("cycle_end ASC").First(&statement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatementNotFound
		}
		return nil, fmt.Errorf("failed to get open statement: %w", err)
	}
	return &statement, nil
}

// ListByAccount returns the newest statements first. A non-positive limit
// returns all of them.
func (r *statementRepository) ListByAccount(accountID uuid.UUID, limit int) ([]models.CreditCardStatement, error) {
	var statements []models.CreditCardStatement
	query := r.db.Where("account_id = ?", accountID).Order("cycle_end DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&statements).Error; err != nil {
		return nil, fmt.Errorf("failed to list statements: %w", err)
	}
	return statements, nil
}

// ListPastDue returns unpaid statements whose due date is before now
func (r *statementRepository) ListPastDue(now time.Time) ([]models.CreditCardStatement, error) {
	var statements []models.CreditCardStatement
	if err := r.db.Where("status IN ? AND payment_due_date < ?", []string{
		models.StatementStatusPending,
		models.StatementStatusPartial,
	}, now.UTC()).Order("payment_due_date ASC").Find(&statements).Error; err != nil {
		return nil, fmt.Errorf("failed to list past due statements: %w", err)
	}
	return statements, nil
}

// UpdatePayment persists the paid amount and status, the only fields that
// change after generation.
func (r *statementRepository) UpdatePayment(statement *models.CreditCardStatement) error {
	result := r.db.Model(statement).Updates(map[string]interface{}{
		"paid_amount": statement.PaidAmount,
		"status":      statement.Status,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update statement payment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrStatementNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
