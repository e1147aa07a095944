package repositories

import (
	"errors"
	"fmt"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrAccountNotFound = errors.New("account not found")

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account
func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// GetForUpdate reads the account row with a write lock held until the
// surrounding transaction ends.
func (r *accountRepository) GetForUpdate(id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}
	return &account, nil
}

// GetByUserID retrieves all accounts for a user
func (r *accountRepository) GetByUserID(userID uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts for user: %w", err)
	}
	return accounts, nil
}

// ListActive returns every non-archived account
func (r *accountRepository) ListActive() ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Where("is_archived = ?", false).Order("id").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list active accounts: %w", err)
	}
	return accounts, nil
}

// ListActiveCredit returns every non-archived credit account
func (r *accountRepository) ListActiveCredit() ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Where("account_type = ? AND is_archived = ?", models.AccountTypeCredit, false).
		Order("id").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list credit accounts: %w", err)
	}
	return accounts, nil
}

// UpdateBalance persists the account's balance
func (r *accountRepository) UpdateBalance(account *models.Account) error {
	result := r.db.Model(account).Update("balance", account.Balance)
	if result.Error != nil {
		return fmt.Errorf("failed to update account balance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// Archive hides an account from new postings while keeping its history
func (r *accountRepository) Archive(id uuid.UUID) error {
	result := r.db.Model(&models.Account{}).Where("id = ?", id).Update("is_archived", true)
	if result.Error != nil {
		return fmt.Errorf("failed to archive account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}
