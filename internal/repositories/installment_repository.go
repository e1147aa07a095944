package repositories

import (
	"errors"
	"fmt"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrInstallmentNotFound = errors.New("installment purchase not found")

type installmentRepository struct {
	db *gorm.DB
}

// NewInstallmentRepository creates a new MSI purchase repository
func NewInstallmentRepository(db *gorm.DB) InstallmentRepositoryInterface {
	return &installmentRepository{db: db}
}

func (r *installmentRepository) Create(purchase *models.InstallmentPurchase) error {
	if err := r.db.Create(purchase).Error; err != nil {
		return fmt.Errorf("failed to create installment purchase: %w", err)
	}
	return nil
}

func (r *installmentRepository) GetByID(id uuid.UUID) (*models.InstallmentPurchase, error) {
	return r.first(r.db, id)
}

// GetForUpdate reads the purchase with a write lock held until the
// surrounding transaction ends.
func (r *installmentRepository) GetForUpdate(id uuid.UUID) (*models.InstallmentPurchase, error) {
	return r.first(r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *installmentRepository) first(db *gorm.DB, id uuid.UUID) (*models.InstallmentPurchase, error) {
	var purchase models.InstallmentPurchase
	if err := db.Where("id = ?", id).First(&purchase).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstallmentNotFound
		}
		return nil, fmt.Errorf("failed to get installment purchase: %w", err)
	}
	return &purchase, nil
}

// GetActiveByAccount returns the purchases on the account that still have
// installments left
func (r *installmentRepository) GetActiveByAccount(accountID uuid.UUID) ([]models.InstallmentPurchase, error) {
	var purchases []models.InstallmentPurchase
	if err := r.db.Where("account_id = ? AND paid_installments < installments", accountID).
		Order("purchase_date ASC").Find(&purchases).Error; err != nil {
		return nil, fmt.Errorf("failed to get active installment purchases: %w", err)
	}
	return purchases, nil
}

// GetActiveByUser returns all of the user's purchases with installments left
func (r *installmentRepository) GetActiveByUser(userID uuid.UUID) ([]models.InstallmentPurchase, error) {
	var purchases []models.InstallmentPurchase
	if err := r.db.Where("user_id = ? AND paid_installments < installments", userID).
		Order("purchase_date ASC").Find(&purchases).Error; err != nil {
		return nil, fmt.Errorf("failed to get active installment purchases: %w", err)
	}
	return purchases, nil
}

// ListUserIDsWithActive returns the users owning at least one active purchase
func (r *installmentRepository) ListUserIDsWithActive() ([]uuid.UUID, error) {
	var userIDs []uuid.UUID
	if err := r.db.Model(&models.InstallmentPurchase{}).
		Where("paid_installments < installments").
		Distinct().Order("user_id").
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to list users with installment purchases: %w", err)
	}
	return userIDs, nil
}

// UpdateProgress persists the paid and charged counters
func (r *installmentRepository) UpdateProgress(purchase *models.InstallmentPurchase) error {
	if err := r.db.Model(purchase).Updates(map[string]interface{}{
		"paid_installments":    purchase.PaidInstallments,
		"paid_amount":          purchase.PaidAmount,
		"charged_installments": purchase.ChargedInstallments,
	}).Error; err != nil {
		return fmt.Errorf("failed to update installment progress: %w", err)
	}
	return nil
}

func (r *installmentRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.InstallmentPurchase{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete installment purchase: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInstallmentNotFound
	}
	return nil
}
