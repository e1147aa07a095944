package repositories

import (
	"fmt"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{db: db}
}

// GetByIDs loads the user's categories with the given IDs keyed by ID
func (r *categoryRepository) GetByIDs(userID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]models.Category, error) {
	result := make(map[uuid.UUID]models.Category, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var categories []models.Category
	if err := r.db.Where("user_id = ? AND id IN ?", userID, ids).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	for _, c := range categories {
		result[c.ID] = c
	}
	return result, nil
}

// Create creates a new category
func (r *categoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// ListByUser returns the user's categories ordered by name
func (r *categoryRepository) ListByUser(userID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Where("user_id = ?", userID).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
