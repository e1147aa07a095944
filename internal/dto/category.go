package dto

import (
	"finance-tracker/internal/models"

	"github.com/google/uuid"
)

// CreateCategoryRequest represents the request payload for a new category
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
	Icon  string `json:"icon" validate:"omitempty,max=50"`
}

// CategoryListResponse represents the categories of a user
type CategoryListResponse struct {
	Categories []models.Category `json:"categories"`
	Total      int               `json:"total"`
}

// CategorySuggestion is the best matching category for a description.
// CategoryID is nil when nothing matched with enough confidence.
type CategorySuggestion struct {
	Description string     `json:"description"`
	CategoryID  *uuid.UUID `json:"categoryId,omitempty"`
	Name        string     `json:"name,omitempty"`
	Confidence  float64    `json:"confidence"`
}
