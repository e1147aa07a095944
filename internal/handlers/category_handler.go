package handlers

import (
	"net/http"
	"strings"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categories services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categories services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// ListCategories returns the user's categories ordered by name
// @Summary List categories
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.CategoryListResponse "Categories"
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categories, err := h.categories.ListCategories(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CategoryListResponse{
		Categories: categories,
		Total:      len(categories),
	})
}

// CreateCategory adds a category for the user
// @Summary Create a category
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} models.Category "Category created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 409 {object} errors.ErrorResponse "CATEGORY_001 - Category already exists"
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	category, err := h.categories.CreateCategory(c.Request().Context(), userID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, category)
}

// SuggestCategory proposes a category for a transaction description
// @Summary Suggest a category
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Param description query string true "Transaction description"
// @Success 200 {object} dto.CategorySuggestion "Suggestion, categoryId is empty when nothing matches"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002 - description is required"
// @Router /categories/suggest [get]
func (h *CategoryHandler) SuggestCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	description := strings.TrimSpace(c.QueryParam("description"))
	if description == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("description is required"))
	}

	suggestion, err := h.categories.SuggestCategory(c.Request().Context(), userID, description)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, suggestion)
}
