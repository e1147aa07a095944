package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// InstallmentHandler manages MSI purchases
type InstallmentHandler struct {
	installments services.InstallmentServiceInterface
}

// NewInstallmentHandler creates a new installment handler
func NewInstallmentHandler(installments services.InstallmentServiceInterface) *InstallmentHandler {
	return &InstallmentHandler{installments: installments}
}

// CreateInstallmentPurchase registers an MSI purchase on a credit card
// @Summary Create an MSI purchase
// @Description Charges the full amount to the card and schedules equal monthly installments
// @Tags Installments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateInstallmentRequest true "Purchase details"
// @Success 201 {object} models.InstallmentPurchase "Purchase created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 422 {object} errors.ErrorResponse "ACCOUNT_004 - Account is not a credit card"
// @Router /installments [post]
func (h *InstallmentHandler) CreateInstallmentPurchase(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateInstallmentRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	purchase, err := h.installments.CreateInstallmentPurchase(c.Request().Context(), userID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, purchase)
}

// DeleteInstallmentPurchase removes an MSI purchase and reverses its charges
// @Summary Delete an MSI purchase
// @Tags Installments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Installment purchase ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Purchase deleted"
// @Failure 404 {object} errors.ErrorResponse "INSTALLMENT_001 - Installment purchase not found"
// @Router /installments/{id} [delete]
func (h *InstallmentHandler) DeleteInstallmentPurchase(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	installmentID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid installment purchase ID"))
	}

	if err := h.installments.DeleteInstallmentPurchase(c.Request().Context(), userID, installmentID); err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Installment purchase deleted successfully"})
}
