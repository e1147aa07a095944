package handlers

import (
	stderrors "errors"
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultStatementLimit = 12
	maxStatementLimit     = 60
)

// CreditCardHandler serves statements and card payments
type CreditCardHandler struct {
	statements services.StatementServiceInterface
	payments   services.PaymentServiceInterface
}

// NewCreditCardHandler creates a new credit card handler
func NewCreditCardHandler(statements services.StatementServiceInterface, payments services.PaymentServiceInterface) *CreditCardHandler {
	return &CreditCardHandler{
		statements: statements,
		payments:   payments,
	}
}

// sendPaymentError reports funding problems with the PAYMENT_* codes
func sendPaymentError(c echo.Context, err error) error {
	if stderrors.Is(err, services.ErrInsufficientFunds) {
		return SendError(c, errors.PaymentInsufficientFunds, errors.WithDetails(err.Error()))
	}
	return SendServiceError(c, err)
}

// GetCurrentStatement returns the live view of the cycle containing asOf
// @Summary Current credit card statement
// @Description Regular charges, MSI installments due, payments and amounts due for the cycle containing asOf
// @Tags CreditCards
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Credit card account ID (UUID)"
// @Param asOf query string false "Reference date (YYYY-MM-DD or RFC 3339), defaults to now"
// @Success 200 {object} dto.CurrentStatementResponse "Live statement"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid account ID"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 422 {object} errors.ErrorResponse "ACCOUNT_004 - Account is not a credit card"
// @Router /credit-cards/{accountId}/statement [get]
func (h *CreditCardHandler) GetCurrentStatement(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := getUUIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	asOf, err := getTimeParam(c, "asOf")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("asOf must be YYYY-MM-DD or RFC 3339"))
	}

	view, err := h.statements.GetCurrentStatement(c.Request().Context(), userID, accountID, asOf)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, view)
}

// ListStatements returns the frozen statements of a card, newest first
// @Summary List credit card statements
// @Tags CreditCards
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Credit card account ID (UUID)"
// @Param limit query int false "Maximum statements (default 12, max 60)"
// @Success 200 {object} dto.StatementListResponse "Statements"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /credit-cards/{accountId}/statements [get]
func (h *CreditCardHandler) ListStatements(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := getUUIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	limit := getIntParam(c, "limit", defaultStatementLimit)
	if limit < 1 || limit > maxStatementLimit {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("limit must be between 1 and 60"))
	}

	statements, err := h.statements.ListStatements(c.Request().Context(), userID, accountID, limit)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.StatementListResponse{
		Statements: statements,
		Total:      len(statements),
	})
}

// PayStatement pays everything due on the card's current cycle from a liquid account
// @Summary Pay the full statement
// @Description Pays the MSI installments due and the unpaid regular balance in one atomic batch
// @Tags CreditCards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param accountId path string true "Credit card account ID (UUID)"
// @Param request body dto.PaymentRequest true "Funding account and optional date"
// @Success 200 {object} dto.StatementPaymentResponse "Payment applied"
// @Failure 409 {object} errors.ErrorResponse "STATEMENT_002 - Nothing to pay"
// @Failure 422 {object} errors.ErrorResponse "PAYMENT_001 - Insufficient funds or PAYMENT_003 - Credit card source"
// @Router /credit-cards/{accountId}/pay-statement [post]
func (h *CreditCardHandler) PayStatement(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := getUUIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	var req dto.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	result, err := h.payments.PayFullStatement(c.Request().Context(), userID, accountID, &req)
	if err != nil {
		return sendPaymentError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// PayInstallment pays the next monthly installment of an MSI purchase
// @Summary Pay one MSI installment
// @Tags Installments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param installmentId path string true "Installment purchase ID (UUID)"
// @Param request body dto.PaymentRequest true "Funding account and optional date"
// @Success 200 {object} dto.InstallmentPaymentResponse "Installment paid"
// @Failure 404 {object} errors.ErrorResponse "INSTALLMENT_001 - Installment purchase not found"
// @Failure 409 {object} errors.ErrorResponse "INSTALLMENT_002 - Already paid"
// @Failure 422 {object} errors.ErrorResponse "PAYMENT_001 - Insufficient funds or INSTALLMENT_003 - Overpayment"
// @Router /installments/{installmentId}/pay [post]
func (h *CreditCardHandler) PayInstallment(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	installmentID, err := getUUIDParam(c, "installmentId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid installment purchase ID"))
	}

	var req dto.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	result, err := h.payments.PayMsiInstallment(c.Request().Context(), userID, installmentID, &req)
	if err != nil {
		return sendPaymentError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// RevertPayment undoes a statement payment batch or a single card payment
// @Summary Revert a card payment
// @Tags CreditCards
// @Security BearerAuth
// @Produce json
// @Param transactionId path string true "Payment transaction ID (UUID)"
// @Success 200 {object} dto.RevertPaymentResponse "Payment reverted"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_006 - Not a card payment"
// @Router /transactions/{transactionId}/revert [post]
func (h *CreditCardHandler) RevertPayment(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := getUUIDParam(c, "transactionId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	result, err := h.payments.RevertStatementPayment(c.Request().Context(), userID, transactionID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
