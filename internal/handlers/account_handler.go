package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountService  services.AccountServiceInterface
	snapshotService services.SnapshotServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService services.AccountServiceInterface, snapshotService services.SnapshotServiceInterface) *AccountHandler {
	return &AccountHandler{
		accountService:  accountService,
		snapshotService: snapshotService,
	}
}

// CreateAccount opens a cash, debit or credit account for the authenticated user
// @Summary Create a new account
// @Description Create a CASH, DEBIT or CREDIT account. Credit accounts require cutoffDay and paymentDay.
// @Tags Accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account creation details"
// @Success 201 {object} models.Account "Account created successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	account, err := h.accountService.CreateAccount(c.Request().Context(), userID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, account)
}

// ListAccounts returns the active accounts of the authenticated user
// @Summary List accounts
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.AccountListResponse "User accounts"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accounts, err := h.accountService.GetUserAccounts(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountListResponse{
		Accounts: accounts,
		Total:    len(accounts),
	})
}

// ArchiveAccount hides an account from listings and blocks new postings on it
// @Summary Archive an account
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Account archived"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid account ID format"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{accountId}/archive [post]
func (h *AccountHandler) ArchiveAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := getUUIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	if err := h.accountService.ArchiveAccount(c.Request().Context(), userID, accountID); err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Account archived successfully"})
}

// GetNetWorth sums the latest balance snapshot of every account on or before a date
// @Summary Net worth at a date
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD or RFC 3339), defaults to now"
// @Success 200 {object} dto.NetWorthResponse "Net worth"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid date"
// @Router /accounts/net-worth [get]
func (h *AccountHandler) GetNetWorth(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	date, err := getTimeParam(c, "date")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("date must be YYYY-MM-DD or RFC 3339"))
	}

	netWorth, err := h.snapshotService.NetWorthAt(c.Request().Context(), userID, date)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, netWorth)
}
