package handlers

import (
	stderrors "errors"
	"net/http"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For request problems detected in the handler itself
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Authentication errors: SendError(c, errors.AuthMissingToken)
//    - Authorization errors: SendError(c, errors.AuthInsufficientPermission)
//
// 2. SendServiceError - For errors returned by the services package. Known
//    service errors become their business code, anything else is a system error.
//
// 3. SendSystemError - For system/internal errors (500 responses)
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
// Used for successful API responses with data, messages, and metadata
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty" swaggertype:"object"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

type serviceErrorMapping struct {
	err  error
	code errors.ErrorCode
}

// Specific errors come before the kinds they wrap.
var serviceErrorCodes = []serviceErrorMapping{
	{services.ErrAccountNotFound, errors.AccountNotFound},
	{services.ErrTransactionNotFound, errors.TransactionNotFound},
	{services.ErrInstallmentNotFound, errors.InstallmentNotFound},
	{services.ErrStatementNotFound, errors.StatementNotFound},
	{services.ErrSameAccountTransfer, errors.TransactionSameAccount},
	{services.ErrInvalidAccountType, errors.AccountInvalidType},
	{services.ErrNotCreditAccount, errors.AccountNotCreditCard},
	{services.ErrCreditSource, errors.PaymentCreditSource},
	{services.ErrAccountArchived, errors.AccountArchived},
	{services.ErrTransactionBilled, errors.TransactionBilled},
	{services.ErrInstallmentCharge, errors.TransactionInstallmentCharge},
	{services.ErrNotStatementPayment, errors.TransactionNotPayment},
	{services.ErrInstallmentPaid, errors.InstallmentAlreadyPaid},
	{services.ErrInstallmentOverpaid, errors.InstallmentOverpayment},
	{services.ErrCardOverpayment, errors.PaymentOverpayment},
	{services.ErrDuplicateCategory, errors.CategoryDuplicate},
	{services.ErrNoBalanceDue, errors.StatementNoBalanceDue},
	{services.ErrOverpaymentRejected, errors.PaymentOverpayment},
	{services.ErrInsufficientFunds, errors.AccountInsufficientFunds},
	{services.ErrValidation, errors.ValidationGeneral},
}

// serviceErrorCode resolves the API code for a service error
func serviceErrorCode(err error) (errors.ErrorCode, bool) {
	for _, mapping := range serviceErrorCodes {
		if stderrors.Is(err, mapping.err) {
			return mapping.code, true
		}
	}
	return "", false
}

// SendServiceError maps an error returned by a service to the API envelope.
// Business errors keep the service message as details.
func SendServiceError(c echo.Context, err error) error {
	code, ok := serviceErrorCode(err)
	if !ok {
		return SendSystemError(c, err)
	}
	return SendError(c, code, errors.WithDetails(err.Error()))
}
