package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound          ErrorCode = "ACCOUNT_001"
	AccountArchived          ErrorCode = "ACCOUNT_002"
	AccountInvalidType       ErrorCode = "ACCOUNT_003"
	AccountNotCreditCard     ErrorCode = "ACCOUNT_004"
	AccountInsufficientFunds ErrorCode = "ACCOUNT_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound          ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount     ErrorCode = "TRANSACTION_002"
	TransactionSameAccount       ErrorCode = "TRANSACTION_003"
	TransactionBilled            ErrorCode = "TRANSACTION_004"
	TransactionInstallmentCharge ErrorCode = "TRANSACTION_005"
	TransactionNotPayment        ErrorCode = "TRANSACTION_006"
)

// Installment purchase error codes (INSTALLMENT_*)
const (
	InstallmentNotFound    ErrorCode = "INSTALLMENT_001"
	InstallmentAlreadyPaid ErrorCode = "INSTALLMENT_002"
	InstallmentOverpayment ErrorCode = "INSTALLMENT_003"
)

// Statement error codes (STATEMENT_*)
const (
	StatementNotFound     ErrorCode = "STATEMENT_001"
	StatementNoBalanceDue ErrorCode = "STATEMENT_002"
)

// Payment error codes (PAYMENT_*)
const (
	PaymentInsufficientFunds ErrorCode = "PAYMENT_001"
	PaymentOverpayment       ErrorCode = "PAYMENT_002"
	PaymentCreditSource      ErrorCode = "PAYMENT_003"
)

// Category error codes (CATEGORY_*)
const (
	CategoryDuplicate ErrorCode = "CATEGORY_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Account errors
	AccountNotFound:          "Account not found",
	AccountArchived:          "Account is archived",
	AccountInvalidType:       "Account type must be cash, debit or credit",
	AccountNotCreditCard:     "Account is not a credit card",
	AccountInsufficientFunds: "Insufficient account balance",

	// Transaction errors
	TransactionNotFound:          "Transaction not found",
	TransactionInvalidAmount:     "Transaction amount must be greater than zero",
	TransactionSameAccount:       "Cannot transfer to the same account",
	TransactionBilled:            "Transaction already belongs to a statement",
	TransactionInstallmentCharge: "Installment charges are managed by their purchase",
	TransactionNotPayment:        "Transaction is not a credit card payment",

	// Installment errors
	InstallmentNotFound:    "Installment purchase not found",
	InstallmentAlreadyPaid: "Installment purchase is already paid",
	InstallmentOverpayment: "Amount exceeds the remaining installment balance",

	// Statement errors
	StatementNotFound:     "Statement not found",
	StatementNoBalanceDue: "There is no balance due on this card",

	// Payment errors
	PaymentInsufficientFunds: "Source account has insufficient balance for this payment",
	PaymentOverpayment:       "Payment exceeds the amount owed",
	PaymentCreditSource:      "A credit card cannot fund a payment",

	// Category errors
	CategoryDuplicate: "A category with this name already exists",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "The requested resource does not exist",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
