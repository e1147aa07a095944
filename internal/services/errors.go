package services

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to callers. Specific errors below wrap one of these so
// handlers can map them with errors.Is.
var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrOverpaymentRejected = errors.New("payment exceeds the amount owed")
	ErrAlreadySettled      = errors.New("already settled")
	ErrNoBalanceDue        = errors.New("no balance due")
)

var (
	ErrAccountNotFound     = fmt.Errorf("account %w", ErrNotFound)
	ErrTransactionNotFound = fmt.Errorf("transaction %w", ErrNotFound)
	ErrInstallmentNotFound = fmt.Errorf("installment purchase %w", ErrNotFound)
	ErrStatementNotFound   = fmt.Errorf("statement %w", ErrNotFound)

	ErrSameAccountTransfer  = fmt.Errorf("%w: cannot transfer to same account", ErrValidation)
	ErrInvalidAccountType   = fmt.Errorf("%w: invalid account type", ErrValidation)
	ErrNotCreditAccount     = fmt.Errorf("%w: account is not a credit card", ErrValidation)
	ErrCreditSource         = fmt.Errorf("%w: a credit card cannot fund a payment", ErrValidation)
	ErrAccountArchived      = fmt.Errorf("%w: account is archived", ErrValidation)
	ErrTransactionBilled    = fmt.Errorf("%w: transaction belongs to a statement", ErrValidation)
	ErrInstallmentCharge    = fmt.Errorf("%w: installment charges are managed by their purchase", ErrValidation)
	ErrNotStatementPayment  = fmt.Errorf("%w: transaction is not a credit card payment", ErrValidation)
	ErrInstallmentPaid      = fmt.Errorf("installment purchase %w", ErrAlreadySettled)
	ErrInstallmentOverpaid  = fmt.Errorf("%w: amount exceeds the installment purchase balance", ErrOverpaymentRejected)
	ErrCardOverpayment      = fmt.Errorf("%w: amount exceeds the card balance", ErrOverpaymentRejected)
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
