package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome   = "income"
	TransactionTypeExpense  = "expense"
	TransactionTypeTransfer = "transfer"
)

var (
	ErrInvalidTransactionType   = errors.New("invalid transaction type")
	ErrInvalidAmount            = errors.New("transaction amount must be positive")
	ErrTransferCategory         = errors.New("transfers cannot carry a category")
	ErrDestinationOnNonTransfer = errors.New("only transfers can have a destination account")
	ErrMissingDestination       = errors.New("transfer requires a destination account")
)

// Transaction is a single ledger posting. Transfers move money between two
// accounts of the same user; income and expense touch one account.
type Transaction struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID                uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount                decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description           string          `gorm:"type:text" json:"description"`
	Date                  time.Time       `gorm:"not null;index" json:"date"`
	TransactionType       string          `gorm:"type:varchar(20);not null" json:"transaction_type"`
	AccountID             uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	DestinationAccountID  *uuid.UUID      `gorm:"type:uuid;index" json:"destination_account_id,omitempty"`
	CategoryID            *uuid.UUID      `gorm:"type:uuid" json:"category_id,omitempty"`
	InstallmentPurchaseID *uuid.UUID      `gorm:"type:uuid;index" json:"installment_purchase_id,omitempty"`
	StatementID           *uuid.UUID      `gorm:"type:uuid;index" json:"statement_id,omitempty"`
	PaymentBatchID        *uuid.UUID      `gorm:"type:uuid;index" json:"payment_batch_id,omitempty"`
	AppliedStatementID    *uuid.UUID      `gorm:"type:uuid" json:"applied_statement_id,omitempty"`
	AppliedAmount         decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"applied_amount"`
	IsInstallmentCharge   bool            `gorm:"not null;default:false" json:"is_installment_charge"`
	CreatedAt             time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt             time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt             gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}
	if t.Date.IsZero() {
		t.Date = now
	}
	t.Date = t.Date.UTC()

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if t.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if !IsValidTransactionType(t.TransactionType) {
		return ErrInvalidTransactionType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.IsTransfer() {
		if t.DestinationAccountID == nil {
			return ErrMissingDestination
		}
		if t.CategoryID != nil {
			return ErrTransferCategory
		}
	} else if t.DestinationAccountID != nil {
		return ErrDestinationOnNonTransfer
	}

	return nil
}

// Normalize clears the fields that do not apply to the transaction type.
func (t *Transaction) Normalize() {
	if t.IsTransfer() {
		t.CategoryID = nil
	} else {
		t.DestinationAccountID = nil
	}
}

// IsTransfer returns true for transfers
func (t *Transaction) IsTransfer() bool {
	return t.TransactionType == TransactionTypeTransfer
}

// IsBilled returns true once the transaction is part of a frozen statement
func (t *Transaction) IsBilled() bool {
	return t.StatementID != nil
}

// TargetAccountID is the account receiving the money: the destination of a
// transfer, otherwise the account itself.
func (t *Transaction) TargetAccountID() uuid.UUID {
	if t.IsTransfer() && t.DestinationAccountID != nil {
		return *t.DestinationAccountID
	}
	return t.AccountID
}

// IsPaymentType returns true for the types that can settle debt
func (t *Transaction) IsPaymentType() bool {
	return t.TransactionType == TransactionTypeIncome || t.TransactionType == TransactionTypeTransfer
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	default:
		return false
	}
}
