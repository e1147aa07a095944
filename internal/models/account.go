package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccountTypeCash   = "CASH"
	AccountTypeDebit  = "DEBIT"
	AccountTypeCredit = "CREDIT"
)

var (
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrInvalidBillingDays = errors.New("credit accounts require cutoff and payment days between 1 and 31")
	ErrAccountArchived    = errors.New("account is archived")
	ErrInsufficientFunds  = errors.New("insufficient funds")
)

// accountTypeAliases maps the lowercase spellings clients send to the canonical type.
var accountTypeAliases = map[string]string{
	"cash":               AccountTypeCash,
	"efectivo":           AccountTypeCash,
	"debit":              AccountTypeDebit,
	"débito":             AccountTypeDebit,
	"debito":             AccountTypeDebit,
	"tarjeta de débito":  AccountTypeDebit,
	"tarjeta de debito":  AccountTypeDebit,
	"checking":           AccountTypeDebit,
	"credit":             AccountTypeCredit,
	"credit card":        AccountTypeCredit,
	"tarjeta de crédito": AccountTypeCredit,
	"tarjeta de credito": AccountTypeCredit,
}

// PostingSide tells which end of a posting an account sits on.
type PostingSide int

const (
	SideSource PostingSide = iota
	SideDestination
)

// Account is a cash, debit or credit account. For CREDIT accounts Balance is
// the outstanding debt.
type Account struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	AccountType string          `gorm:"type:varchar(20);not null" json:"account_type"`
	Balance     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	CreditLimit decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"credit_limit"`
	CutoffDay   int             `gorm:"default:0" json:"cutoff_day,omitempty"`
	PaymentDay  int             `gorm:"default:0" json:"payment_day,omitempty"`
	IsArchived  bool            `gorm:"not null;default:false" json:"is_archived"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	normalized, err := NormalizeAccountType(a.AccountType)
	if err != nil {
		return err
	}
	a.AccountType = normalized

	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now().UTC()
	return nil
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if strings.TrimSpace(a.Name) == "" {
		return errors.New("account name is required")
	}

	if !IsValidAccountType(a.AccountType) {
		return ErrInvalidAccountType
	}

	if a.IsCredit() {
		if a.CutoffDay < 1 || a.CutoffDay > 31 || a.PaymentDay < 1 || a.PaymentDay > 31 {
			return ErrInvalidBillingDays
		}
	}

	return nil
}

// IsCredit returns true for credit card accounts
func (a *Account) IsCredit() bool {
	return a.AccountType == AccountTypeCredit
}

// IsLiquid returns true for accounts holding the user's own money
func (a *Account) IsLiquid() bool {
	return a.AccountType == AccountTypeCash || a.AccountType == AccountTypeDebit
}

// PostingDelta is the signed balance change a posting of amount causes on
// this account. Transfer sources always decrease; a credit destination has
// its debt reduced. Expenses raise credit debt and lower liquid balances,
// income does the opposite.
func (a *Account) PostingDelta(transactionType string, side PostingSide, amount decimal.Decimal) decimal.Decimal {
	switch transactionType {
	case TransactionTypeTransfer:
		if side == SideSource || a.IsCredit() {
			return amount.Neg()
		}
		return amount
	case TransactionTypeExpense:
		if a.IsCredit() {
			return amount
		}
		return amount.Neg()
	case TransactionTypeIncome:
		if a.IsCredit() {
			return amount.Neg()
		}
		return amount
	default:
		return decimal.Zero
	}
}

// Apply adds delta to the balance.
func (a *Account) Apply(delta decimal.Decimal) {
	a.Balance = a.Balance.Add(delta).Round(2)
}

// CanCover reports whether a liquid account holds at least amount.
// Credit accounts are not checked against their limit.
func (a *Account) CanCover(amount decimal.Decimal) bool {
	if !a.IsLiquid() {
		return true
	}
	return a.Balance.GreaterThanOrEqual(amount)
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeCash, AccountTypeDebit, AccountTypeCredit:
		return true
	default:
		return false
	}
}

// NormalizeAccountType maps the accepted spellings of an account type onto
// CASH, DEBIT or CREDIT.
func NormalizeAccountType(raw string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := accountTypeAliases[key]; ok {
		return canonical, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAccountType, raw)
}
