package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInstallmentSettled     = errors.New("installment purchase is already fully paid")
	ErrInstallmentOverpayment = errors.New("payment exceeds the remaining installment balance")
	ErrInvalidInstallments    = errors.New("installments must be at least 1")
)

// PaymentTolerance absorbs rounding of monthly payments.
var PaymentTolerance = decimal.RequireFromString("0.05")

// InstallmentPurchase is a credit card purchase split into interest-free
// monthly payments (MSI).
type InstallmentPurchase struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID              uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	CategoryID          *uuid.UUID      `gorm:"type:uuid" json:"category_id,omitempty"`
	Description         string          `gorm:"type:varchar(255);not null" json:"description"`
	TotalAmount         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_amount"`
	Installments        int             `gorm:"not null" json:"installments"`
	MonthlyPayment      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"monthly_payment"`
	PurchaseDate        time.Time       `gorm:"not null" json:"purchase_date"`
	PaidInstallments    int             `gorm:"not null;default:0" json:"paid_installments"`
	PaidAmount          decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"paid_amount"`
	// ChargedInstallments counts the monthly charges recorded so far. It is
	// independent of what has been paid.
	ChargedInstallments int             `gorm:"not null;default:0" json:"charged_installments"`
	CreatedAt           time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for InstallmentPurchase
func (p *InstallmentPurchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	if p.MonthlyPayment.IsZero() && p.Installments > 0 {
		p.MonthlyPayment = MonthlyPaymentFor(p.TotalAmount, p.Installments)
	}

	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	p.PurchaseDate = p.PurchaseDate.UTC()

	return p.Validate()
}

// BeforeUpdate hook for InstallmentPurchase
func (p *InstallmentPurchase) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// Validate validates the purchase fields
func (p *InstallmentPurchase) Validate() error {
	if p.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if p.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}
	if strings.TrimSpace(p.Description) == "" {
		return errors.New("description is required")
	}
	if p.TotalAmount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if p.Installments < 1 {
		return ErrInvalidInstallments
	}
	if p.PurchaseDate.IsZero() {
		return errors.New("purchase date is required")
	}
	return nil
}

// Remaining is the amount still owed on the purchase.
func (p *InstallmentPurchase) Remaining() decimal.Decimal {
	remaining := p.TotalAmount.Sub(p.PaidAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// IsFullyPaid allows for the rounding tolerance.
func (p *InstallmentPurchase) IsFullyPaid() bool {
	return p.PaidAmount.GreaterThanOrEqual(p.TotalAmount.Sub(PaymentTolerance))
}

// NextPaymentAmount is one monthly payment capped at what is left.
func (p *InstallmentPurchase) NextPaymentAmount() decimal.Decimal {
	return decimal.Min(p.MonthlyPayment, p.Remaining())
}

// ApplyPayment records a payment of amount against the purchase.
func (p *InstallmentPurchase) ApplyPayment(amount decimal.Decimal) error {
	if p.IsFullyPaid() {
		return ErrInstallmentSettled
	}
	if amount.GreaterThan(p.Remaining().Add(PaymentTolerance)) {
		return ErrInstallmentOverpayment
	}

	p.PaidAmount = decimal.Min(p.PaidAmount.Add(amount), p.TotalAmount)
	p.PaidInstallments += p.installmentsCovered(amount)
	if p.IsFullyPaid() || p.PaidInstallments > p.Installments {
		p.PaidInstallments = p.Installments
	}
	return nil
}

// RevertPayment undoes a payment previously recorded with ApplyPayment.
func (p *InstallmentPurchase) RevertPayment(amount decimal.Decimal) {
	p.PaidAmount = decimal.Max(p.PaidAmount.Sub(amount), decimal.Zero)

	if p.PaidInstallments >= p.Installments && !p.IsFullyPaid() {
		p.PaidInstallments = p.installmentsCovered(p.PaidAmount)
	} else {
		p.PaidInstallments -= p.installmentsCovered(amount)
	}
	if p.PaidInstallments < 0 {
		p.PaidInstallments = 0
	}
}

// RecordCharges moves the charge counter forward to count, capped at the plan
// length. It reports whether the counter changed.
func (p *InstallmentPurchase) RecordCharges(count int) bool {
	if count > p.Installments {
		count = p.Installments
	}
	if count <= p.ChargedInstallments {
		return false
	}
	p.ChargedInstallments = count
	return true
}

func (p *InstallmentPurchase) installmentsCovered(amount decimal.Decimal) int {
	if p.MonthlyPayment.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return int(amount.Div(p.MonthlyPayment).Floor().IntPart())
}

// TableName returns the table name for InstallmentPurchase
func (p *InstallmentPurchase) TableName() string {
	return "installment_purchases"
}

// MonthlyPaymentFor splits total into n payments rounded to cents.
func MonthlyPaymentFor(total decimal.Decimal, n int) decimal.Decimal {
	if n < 1 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(n))).Round(2)
}
