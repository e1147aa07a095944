package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatementStatusPending = "PENDING"
	StatementStatusPartial = "PARTIAL"
	StatementStatusPaid    = "PAID"
	StatementStatusOverdue = "OVERDUE"
)

var (
	minimumPaymentRate  = decimal.RequireFromString("0.05")
	minimumPaymentFloor = decimal.NewFromInt(200)
)

// CreditCardStatement is the frozen bill of one credit card cycle. Only
// PaidAmount and Status change after creation.
type CreditCardStatement struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_statements_account_cycle" json:"account_id"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CycleStart     time.Time       `gorm:"not null" json:"cycle_start"`
	CycleEnd       time.Time       `gorm:"not null;uniqueIndex:idx_statements_account_cycle" json:"cycle_end"`
	PaymentDueDate time.Time       `gorm:"not null" json:"payment_due_date"`
	RegularAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"regular_amount"`
	MsiAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"msi_amount"`
	TotalDue       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"total_due"`
	MinimumPayment decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"minimum_payment"`
	PaidAmount     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"paid_amount"`
	Status         string          `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for CreditCardStatement
func (s *CreditCardStatement) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Status == "" {
		s.Status = StatementStatusPending
	}

	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	s.CycleStart = s.CycleStart.UTC()
	s.CycleEnd = s.CycleEnd.UTC()
	s.PaymentDueDate = s.PaymentDueDate.UTC()
	return nil
}

// BeforeUpdate hook for CreditCardStatement
func (s *CreditCardStatement) BeforeUpdate(tx *gorm.DB) error {
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// SetAmounts fills the totals from the regular and MSI parts.
func (s *CreditCardStatement) SetAmounts(regular, msi decimal.Decimal) {
	s.RegularAmount = regular.Round(2)
	s.MsiAmount = msi.Round(2)
	s.TotalDue = s.RegularAmount.Add(s.MsiAmount)
	s.MinimumPayment = MinimumPaymentFor(s.TotalDue)
}

// Outstanding is what is still owed on the statement.
func (s *CreditCardStatement) Outstanding() decimal.Decimal {
	return decimal.Max(s.TotalDue.Sub(s.PaidAmount), decimal.Zero)
}

// IsOpen returns true while the statement still expects payments
func (s *CreditCardStatement) IsOpen() bool {
	return s.Status != StatementStatusPaid
}

// ApplyPayment applies up to the outstanding amount and returns what was applied.
func (s *CreditCardStatement) ApplyPayment(amount decimal.Decimal) decimal.Decimal {
	applied := decimal.Min(amount, s.Outstanding())
	s.PaidAmount = s.PaidAmount.Add(applied)
	s.refreshStatus()
	return applied
}

// RevertPayment removes a previously applied amount.
func (s *CreditCardStatement) RevertPayment(amount decimal.Decimal) {
	s.PaidAmount = decimal.Max(s.PaidAmount.Sub(amount), decimal.Zero)
	s.refreshStatus()
}

// MarkOverdue flips an unpaid statement to OVERDUE once its due date passed.
// It reports whether the status changed.
func (s *CreditCardStatement) MarkOverdue(now time.Time) bool {
	if s.Status != StatementStatusPending && s.Status != StatementStatusPartial {
		return false
	}
	if !now.After(s.PaymentDueDate) {
		return false
	}
	s.Status = StatementStatusOverdue
	return true
}

func (s *CreditCardStatement) refreshStatus() {
	switch {
	case s.PaidAmount.GreaterThanOrEqual(s.TotalDue.Sub(PaymentTolerance)):
		s.Status = StatementStatusPaid
	case s.Status == StatementStatusOverdue:
	case s.PaidAmount.IsPositive():
		s.Status = StatementStatusPartial
	default:
		s.Status = StatementStatusPending
	}
}

// TableName returns the table name for CreditCardStatement
func (s *CreditCardStatement) TableName() string {
	return "credit_card_statements"
}

// MinimumPaymentFor is five percent of the total with a floor of 200.
func MinimumPaymentFor(totalDue decimal.Decimal) decimal.Decimal {
	return decimal.Max(totalDue.Mul(minimumPaymentRate), minimumPaymentFloor).Round(2)
}
