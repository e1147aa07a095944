package dto

import (
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentRequest is the payload for paying a statement or a single MSI
// installment from another account. Date defaults to now.
type PaymentRequest struct {
	SourceAccountID uuid.UUID  `json:"sourceAccountId" validate:"required"`
	Date            *time.Time `json:"date,omitempty"`
}

// StatementCharge is a regular purchase inside the current cycle
type StatementCharge struct {
	ID            uuid.UUID       `json:"id"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	CategoryID    *uuid.UUID      `json:"categoryId,omitempty"`
	CategoryName  string          `json:"categoryName,omitempty"`
	CategoryColor string          `json:"categoryColor,omitempty"`
	CategoryIcon  string          `json:"categoryIcon,omitempty"`
}

// MsiCharge is the monthly charge of an installment purchase due in the cycle
type MsiCharge struct {
	InstallmentPurchaseID uuid.UUID       `json:"installmentPurchaseId"`
	Description           string          `json:"description"`
	Amount                decimal.Decimal `json:"amount"`
	ChargeDate            time.Time       `json:"chargeDate"`
	InstallmentNumber     int             `json:"installmentNumber"`
	TotalInstallments     int             `json:"totalInstallments"`
	RemainingAmount       decimal.Decimal `json:"remainingAmount"`
	IsPaid                bool            `json:"isPaid"`
}

// StatementPayment is a payment received during the cycle's payment window
type StatementPayment struct {
	ID                    uuid.UUID       `json:"id"`
	Amount                decimal.Decimal `json:"amount"`
	Date                  time.Time       `json:"date"`
	Description           string          `json:"description"`
	InstallmentPurchaseID *uuid.UUID      `json:"installmentPurchaseId,omitempty"`
}

// CurrentStatementResponse is the live view of the cycle a card is in
type CurrentStatementResponse struct {
	AccountID        uuid.UUID          `json:"accountId"`
	AccountName      string             `json:"accountName"`
	CycleStart       time.Time          `json:"cycleStartDate"`
	CutoffDate       time.Time          `json:"cutoffDate"`
	PaymentDate      time.Time          `json:"paymentDate"`
	IsBeforeCutoff   bool               `json:"isBeforeCutoff"`
	DaysUntilCutoff  int                `json:"daysUntilCutoff"`
	DaysUntilPayment int                `json:"daysUntilPayment"`
	MsiCharges       []MsiCharge        `json:"msiCharges"`
	RegularCharges   []StatementCharge  `json:"regularCharges"`
	Payments         []StatementPayment `json:"payments"`
	MsiTotal         decimal.Decimal    `json:"msiTotal"`
	MsiDue           decimal.Decimal    `json:"msiDue"`
	RegularTotal     decimal.Decimal    `json:"regularTotal"`
	RegularPaid      decimal.Decimal    `json:"regularPaid"`
	RegularDue       decimal.Decimal    `json:"regularDue"`
	TotalDue         decimal.Decimal    `json:"totalDue"`
	IsFullyPaid      bool               `json:"isFullyPaid"`
}

// StatementListResponse lists the frozen statements of a card, newest first
type StatementListResponse struct {
	Statements []models.CreditCardStatement `json:"statements"`
	Total      int                          `json:"total"`
}

// StatementPaymentResponse is the result of paying the current cycle in full
type StatementPaymentResponse struct {
	Amount              decimal.Decimal `json:"amount"`
	Description         string          `json:"description"`
	MsiPaid             decimal.Decimal `json:"msiPaid"`
	RegularPaid         decimal.Decimal `json:"regularPaid"`
	TransactionsCreated int             `json:"transactionsCreated"`
	PaymentBatchID      uuid.UUID       `json:"paymentBatchId"`
}

// InstallmentPaymentResponse is the result of paying one MSI installment
type InstallmentPaymentResponse struct {
	TransactionID     uuid.UUID       `json:"transactionId"`
	Amount            decimal.Decimal `json:"amount"`
	InstallmentNumber int             `json:"installmentNumber"`
	TotalInstallments int             `json:"totalInstallments"`
	RemainingAmount   decimal.Decimal `json:"remainingAmount"`
}

// RevertPaymentResponse is the result of undoing a card payment
type RevertPaymentResponse struct {
	AmountReverted       decimal.Decimal `json:"amountReverted"`
	TransactionsReverted int             `json:"transactionsReverted"`
}
