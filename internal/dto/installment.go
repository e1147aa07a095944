package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateInstallmentRequest registers a purchase paid in monthly installments
// without interest on a credit card.
type CreateInstallmentRequest struct {
	AccountID    uuid.UUID       `json:"accountId" validate:"required"`
	CategoryID   *uuid.UUID      `json:"categoryId,omitempty"`
	Description  string          `json:"description" validate:"required,min=1,max=255"`
	TotalAmount  decimal.Decimal `json:"totalAmount" validate:"required,money_amount"`
	Installments int             `json:"installments" validate:"required,min=1,max=60"`
	PurchaseDate time.Time       `json:"purchaseDate" validate:"required"`
}
