package dto

import (
	"time"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// Account Request DTOs

// CreateAccountRequest represents the request payload for opening an account.
// Credit accounts also need cutoffDay and paymentDay.
type CreateAccountRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	AccountType string          `json:"accountType" validate:"required,account_type"`
	Balance     decimal.Decimal `json:"balance"`
	CreditLimit decimal.Decimal `json:"creditLimit"`
	CutoffDay   int             `json:"cutoffDay" validate:"omitempty,day_of_month"`
	PaymentDay  int             `json:"paymentDay" validate:"omitempty,day_of_month"`
}

// Account Response DTOs

// AccountListResponse represents the accounts of a user
type AccountListResponse struct {
	Accounts []models.Account `json:"accounts"`
	Total    int              `json:"total"`
}

// NetWorthResponse is the user's net worth from the latest snapshots on or before Date
type NetWorthResponse struct {
	Date      time.Time                `json:"date"`
	NetWorth  decimal.Decimal          `json:"netWorth"`
	Snapshots []models.AccountSnapshot `json:"snapshots"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
