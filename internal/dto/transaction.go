package dto

import (
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRequest is the payload for posting or editing a transaction.
// destinationAccountId only applies to transfers and categoryId never does.
type TransactionRequest struct {
	Amount                decimal.Decimal `json:"amount" validate:"required,money_amount"`
	Description           string          `json:"description" validate:"max=255"`
	Date                  *time.Time      `json:"date,omitempty"`
	TransactionType       string          `json:"type" validate:"required,transaction_type"`
	AccountID             uuid.UUID       `json:"accountId" validate:"required"`
	DestinationAccountID  *uuid.UUID      `json:"destinationAccountId,omitempty"`
	CategoryID            *uuid.UUID      `json:"categoryId,omitempty"`
	InstallmentPurchaseID *uuid.UUID      `json:"installmentPurchaseId,omitempty"`
}

// PaginationParams are the cursor paging query parameters
type PaginationParams struct {
	Cursor string
	Limit  int
}

// PaginationInfo describes where the next page starts
type PaginationInfo struct {
	HasMore    bool   `json:"hasMore"`
	NextCursor string `json:"nextCursor,omitempty"`
	Limit      int    `json:"limit"`
}

// TransactionListResponse is one page of an account history
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Pagination   PaginationInfo       `json:"pagination"`
}
