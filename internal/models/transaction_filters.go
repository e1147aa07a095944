package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionCursor marks the last row of a page in (date, id) order
type TransactionCursor struct {
	Date time.Time `json:"date"`
	ID   uuid.UUID `json:"id"`
}

// TransactionFilters contains filtering options for account history queries.
// Results are ordered newest first; Cursor resumes after a previous page.
type TransactionFilters struct {
	AccountID   uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
	Type        string
	CategoryID  *uuid.UUID
	MinAmount   *decimal.Decimal
	MaxAmount   *decimal.Decimal
	Description string
	Cursor      *TransactionCursor
	Limit       int
}
