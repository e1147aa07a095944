package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountSnapshot is the balance of an account at the start of a day.
type AccountSnapshot struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_snapshots_account_date" json:"account_id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountType  string          `gorm:"type:varchar(20);not null" json:"account_type"`
	SnapshotDate time.Time       `gorm:"not null;uniqueIndex:idx_snapshots_account_date" json:"snapshot_date"`
	Balance      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"balance"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
}

// NewAccountSnapshot captures account's balance for day.
func NewAccountSnapshot(account *Account, day time.Time) *AccountSnapshot {
	return &AccountSnapshot{
		AccountID:    account.ID,
		UserID:       account.UserID,
		AccountType:  account.AccountType,
		SnapshotDate: day.UTC(),
		Balance:      account.Balance,
	}
}

// BeforeCreate hook for AccountSnapshot
func (s *AccountSnapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	s.SnapshotDate = s.SnapshotDate.UTC()
	return nil
}

// NetWorthContribution is positive for assets and negative for credit debt.
func (s *AccountSnapshot) NetWorthContribution() decimal.Decimal {
	if s.AccountType == AccountTypeCredit {
		return s.Balance.Neg()
	}
	return s.Balance
}

// TableName returns the table name for AccountSnapshot
func (s *AccountSnapshot) TableName() string {
	return "account_snapshots"
}
