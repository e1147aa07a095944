package database

import (
	"fmt"
	"testing"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a migrated in-memory sqlite database. The pool is held
// to one connection so every query sees the same in-memory schema; code under
// test must therefore only use the transaction handle inside a unit of work.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

// CreateTestAccount inserts an account of accountType with the given balance.
// Credit accounts get cutoff day 20 and payment day 5.
func CreateTestAccount(t *testing.T, db *DB, userID uuid.UUID, accountType string, balance string) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:      userID,
		Name:        fmt.Sprintf("Test %s", accountType),
		AccountType: accountType,
		Balance:     decimal.RequireFromString(balance),
	}
	if accountType == models.AccountTypeCredit {
		account.CutoffDay = 20
		account.PaymentDay = 5
		account.CreditLimit = decimal.NewFromInt(50000)
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

// CreateTestInstallment inserts an MSI plan on the given credit account.
func CreateTestInstallment(t *testing.T, db *DB, account *models.Account, total string, installments int, purchaseDate time.Time) *models.InstallmentPurchase {
	t.Helper()

	amount := decimal.RequireFromString(total)
	purchase := &models.InstallmentPurchase{
		UserID:         account.UserID,
		AccountID:      account.ID,
		Description:    "Test purchase",
		TotalAmount:    amount,
		Installments:   installments,
		MonthlyPayment: models.MonthlyPaymentFor(amount, installments),
		PurchaseDate:   purchaseDate,
	}

	if err := db.Create(purchase).Error; err != nil {
		t.Fatalf("failed to create test installment purchase: %v", err)
	}

	return purchase
}

// CreateTestTransaction inserts a transaction row directly, bypassing the
// ledger. Balances are not touched.
func CreateTestTransaction(t *testing.T, db *DB, txn *models.Transaction) *models.Transaction {
	t.Helper()

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}

// ReloadAccount reads the account's current row.
func ReloadAccount(t *testing.T, db *DB, id uuid.UUID) *models.Account {
	t.Helper()

	var account models.Account
	if err := db.First(&account, "id = ?", id).Error; err != nil {
		t.Fatalf("failed to reload account: %v", err)
	}
	return &account
}

// ReloadInstallment reads the purchase's current row.
func ReloadInstallment(t *testing.T, db *DB, id uuid.UUID) *models.InstallmentPurchase {
	t.Helper()

	var purchase models.InstallmentPurchase
	if err := db.First(&purchase, "id = ?", id).Error; err != nil {
		t.Fatalf("failed to reload installment purchase: %v", err)
	}
	return &purchase
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"audit_logs",
		"account_snapshots",
		"credit_card_statements",
		"transactions",
		"installment_purchases",
		"categories",
		"accounts",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
