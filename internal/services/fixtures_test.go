package services

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"finance-tracker/internal/billing"
	"finance-tracker/internal/database"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// ledgerFixture wires the services against a fresh sqlite database.
type ledgerFixture struct {
	db         *database.DB
	uow        repositories.UnitOfWork
	calculator *billing.Calculator
	events     EventLoggerInterface
	metrics    MetricsRecorderInterface
	logger     *slog.Logger
	userID     uuid.UUID
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	db := database.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &ledgerFixture{
		db:         db,
		uow:        repositories.NewUnitOfWork(db.DB),
		calculator: billing.NewCalculator(time.UTC),
		events:     NewEventLogger(logger),
		metrics:    NewPrometheusMetricsWithRegistry(prometheus.NewRegistry()),
		logger:     logger,
		userID:     uuid.New(),
	}
}

func (f *ledgerFixture) ledger() LedgerServiceInterface {
	return NewLedgerService(f.uow, f.events, f.metrics, f.logger)
}

func (f *ledgerFixture) payments(now time.Time) PaymentServiceInterface {
	svc := NewPaymentService(f.uow, f.calculator, f.events, f.metrics, f.logger).(*paymentService)
	svc.now = func() time.Time { return now }
	return svc
}

func (f *ledgerFixture) installments() InstallmentServiceInterface {
	return NewInstallmentService(f.uow, f.events, f.metrics, f.logger)
}

func (f *ledgerFixture) generator() StatementGeneratorInterface {
	return NewStatementGenerator(f.uow, f.calculator, f.events, f.metrics, f.logger)
}

func (f *ledgerFixture) tracker() InstallmentTrackerInterface {
	return NewInstallmentTracker(f.uow, f.calculator, f.events, f.metrics, f.logger)
}

func (f *ledgerFixture) statements() StatementServiceInterface {
	return NewStatementService(f.uow, f.calculator)
}

func (f *ledgerFixture) snapshots() SnapshotServiceInterface {
	return NewSnapshotService(f.uow, f.calculator, f.events, f.metrics, f.logger)
}

func (f *ledgerFixture) account(t *testing.T, accountType, balance string) *models.Account {
	t.Helper()
	return database.CreateTestAccount(t, f.db, f.userID, accountType, balance)
}

func (f *ledgerFixture) balance(t *testing.T, id uuid.UUID) string {
	t.Helper()
	return database.ReloadAccount(t, f.db, id).Balance.StringFixed(2)
}

func (f *ledgerFixture) countTransactions(t *testing.T) int64 {
	t.Helper()

	var count int64
	if err := f.db.Model(&models.Transaction{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count transactions: %v", err)
	}
	return count
}

func (f *ledgerFixture) auditEntries(t *testing.T, action string) []models.AuditLog {
	t.Helper()

	var entries []models.AuditLog
	if err := f.db.Where("action = ?", action).Find(&entries).Error; err != nil {
		t.Fatalf("failed to read audit logs: %v", err)
	}
	return entries
}

func at(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func atPtr(y int, m time.Month, d int) *time.Time {
	t := at(y, m, d)
	return &t
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
