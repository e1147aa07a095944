package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finance-tracker/internal/billing"
	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	JobStatements   = "statements"
	JobSnapshots    = "snapshots"
	JobInstallments = "installments"
)

// errStatementSkipped marks an account whose statement for the cycle exists
var errStatementSkipped = errors.New("statement already generated")

type statementGenerator struct {
	uow        repositories.UnitOfWork
	calculator *billing.Calculator
	events     EventLoggerInterface
	metrics    MetricsRecorderInterface
	logger     *slog.Logger
}

// NewStatementGenerator creates the nightly statement job
func NewStatementGenerator(
	uow repositories.UnitOfWork,
	calculator *billing.Calculator,
	events EventLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) StatementGeneratorInterface {
	return &statementGenerator{
		uow:        uow,
		calculator: calculator,
		events:     events,
		metrics:    metrics,
		logger:     logger,
	}
}

// GenerateCreditCardStatements freezes a statement for every credit card whose
// cutoff day is today. Each card is handled in its own unit of work; a
// failure is logged and counted without stopping the run.
func (g *statementGenerator) GenerateCreditCardStatements(ctx context.Context, today time.Time) (*dto.StatementRunResult, error) {
	start := time.Now()
	g.events.LogJobStarted(ctx, JobStatements)

	today = today.In(g.calculator.Location())
	result := &dto.StatementRunResult{Statements: []uuid.UUID{}}

	var accounts []models.Account
	if err := g.uow.WithinTransaction(ctx, func(repos repositories.Repositories) error {
		var err error
		accounts, err = repos.Accounts().ListActiveCredit()
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list credit accounts: %w", err)
	}

	for i := range accounts {
		account := &accounts[i]
		if !billing.IsCutoffDay(today, account.CutoffDay) {
			continue
		}

		statement, err := g.generateForAccount(ctx, account, today)
		switch {
		case errors.Is(err, errStatementSkipped):
			result.Skipped++
			g.metrics.IncrementCounter(MetricStatementSkipped, nil)
		case err != nil:
			result.Failed++
			g.metrics.IncrementCounter(MetricStatementFailed, nil)
			g.logger.Error("failed to generate statement",
				"account_id", account.ID,
				"user_id", account.UserID,
				"error", err,
			)
			g.events.LogJobItemFailed(ctx, JobStatements, account.ID, err.Error())
		default:
			result.Processed++
			result.Statements = append(result.Statements, statement.ID)
			g.metrics.IncrementCounter(MetricStatementGenerated, nil)
			g.events.LogStatementGenerated(ctx, account.ID, statement.ID, statement.TotalDue.StringFixed(2))
		}
	}

	overdue, err := g.MarkOverdueStatements(ctx, today)
	if err != nil {
		g.logger.Error("failed to mark overdue statements", "error", err)
	}
	result.Overdue = overdue

	elapsed := time.Since(start)
	g.metrics.RecordProcessingTime(JobMetricPrefix+JobStatements, elapsed)
	g.metrics.RecordGauge(MetricJobLastRunTimestamp, float64(time.Now().Unix()), map[string]string{"job": JobStatements})
	g.events.LogJobCompleted(ctx, JobStatements, elapsed.Milliseconds(), map[string]int{
		"processed": result.Processed,
		"skipped":   result.Skipped,
		"failed":    result.Failed,
		"overdue":   result.Overdue,
	})

	return result, nil
}

func (g *statementGenerator) generateForAccount(ctx context.Context, account *models.Account, today time.Time) (*models.CreditCardStatement, error) {
	cycleEnd := billing.StartOfDay(today)
	cycleStart := billing.AddMonths(cycleEnd, -1).AddDate(0, 0, 1)

	var statement *models.CreditCardStatement
	err := g.uow.WithinTransaction(ctx, func(repos repositories.Repositories) error {
		_, err := repos.Statements().GetByAccountAndCycleEnd(account.ID, cycleEnd)
		switch {
		case err == nil:
			return errStatementSkipped
		case !errors.Is(err, repositories.ErrStatementNotFound):
			return err
		}

		charges, err := repos.Transactions().GetUnbilledExpenses(account.ID, cycleStart, billing.EndOfDay(cycleEnd))
		if err != nil {
			return err
		}
		regular := decimal.Zero
		chargeIDs := make([]uuid.UUID, 0, len(charges))
		for _, t := range charges {
			regular = regular.Add(t.Amount)
			chargeIDs = append(chargeIDs, t.ID)
		}

		purchases, err := repos.Installments().GetActiveByAccount(account.ID)
		if err != nil {
			return err
		}
		msi := decimal.Zero
		for _, p := range purchases {
			msi = msi.Add(p.MonthlyPayment)
		}

		statement = &models.CreditCardStatement{
			AccountID:      account.ID,
			UserID:         account.UserID,
			CycleStart:     cycleStart,
			CycleEnd:       cycleEnd,
			PaymentDueDate: billing.StatementDueDate(cycleEnd, today, account.PaymentDay),
			Status:         models.StatementStatusPending,
		}
		statement.SetAmounts(regular, msi)

		if err := repos.Statements().Create(statement); err != nil {
			if errors.Is(err, repositories.ErrStatementExists) {
				return errStatementSkipped
			}
			return err
		}

		if err := repos.Transactions().AssignStatement(statement.ID, chargeIDs); err != nil {
			return err
		}

		entry := models.NewAuditLog(account.UserID, models.AuditActionStatementGenerated, models.AuditEntityStatement, statement.ID)
		entry.SetNewValue("account_id", account.ID.String())
		entry.SetNewValue("cycle_start", cycleStart.Format(time.RFC3339))
		entry.SetNewValue("cycle_end", cycleEnd.Format(time.RFC3339))
		entry.SetNewValue("payment_due_date", statement.PaymentDueDate.Format(time.RFC3339))
		entry.SetNewValue("regular_amount", statement.RegularAmount.StringFixed(2))
		entry.SetNewValue("msi_amount", statement.MsiAmount.StringFixed(2))
		entry.SetNewValue("total_due", statement.TotalDue.StringFixed(2))
		entry.SetNewValue("minimum_payment", statement.MinimumPayment.StringFixed(2))
		entry.SetNewValue("transactions", len(chargeIDs))
		return repos.AuditLogs().Create(entry)
	})
	if err != nil {
		return nil, err
	}
	return statement, nil
}

// MarkOverdueStatements flips unpaid statements to OVERDUE once their whole
// due day has passed.
func (g *statementGenerator) MarkOverdueStatements(ctx context.Context, now time.Time) (int, error) {
	now = billing.StartOfDay(now.In(g.calculator.Location()))

	marked := 0
	err := g.uow.WithinTransaction(ctx, func(repos repositories.Repositories) error {
		statements, err := repos.Statements().ListPastDue(now)
		if err != nil {
			return err
		}

		for i := range statements {
			statement := &statements[i]
			oldStatus := statement.Status
			if !statement.MarkOverdue(now) {
				continue
			}
			if err := repos.Statements().UpdatePayment(statement); err != nil {
				return err
			}

			entry := models.NewAuditLog(statement.UserID, models.AuditActionStatementMarkOverdue, models.AuditEntityStatement, statement.ID)
			entry.SetOldValue("status", oldStatus)
			entry.SetNewValue("status", statement.Status)
			entry.SetNewValue("outstanding", statement.Outstanding().StringFixed(2))
			if err := repos.AuditLogs().Create(entry); err != nil {
				return err
			}
			marked++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	for i := 0; i < marked; i++ {
		g.metrics.IncrementCounter(MetricStatementOverdue, nil)
	}
	return marked, nil
}
