package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finance-tracker/internal/billing"
	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
)

type installmentTracker struct {
	uow        repositories.UnitOfWork
	calculator *billing.Calculator
	events     EventLoggerInterface
	metrics    MetricsRecorderInterface
	logger     *slog.Logger
}

// NewInstallmentTracker creates the MSI progress reconciler
func NewInstallmentTracker(
	uow repositories.UnitOfWork,
	calculator *billing.Calculator,
	events EventLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) InstallmentTrackerInterface {
	return &installmentTracker{
		uow:        uow,
		calculator: calculator,
		events:     events,
		metrics:    metrics,
		logger:     logger,
	}
}

// ProcessInstallmentPurchases brings every active MSI purchase of the user up
// to the number of monthly charges elapsed by today. Only the missing charges
// are recorded, so running it again creates nothing. Paid progress is left to
// the payments linked to the purchase.
func (t *installmentTracker) ProcessInstallmentPurchases(ctx context.Context, userID uuid.UUID, today time.Time) (*dto.InstallmentRunResult, error) {
	today = today.In(t.calculator.Location())
	result := &dto.InstallmentRunResult{UsersProcessed: 1}

	err := t.uow.WithinTransaction(ctx, func(repos repositories.Repositories) error {
		purchases, err := repos.Installments().GetActiveByUser(userID)
		if err != nil {
			return err
		}

		unit := newLedgerUnit(repos, userID)
		for i := range purchases {
			created, updated, err := t.reconcile(repos, unit, &purchases[i], today)
			if err != nil {
				return fmt.Errorf("installment purchase %s: %w", purchases[i].ID, err)
			}
			result.ChargesCreated += created
			if updated {
				result.PurchasesUpdated++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for i := 0; i < result.ChargesCreated; i++ {
		t.metrics.IncrementCounter(MetricInstallmentCharge, nil)
	}
	return result, nil
}

func (t *installmentTracker) reconcile(repos repositories.Repositories, unit *ledgerUnit, p *models.InstallmentPurchase, today time.Time) (int, bool, error) {
	expected := billing.ElapsedInstallments(p.PurchaseDate, today, p.Installments)

	linked, err := repos.Transactions().GetByInstallment(p.ID)
	if err != nil {
		return 0, false, err
	}
	recorded := 0
	for _, txn := range linked {
		if txn.IsInstallmentCharge {
			recorded++
		}
	}

	created := 0
	for n := recorded + 1; n <= expected; n++ {
		chargeDate := billing.InstallmentChargeDate(p.PurchaseDate.In(today.Location()), n)
		if chargeDate.After(today) {
			break
		}

		purchaseID := p.ID
		charge := &models.Transaction{
			UserID:                p.UserID,
			Amount:                billing.InstallmentChargeAmount(*p, n),
			Description:           fmt.Sprintf("%s (%d/%d)", p.Description, n, p.Installments),
			Date:                  chargeDate,
			TransactionType:       models.TransactionTypeExpense,
			AccountID:             p.AccountID,
			CategoryID:            p.CategoryID,
			InstallmentPurchaseID: &purchaseID,
			IsInstallmentCharge:   true,
		}
		if err := unit.post(charge); err != nil {
			return created, false, err
		}
		created++
	}

	if !p.RecordCharges(recorded + created) {
		return created, false, nil
	}
	if err := repos.Installments().UpdateProgress(p); err != nil {
		return created, false, err
	}
	return created, true, nil
}

// ProcessAllUsers reconciles every user with an active MSI purchase. A user
// that fails is logged and counted; the rest are still processed.
func (t *installmentTracker) ProcessAllUsers(ctx context.Context, today time.Time) (*dto.InstallmentRunResult, error) {
	start := time.Now()
	t.events.LogJobStarted(ctx, JobInstallments)

	var userIDs []uuid.UUID
	if err := t.uow.WithinTransaction(ctx, func(repos repositories.Repositories) error {
		var err error
		userIDs, err = repos.Installments().ListUserIDsWithActive()
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list users with installments: %w", err)
	}

	total := &dto.InstallmentRunResult{}
	for _, userID := range userIDs {
		result, err := t.ProcessInstallmentPurchases(ctx, userID, today)
		if err != nil {
			total.Failed++
			t.logger.Error("failed to process installment purchases",
				"user_id", userID,
				"error", err,
			)
			t.events.LogJobItemFailed(ctx, JobInstallments, userID, err.Error())
			continue
		}
		total.UsersProcessed += result.UsersProcessed
		total.PurchasesUpdated += result.PurchasesUpdated
		total.ChargesCreated += result.ChargesCreated
	}

	elapsed := time.Since(start)
	t.metrics.RecordProcessingTime(JobMetricPrefix+JobInstallments, elapsed)
	t.metrics.RecordGauge(MetricJobLastRunTimestamp, float64(time.Now().Unix()), map[string]string{"job": JobInstallments})
	t.events.LogJobCompleted(ctx, JobInstallments, elapsed.Milliseconds(), map[string]int{
		"users":   total.UsersProcessed,
		"updated": total.PurchasesUpdated,
		"charges": total.ChargesCreated,
		"failed":  total.Failed,
	})

	return total, nil
}
