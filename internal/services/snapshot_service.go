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

type snapshotService struct {
	uow        repositories.UnitOfWork
	calculator *billing.Calculator
	events     EventLoggerInterface
	metrics    MetricsRecorderInterface
	logger     *slog.Logger
}

// NewSnapshotService creates the daily balance history service
func NewSnapshotService(
	uow repositories.UnitOfWork,
	calculator *billing.Calculator,
	events EventLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) SnapshotServiceInterface {
	return &snapshotService{
		uow:        uow,
		calculator: calculator,
		events:     events,
		metrics:    metrics,
		logger:     logger,
	}
}

// CreateDailyAccountSnapshots records today's balance of every active
// account. Accounts that already have one for the day are skipped.
func (s *snapshotService) CreateDailyAccountSnapshots(ctx context.Context, today time.Time) (*dto.SnapshotRunResult, error) {
	start := time.Now()
	s.events.LogJobStarted(ctx, JobSnapshots)

	day := billing.StartOfDay(today.In(s.calculator.Location()))
	result := &dto.SnapshotRunResult{}

	var accounts []models.Account
	if err := s.uow.WithinTransaction(ctx, func(repos repositories.Repositories) error {
		var err error
		accounts, err = repos.Accounts().ListActive()
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	for i := range accounts {
		account := &accounts[i]
		created := false
		err := s.uow.WithinTransaction(ctx, func(repos repositories.Repositories) error {
			exists, err := repos.Snapshots().Exists(account.ID, day)
			if err != nil || exists {
				return err
			}
			if err := repos.Snapshots().Create(models.NewAccountSnapshot(account, day)); err != nil {
				if errors.Is(err, repositories.ErrSnapshotExists) {
					return nil
				}
				return err
			}
			created = true
			return nil
		})

		switch {
		case err != nil:
			result.Errors++
			s.metrics.IncrementCounter(MetricSnapshotFailed, nil)
			s.logger.Error("failed to create account snapshot",
				"account_id", account.ID,
				"error", err,
			)
			s.events.LogJobItemFailed(ctx, JobSnapshots, account.ID, err.Error())
		case created:
			result.Created++
			s.metrics.IncrementCounter(MetricSnapshotCreated, nil)
		default:
			result.Skipped++
		}
	}

	elapsed := time.Since(start)
	s.metrics.RecordProcessingTime(JobMetricPrefix+JobSnapshots, elapsed)
	s.metrics.RecordGauge(MetricJobLastRunTimestamp, float64(time.Now().Unix()), map[string]string{"job": JobSnapshots})
	s.events.LogJobCompleted(ctx, JobSnapshots, elapsed.Milliseconds(), map[string]int{
		"created": result.Created,
		"skipped": result.Skipped,
		"errors":  result.Errors,
	})

	return result, nil
}

// NetWorthAt sums the latest snapshot of each account on or before date,
// counting credit balances as debt.
func (s *snapshotService) NetWorthAt(ctx context.Context, userID uuid.UUID, date time.Time) (*dto.NetWorthResponse, error) {
	response := &dto.NetWorthResponse{
		Date:     billing.StartOfDay(date.In(s.calculator.Location())),
		NetWorth: decimal.Zero,
	}

	err := s.uow.WithinTransaction(ctx, func(repos repositories.Repositories) error {
		snapshots, err := repos.Snapshots().GetLatestOnOrBefore(userID, billing.EndOfDay(response.Date))
		if err != nil {
			return err
		}
		response.Snapshots = snapshots
		return nil
	})
	if err != nil {
		return nil, err
	}

	for i := range response.Snapshots {
		response.NetWorth = response.NetWorth.Add(response.Snapshots[i].NetWorthContribution())
	}
	return response, nil
}
