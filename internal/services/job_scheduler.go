package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"finance-tracker/internal/billing"
)

// JobScheduler runs the daily batch jobs in-process. Every CheckInterval it
// runs each job that has not yet run today once the local hour reaches
// RunHour.
type JobScheduler struct {
	statements   StatementGeneratorInterface
	snapshots    SnapshotServiceInterface
	installments InstallmentTrackerInterface
	logger       *slog.Logger

	Location      *time.Location
	RunHour       int
	CheckInterval time.Duration

	now     func() time.Time
	mu      sync.Mutex
	lastRun map[string]time.Time
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewJobScheduler creates a scheduler for the statement, snapshot and
// installment jobs.
func NewJobScheduler(
	statements StatementGeneratorInterface,
	snapshots SnapshotServiceInterface,
	installments InstallmentTrackerInterface,
	loc *time.Location,
	logger *slog.Logger,
) *JobScheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &JobScheduler{
		statements:    statements,
		snapshots:     snapshots,
		installments:  installments,
		logger:        logger,
		Location:      loc,
		RunHour:       0,
		CheckInterval: time.Hour,
		now:           time.Now,
		lastRun:       make(map[string]time.Time),
	}
}

// Start launches the scheduler loop. It stops when ctx is canceled or Stop is
// called.
func (js *JobScheduler) Start(ctx context.Context) {
	js.mu.Lock()
	defer js.mu.Unlock()

	if js.cancel != nil {
		return
	}

	ctx, js.cancel = context.WithCancel(ctx)
	js.wg.Add(1)
	go js.run(ctx)

	js.logger.Info("job scheduler started",
		"check_interval", js.CheckInterval.String(),
		"run_hour", js.RunHour,
		"timezone", js.Location.String(),
	)
}

// Stop cancels the loop and waits for a running job to return
func (js *JobScheduler) Stop() {
	js.mu.Lock()
	cancel := js.cancel
	js.cancel = nil
	js.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	js.wg.Wait()
	js.logger.Info("job scheduler stopped")
}

func (js *JobScheduler) run(ctx context.Context) {
	defer js.wg.Done()

	ticker := time.NewTicker(js.CheckInterval)
	defer ticker.Stop()

	js.RunDue(ctx)
	for {
		select {
		case <-ticker.C:
			js.RunDue(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// RunDue runs every job that is due and returns the names of those it ran
func (js *JobScheduler) RunDue(ctx context.Context) []string {
	now := js.now().In(js.Location)
	if now.Hour() < js.RunHour {
		return nil
	}
	today := billing.StartOfDay(now)

	var ran []string
	for _, job := range []string{JobInstallments, JobStatements, JobSnapshots} {
		if ctx.Err() != nil {
			return ran
		}
		if !js.claim(job, today) {
			continue
		}
		if err := js.RunJob(ctx, job, now); err != nil {
			js.logger.Error("scheduled job failed", "job", job, "error", err)
			js.release(job, today)
			continue
		}
		ran = append(ran, job)
	}
	return ran
}

// RunJob runs one job by name for the given day
func (js *JobScheduler) RunJob(ctx context.Context, job string, now time.Time) error {
	switch job {
	case JobStatements:
		_, err := js.statements.GenerateCreditCardStatements(ctx, now)
		return err
	case JobSnapshots:
		_, err := js.snapshots.CreateDailyAccountSnapshots(ctx, now)
		return err
	case JobInstallments:
		_, err := js.installments.ProcessAllUsers(ctx, now)
		return err
	default:
		return fmt.Errorf("unknown job %q", job)
	}
}

func (js *JobScheduler) claim(job string, today time.Time) bool {
	js.mu.Lock()
	defer js.mu.Unlock()

	if last, ok := js.lastRun[job]; ok && !last.Before(today) {
		return false
	}
	js.lastRun[job] = today
	return true
}

func (js *JobScheduler) release(job string, today time.Time) {
	js.mu.Lock()
	defer js.mu.Unlock()

	if last, ok := js.lastRun[job]; ok && last.Equal(today) {
		delete(js.lastRun, job)
	}
}
