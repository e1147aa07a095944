package server

import (
	"log/slog"
	"time"

	"finance-tracker/internal/billing"
	"finance-tracker/internal/config"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"

	"gorm.io/gorm"
)

// Container holds the wired services shared by the HTTP server and the CLI
// commands. Every service runs its work through the same unit of work.
type Container struct {
	Config *config.Config
	DB     *gorm.DB
	Logger *slog.Logger

	Calculator *billing.Calculator
	Events     services.EventLoggerInterface
	Metrics    services.MetricsRecorderInterface

	Accounts     services.AccountServiceInterface
	Ledger       services.LedgerServiceInterface
	Statements   services.StatementServiceInterface
	Generator    services.StatementGeneratorInterface
	Payments     services.PaymentServiceInterface
	Installments services.InstallmentServiceInterface
	Tracker      services.InstallmentTrackerInterface
	Snapshots    services.SnapshotServiceInterface
	Categories   services.CategoryServiceInterface
	Audit        services.AuditServiceInterface
	Tokens       services.TokenServiceInterface
}

// NewContainer wires every service against db. metrics may be nil, in which
// case counters go to the default prometheus registry.
func NewContainer(cfg *config.Config, db *gorm.DB, logger *slog.Logger, metrics services.MetricsRecorderInterface) *Container {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = services.NewPrometheusMetrics()
	}

	loc := cfg.Billing.Location
	if loc == nil {
		loc = time.UTC
	}

	uow := repositories.NewUnitOfWork(db)
	calculator := billing.NewCalculator(loc)
	events := services.NewEventLogger(logger)

	c := &Container{
		Config:     cfg,
		DB:         db,
		Logger:     logger,
		Calculator: calculator,
		Events:     events,
		Metrics:    metrics,
	}

	c.Accounts = services.NewAccountService(uow, logger)
	c.Ledger = services.NewLedgerService(uow, events, metrics, logger)
	c.Statements = services.NewStatementService(uow, calculator)
	c.Generator = services.NewStatementGenerator(uow, calculator, events, metrics, logger)
	c.Payments = services.NewPaymentService(uow, calculator, events, metrics, logger)
	c.Installments = services.NewInstallmentService(uow, events, metrics, logger)
	c.Tracker = services.NewInstallmentTracker(uow, calculator, events, metrics, logger)
	c.Snapshots = services.NewSnapshotService(uow, calculator, events, metrics, logger)
	c.Categories = services.NewCategoryService(uow)
	c.Audit = services.NewAuditService(uow)
	c.Tokens = services.NewTokenService(&cfg.JWT)

	return c
}

// Scheduler builds the daily job scheduler from the jobs settings
func (c *Container) Scheduler() *services.JobScheduler {
	scheduler := services.NewJobScheduler(c.Generator, c.Snapshots, c.Tracker, c.Calculator.Location(), c.Logger)
	scheduler.RunHour = c.Config.Jobs.RunHour
	if c.Config.Jobs.CheckInterval > 0 {
		scheduler.CheckInterval = c.Config.Jobs.CheckInterval
	}
	return scheduler
}

// Seeder builds the demo data generator
func (c *Container) Seeder() *services.DemoSeeder {
	return services.NewDemoSeeder(c.Accounts, c.Categories, c.Ledger, c.Installments, c.Tracker, c.Logger)
}
