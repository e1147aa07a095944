package server

import (
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// bodyLimit caps request payloads; every request body is a small JSON document
const bodyLimit = "1M"

// RouterOptions tunes the router for tests
type RouterOptions struct {
	// Gatherer serves /metrics. Defaults to the global prometheus registry.
	Gatherer prometheus.Gatherer
}

// NewRouter builds the echo instance serving the finance API
func NewRouter(c *Container, opts RouterOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(c.Metrics)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(c.Events, c.Metrics))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.BodyLimit(bodyLimit))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: c.Config.Server.CORSAllowOrigins,
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
	}))

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	health := handlers.NewHealthCheckHandler(c.DB)
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	accounts := handlers.NewAccountHandler(c.Accounts, c.Snapshots)
	transactions := handlers.NewTransactionHandler(c.Ledger, c.Accounts)
	cards := handlers.NewCreditCardHandler(c.Statements, c.Payments)
	installments := handlers.NewInstallmentHandler(c.Installments)
	categories := handlers.NewCategoryHandler(c.Categories)
	audit := handlers.NewAuditHandler(c.Audit)
	admin := handlers.NewAdminHandler(c.Generator, c.Snapshots, c.Tracker, c.Logger)

	api := e.Group("/api/v1",
		middleware.RequireAuth(c.Tokens),
		middleware.RateLimiterWithConfig(c.Config.RateLimit),
	)

	api.POST("/accounts", accounts.CreateAccount)
	api.GET("/accounts", accounts.ListAccounts)
	api.GET("/accounts/net-worth", accounts.GetNetWorth)
	api.POST("/accounts/:accountId/archive", accounts.ArchiveAccount)
	api.GET("/accounts/:accountId/transactions", transactions.ListTransactions)

	api.POST("/transactions", transactions.CreateTransaction)
	api.PUT("/transactions/:id", transactions.UpdateTransaction)
	api.DELETE("/transactions/:id", transactions.DeleteTransaction)
	api.POST("/transactions/:transactionId/revert", cards.RevertPayment)

	api.GET("/credit-cards/:accountId/statement", cards.GetCurrentStatement)
	api.GET("/credit-cards/:accountId/statements", cards.ListStatements)
	api.POST("/credit-cards/:accountId/pay-statement", cards.PayStatement)

	api.POST("/installments", installments.CreateInstallmentPurchase)
	api.DELETE("/installments/:id", installments.DeleteInstallmentPurchase)
	api.POST("/installments/:installmentId/pay", cards.PayInstallment)

	api.GET("/categories", categories.ListCategories)
	api.POST("/categories", categories.CreateCategory)
	api.GET("/categories/suggest", categories.SuggestCategory)

	api.GET("/audit/:entityType/:entityId", audit.GetEntityHistory)

	api.POST("/jobs/:job", admin.RunJob, middleware.RequireAdmin())

	return e
}
