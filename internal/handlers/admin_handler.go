package handlers

import (
	"log/slog"
	"net/http"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// AdminHandler triggers the nightly batch jobs on demand
type AdminHandler struct {
	statements   services.StatementGeneratorInterface
	snapshots    services.SnapshotServiceInterface
	installments services.InstallmentTrackerInterface
	logger       *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	statements services.StatementGeneratorInterface,
	snapshots services.SnapshotServiceInterface,
	installments services.InstallmentTrackerInterface,
	logger *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		statements:   statements,
		snapshots:    snapshots,
		installments: installments,
		logger:       logger,
	}
}

// RunJob runs one batch job for every user and returns its summary
// @Summary Run a batch job (admin)
// @Description Runs the statements, snapshots or installments job as of the given date
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param job path string true "statements, snapshots or installments"
// @Param date query string false "Run date (YYYY-MM-DD or RFC 3339), defaults to now"
// @Success 200 {object} SuccessResponse "Job summary"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Unknown job"
// @Failure 403 {object} errors.ErrorResponse "AUTH_004 - Requires admin role"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /jobs/{job} [post]
func (h *AdminHandler) RunJob(c echo.Context) error {
	adminID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	if !getIsAdminFromContext(c) {
		return SendError(c, errors.AuthInsufficientPermission)
	}

	runDate, err := getTimeParam(c, "date")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("date must be YYYY-MM-DD or RFC 3339"))
	}

	job := c.Param("job")
	ctx := c.Request().Context()

	var result interface{}
	switch job {
	case services.JobStatements:
		result, err = h.statements.GenerateCreditCardStatements(ctx, runDate)
	case services.JobSnapshots:
		result, err = h.snapshots.CreateDailyAccountSnapshots(ctx, runDate)
	case services.JobInstallments:
		result, err = h.installments.ProcessAllUsers(ctx, runDate)
	default:
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("unknown job "+job))
	}
	if err != nil {
		return SendSystemError(c, err)
	}

	h.logger.Info("job triggered manually",
		"job", job,
		"admin_id", adminID,
		"run_date", runDate,
		"ip_address", getClientIP(c),
	)

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Job " + job + " completed",
		Data:    result,
	})
}
