package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// NewHTTPErrorHandler returns the echo error handler for the API. Errors that
// reach it were not mapped by a handler: bare HTTP statuses from routing and
// middleware, validator errors, and anything unexpected, which is reported as
// SYSTEM_001 without leaking its text. Every response is counted in
// api_errors_total by code and route.
func NewHTTPErrorHandler(metrics services.MetricsRecorderInterface) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		var (
			errorResponse *errors.ErrorResponse
			httpStatus    int
		)

		switch e := err.(type) {
		case *echo.HTTPError:
			errorResponse = errors.NewStatusError(e.Code, traceID, errors.WithMessage(fmt.Sprintf("%v", e.Message)))
			httpStatus = e.Code
		case validator.ValidationErrors:
			fieldErrors := make(map[string]string, len(e))
			for _, fieldErr := range e {
				fieldErrors[fieldErr.Field()] = formatValidationError(fieldErr)
			}
			errorResponse = errors.NewValidationError(fieldErrors, traceID)
			httpStatus = http.StatusBadRequest
		default:
			errorResponse, _ = errors.WrapSystemError(err, traceID)
			httpStatus = errorResponse.GetHTTPStatus()
		}

		route := routeOf(c)
		logLevel := slog.LevelWarn
		if httpStatus >= http.StatusInternalServerError {
			logLevel = slog.LevelError
		}
		slog.Log(c.Request().Context(), logLevel, "HTTP error occurred",
			"trace_id", traceID,
			"user_id", callerID(c),
			"error_code", errorResponse.Error.Code,
			"status", httpStatus,
			"route", route,
			"method", c.Request().Method,
			"error", err.Error(),
		)

		metrics.IncrementCounter(services.MetricAPIError, map[string]string{
			"code":     errorResponse.Error.Code,
			"endpoint": route,
			"status":   strconv.Itoa(httpStatus),
		})

		if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
			slog.Error("Failed to send error response",
				"trace_id", traceID,
				"error", sendErr.Error(),
			)
		}
	}
}

// formatValidationError phrases the tags used by the request DTOs
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "money_amount":
		return "must be a positive amount with at most 2 decimal places"
	case "day_of_month":
		return "must be a day of the month between 1 and 31"
	case "account_type":
		return "must be a valid account type (cash, debit, credit)"
	case "transaction_type":
		return "must be a valid transaction type (income, expense, transfer)"
	case "hexcolor":
		return "must be a hex color such as #1a2b3c"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
