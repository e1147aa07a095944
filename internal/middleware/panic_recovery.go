package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a handler panic into a SYSTEM_001 response. The panic is
// logged as a request_panic event and counted per route. A panic raised inside
// a unit of work has already rolled its database transaction back by the time
// it reaches here, so no balance change survives it.
func PanicRecovery(events services.EventLoggerInterface, metrics services.MetricsRecorderInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}
				route := routeOf(c)
				req := c.Request()

				events.LogRequestPanic(req.Context(), req.Method, route, callerID(c), fmt.Sprintf("%v", r), string(debug.Stack()))
				metrics.IncrementCounter(services.MetricAPIPanic, map[string]string{
					"endpoint": route,
					"method":   req.Method,
				})

				if c.Response().Committed {
					return
				}
				if sendErr := c.JSON(http.StatusInternalServerError, errors.NewErrorResponse(errors.SystemInternalError, traceID)); sendErr != nil {
					slog.Error("Failed to send panic recovery response",
						"trace_id", traceID,
						"error", sendErr.Error(),
					)
				}
			}()

			return next(c)
		}
	}
}

// routeOf prefers the registered route pattern so metrics do not explode on ids
func routeOf(c echo.Context) string {
	if path := c.Path(); path != "" {
		return path
	}
	return c.Request().URL.Path
}

func callerID(c echo.Context) string {
	if id, ok := c.Get("user_id").(uuid.UUID); ok {
		return id.String()
	}
	return ""
}
