package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"transaction-tree/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts a panicking handler into a SYSTEM_001 response.
// The panic value and stack are logged, never sent to the client.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				slog.ErrorContext(c.Request().Context(), "panic recovered",
					"trace_id", traceID,
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				)

				apiErrorsTotal.WithLabelValues(
					string(errors.SystemInternalError),
					c.Path(),
					fmt.Sprintf("%d", http.StatusInternalServerError),
				).Inc()

				if c.Response().Committed {
					return
				}

				errorResponse := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				err = c.JSON(http.StatusInternalServerError, errorResponse)
			}()

			return next(c)
		}
	}
}
