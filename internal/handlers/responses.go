package handlers

import (
	"log/slog"
	"net/http"

	"transaction-tree/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers answer errors through the helpers below:
//
// 1. SendError for client and business rule errors (4xx), e.g.
//    SendError(c, errors.TransactionInvalidParent, errors.WithDetails("..."))
//
// 2. SendSystemError and SendDatabaseError for failures that must not leak
//    internal details to the client (5xx). The original error is logged with
//    the trace id.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	return sendResponse(c, errors.NewErrorResponse(code, traceID, opts...))
}

// sendResponse writes a prebuilt error response with its mapped status
func sendResponse(c echo.Context, errorResponse *errors.ErrorResponse) error {
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, original := errors.WrapSystemError(err, traceID)
	logSystemError(c, errorResponse, original)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendDatabaseError reports a record store failure as SYSTEM_002
func SendDatabaseError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, original := errors.WrapDatabaseError(err, traceID)
	logSystemError(c, errorResponse, original)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

func logSystemError(c echo.Context, errorResponse *errors.ErrorResponse, err error) {
	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", errorResponse.Error.TraceID,
		"error_code", errorResponse.Error.Code,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)
}
