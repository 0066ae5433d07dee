package middleware

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"
	"strconv"

	"transaction-tree/internal/errors"
	"transaction-tree/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "Total number of API errors by code, endpoint, and status",
	},
	[]string{"code", "endpoint", "status"},
)

// CustomHTTPErrorHandler renders errors that escaped the handlers as standard error
// responses. Router errors, validator errors and deadlines keep their own codes;
// anything else becomes SYSTEM_001.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	errorResponse, status := buildErrorResponse(err, traceID)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.Log(c.Request().Context(), level, "HTTP error occurred",
		"trace_id", traceID,
		"error_code", errorResponse.Error.Code,
		"status", status,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(errorResponse.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

	if sendErr := c.JSON(status, errorResponse); sendErr != nil {
		slog.Error("Failed to send error response", "trace_id", traceID, "error", sendErr.Error())
	}
}

func buildErrorResponse(err error, traceID string) (*errors.ErrorResponse, int) {
	var echoErr *echo.HTTPError
	if stderrors.As(err, &echoErr) {
		message, ok := echoErr.Message.(string)
		if !ok {
			message = http.StatusText(echoErr.Code)
		}
		return errors.NewErrorResponse(mapHTTPStatusToErrorCode(echoErr.Code), traceID,
			errors.WithMessage(message)), echoErr.Code
	}

	if fieldErrors, ok := validation.FieldErrors(err); ok {
		return errors.NewValidationError(fieldErrors, traceID), http.StatusBadRequest
	}

	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.NewErrorResponse(errors.SystemTimeout, traceID), http.StatusGatewayTimeout
	}

	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return errorResponse, http.StatusInternalServerError
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed,
		http.StatusUnsupportedMediaType, http.StatusUnprocessableEntity:
		return errors.ValidationGeneral
	case http.StatusNotFound:
		return errors.TransactionNotFound
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	case http.StatusGatewayTimeout:
		return errors.SystemTimeout
	default:
		return errors.SystemUnexpectedError
	}
}
