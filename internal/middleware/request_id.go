package middleware

import (
	"transaction-tree/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader is the header name for the trace ID
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is the echo context key for storing the trace ID
	TraceIDContextKey = "trace_id"

	maxInboundTraceIDLength = 128
)

// RequestID tags every request with a trace ID. An inbound X-Trace-ID, or failing
// that X-Request-ID, is reused when it is short enough; otherwise a uuid is minted.
// The ID is echoed in the response header and stored in both the echo context and
// the request context so that service logs carry it as correlation_id.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := inboundTraceID(req.Header.Get(TraceIDHeader), req.Header.Get(echo.HeaderXRequestID))

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			c.SetRequest(req.WithContext(services.WithCorrelationID(req.Context(), traceID)))

			return next(c)
		}
	}
}

func inboundTraceID(candidates ...string) string {
	for _, candidate := range candidates {
		if candidate != "" && len(candidate) <= maxInboundTraceIDLength {
			return candidate
		}
	}
	return uuid.NewString()
}

// GetTraceID extracts the trace ID from the Echo context
// Returns empty string if not found
func GetTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
