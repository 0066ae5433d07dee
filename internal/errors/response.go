package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrorResponse represents the standardized API error response structure
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// WithFieldDetail adds a single "field: message" detail
func WithFieldDetail(field, message string) ErrorOption {
	return WithDetails(field + ": " + message)
}

// NewErrorResponse creates a standardized error response with the given error code and trace ID
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationError creates a VALIDATION_001 response with one sorted detail per field
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}
	sort.Strings(details)

	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// NewInvalidChoiceError reports a transaction type outside the accepted set
func NewInvalidChoiceError(value string, choices []string, traceID string) *ErrorResponse {
	return NewErrorResponse(TransactionInvalidType, traceID,
		WithMessage(fmt.Sprintf("%q is not a valid choice.", value)),
		WithFieldDetail("type", "must be one of "+strings.Join(choices, ", ")),
	)
}

// NewInvalidParentError reports a parent id that names no live transaction
func NewInvalidParentError(parentID, traceID string) *ErrorResponse {
	return NewErrorResponse(TransactionInvalidParent, traceID,
		WithFieldDetail("parent_id", fmt.Sprintf("Invalid pk %q - object does not exist.", parentID)),
	)
}

// NewCyclicParentError reports a re-parenting that would close a cycle
func NewCyclicParentError(parentID, traceID string) *ErrorResponse {
	return NewErrorResponse(TransactionCyclicParent, traceID,
		WithFieldDetail("parent_id", fmt.Sprintf("%q is the transaction itself or one of its descendants", parentID)),
	)
}

// WrapSystemError hides err behind a generic SYSTEM_001 response.
// err is handed back unchanged for server-side logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

// WrapDatabaseError hides a record store failure behind SYSTEM_002
func WrapDatabaseError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemDatabaseError, traceID), err
}

// ToJSON serializes the error response to JSON bytes
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

var httpStatuses = map[ErrorCode]int{
	ValidationGeneral:       http.StatusBadRequest,
	ValidationRequiredField: http.StatusBadRequest,
	ValidationInvalidFormat: http.StatusBadRequest,
	ValidationOutOfRange:    http.StatusBadRequest,

	TransactionInvalidAmount:  http.StatusBadRequest,
	TransactionInvalidType:    http.StatusBadRequest,
	TransactionInvalidParent:  http.StatusBadRequest,
	TransactionCyclicParent:   http.StatusBadRequest,
	TransactionNotFound:       http.StatusNotFound,
	TransactionAlreadyDeleted: http.StatusConflict,

	SystemRateLimitExceeded:  http.StatusTooManyRequests,
	SystemServiceUnavailable: http.StatusServiceUnavailable,
	SystemTimeout:            http.StatusGatewayTimeout,
}

// GetHTTPStatus returns the HTTP status for an error code. Unknown and system codes map to 500.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := httpStatuses[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// GetHTTPStatus returns the HTTP status code for the error response
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

// IsClientError returns true if the error is a 4xx client error
func (er *ErrorResponse) IsClientError() bool {
	status := er.GetHTTPStatus()
	return status >= 400 && status < 500
}

// IsServerError returns true if the error is a 5xx server error
func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= 500
}

func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
