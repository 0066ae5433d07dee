package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"transaction-tree/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// RequestIDTestSuite defines the test suite for request ID middleware
type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

// run executes RequestID with the given request headers and returns the trace ID
// seen by the handler along with the response recorder
func (s *RequestIDTestSuite) run(headers map[string]string) (string, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	var seen string
	handler := RequestID()(func(c echo.Context) error {
		seen = GetTraceID(c)
		s.Equal(seen, services.CorrelationID(c.Request().Context()))
		return c.NoContent(http.StatusOK)
	})

	s.Require().NoError(handler(c))
	return seen, rec
}

func (s *RequestIDTestSuite) TestGeneratesUUID() {
	traceID, rec := s.run(nil)

	s.Regexp(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, traceID)
	s.Equal(traceID, rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestInboundHeaders() {
	testCases := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{"trace header", map[string]string{TraceIDHeader: "trace-1"}, "trace-1"},
		{"request id fallback", map[string]string{echo.HeaderXRequestID: "req-1"}, "req-1"},
		{"trace header wins", map[string]string{TraceIDHeader: "trace-2", echo.HeaderXRequestID: "req-2"}, "trace-2"},
		{"oversized trace header falls back", map[string]string{TraceIDHeader: strings.Repeat("x", 200), echo.HeaderXRequestID: "req-3"}, "req-3"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			traceID, rec := s.run(tc.headers)
			s.Equal(tc.expected, traceID)
			s.Equal(tc.expected, rec.Header().Get(TraceIDHeader))
		})
	}
}

func (s *RequestIDTestSuite) TestOversizedHeadersAreReplaced() {
	traceID, _ := s.run(map[string]string{TraceIDHeader: strings.Repeat("y", 129)})

	s.Len(traceID, 36)
}

func (s *RequestIDTestSuite) TestGetTraceID_ReturnsEmptyWhenNotSet() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	s.Empty(GetTraceID(c))
}
