package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	echo    *echo.Echo
	events  *service_mocks.MockEventLoggerInterface
	metrics *service_mocks.MockMetricsRecorderInterface
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.events = service_mocks.NewMockEventLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
}

func (s *PanicRecoveryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) payStatementContext(rec *httptest.ResponseRecorder) echo.Context {
	accountID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/credit-cards/"+accountID.String()+"/pay-statement", nil)
	c := s.echo.NewContext(req, rec)
	c.SetPath("/api/v1/credit-cards/:accountId/pay-statement")
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())
	return c
}

func (s *PanicRecoveryTestSuite) decode(rec *httptest.ResponseRecorder) errors.ErrorResponse {
	var response errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_ReportsRouteAndCaller() {
	rec := httptest.NewRecorder()
	c := s.payStatementContext(rec)
	c.Set(TraceIDContextKey, "trace-pay-1")
	userID := uuid.New()
	c.Set("user_id", userID)

	s.events.EXPECT().
		LogRequestPanic(gomock.Any(), http.MethodPost, "/api/v1/credit-cards/:accountId/pay-statement", userID.String(), "statement lookup failed", gomock.Any())
	s.metrics.EXPECT().IncrementCounter(services.MetricAPIPanic, map[string]string{
		"endpoint": "/api/v1/credit-cards/:accountId/pay-statement",
		"method":   http.MethodPost,
	})

	handler := PanicRecovery(s.events, s.metrics)(func(c echo.Context) error {
		panic("statement lookup failed")
	})

	s.NotPanics(func() {
		_ = handler(c)
	})

	s.Equal(http.StatusInternalServerError, rec.Code)
	response := s.decode(rec)
	s.Equal(string(errors.SystemInternalError), response.Error.Code)
	s.Equal("trace-pay-1", response.Error.TraceID)
	s.NotContains(rec.Body.String(), "statement lookup failed")
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_NoTraceIDOrCaller() {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/net-worth", nil)
	c := s.echo.NewContext(req, rec)

	s.events.EXPECT().LogRequestPanic(gomock.Any(), http.MethodGet, "/api/v1/accounts/net-worth", "", gomock.Any(), gomock.Any())
	s.metrics.EXPECT().IncrementCounter(services.MetricAPIPanic, gomock.Any())

	handler := PanicRecovery(s.events, s.metrics)(func(c echo.Context) error {
		panic("snapshot missing")
	})
	s.NotPanics(func() {
		_ = handler(c)
	})

	response := s.decode(rec)
	s.Equal(string(errors.SystemInternalError), response.Error.Code)
	s.Equal("unknown", response.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_NormalFlow() {
	rec := httptest.NewRecorder()
	c := s.payStatementContext(rec)

	handler := PanicRecovery(s.events, s.metrics)(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"amount": "1500.00"})
	})

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_AfterResponseStarted() {
	rec := httptest.NewRecorder()
	c := s.payStatementContext(rec)

	s.events.EXPECT().LogRequestPanic(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
	s.metrics.EXPECT().IncrementCounter(services.MetricAPIPanic, gomock.Any())

	handler := PanicRecovery(s.events, s.metrics)(func(c echo.Context) error {
		_ = c.JSON(http.StatusOK, map[string]string{"amount": "1500.00"})
		panic("late failure")
	})
	s.NotPanics(func() {
		_ = handler(c)
	})

	s.Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), "SYSTEM_001")
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_DifferentPanicTypes() {
	testCases := []struct {
		name      string
		panicWith interface{}
	}{
		{"String panic", "string panic"},
		{"Int panic", 42},
		{"Error panic", errors.NewErrorResponse(errors.AccountNotFound, "t").String()},
		{"Nil panic", nil},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec := httptest.NewRecorder()
			c := s.payStatementContext(rec)

			s.events.EXPECT().LogRequestPanic(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			s.metrics.EXPECT().IncrementCounter(services.MetricAPIPanic, gomock.Any())

			handler := PanicRecovery(s.events, s.metrics)(func(c echo.Context) error {
				panic(tc.panicWith)
			})
			s.NotPanics(func() {
				_ = handler(c)
			})

			s.Equal(http.StatusInternalServerError, rec.Code)
		})
	}
}
