package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/services"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type CreditCardHandlerSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockStatements *service_mocks.MockStatementServiceInterface
	mockPayments   *service_mocks.MockPaymentServiceInterface
	handler        *CreditCardHandler
	echo           *echo.Echo
	userID         uuid.UUID
	cardID         uuid.UUID
}

func (s *CreditCardHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStatements = service_mocks.NewMockStatementServiceInterface(s.ctrl)
	s.mockPayments = service_mocks.NewMockPaymentServiceInterface(s.ctrl)
	s.handler = NewCreditCardHandler(s.mockStatements, s.mockPayments)
	s.echo = newTestEcho()
	s.userID = uuid.New()
	s.cardID = uuid.New()
}

func (s *CreditCardHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCreditCardHandlerSuite(t *testing.T) {
	suite.Run(t, new(CreditCardHandlerSuite))
}

func (s *CreditCardHandlerSuite) cardContext(method, suffix string, body interface{}) (echo.Context, func() int, func() []byte) {
	c, rec := newAuthContext(s.echo, method, fmt.Sprintf("/api/v1/credit-cards/%s%s", s.cardID, suffix), body, s.userID)
	c.SetParamNames("accountId")
	c.SetParamValues(s.cardID.String())
	return c, func() int { return rec.Code }, func() []byte { return rec.Body.Bytes() }
}

func (s *CreditCardHandlerSuite) TestGetCurrentStatement_AsOf() {
	asOf := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	s.mockStatements.EXPECT().GetCurrentStatement(gomock.Any(), s.userID, s.cardID, asOf).
		Return(&dto.CurrentStatementResponse{AccountID: s.cardID, TotalDue: money("330"), DaysUntilCutoff: 10}, nil)

	c, code, body := s.cardContext(http.MethodGet, "/statement?asOf=2024-06-10", nil)
	s.Require().NoError(s.handler.GetCurrentStatement(c))

	s.Equal(http.StatusOK, code())
	var view dto.CurrentStatementResponse
	s.Require().NoError(json.Unmarshal(body(), &view))
	s.Equal("330.00", view.TotalDue.StringFixed(2))
	s.Equal(10, view.DaysUntilCutoff)
}

func (s *CreditCardHandlerSuite) TestGetCurrentStatement_NotCreditCard() {
	s.mockStatements.EXPECT().GetCurrentStatement(gomock.Any(), s.userID, s.cardID, gomock.Any()).
		Return(nil, services.ErrNotCreditAccount)

	c, code, body := s.cardContext(http.MethodGet, "/statement", nil)
	s.Require().NoError(s.handler.GetCurrentStatement(c))

	s.Equal(http.StatusUnprocessableEntity, code())
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(body(), &response))
	s.Equal("ACCOUNT_004", response.Error.Code)
}

func (s *CreditCardHandlerSuite) TestListStatements() {
	s.mockStatements.EXPECT().ListStatements(gomock.Any(), s.userID, s.cardID, 6).
		Return([]models.CreditCardStatement{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	c, code, body := s.cardContext(http.MethodGet, "/statements?limit=6", nil)
	s.Require().NoError(s.handler.ListStatements(c))

	s.Equal(http.StatusOK, code())
	var response dto.StatementListResponse
	s.Require().NoError(json.Unmarshal(body(), &response))
	s.Equal(2, response.Total)
}

func (s *CreditCardHandlerSuite) TestListStatements_LimitOutOfRange() {
	c, code, _ := s.cardContext(http.MethodGet, "/statements?limit=100", nil)
	s.Require().NoError(s.handler.ListStatements(c))

	s.Equal(http.StatusBadRequest, code())
}

func (s *CreditCardHandlerSuite) TestPayStatement() {
	sourceID := uuid.New()
	s.mockPayments.EXPECT().PayFullStatement(gomock.Any(), s.userID, s.cardID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _, _ uuid.UUID, req *dto.PaymentRequest) (*dto.StatementPaymentResponse, error) {
			s.Equal(sourceID, req.SourceAccountID)
			s.Nil(req.Date)
			return &dto.StatementPaymentResponse{
				Amount:              money("1500"),
				MsiPaid:             money("300"),
				RegularPaid:         money("1200"),
				TransactionsCreated: 2,
			}, nil
		})

	c, code, body := s.cardContext(http.MethodPost, "/pay-statement", map[string]interface{}{"sourceAccountId": sourceID})
	s.Require().NoError(s.handler.PayStatement(c))

	s.Equal(http.StatusOK, code())
	var response dto.StatementPaymentResponse
	s.Require().NoError(json.Unmarshal(body(), &response))
	s.Equal(2, response.TransactionsCreated)
	s.Equal("1500.00", response.Amount.StringFixed(2))
}

func (s *CreditCardHandlerSuite) TestPayStatement_Errors() {
	testCases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("source has 100.00: %w", services.ErrInsufficientFunds), http.StatusUnprocessableEntity, "PAYMENT_001"},
		{services.ErrCreditSource, http.StatusUnprocessableEntity, "PAYMENT_003"},
		{services.ErrNoBalanceDue, http.StatusConflict, "STATEMENT_002"},
	}

	for _, tc := range testCases {
		s.Run(tc.code, func() {
			s.mockPayments.EXPECT().PayFullStatement(gomock.Any(), s.userID, s.cardID, gomock.Any()).Return(nil, tc.err)

			c, code, body := s.cardContext(http.MethodPost, "/pay-statement", map[string]interface{}{"sourceAccountId": uuid.New()})
			s.Require().NoError(s.handler.PayStatement(c))

			s.Equal(tc.status, code())
			var response ErrorResponse
			s.Require().NoError(json.Unmarshal(body(), &response))
			s.Equal(tc.code, response.Error.Code)
		})
	}
}

func (s *CreditCardHandlerSuite) TestPayStatement_MissingSource() {
	c, code, _ := s.cardContext(http.MethodPost, "/pay-statement", map[string]interface{}{})
	s.Require().NoError(s.handler.PayStatement(c))

	s.Equal(http.StatusBadRequest, code())
}

func (s *CreditCardHandlerSuite) TestPayInstallment() {
	installmentID := uuid.New()
	paidAt := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
	s.mockPayments.EXPECT().PayMsiInstallment(gomock.Any(), s.userID, installmentID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _, _ uuid.UUID, req *dto.PaymentRequest) (*dto.InstallmentPaymentResponse, error) {
			s.Require().NotNil(req.Date)
			s.True(paidAt.Equal(*req.Date))
			return &dto.InstallmentPaymentResponse{Amount: money("300"), InstallmentNumber: 4, TotalInstallments: 6, RemainingAmount: money("600")}, nil
		})

	body := map[string]interface{}{"sourceAccountId": uuid.New(), "date": paidAt}
	c, rec := newAuthContext(s.echo, http.MethodPost, "/api/v1/installments/"+installmentID.String()+"/pay", body, s.userID)
	c.SetParamNames("installmentId")
	c.SetParamValues(installmentID.String())
	s.Require().NoError(s.handler.PayInstallment(c))

	s.Equal(http.StatusOK, rec.Code)
	var response dto.InstallmentPaymentResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(4, response.InstallmentNumber)
}

func (s *CreditCardHandlerSuite) TestPayInstallment_AlreadyPaid() {
	installmentID := uuid.New()
	s.mockPayments.EXPECT().PayMsiInstallment(gomock.Any(), s.userID, installmentID, gomock.Any()).Return(nil, services.ErrInstallmentPaid)

	c, rec := newAuthContext(s.echo, http.MethodPost, "/api/v1/installments/"+installmentID.String()+"/pay", map[string]interface{}{"sourceAccountId": uuid.New()}, s.userID)
	c.SetParamNames("installmentId")
	c.SetParamValues(installmentID.String())
	s.Require().NoError(s.handler.PayInstallment(c))

	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("INSTALLMENT_002", errorCode(s.T(), rec))
}

func (s *CreditCardHandlerSuite) TestRevertPayment() {
	transactionID := uuid.New()
	s.mockPayments.EXPECT().RevertStatementPayment(gomock.Any(), s.userID, transactionID).
		Return(&dto.RevertPaymentResponse{AmountReverted: money("1500"), TransactionsReverted: 2}, nil)

	c, rec := newAuthContext(s.echo, http.MethodPost, "/api/v1/transactions/"+transactionID.String()+"/revert", nil, s.userID)
	c.SetParamNames("transactionId")
	c.SetParamValues(transactionID.String())
	s.Require().NoError(s.handler.RevertPayment(c))

	s.Equal(http.StatusOK, rec.Code)
	var response dto.RevertPaymentResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("1500.00", response.AmountReverted.StringFixed(2))
}

func (s *CreditCardHandlerSuite) TestRevertPayment_NotAPayment() {
	transactionID := uuid.New()
	s.mockPayments.EXPECT().RevertStatementPayment(gomock.Any(), s.userID, transactionID).Return(nil, services.ErrNotStatementPayment)

	c, rec := newAuthContext(s.echo, http.MethodPost, "/api/v1/transactions/"+transactionID.String()+"/revert", nil, s.userID)
	c.SetParamNames("transactionId")
	c.SetParamValues(transactionID.String())
	s.Require().NoError(s.handler.RevertPayment(c))

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("TRANSACTION_006", errorCode(s.T(), rec))
}
