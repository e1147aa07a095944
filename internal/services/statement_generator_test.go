package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"finance-tracker/internal/database"
	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type StatementGeneratorTestSuite struct {
	suite.Suite
	f         *ledgerFixture
	ctx       context.Context
	generator StatementGeneratorInterface
	card      *models.Account
}

func (s *StatementGeneratorTestSuite) SetupTest() {
	s.f = newLedgerFixture(s.T())
	s.ctx = context.Background()
	s.generator = s.f.generator()
	s.card = s.f.account(s.T(), models.AccountTypeCredit, "1800")
}

func (s *StatementGeneratorTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.f.db)
}

func TestStatementGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(StatementGeneratorTestSuite))
}

func (s *StatementGeneratorTestSuite) expense(amount string, date *time.Time) *models.Transaction {
	txn, err := s.f.ledger().Post(s.ctx, s.f.userID, &dto.TransactionRequest{
		Amount:          money(amount),
		TransactionType: models.TransactionTypeExpense,
		AccountID:       s.card.ID,
		Date:            date,
	})
	s.Require().NoError(err)
	return txn
}

func (s *StatementGeneratorTestSuite) TestGenerate_FreezesCycleOnCutoffDay() {
	inCycle := s.expense("500", atPtr(2024, 6, 1))
	earlier := s.expense("100", atPtr(2024, 5, 10))
	database.CreateTestInstallment(s.T(), s.f.db, s.card, "1800", 6, at(2024, 3, 15))

	result, err := s.generator.GenerateCreditCardStatements(s.ctx, at(2024, 6, 20))

	s.Require().NoError(err)
	s.Equal(1, result.Processed)
	s.Require().Len(result.Statements, 1)

	var statement models.CreditCardStatement
	s.Require().NoError(s.f.db.First(&statement, "id = ?", result.Statements[0]).Error)
	s.Equal("500.00", statement.RegularAmount.StringFixed(2))
	s.Equal("300.00", statement.MsiAmount.StringFixed(2))
	s.Equal("800.00", statement.TotalDue.StringFixed(2))
	s.Equal("200.00", statement.MinimumPayment.StringFixed(2))
	s.Equal(models.StatementStatusPending, statement.Status)
	s.True(statement.CycleStart.Equal(time.Date(2024, 5, 21, 0, 0, 0, 0, time.UTC)))
	s.True(statement.CycleEnd.Equal(time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)))
	s.True(statement.PaymentDueDate.Equal(time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC)))

	var billed models.Transaction
	s.Require().NoError(s.f.db.First(&billed, "id = ?", inCycle.ID).Error)
	s.Require().NotNil(billed.StatementID)
	s.Equal(statement.ID, *billed.StatementID)

	var unbilled models.Transaction
	s.Require().NoError(s.f.db.First(&unbilled, "id = ?", earlier.ID).Error)
	s.Nil(unbilled.StatementID)

	s.Len(s.f.auditEntries(s.T(), models.AuditActionStatementGenerated), 1)
}

func (s *StatementGeneratorTestSuite) TestGenerate_SecondRunSkips() {
	s.expense("500", atPtr(2024, 6, 1))

	first, err := s.generator.GenerateCreditCardStatements(s.ctx, at(2024, 6, 20))
	s.Require().NoError(err)
	s.Equal(1, first.Processed)

	second, err := s.generator.GenerateCreditCardStatements(s.ctx, at(2024, 6, 20))
	s.Require().NoError(err)
	s.Zero(second.Processed)
	s.Equal(1, second.Skipped)

	var count int64
	s.Require().NoError(s.f.db.Model(&models.CreditCardStatement{}).Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *StatementGeneratorTestSuite) TestGenerate_IgnoresCardsNotAtCutoff() {
	s.expense("500", atPtr(2024, 6, 1))

	result, err := s.generator.GenerateCreditCardStatements(s.ctx, at(2024, 6, 19))

	s.Require().NoError(err)
	s.Zero(result.Processed)
	s.Empty(result.Statements)
}

func (s *StatementGeneratorTestSuite) TestGenerate_ClampedCutoffRunsOnLastDay() {
	card := s.f.account(s.T(), models.AccountTypeCredit, "0")
	s.Require().NoError(s.f.db.Model(card).Update("cutoff_day", 31).Error)

	result, err := s.generator.GenerateCreditCardStatements(s.ctx, at(2024, 2, 29))

	s.Require().NoError(err)
	s.Equal(1, result.Processed)
}

func (s *StatementGeneratorTestSuite) TestGenerate_FailedCardDoesNotStopRun() {
	s.f.account(s.T(), models.AccountTypeCredit, "0")

	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	mockUOW := repository_mocks.NewMockUnitOfWork(ctrl)
	calls := 0
	mockUOW.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(repositories.Repositories) error) error {
			calls++
			if calls == 2 {
				return errors.New("connection reset")
			}
			return s.f.uow.WithinTransaction(ctx, fn)
		}).AnyTimes()

	generator := NewStatementGenerator(mockUOW, s.f.calculator, s.f.events, s.f.metrics, s.f.logger)
	result, err := generator.GenerateCreditCardStatements(s.ctx, at(2024, 6, 20))

	s.Require().NoError(err)
	s.Equal(1, result.Processed)
	s.Equal(1, result.Failed)
}

func (s *StatementGeneratorTestSuite) TestMarkOverdueStatements() {
	s.expense("500", atPtr(2024, 6, 1))
	_, err := s.generator.GenerateCreditCardStatements(s.ctx, at(2024, 6, 20))
	s.Require().NoError(err)

	marked, err := s.generator.MarkOverdueStatements(s.ctx, at(2024, 7, 5))
	s.Require().NoError(err)
	s.Zero(marked)

	marked, err = s.generator.MarkOverdueStatements(s.ctx, at(2024, 7, 6))
	s.Require().NoError(err)
	s.Equal(1, marked)

	var statement models.CreditCardStatement
	s.Require().NoError(s.f.db.First(&statement).Error)
	s.Equal(models.StatementStatusOverdue, statement.Status)
	s.Len(s.f.auditEntries(s.T(), models.AuditActionStatementMarkOverdue), 1)

	marked, err = s.generator.MarkOverdueStatements(s.ctx, at(2024, 7, 7))
	s.Require().NoError(err)
	s.Zero(marked)
}

func (s *StatementGeneratorTestSuite) TestPaymentSettlesOldestOpenStatement() {
	debit := s.f.account(s.T(), models.AccountTypeDebit, "5000")
	s.expense("500", atPtr(2024, 6, 1))
	result, err := s.generator.GenerateCreditCardStatements(s.ctx, at(2024, 6, 20))
	s.Require().NoError(err)

	txn, err := s.f.ledger().Post(s.ctx, s.f.userID, &dto.TransactionRequest{
		Amount:               money("200"),
		TransactionType:      models.TransactionTypeTransfer,
		AccountID:            debit.ID,
		DestinationAccountID: &s.card.ID,
		Date:                 atPtr(2024, 6, 25),
	})
	s.Require().NoError(err)
	s.Equal("200.00", txn.AppliedAmount.StringFixed(2))

	var statement models.CreditCardStatement
	s.Require().NoError(s.f.db.First(&statement, "id = ?", result.Statements[0]).Error)
	s.Equal(models.StatementStatusPartial, statement.Status)
	s.Equal("200.00", statement.PaidAmount.StringFixed(2))

	statements, err := s.f.statements().ListStatements(s.ctx, s.f.userID, s.card.ID, 10)
	s.Require().NoError(err)
	s.Len(statements, 1)
}
