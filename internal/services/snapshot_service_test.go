package services

import (
	"context"
	"testing"

	"finance-tracker/internal/database"
	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type SnapshotServiceTestSuite struct {
	suite.Suite
	f       *ledgerFixture
	ctx     context.Context
	service SnapshotServiceInterface
}

func (s *SnapshotServiceTestSuite) SetupTest() {
	s.f = newLedgerFixture(s.T())
	s.ctx = context.Background()
	s.service = s.f.snapshots()
}

func (s *SnapshotServiceTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.f.db)
}

func TestSnapshotServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SnapshotServiceTestSuite))
}

func (s *SnapshotServiceTestSuite) TestCreateDailyAccountSnapshots_OncePerDay() {
	s.f.account(s.T(), models.AccountTypeDebit, "1000")
	s.f.account(s.T(), models.AccountTypeCredit, "300")
	archived := s.f.account(s.T(), models.AccountTypeCash, "50")
	s.Require().NoError(s.f.db.Model(archived).Update("is_archived", true).Error)

	first, err := s.service.CreateDailyAccountSnapshots(s.ctx, at(2024, 6, 20))
	s.Require().NoError(err)
	s.Equal(&dto.SnapshotRunResult{Created: 2}, first)

	second, err := s.service.CreateDailyAccountSnapshots(s.ctx, at(2024, 6, 20))
	s.Require().NoError(err)
	s.Equal(&dto.SnapshotRunResult{Skipped: 2}, second)

	next, err := s.service.CreateDailyAccountSnapshots(s.ctx, at(2024, 6, 21))
	s.Require().NoError(err)
	s.Equal(2, next.Created)
}

func (s *SnapshotServiceTestSuite) TestNetWorthAt_SubtractsCreditDebt() {
	debit := s.f.account(s.T(), models.AccountTypeDebit, "1000")
	s.f.account(s.T(), models.AccountTypeCredit, "300")
	database.CreateTestAccount(s.T(), s.f.db, uuid.New(), models.AccountTypeCash, "999")

	_, err := s.service.CreateDailyAccountSnapshots(s.ctx, at(2024, 6, 20))
	s.Require().NoError(err)

	_, err = s.f.ledger().Post(s.ctx, s.f.userID, &dto.TransactionRequest{
		Amount:          money("250"),
		TransactionType: models.TransactionTypeIncome,
		AccountID:       debit.ID,
	})
	s.Require().NoError(err)

	_, err = s.service.CreateDailyAccountSnapshots(s.ctx, at(2024, 6, 22))
	s.Require().NoError(err)

	onDay, err := s.service.NetWorthAt(s.ctx, s.f.userID, at(2024, 6, 21))
	s.Require().NoError(err)
	s.Equal("700.00", onDay.NetWorth.StringFixed(2))
	s.Len(onDay.Snapshots, 2)

	later, err := s.service.NetWorthAt(s.ctx, s.f.userID, at(2024, 6, 22))
	s.Require().NoError(err)
	s.Equal("950.00", later.NetWorth.StringFixed(2))

	before, err := s.service.NetWorthAt(s.ctx, s.f.userID, at(2024, 6, 1))
	s.Require().NoError(err)
	s.True(before.NetWorth.IsZero())
	s.Empty(before.Snapshots)
}
