package repositories

import (
	"testing"
	"time"

	"finance-tracker/internal/database"
	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SnapshotRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   SnapshotRepositoryInterface
	userID uuid.UUID
}

func TestSnapshotRepositorySuite(t *testing.T) {
	suite.Run(t, new(SnapshotRepositorySuite))
}

func (s *SnapshotRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewSnapshotRepository(s.db.DB)
	s.userID = uuid.New()
}

func (s *SnapshotRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *SnapshotRepositorySuite) TestCreateAndExists() {
	account := database.CreateTestAccount(s.T(), s.db, s.userID, models.AccountTypeDebit, "800")
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	exists, err := s.repo.Exists(account.ID, day)
	s.NoError(err)
	s.False(exists)

	s.NoError(s.repo.Create(models.NewAccountSnapshot(account, day)))

	exists, err = s.repo.Exists(account.ID, day)
	s.NoError(err)
	s.True(exists)

	err = s.repo.Create(models.NewAccountSnapshot(account, day))
	s.ErrorIs(err, ErrSnapshotExists)
}

func (s *SnapshotRepositorySuite) TestGetLatestOnOrBefore() {
	debit := database.CreateTestAccount(s.T(), s.db, s.userID, models.AccountTypeDebit, "800")
	card := database.CreateTestAccount(s.T(), s.db, s.userID, models.AccountTypeCredit, "300")

	day1 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	day3 := day1.AddDate(0, 0, 2)

	s.NoError(s.repo.Create(models.NewAccountSnapshot(debit, day1)))
	debit.Balance = decimal.NewFromInt(900)
	s.NoError(s.repo.Create(models.NewAccountSnapshot(debit, day2)))
	debit.Balance = decimal.NewFromInt(1000)
	s.NoError(s.repo.Create(models.NewAccountSnapshot(debit, day3)))
	s.NoError(s.repo.Create(models.NewAccountSnapshot(card, day1)))

	snapshots, err := s.repo.GetLatestOnOrBefore(s.userID, day2)
	s.NoError(err)
	s.Require().Len(snapshots, 2)

	byAccount := make(map[uuid.UUID]models.AccountSnapshot)
	for _, snap := range snapshots {
		byAccount[snap.AccountID] = snap
	}
	s.True(byAccount[debit.ID].Balance.Equal(decimal.NewFromInt(900)))
	cardSnapshot := byAccount[card.ID]
	s.True(cardSnapshot.Balance.Equal(decimal.NewFromInt(300)))
	s.True(cardSnapshot.NetWorthContribution().Equal(decimal.NewFromInt(-300)))
}
