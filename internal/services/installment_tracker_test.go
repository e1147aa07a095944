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

type InstallmentTrackerTestSuite struct {
	suite.Suite
	f       *ledgerFixture
	ctx     context.Context
	tracker InstallmentTrackerInterface
	card    *models.Account
}

func (s *InstallmentTrackerTestSuite) SetupTest() {
	s.f = newLedgerFixture(s.T())
	s.ctx = context.Background()
	s.tracker = s.f.tracker()
	s.card = s.f.account(s.T(), models.AccountTypeCredit, "1800")
}

func (s *InstallmentTrackerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.f.db)
}

func TestInstallmentTrackerTestSuite(t *testing.T) {
	suite.Run(t, new(InstallmentTrackerTestSuite))
}

func (s *InstallmentTrackerTestSuite) charges(purchaseID uuid.UUID) []models.Transaction {
	var charges []models.Transaction
	s.Require().NoError(s.f.db.
		Where("installment_purchase_id = ? AND is_installment_charge = ?", purchaseID, true).
		Order("date ASC").
		Find(&charges).Error)
	return charges
}

func (s *InstallmentTrackerTestSuite) TestProcess_RecordsElapsedCharges() {
	purchase := database.CreateTestInstallment(s.T(), s.f.db, s.card, "1800", 6, at(2024, 3, 15))

	result, err := s.tracker.ProcessInstallmentPurchases(s.ctx, s.f.userID, at(2024, 6, 20))

	s.Require().NoError(err)
	s.Equal(4, result.ChargesCreated)
	s.Equal(1, result.PurchasesUpdated)

	charges := s.charges(purchase.ID)
	s.Require().Len(charges, 4)
	s.Equal("Test purchase (1/6)", charges[0].Description)
	s.Equal("Test purchase (4/6)", charges[3].Description)
	s.Equal("300.00", charges[3].Amount.StringFixed(2))
	s.Equal(15, charges[3].Date.Day())

	reloaded := database.ReloadInstallment(s.T(), s.f.db, purchase.ID)
	s.Equal(4, reloaded.ChargedInstallments)
	s.Zero(reloaded.PaidInstallments)
	s.True(reloaded.PaidAmount.IsZero())

	s.Equal("1800.00", s.f.balance(s.T(), s.card.ID))
}

func (s *InstallmentTrackerTestSuite) TestProcess_IsIdempotent() {
	purchase := database.CreateTestInstallment(s.T(), s.f.db, s.card, "1800", 6, at(2024, 3, 15))

	_, err := s.tracker.ProcessInstallmentPurchases(s.ctx, s.f.userID, at(2024, 6, 20))
	s.Require().NoError(err)

	again, err := s.tracker.ProcessInstallmentPurchases(s.ctx, s.f.userID, at(2024, 6, 20))
	s.Require().NoError(err)
	s.Zero(again.ChargesCreated)
	s.Zero(again.PurchasesUpdated)
	s.Len(s.charges(purchase.ID), 4)
}

func (s *InstallmentTrackerTestSuite) TestProcess_WaitsForChargeDay() {
	purchase := database.CreateTestInstallment(s.T(), s.f.db, s.card, "1800", 6, at(2024, 3, 15))

	result, err := s.tracker.ProcessInstallmentPurchases(s.ctx, s.f.userID, at(2024, 6, 14))

	s.Require().NoError(err)
	s.Equal(3, result.ChargesCreated)
	s.Len(s.charges(purchase.ID), 3)
}

func (s *InstallmentTrackerTestSuite) TestProcess_LastChargeAbsorbsRounding() {
	purchase := database.CreateTestInstallment(s.T(), s.f.db, s.card, "1000", 3, at(2024, 1, 10))

	result, err := s.tracker.ProcessInstallmentPurchases(s.ctx, s.f.userID, at(2024, 12, 1))

	s.Require().NoError(err)
	s.Equal(3, result.ChargesCreated)

	charges := s.charges(purchase.ID)
	s.Require().Len(charges, 3)
	s.Equal("333.33", charges[0].Amount.StringFixed(2))
	s.Equal("333.34", charges[2].Amount.StringFixed(2))

	reloaded := database.ReloadInstallment(s.T(), s.f.db, purchase.ID)
	s.Equal(3, reloaded.ChargedInstallments)
	s.False(reloaded.IsFullyPaid())
}

func (s *InstallmentTrackerTestSuite) TestProcess_ChargesDoNotCountAsPayments() {
	source := s.f.account(s.T(), models.AccountTypeDebit, "1000")
	card := s.f.account(s.T(), models.AccountTypeCredit, "0")
	purchase, err := s.f.installments().CreateInstallmentPurchase(s.ctx, s.f.userID, &dto.CreateInstallmentRequest{
		AccountID:    card.ID,
		Description:  "Phone",
		TotalAmount:  money("600"),
		Installments: 6,
		PurchaseDate: at(2024, 3, 15),
	})
	s.Require().NoError(err)

	_, err = s.tracker.ProcessInstallmentPurchases(s.ctx, s.f.userID, at(2024, 5, 16))
	s.Require().NoError(err)

	reloaded := database.ReloadInstallment(s.T(), s.f.db, purchase.ID)
	s.Equal(3, reloaded.ChargedInstallments)
	s.Zero(reloaded.PaidInstallments)
	s.True(reloaded.PaidAmount.IsZero())
	s.Equal("600.00", s.f.balance(s.T(), card.ID))

	payment, err := s.f.payments(at(2024, 5, 16)).PayMsiInstallment(s.ctx, s.f.userID, purchase.ID, &dto.PaymentRequest{
		SourceAccountID: source.ID,
	})
	s.Require().NoError(err)
	s.Equal(1, payment.InstallmentNumber)
	s.Equal("500.00", payment.RemainingAmount.StringFixed(2))

	_, err = s.tracker.ProcessInstallmentPurchases(s.ctx, s.f.userID, at(2024, 8, 16))
	s.Require().NoError(err)

	reloaded = database.ReloadInstallment(s.T(), s.f.db, purchase.ID)
	s.Equal(6, reloaded.ChargedInstallments)
	s.Equal(1, reloaded.PaidInstallments)
	s.Equal("100.00", reloaded.PaidAmount.StringFixed(2))
	s.False(reloaded.IsFullyPaid())
	s.Equal("500.00", s.f.balance(s.T(), card.ID))

	next, err := s.f.payments(at(2024, 8, 16)).PayMsiInstallment(s.ctx, s.f.userID, purchase.ID, &dto.PaymentRequest{
		SourceAccountID: source.ID,
	})
	s.Require().NoError(err)
	s.Equal(2, next.InstallmentNumber)
	s.Equal("400.00", s.f.balance(s.T(), card.ID))
}

func (s *InstallmentTrackerTestSuite) TestProcessAllUsers() {
	database.CreateTestInstallment(s.T(), s.f.db, s.card, "1800", 6, at(2024, 3, 15))
	otherCard := database.CreateTestAccount(s.T(), s.f.db, uuid.New(), models.AccountTypeCredit, "0")
	database.CreateTestInstallment(s.T(), s.f.db, otherCard, "600", 3, at(2024, 5, 1))

	result, err := s.tracker.ProcessAllUsers(s.ctx, at(2024, 6, 20))

	s.Require().NoError(err)
	s.Equal(2, result.UsersProcessed)
	s.Equal(2, result.PurchasesUpdated)
	s.Equal(6, result.ChargesCreated)
	s.Zero(result.Failed)
}
