package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finance-tracker/internal/billing"
	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type statementService struct {
	uow        repositories.UnitOfWork
	calculator *billing.Calculator
}

// NewStatementService creates the credit card statement view service
func NewStatementService(uow repositories.UnitOfWork, calculator *billing.Calculator) StatementServiceInterface {
	return &statementService{
		uow:        uow,
		calculator: calculator,
	}
}

// GetCurrentStatement builds the live view of the cycle the card is in at asOf
func (s *statementService) GetCurrentStatement(ctx context.Context, userID, accountID uuid.UUID, asOf time.Time) (*dto.CurrentStatementResponse, error) {
	var view *dto.CurrentStatementResponse
	err := s.uow.WithinTransaction(ctx, func(repos repositories.Repositories) error {
		card, err := getCreditAccount(repos, userID, accountID)
		if err != nil {
			return err
		}

		view, err = buildCurrentStatement(repos, s.calculator, card, asOf)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// ListStatements returns the frozen statements of a card, newest first
func (s *statementService) ListStatements(ctx context.Context, userID, accountID uuid.UUID, limit int) ([]models.CreditCardStatement, error) {
	var statements []models.CreditCardStatement
	err := s.uow.WithinTransaction(ctx, func(repos repositories.Repositories) error {
		if _, err := getCreditAccount(repos, userID, accountID); err != nil {
			return err
		}

		var err error
		statements, err = repos.Statements().ListByAccount(accountID, limit)
		return err
	})
	if err != nil {
		return nil, err
	}
	return statements, nil
}

func getCreditAccount(repos repositories.Repositories, userID, accountID uuid.UUID) (*models.Account, error) {
	account, err := repos.Accounts().GetByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account.UserID != userID {
		return nil, ErrAccountNotFound
	}
	if !account.IsCredit() {
		return nil, ErrNotCreditAccount
	}
	return account, nil
}

// buildCurrentStatement computes what is owed on card for the cycle at asOf:
// regular charges of the cycle, the MSI charges attributed to it and the
// payments received in its payment window.
func buildCurrentStatement(repos repositories.Repositories, calculator *billing.Calculator, card *models.Account, asOf time.Time) (*dto.CurrentStatementResponse, error) {
	cycle, err := calculator.CalculateCycle(billing.CardConfig{
		CutoffDay:  card.CutoffDay,
		PaymentDay: card.PaymentDay,
	}, asOf)
	if err != nil {
		return nil, validationError("%v", err)
	}

	charges, err := repos.Transactions().GetRegularExpenses(card.ID, cycle.CycleStart, cycle.Cutoff)
	if err != nil {
		return nil, err
	}

	after, until := billing.PaymentWindow(cycle, card.PaymentDay)
	payments, err := repos.Transactions().GetPaymentsInto(card.ID, after, until)
	if err != nil {
		return nil, err
	}

	purchases, err := repos.Installments().GetActiveByAccount(card.ID)
	if err != nil {
		return nil, err
	}

	view := &dto.CurrentStatementResponse{
		AccountID:        card.ID,
		AccountName:      card.Name,
		CycleStart:       cycle.CycleStart,
		CutoffDate:       cycle.Cutoff,
		PaymentDate:      cycle.PaymentDate,
		IsBeforeCutoff:   cycle.IsBeforeCutoff,
		DaysUntilCutoff:  cycle.DaysUntilCutoff,
		DaysUntilPayment: cycle.DaysUntilPayment,
		MsiCharges:       []dto.MsiCharge{},
		RegularCharges:   make([]dto.StatementCharge, 0, len(charges)),
		Payments:         make([]dto.StatementPayment, 0, len(payments)),
		MsiTotal:         decimal.Zero,
		MsiDue:           decimal.Zero,
		RegularTotal:     decimal.Zero,
		RegularPaid:      decimal.Zero,
	}

	for _, due := range billing.DueInstallments(cycle, purchases) {
		linked, err := repos.Transactions().GetByInstallment(due.ID)
		if err != nil {
			return nil, err
		}

		charge := dto.MsiCharge{
			InstallmentPurchaseID: due.ID,
			Description:           due.Description,
			Amount:                decimal.Min(due.Amount, due.RemainingAmount),
			ChargeDate:            due.ChargeDate,
			InstallmentNumber:     due.InstallmentNumber,
			TotalInstallments:     due.TotalInstallments,
			RemainingAmount:       due.RemainingAmount,
			IsPaid:                billing.IsInstallmentPaid(cycle, card.PaymentDay, linked),
		}
		view.MsiTotal = view.MsiTotal.Add(charge.Amount)
		if !charge.IsPaid {
			view.MsiDue = view.MsiDue.Add(charge.Amount)
		}
		view.MsiCharges = append(view.MsiCharges, charge)
	}

	categoryIDs := make([]uuid.UUID, 0, len(charges))
	for _, t := range charges {
		if t.CategoryID != nil {
			categoryIDs = append(categoryIDs, *t.CategoryID)
		}
	}
	categories, err := repos.Categories().GetByIDs(card.UserID, categoryIDs)
	if err != nil {
		return nil, err
	}

	for _, t := range charges {
		charge := dto.StatementCharge{
			ID:          t.ID,
			Description: t.Description,
			Amount:      t.Amount,
			Date:        t.Date,
			CategoryID:  t.CategoryID,
		}
		if t.CategoryID != nil {
			if c, ok := categories[*t.CategoryID]; ok {
				charge.CategoryName = c.Name
				charge.CategoryColor = c.Color
				charge.CategoryIcon = c.Icon
			}
		}
		view.RegularTotal = view.RegularTotal.Add(t.Amount)
		view.RegularCharges = append(view.RegularCharges, charge)
	}

	for _, p := range payments {
		view.Payments = append(view.Payments, dto.StatementPayment{
			ID:                    p.ID,
			Amount:                p.Amount,
			Date:                  p.Date,
			Description:           p.Description,
			InstallmentPurchaseID: p.InstallmentPurchaseID,
		})
		if p.InstallmentPurchaseID == nil {
			view.RegularPaid = view.RegularPaid.Add(p.Amount)
		}
	}

	view.RegularDue = decimal.Max(view.RegularTotal.Sub(view.RegularPaid), decimal.Zero)
	view.TotalDue = view.RegularDue.Add(view.MsiDue)
	view.IsFullyPaid = view.TotalDue.LessThanOrEqual(models.PaymentTolerance)
	return view, nil
}
