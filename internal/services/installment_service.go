package services

import (
	"context"
	"fmt"
	"log/slog"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
)

type installmentService struct {
	uow     repositories.UnitOfWork
	events  EventLoggerInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewInstallmentService creates the MSI purchase lifecycle service
func NewInstallmentService(
	uow repositories.UnitOfWork,
	events EventLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) InstallmentServiceInterface {
	return &installmentService{
		uow:     uow,
		events:  events,
		metrics: metrics,
		logger:  logger,
	}
}

// CreateInstallmentPurchase registers an MSI purchase on a credit card and
// posts its full amount as debt.
func (s *installmentService) CreateInstallmentPurchase(ctx context.Context, userID uuid.UUID, req *dto.CreateInstallmentRequest) (*models.InstallmentPurchase, error) {
	purchase := &models.InstallmentPurchase{
		UserID:         userID,
		AccountID:      req.AccountID,
		CategoryID:     req.CategoryID,
		Description:    req.Description,
		TotalAmount:    req.TotalAmount,
		Installments:   req.Installments,
		MonthlyPayment: models.MonthlyPaymentFor(req.TotalAmount, req.Installments),
		PurchaseDate:   req.PurchaseDate.UTC(),
	}
	if err := purchase.Validate(); err != nil {
		return nil, validationError("%v", err)
	}

	var initial *models.Transaction
	err := s.uow.WithinTransaction(ctx, func(repos repositories.Repositories) error {
		unit := newLedgerUnit(repos, userID)
		card, err := unit.account(req.AccountID)
		if err != nil {
			return err
		}
		if !card.IsCredit() {
			return ErrNotCreditAccount
		}

		if err := repos.Installments().Create(purchase); err != nil {
			return err
		}

		initial = &models.Transaction{
			UserID:                userID,
			Amount:                purchase.TotalAmount,
			Description:           purchase.Description,
			Date:                  purchase.PurchaseDate,
			TransactionType:       models.TransactionTypeExpense,
			AccountID:             card.ID,
			CategoryID:            purchase.CategoryID,
			InstallmentPurchaseID: &purchase.ID,
		}
		if err := unit.post(initial); err != nil {
			return err
		}

		entry := models.NewAuditLog(userID, models.AuditActionInstallmentCreated, models.AuditEntityInstallment, purchase.ID)
		entry.SetNewValue("account_id", card.ID.String())
		entry.SetNewValue("total_amount", purchase.TotalAmount.StringFixed(2))
		entry.SetNewValue("installments", purchase.Installments)
		entry.SetNewValue("monthly_payment", purchase.MonthlyPayment.StringFixed(2))
		return repos.AuditLogs().Create(entry)
	})
	if err != nil {
		s.recordFailure(ctx, userID, "create_installment", err)
		return nil, err
	}

	s.metrics.IncrementCounter(MetricPostingSuccess, map[string]string{"type": initial.TransactionType})
	s.events.LogPostingCompleted(ctx, initial, "create_installment")
	return purchase, nil
}

// DeleteInstallmentPurchase reverses every transaction linked to the purchase
// and removes it.
func (s *installmentService) DeleteInstallmentPurchase(ctx context.Context, userID, installmentID uuid.UUID) error {
	err := s.uow.WithinTransaction(ctx, func(repos repositories.Repositories) error {
		purchase, err := getUserInstallment(repos, userID, installmentID)
		if err != nil {
			return err
		}

		linked, err := repos.Transactions().GetByInstallment(purchase.ID)
		if err != nil {
			return err
		}

		unit := newLedgerUnit(repos, userID)
		ids := []uuid.UUID{purchase.AccountID}
		for _, txn := range linked {
			ids = append(ids, txn.AccountID)
			if txn.DestinationAccountID != nil {
				ids = append(ids, *txn.DestinationAccountID)
			}
		}
		if err := unit.lock(ids...); err != nil {
			return err
		}

		for i := len(linked) - 1; i >= 0; i-- {
			if err := unit.remove(&linked[i]); err != nil {
				return fmt.Errorf("failed to reverse transaction %s: %w", linked[i].ID, err)
			}
		}
		if err := unit.flush(); err != nil {
			return err
		}

		if err := repos.Installments().Delete(purchase.ID); err != nil {
			return err
		}

		entry := models.NewAuditLog(userID, models.AuditActionInstallmentDeleted, models.AuditEntityInstallment, purchase.ID)
		entry.SetOldValue("total_amount", purchase.TotalAmount.StringFixed(2))
		entry.SetOldValue("paid_amount", purchase.PaidAmount.StringFixed(2))
		entry.SetOldValue("paid_installments", purchase.PaidInstallments)
		entry.SetNewValue("transactions_reversed", len(linked))
		return repos.AuditLogs().Create(entry)
	})
	if err != nil {
		s.recordFailure(ctx, userID, "delete_installment", err)
		return err
	}

	s.logger.Info("installment purchase deleted",
		"installment_id", installmentID,
		"user_id", userID,
	)
	return nil
}

func (s *installmentService) recordFailure(ctx context.Context, userID uuid.UUID, operation string, err error) {
	s.metrics.IncrementCounter(MetricPostingFailed, map[string]string{
		"type":   models.TransactionTypeExpense,
		"reason": reasonFor(err),
	})
	s.events.LogPostingRejected(ctx, userID, operation, err.Error())
}
