package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finance-tracker/internal/billing"
	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	paymentKindStatement   = "statement"
	paymentKindInstallment = "installment"
	paymentKindRevert      = "revert"
)

type paymentService struct {
	uow        repositories.UnitOfWork
	calculator *billing.Calculator
	events     EventLoggerInterface
	metrics    MetricsRecorderInterface
	logger     *slog.Logger
	now        func() time.Time
}

// NewPaymentService creates the credit card payment orchestrator
func NewPaymentService(
	uow repositories.UnitOfWork,
	calculator *billing.Calculator,
	events EventLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) PaymentServiceInterface {
	return &paymentService{
		uow:        uow,
		calculator: calculator,
		events:     events,
		metrics:    metrics,
		logger:     logger,
		now:        time.Now,
	}
}

// PayFullStatement pays everything owed on the card's live cycle from the
// source account: one transfer per unpaid MSI charge plus one for the
// regular charges, grouped under a single payment batch.
func (s *paymentService) PayFullStatement(ctx context.Context, userID, accountID uuid.UUID, req *dto.PaymentRequest) (*dto.StatementPaymentResponse, error) {
	date := s.paymentDate(req)
	batchID := uuid.New()

	var result *dto.StatementPaymentResponse
	err := s.uow.WithinTransaction(ctx, func(repos repositories.Repositories) error {
		card, source, unit, err := s.lockPaymentAccounts(repos, userID, accountID, req.SourceAccountID)
		if err != nil {
			return err
		}

		view, err := buildCurrentStatement(repos, s.calculator, card, date)
		if err != nil {
			return err
		}
		if !view.TotalDue.IsPositive() {
			return ErrNoBalanceDue
		}
		if !source.CanCover(view.TotalDue) {
			return ErrInsufficientFunds
		}

		result = &dto.StatementPaymentResponse{
			Amount:         view.TotalDue,
			Description:    fmt.Sprintf("Statement payment %s", card.Name),
			MsiPaid:        decimal.Zero,
			RegularPaid:    decimal.Zero,
			PaymentBatchID: batchID,
		}

		for _, charge := range view.MsiCharges {
			if charge.IsPaid || !charge.Amount.IsPositive() {
				continue
			}

			purchaseID := charge.InstallmentPurchaseID
			txn := paymentTransfer(userID, source.ID, card.ID, charge.Amount, date, &batchID,
				fmt.Sprintf("MSI payment: %s (%d/%d)", charge.Description, charge.InstallmentNumber, charge.TotalInstallments))
			txn.InstallmentPurchaseID = &purchaseID

			if err := unit.post(txn); err != nil {
				return err
			}
			result.MsiPaid = result.MsiPaid.Add(charge.Amount)
			result.TransactionsCreated++
		}

		if view.RegularDue.IsPositive() {
			txn := paymentTransfer(userID, source.ID, card.ID, view.RegularDue, date, &batchID, result.Description)
			if err := unit.post(txn); err != nil {
				return err
			}
			result.RegularPaid = view.RegularDue
			result.TransactionsCreated++
		}

		return nil
	})
	if err != nil {
		s.recordFailure(ctx, userID, paymentKindStatement, err)
		return nil, err
	}

	s.recordSuccess(paymentKindStatement, result.Amount)
	s.events.LogStatementPayment(ctx, accountID, batchID, result.Amount.StringFixed(2), result.TransactionsCreated)
	return result, nil
}

// PayMsiInstallment pays the next monthly payment of one MSI purchase
func (s *paymentService) PayMsiInstallment(ctx context.Context, userID, installmentID uuid.UUID, req *dto.PaymentRequest) (*dto.InstallmentPaymentResponse, error) {
	date := s.paymentDate(req)

	var result *dto.InstallmentPaymentResponse
	err := s.uow.WithinTransaction(ctx, func(repos repositories.Repositories) error {
		purchase, err := getUserInstallment(repos, userID, installmentID)
		if err != nil {
			return err
		}
		if purchase.IsFullyPaid() {
			return ErrInstallmentPaid
		}

		card, source, unit, err := s.lockPaymentAccounts(repos, userID, purchase.AccountID, req.SourceAccountID)
		if err != nil {
			return err
		}

		amount := purchase.NextPaymentAmount()
		if !source.CanCover(amount) {
			return ErrInsufficientFunds
		}

		txn := paymentTransfer(userID, source.ID, card.ID, amount, date, nil,
			fmt.Sprintf("MSI payment: %s (%d/%d)", purchase.Description, purchase.PaidInstallments+1, purchase.Installments))
		txn.InstallmentPurchaseID = &purchase.ID
		if err := unit.post(txn); err != nil {
			return err
		}

		updated, err := repos.Installments().GetByID(purchase.ID)
		if err != nil {
			return err
		}

		result = &dto.InstallmentPaymentResponse{
			TransactionID:     txn.ID,
			Amount:            amount,
			InstallmentNumber: updated.PaidInstallments,
			TotalInstallments: updated.Installments,
			RemainingAmount:   updated.Remaining(),
		}
		return nil
	})
	if err != nil {
		s.recordFailure(ctx, userID, paymentKindInstallment, err)
		return nil, err
	}

	s.recordSuccess(paymentKindInstallment, result.Amount)
	return result, nil
}

// RevertStatementPayment undoes a payment into a credit card. A payment made
// by PayFullStatement is reverted together with the rest of its batch,
// including the MSI progress and statement credit it produced.
func (s *paymentService) RevertStatementPayment(ctx context.Context, userID, transactionID uuid.UUID) (*dto.RevertPaymentResponse, error) {
	var result *dto.RevertPaymentResponse
	err := s.uow.WithinTransaction(ctx, func(repos repositories.Repositories) error {
		txn, err := repos.Transactions().GetByID(transactionID)
		if err != nil {
			if errors.Is(err, repositories.ErrTransactionNotFound) {
				return ErrTransactionNotFound
			}
			return fmt.Errorf("failed to get transaction: %w", err)
		}
		if txn.UserID != userID {
			return ErrTransactionNotFound
		}
		if !txn.IsTransfer() || txn.DestinationAccountID == nil {
			return ErrNotStatementPayment
		}

		unit := newLedgerUnit(repos, userID)
		destination, err := unit.account(*txn.DestinationAccountID)
		if err != nil {
			return err
		}
		if !destination.IsCredit() {
			return ErrNotStatementPayment
		}

		batch := []models.Transaction{*txn}
		if txn.PaymentBatchID != nil {
			batch, err = repos.Transactions().GetByPaymentBatch(*txn.PaymentBatchID)
			if err != nil {
				return err
			}
		}

		result = &dto.RevertPaymentResponse{AmountReverted: decimal.Zero}
		for i := len(batch) - 1; i >= 0; i-- {
			if err := unit.remove(&batch[i]); err != nil {
				return err
			}
			result.AmountReverted = result.AmountReverted.Add(batch[i].Amount)
			result.TransactionsReverted++
		}
		if err := unit.flush(); err != nil {
			return err
		}

		entry := models.NewAuditLog(userID, models.AuditActionPaymentReverted, models.AuditEntityTransaction, txn.ID)
		entry.SetOldValue("account_id", txn.AccountID.String())
		entry.SetOldValue("destination_account_id", txn.DestinationAccountID.String())
		entry.SetNewValue("amount_reverted", result.AmountReverted.StringFixed(2))
		entry.SetNewValue("transactions_reverted", result.TransactionsReverted)
		if txn.PaymentBatchID != nil {
			entry.SetNewValue("payment_batch_id", txn.PaymentBatchID.String())
		}
		return repos.AuditLogs().Create(entry)
	})
	if err != nil {
		s.recordFailure(ctx, userID, paymentKindRevert, err)
		return nil, err
	}

	s.metrics.IncrementCounter(MetricPaymentReverted, nil)
	s.events.LogPaymentReverted(ctx, transactionID, result.AmountReverted.StringFixed(2), result.TransactionsReverted)
	return result, nil
}

// lockPaymentAccounts locks the card and the funding account. The card must
// be CREDIT and the source must not be.
func (s *paymentService) lockPaymentAccounts(repos repositories.Repositories, userID, cardID, sourceID uuid.UUID) (*models.Account, *models.Account, *ledgerUnit, error) {
	if cardID == sourceID {
		return nil, nil, nil, ErrSameAccountTransfer
	}

	unit := newLedgerUnit(repos, userID)
	if err := unit.lock(cardID, sourceID); err != nil {
		return nil, nil, nil, err
	}

	card, source := unit.accounts[cardID], unit.accounts[sourceID]
	if !card.IsCredit() {
		return nil, nil, nil, ErrNotCreditAccount
	}
	if source.IsCredit() {
		return nil, nil, nil, ErrCreditSource
	}
	return card, source, unit, nil
}

func (s *paymentService) paymentDate(req *dto.PaymentRequest) time.Time {
	if req.Date != nil {
		return req.Date.UTC()
	}
	return s.now().UTC()
}

func (s *paymentService) recordSuccess(kind string, amount decimal.Decimal) {
	s.metrics.IncrementCounter(MetricPaymentSuccess, map[string]string{"kind": kind})
	s.metrics.RecordGauge(MetricPaymentAmount, amount.InexactFloat64(), map[string]string{"kind": kind})
}

func (s *paymentService) recordFailure(ctx context.Context, userID uuid.UUID, kind string, err error) {
	s.metrics.IncrementCounter(MetricPaymentFailed, map[string]string{
		"kind":   kind,
		"reason": reasonFor(err),
	})
	s.events.LogPostingRejected(ctx, userID, kind+"_payment", err.Error())
}

func getUserInstallment(repos repositories.Repositories, userID, installmentID uuid.UUID) (*models.InstallmentPurchase, error) {
	purchase, err := repos.Installments().GetForUpdate(installmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrInstallmentNotFound) {
			return nil, ErrInstallmentNotFound
		}
		return nil, fmt.Errorf("failed to get installment purchase: %w", err)
	}
	if purchase.UserID != userID {
		return nil, ErrInstallmentNotFound
	}
	return purchase, nil
}

func paymentTransfer(userID, sourceID, cardID uuid.UUID, amount decimal.Decimal, date time.Time, batchID *uuid.UUID, description string) *models.Transaction {
	destination := cardID
	return &models.Transaction{
		UserID:               userID,
		Amount:               amount,
		Description:          description,
		Date:                 date,
		TransactionType:      models.TransactionTypeTransfer,
		AccountID:            sourceID,
		DestinationAccountID: &destination,
		PaymentBatchID:       batchID,
	}
}
