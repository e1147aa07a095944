package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ledgerService implements LedgerServiceInterface
type ledgerService struct {
	uow     repositories.UnitOfWork
	events  EventLoggerInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewLedgerService creates the posting engine
func NewLedgerService(
	uow repositories.UnitOfWork,
	events EventLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) LedgerServiceInterface {
	return &ledgerService{
		uow:     uow,
		events:  events,
		metrics: metrics,
		logger:  logger,
	}
}

// Post records a new transaction and applies its balance effect
func (s *ledgerService) Post(ctx context.Context, userID uuid.UUID, req *dto.TransactionRequest) (*models.Transaction, error) {
	start := time.Now()
	txn := transactionFromRequest(userID, req, start)

	var unit *ledgerUnit
	err := s.uow.WithinTransaction(ctx, func(repos repositories.Repositories) error {
		unit = newLedgerUnit(repos, userID)
		return unit.post(txn)
	})
	s.record(ctx, userID, "post", txn, start, err)
	if err != nil {
		return nil, err
	}

	unit.logBalances(ctx, s.events, txn.ID)
	return txn, nil
}

// UpdateTransaction reverses the stored posting and applies the edited one
// in the same unit of work.
func (s *ledgerService) UpdateTransaction(ctx context.Context, userID, transactionID uuid.UUID, req *dto.TransactionRequest) (*models.Transaction, error) {
	start := time.Now()

	var (
		unit    *ledgerUnit
		updated *models.Transaction
	)
	err := s.uow.WithinTransaction(ctx, func(repos repositories.Repositories) error {
		existing, err := loadEditableTransaction(repos, userID, transactionID)
		if err != nil {
			return err
		}

		unit = newLedgerUnit(repos, userID)
		ids := []uuid.UUID{existing.AccountID, req.AccountID}
		if existing.DestinationAccountID != nil {
			ids = append(ids, *existing.DestinationAccountID)
		}
		if req.DestinationAccountID != nil {
			ids = append(ids, *req.DestinationAccountID)
		}
		if err := unit.lock(ids...); err != nil {
			return err
		}

		if err := unit.reverse(existing); err != nil {
			return err
		}

		existing.Amount = req.Amount
		existing.Description = req.Description
		existing.TransactionType = req.TransactionType
		existing.AccountID = req.AccountID
		existing.DestinationAccountID = req.DestinationAccountID
		existing.CategoryID = req.CategoryID
		existing.InstallmentPurchaseID = req.InstallmentPurchaseID
		if req.Date != nil {
			existing.Date = req.Date.UTC()
		}

		if err := unit.apply(existing); err != nil {
			return err
		}
		if err := unit.flush(); err != nil {
			return err
		}
		if err := repos.Transactions().Update(existing); err != nil {
			return err
		}

		updated = existing
		return nil
	})
	s.record(ctx, userID, "update", updated, start, err)
	if err != nil {
		return nil, err
	}

	unit.logBalances(ctx, s.events, updated.ID)
	return updated, nil
}

// DeleteTransaction undoes the posting and soft-deletes it
func (s *ledgerService) DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error {
	start := time.Now()

	var (
		unit    *ledgerUnit
		deleted *models.Transaction
	)
	err := s.uow.WithinTransaction(ctx, func(repos repositories.Repositories) error {
		existing, err := loadEditableTransaction(repos, userID, transactionID)
		if err != nil {
			return err
		}

		unit = newLedgerUnit(repos, userID)
		if err := unit.remove(existing); err != nil {
			return err
		}
		if err := unit.flush(); err != nil {
			return err
		}

		deleted = existing
		return nil
	})
	s.record(ctx, userID, "delete", deleted, start, err)
	if err != nil {
		return err
	}

	unit.logBalances(ctx, s.events, transactionID)
	return nil
}

func (s *ledgerService) record(ctx context.Context, userID uuid.UUID, operation string, txn *models.Transaction, start time.Time, err error) {
	s.metrics.RecordProcessingTime(MetricPostingDuration, time.Since(start))

	txnType := ""
	if txn != nil {
		txnType = txn.TransactionType
	}

	if err != nil {
		s.metrics.IncrementCounter(MetricPostingFailed, map[string]string{
			"type":   txnType,
			"reason": reasonFor(err),
		})
		s.events.LogPostingRejected(ctx, userID, operation, err.Error())
		return
	}

	s.metrics.IncrementCounter(MetricPostingSuccess, map[string]string{"type": txnType})
	s.events.LogPostingCompleted(ctx, txn, operation)
}

// loadEditableTransaction fetches a transaction the user may edit or delete
// directly. Billed rows, installment charges and batch payments are managed
// through their owning operation.
func loadEditableTransaction(repos repositories.Repositories, userID, transactionID uuid.UUID) (*models.Transaction, error) {
	txn, err := repos.Transactions().GetByID(transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if txn.UserID != userID {
		return nil, ErrTransactionNotFound
	}

	switch {
	case txn.IsBilled():
		return nil, ErrTransactionBilled
	case txn.IsInstallmentCharge:
		return nil, ErrInstallmentCharge
	case txn.InstallmentPurchaseID != nil && txn.TransactionType == models.TransactionTypeExpense:
		return nil, ErrInstallmentCharge
	case txn.PaymentBatchID != nil:
		return nil, validationError("statement payments can only be reverted")
	}
	return txn, nil
}

func transactionFromRequest(userID uuid.UUID, req *dto.TransactionRequest, now time.Time) *models.Transaction {
	date := now
	if req.Date != nil {
		date = *req.Date
	}

	return &models.Transaction{
		UserID:                userID,
		Amount:                req.Amount,
		Description:           req.Description,
		Date:                  date.UTC(),
		TransactionType:       req.TransactionType,
		AccountID:             req.AccountID,
		DestinationAccountID:  req.DestinationAccountID,
		CategoryID:            req.CategoryID,
		InstallmentPurchaseID: req.InstallmentPurchaseID,
	}
}

// ledgerUnit holds the accounts locked by one unit of work and the balance
// changes made to them. Balances are written back by flush.
type ledgerUnit struct {
	repos    repositories.Repositories
	userID   uuid.UUID
	accounts map[uuid.UUID]*models.Account
	before   map[uuid.UUID]decimal.Decimal
	order    []uuid.UUID
}

func newLedgerUnit(repos repositories.Repositories, userID uuid.UUID) *ledgerUnit {
	return &ledgerUnit{
		repos:    repos,
		userID:   userID,
		accounts: make(map[uuid.UUID]*models.Account),
		before:   make(map[uuid.UUID]decimal.Decimal),
	}
}

// lock reads the accounts FOR UPDATE in uuid order so concurrent units never
// wait on each other in opposite orders. Accounts already held are skipped.
func (u *ledgerUnit) lock(ids ...uuid.UUID) error {
	pending := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || seen[id] {
			continue
		}
		if _, ok := u.accounts[id]; ok {
			continue
		}
		seen[id] = true
		pending = append(pending, id)
	}
	sort.Slice(pending, func(i, j int) bool {
		return bytes.Compare(pending[i][:], pending[j][:]) < 0
	})

	for _, id := range pending {
		account, err := u.repos.Accounts().GetForUpdate(id)
		if err != nil {
			if errors.Is(err, repositories.ErrAccountNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to lock account: %w", err)
		}
		if account.UserID != u.userID {
			return ErrAccountNotFound
		}
		u.accounts[id] = account
	}
	return nil
}

func (u *ledgerUnit) account(id uuid.UUID) (*models.Account, error) {
	if err := u.lock(id); err != nil {
		return nil, err
	}
	return u.accounts[id], nil
}

func (u *ledgerUnit) shift(account *models.Account, delta decimal.Decimal) {
	if _, ok := u.before[account.ID]; !ok {
		u.before[account.ID] = account.Balance
		u.order = append(u.order, account.ID)
	}
	account.Apply(delta)
}

// post applies txn and inserts it
func (u *ledgerUnit) post(txn *models.Transaction) error {
	ids := []uuid.UUID{txn.AccountID}
	if txn.IsTransfer() && txn.DestinationAccountID != nil {
		ids = append(ids, *txn.DestinationAccountID)
	}
	if err := u.lock(ids...); err != nil {
		return err
	}
	if err := u.apply(txn); err != nil {
		return err
	}
	if err := u.flush(); err != nil {
		return err
	}
	return u.repos.Transactions().Create(txn)
}

// apply validates txn against the locked accounts and moves the balances,
// MSI progress and statement payment it implies.
func (u *ledgerUnit) apply(txn *models.Transaction) error {
	txn.Normalize()
	if err := txn.Validate(); err != nil {
		return validationError("%v", err)
	}

	source, err := u.account(txn.AccountID)
	if err != nil {
		return err
	}
	if source.IsArchived {
		return ErrAccountArchived
	}

	if txn.IsInstallmentCharge {
		return nil
	}

	amount := txn.Amount
	target := source

	switch txn.TransactionType {
	case models.TransactionTypeTransfer:
		if *txn.DestinationAccountID == source.ID {
			return ErrSameAccountTransfer
		}
		destination, err := u.account(*txn.DestinationAccountID)
		if err != nil {
			return err
		}
		if destination.IsArchived {
			return ErrAccountArchived
		}
		if !source.CanCover(amount) {
			return ErrInsufficientFunds
		}
		if destination.IsCredit() && amount.GreaterThan(destination.Balance) {
			return ErrCardOverpayment
		}

		u.shift(source, source.PostingDelta(txn.TransactionType, models.SideSource, amount))
		u.shift(destination, destination.PostingDelta(txn.TransactionType, models.SideDestination, amount))
		target = destination
	case models.TransactionTypeExpense:
		if !source.CanCover(amount) {
			return ErrInsufficientFunds
		}
		u.shift(source, source.PostingDelta(txn.TransactionType, models.SideSource, amount))
	case models.TransactionTypeIncome:
		u.shift(source, source.PostingDelta(txn.TransactionType, models.SideSource, amount))
	}

	if err := u.applyInstallmentPayment(txn); err != nil {
		return err
	}
	if txn.IsPaymentType() && target.IsCredit() {
		return u.applyStatementPayment(txn, target)
	}
	return nil
}

func (u *ledgerUnit) applyInstallmentPayment(txn *models.Transaction) error {
	if txn.InstallmentPurchaseID == nil || !txn.IsPaymentType() {
		return nil
	}

	purchase, err := u.repos.Installments().GetForUpdate(*txn.InstallmentPurchaseID)
	if err != nil {
		if errors.Is(err, repositories.ErrInstallmentNotFound) {
			return ErrInstallmentNotFound
		}
		return fmt.Errorf("failed to lock installment purchase: %w", err)
	}
	if purchase.UserID != u.userID {
		return ErrInstallmentNotFound
	}
	if purchase.AccountID != txn.TargetAccountID() {
		// Money landing on another account is an ordinary posting.
		return nil
	}

	remaining := purchase.Remaining()
	if remaining.LessThanOrEqual(models.PaymentTolerance) {
		return ErrInstallmentPaid
	}
	if txn.Amount.GreaterThan(remaining.Add(models.PaymentTolerance)) {
		return ErrInstallmentOverpaid
	}

	if err := purchase.ApplyPayment(txn.Amount); err != nil {
		if errors.Is(err, models.ErrInstallmentSettled) {
			return ErrInstallmentPaid
		}
		return ErrInstallmentOverpaid
	}
	return u.repos.Installments().UpdateProgress(purchase)
}

// applyStatementPayment credits the oldest open statement of the card and
// remembers how much of txn went to it.
func (u *ledgerUnit) applyStatementPayment(txn *models.Transaction, card *models.Account) error {
	statement, err := u.repos.Statements().GetOldestOpen(card.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrStatementNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get open statement: %w", err)
	}

	applied := statement.ApplyPayment(txn.Amount)
	if !applied.IsPositive() {
		return nil
	}
	if err := u.repos.Statements().UpdatePayment(statement); err != nil {
		return err
	}

	txn.AppliedStatementID = &statement.ID
	txn.AppliedAmount = applied
	return nil
}

// reverse undoes what apply did for txn. MSI purchases or statements removed
// since are skipped.
func (u *ledgerUnit) reverse(txn *models.Transaction) error {
	source, err := u.account(txn.AccountID)
	if err != nil {
		return err
	}

	if !txn.IsInstallmentCharge {
		if err := u.unshift(source, txn.TransactionType, models.SideSource, txn.Amount); err != nil {
			return err
		}
		if txn.IsTransfer() && txn.DestinationAccountID != nil {
			destination, err := u.account(*txn.DestinationAccountID)
			if err != nil {
				return err
			}
			if err := u.unshift(destination, txn.TransactionType, models.SideDestination, txn.Amount); err != nil {
				return err
			}
		}
	}

	if txn.InstallmentPurchaseID != nil && txn.IsPaymentType() {
		purchase, err := u.repos.Installments().GetForUpdate(*txn.InstallmentPurchaseID)
		switch {
		case errors.Is(err, repositories.ErrInstallmentNotFound):
		case err != nil:
			return fmt.Errorf("failed to lock installment purchase: %w", err)
		case purchase.AccountID == txn.TargetAccountID():
			purchase.RevertPayment(txn.Amount)
			if err := u.repos.Installments().UpdateProgress(purchase); err != nil {
				return err
			}
		}
	}

	if txn.AppliedStatementID != nil {
		statement, err := u.repos.Statements().GetByID(*txn.AppliedStatementID)
		switch {
		case errors.Is(err, repositories.ErrStatementNotFound):
		case err != nil:
			return fmt.Errorf("failed to get statement: %w", err)
		default:
			statement.RevertPayment(txn.AppliedAmount)
			if err := u.repos.Statements().UpdatePayment(statement); err != nil {
				return err
			}
		}
		txn.AppliedStatementID = nil
		txn.AppliedAmount = decimal.Zero
	}

	return nil
}

func (u *ledgerUnit) unshift(account *models.Account, txnType string, side models.PostingSide, amount decimal.Decimal) error {
	delta := account.PostingDelta(txnType, side, amount).Neg()
	if account.IsLiquid() && account.Balance.Add(delta).IsNegative() {
		return ErrInsufficientFunds
	}
	u.shift(account, delta)
	return nil
}

// remove reverses txn and soft-deletes it
func (u *ledgerUnit) remove(txn *models.Transaction) error {
	ids := []uuid.UUID{txn.AccountID}
	if txn.DestinationAccountID != nil {
		ids = append(ids, *txn.DestinationAccountID)
	}
	if err := u.lock(ids...); err != nil {
		return err
	}
	if err := u.reverse(txn); err != nil {
		return err
	}
	if err := u.repos.Transactions().SoftDelete(txn.ID); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return ErrTransactionNotFound
		}
		return err
	}
	return nil
}

// flush writes every changed balance back
func (u *ledgerUnit) flush() error {
	for _, id := range u.order {
		if err := u.repos.Accounts().UpdateBalance(u.accounts[id]); err != nil {
			return err
		}
	}
	return nil
}

func (u *ledgerUnit) logBalances(ctx context.Context, events EventLoggerInterface, transactionID uuid.UUID) {
	if u == nil {
		return
	}
	for _, id := range u.order {
		old := u.before[id]
		current := u.accounts[id].Balance
		if old.Equal(current) {
			continue
		}
		events.LogBalanceUpdate(ctx, id, old.StringFixed(2), current.StringFixed(2), transactionID)
	}
}
