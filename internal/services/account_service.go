package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// accountService implements AccountServiceInterface interface
type accountService struct {
	uow    repositories.UnitOfWork
	logger *slog.Logger
}

// NewAccountService creates an account service
func NewAccountService(uow repositories.UnitOfWork, logger *slog.Logger) AccountServiceInterface {
	return &accountService{
		uow:    uow,
		logger: logger,
	}
}

// CreateAccount opens a cash, debit or credit account for a user
func (s *accountService) CreateAccount(ctx context.Context, userID uuid.UUID, req *dto.CreateAccountRequest) (*models.Account, error) {
	accountType, err := models.NormalizeAccountType(req.AccountType)
	if err != nil {
		return nil, ErrInvalidAccountType
	}

	if req.Balance.IsNegative() {
		return nil, validationError("opening balance cannot be negative")
	}
	if req.CreditLimit.IsNegative() {
		return nil, validationError("credit limit cannot be negative")
	}

	account := &models.Account{
		UserID:      userID,
		Name:        req.Name,
		AccountType: accountType,
		Balance:     req.Balance.Round(2),
		CreditLimit: decimal.Zero,
	}
	if account.IsCredit() {
		account.CreditLimit = req.CreditLimit.Round(2)
		account.CutoffDay = req.CutoffDay
		account.PaymentDay = req.PaymentDay
	}

	if err := account.Validate(); err != nil {
		if errors.Is(err, models.ErrInvalidAccountType) {
			return nil, ErrInvalidAccountType
		}
		return nil, validationError("%v", err)
	}

	if err := s.uow.WithinTransaction(ctx, func(repos repositories.Repositories) error {
		return repos.Accounts().Create(account)
	}); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("account created",
		"account_id", account.ID,
		"user_id", userID,
		"account_type", account.AccountType,
	)
	return account, nil
}

// GetUserAccounts returns every account of the user, archived ones included
func (s *accountService) GetUserAccounts(ctx context.Context, userID uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	err := s.uow.WithinTransaction(ctx, func(repos repositories.Repositories) error {
		var err error
		accounts, err = repos.Accounts().GetByUserID(userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get user accounts: %w", err)
	}
	return accounts, nil
}

// ArchiveAccount hides an account from new postings. Its history stays.
func (s *accountService) ArchiveAccount(ctx context.Context, userID, accountID uuid.UUID) error {
	return s.uow.WithinTransaction(ctx, func(repos repositories.Repositories) error {
		account, err := repos.Accounts().GetForUpdate(accountID)
		if err != nil {
			if errors.Is(err, repositories.ErrAccountNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to get account: %w", err)
		}
		if account.UserID != userID {
			return ErrAccountNotFound
		}
		if account.IsArchived {
			return nil
		}
		return repos.Accounts().Archive(accountID)
	})
}

// ListTransactions pages through the history of one of the user's accounts
func (s *accountService) ListTransactions(ctx context.Context, userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, error) {
	if filters.Type != "" && !models.IsValidTransactionType(filters.Type) {
		return nil, validationError("unknown transaction type %q", filters.Type)
	}
	if filters.StartDate != nil && filters.EndDate != nil && filters.EndDate.Before(*filters.StartDate) {
		return nil, validationError("end date is before start date")
	}

	var transactions []models.Transaction
	err := s.uow.WithinTransaction(ctx, func(repos repositories.Repositories) error {
		account, err := repos.Accounts().GetByID(filters.AccountID)
		if err != nil {
			if errors.Is(err, repositories.ErrAccountNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to get account: %w", err)
		}
		if account.UserID != userID {
			return ErrAccountNotFound
		}

		transactions, err = repos.Transactions().ListByAccount(filters)
		return err
	})
	if err != nil {
		return nil, err
	}
	return transactions, nil
}
