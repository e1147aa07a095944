package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()
	destinationID := uuid.New()
	categoryID := uuid.New()

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     error
		errMsg      string
	}{
		{
			name: "valid expense",
			transaction: Transaction{
				UserID:          userID,
				AccountID:       accountID,
				TransactionType: TransactionTypeExpense,
				Amount:          decimal.NewFromFloat(42.50),
				CategoryID:      &categoryID,
			},
		},
		{
			name: "valid transfer",
			transaction: Transaction{
				UserID:               userID,
				AccountID:            accountID,
				DestinationAccountID: &destinationID,
				TransactionType:      TransactionTypeTransfer,
				Amount:               decimal.NewFromInt(300),
			},
		},
		{
			name: "zero amount",
			transaction: Transaction{
				UserID:          userID,
				AccountID:       accountID,
				TransactionType: TransactionTypeIncome,
				Amount:          decimal.Zero,
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "unknown type",
			transaction: Transaction{
				UserID:          userID,
				AccountID:       accountID,
				TransactionType: "refund",
				Amount:          decimal.NewFromInt(1),
			},
			wantErr: ErrInvalidTransactionType,
		},
		{
			name: "transfer without destination",
			transaction: Transaction{
				UserID:          userID,
				AccountID:       accountID,
				TransactionType: TransactionTypeTransfer,
				Amount:          decimal.NewFromInt(1),
			},
			wantErr: ErrMissingDestination,
		},
		{
			name: "transfer with category",
			transaction: Transaction{
				UserID:               userID,
				AccountID:            accountID,
				DestinationAccountID: &destinationID,
				CategoryID:           &categoryID,
				TransactionType:      TransactionTypeTransfer,
				Amount:               decimal.NewFromInt(1),
			},
			wantErr: ErrTransferCategory,
		},
		{
			name: "expense with destination",
			transaction: Transaction{
				UserID:               userID,
				AccountID:            accountID,
				DestinationAccountID: &destinationID,
				TransactionType:      TransactionTypeExpense,
				Amount:               decimal.NewFromInt(1),
			},
			wantErr: ErrDestinationOnNonTransfer,
		},
		{
			name: "missing account",
			transaction: Transaction{
				UserID:          userID,
				TransactionType: TransactionTypeExpense,
				Amount:          decimal.NewFromInt(1),
			},
			errMsg: "account ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestTransaction_Normalize(t *testing.T) {
	destinationID := uuid.New()
	categoryID := uuid.New()

	transfer := Transaction{TransactionType: TransactionTypeTransfer, DestinationAccountID: &destinationID, CategoryID: &categoryID}
	transfer.Normalize()
	assert.Nil(t, transfer.CategoryID)
	assert.NotNil(t, transfer.DestinationAccountID)

	expense := Transaction{TransactionType: TransactionTypeExpense, DestinationAccountID: &destinationID, CategoryID: &categoryID}
	expense.Normalize()
	assert.Nil(t, expense.DestinationAccountID)
	assert.NotNil(t, expense.CategoryID)
}

func TestTransaction_Helpers(t *testing.T) {
	accountID := uuid.New()
	destinationID := uuid.New()
	statementID := uuid.New()

	transfer := Transaction{AccountID: accountID, DestinationAccountID: &destinationID, TransactionType: TransactionTypeTransfer}
	assert.Equal(t, destinationID, transfer.TargetAccountID())
	assert.True(t, transfer.IsPaymentType())
	assert.False(t, transfer.IsBilled())

	expense := Transaction{AccountID: accountID, TransactionType: TransactionTypeExpense, StatementID: &statementID}
	assert.Equal(t, accountID, expense.TargetAccountID())
	assert.False(t, expense.IsPaymentType())
	assert.True(t, expense.IsBilled())
}

func TestTransaction_BeforeCreateStoresUTC(t *testing.T) {
	loc := time.FixedZone("UTC-6", -6*60*60)
	txn := Transaction{
		UserID:          uuid.New(),
		AccountID:       uuid.New(),
		TransactionType: TransactionTypeIncome,
		Amount:          decimal.NewFromInt(10),
		Date:            time.Date(2024, time.June, 1, 22, 0, 0, 0, loc),
	}

	require.NoError(t, txn.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, txn.ID)
	assert.Equal(t, time.UTC, txn.Date.Location())
	assert.Equal(t, 2, txn.Date.Day())
}
