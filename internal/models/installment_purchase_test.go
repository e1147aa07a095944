package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPurchase(total string, installments int) *InstallmentPurchase {
	amount := decimal.RequireFromString(total)
	return &InstallmentPurchase{
		UserID:         uuid.New(),
		AccountID:      uuid.New(),
		Description:    "Refrigerator",
		TotalAmount:    amount,
		Installments:   installments,
		MonthlyPayment: MonthlyPaymentFor(amount, installments),
		PurchaseDate:   time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestMonthlyPaymentFor(t *testing.T) {
	assert.Equal(t, "300.00", MonthlyPaymentFor(decimal.NewFromInt(1800), 6).StringFixed(2))
	assert.Equal(t, "333.33", MonthlyPaymentFor(decimal.NewFromInt(1000), 3).StringFixed(2))
	assert.True(t, MonthlyPaymentFor(decimal.NewFromInt(1000), 0).IsZero())
}

func TestInstallmentPurchase_ApplyPayment(t *testing.T) {
	p := newPurchase("1800", 6)

	require.NoError(t, p.ApplyPayment(decimal.NewFromInt(300)))
	assert.Equal(t, 1, p.PaidInstallments)
	assert.Equal(t, "300.00", p.PaidAmount.StringFixed(2))
	assert.Equal(t, "1500.00", p.Remaining().StringFixed(2))

	require.NoError(t, p.ApplyPayment(decimal.NewFromInt(600)))
	assert.Equal(t, 3, p.PaidInstallments)
	assert.False(t, p.IsFullyPaid())
}

func TestInstallmentPurchase_ApplyPaymentRejectsOverpayment(t *testing.T) {
	p := newPurchase("1800", 6)
	p.PaidAmount = decimal.NewFromInt(1700)
	p.PaidInstallments = 5

	err := p.ApplyPayment(decimal.RequireFromString("100.06"))
	assert.ErrorIs(t, err, ErrInstallmentOverpayment)
	assert.Equal(t, "1700.00", p.PaidAmount.StringFixed(2))
	assert.Equal(t, 5, p.PaidInstallments)

	require.NoError(t, p.ApplyPayment(decimal.RequireFromString("100.05")))
	assert.True(t, p.PaidAmount.Equal(p.TotalAmount))
	assert.Equal(t, 6, p.PaidInstallments)
}

func TestInstallmentPurchase_ApplyPaymentWhenSettled(t *testing.T) {
	p := newPurchase("1000", 3)
	p.PaidAmount = decimal.RequireFromString("999.99")
	p.PaidInstallments = 3

	assert.True(t, p.IsFullyPaid())
	assert.ErrorIs(t, p.ApplyPayment(decimal.RequireFromString("0.01")), ErrInstallmentSettled)
}

func TestInstallmentPurchase_LastRoundedPaymentCompletesPlan(t *testing.T) {
	p := newPurchase("1000", 3)

	for i := 0; i < 2; i++ {
		require.NoError(t, p.ApplyPayment(p.NextPaymentAmount()))
	}
	assert.Equal(t, "333.33", p.NextPaymentAmount().StringFixed(2))

	require.NoError(t, p.ApplyPayment(p.NextPaymentAmount()))
	assert.True(t, p.IsFullyPaid())
	assert.Equal(t, 3, p.PaidInstallments)
	assert.Equal(t, "999.99", p.PaidAmount.StringFixed(2))
}

func TestInstallmentPurchase_RevertPayment(t *testing.T) {
	p := newPurchase("1800", 6)
	require.NoError(t, p.ApplyPayment(decimal.NewFromInt(300)))
	require.NoError(t, p.ApplyPayment(decimal.NewFromInt(300)))

	p.RevertPayment(decimal.NewFromInt(300))
	assert.Equal(t, 1, p.PaidInstallments)
	assert.Equal(t, "300.00", p.PaidAmount.StringFixed(2))

	p.RevertPayment(decimal.NewFromInt(500))
	assert.Equal(t, 0, p.PaidInstallments)
	assert.True(t, p.PaidAmount.IsZero())
}

func TestInstallmentPurchase_RevertFinalPayment(t *testing.T) {
	p := newPurchase("1000", 3)
	for i := 0; i < 3; i++ {
		require.NoError(t, p.ApplyPayment(p.NextPaymentAmount()))
	}

	p.RevertPayment(decimal.RequireFromString("333.33"))

	assert.False(t, p.IsFullyPaid())
	assert.Equal(t, 2, p.PaidInstallments)
	assert.Equal(t, "666.66", p.PaidAmount.StringFixed(2))
}

func TestInstallmentPurchase_RecordCharges(t *testing.T) {
	p := newPurchase("1000", 3)

	assert.True(t, p.RecordCharges(2))
	assert.Equal(t, 2, p.ChargedInstallments)
	assert.Zero(t, p.PaidInstallments)
	assert.True(t, p.PaidAmount.IsZero())

	assert.False(t, p.RecordCharges(1))
	assert.Equal(t, 2, p.ChargedInstallments)

	assert.True(t, p.RecordCharges(10))
	assert.Equal(t, 3, p.ChargedInstallments)
	assert.False(t, p.IsFullyPaid())
}

func TestInstallmentPurchase_Validate(t *testing.T) {
	p := newPurchase("1000", 3)
	require.NoError(t, p.Validate())

	p.Installments = 0
	assert.ErrorIs(t, p.Validate(), ErrInvalidInstallments)

	p = newPurchase("1000", 3)
	p.TotalAmount = decimal.Zero
	assert.ErrorIs(t, p.Validate(), ErrInvalidAmount)
}
