package billing

import (
	"testing"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func purchase(purchaseDate time.Time, total string, installments int) models.InstallmentPurchase {
	amount := decimal.RequireFromString(total)
	return models.InstallmentPurchase{
		ID:             uuid.New(),
		Description:    "Laptop",
		TotalAmount:    amount,
		Installments:   installments,
		MonthlyPayment: models.MonthlyPaymentFor(amount, installments),
		PurchaseDate:   purchaseDate,
	}
}

func aprilMayCycle(t *testing.T) Cycle {
	t.Helper()
	cycle, err := NewCalculator(time.UTC).CalculateCycle(CardConfig{CutoffDay: 20, PaymentDay: 5}, date(2024, time.May, 25, 12, 0, 0, 0))
	require.NoError(t, err)
	require.True(t, date(2024, time.April, 21, 0, 0, 0, 0).Equal(cycle.CycleStart))
	require.True(t, date(2024, time.May, 20, 23, 59, 59, 999).Equal(cycle.Cutoff))
	return cycle
}

func TestDueInstallments_ThirdInstallmentInMay(t *testing.T) {
	cycle := aprilMayCycle(t)
	p := purchase(date(2024, time.March, 15, 12, 0, 0, 0), "1800", 6)

	due := DueInstallments(cycle, []models.InstallmentPurchase{p})

	require.Len(t, due, 1)
	assert.Equal(t, p.ID, due[0].ID)
	assert.True(t, date(2024, time.May, 15, 12, 0, 0, 0).Equal(due[0].ChargeDate))
	assert.Equal(t, 3, due[0].InstallmentNumber)
	assert.Equal(t, 6, due[0].TotalInstallments)
	assert.True(t, decimal.NewFromInt(300).Equal(due[0].Amount))
	assert.True(t, decimal.NewFromInt(1800).Equal(due[0].RemainingAmount))
}

func TestDueInstallments_PrefersCycleStartMonth(t *testing.T) {
	cycle := aprilMayCycle(t)
	p := purchase(date(2024, time.February, 25, 12, 0, 0, 0), "1200", 12)

	due := DueInstallments(cycle, []models.InstallmentPurchase{p})

	require.Len(t, due, 1)
	assert.True(t, date(2024, time.April, 25, 12, 0, 0, 0).Equal(due[0].ChargeDate))
	assert.Equal(t, 3, due[0].InstallmentNumber)
}

func TestDueInstallments_NoChargeBeforePurchase(t *testing.T) {
	cycle := aprilMayCycle(t)

	// Bought on May 18 after noon: the May 18 noon candidate precedes the purchase.
	p := purchase(date(2024, time.May, 18, 15, 0, 0, 0), "600", 3)

	assert.Empty(t, DueInstallments(cycle, []models.InstallmentPurchase{p}))
}

func TestDueInstallments_SkipsFullyPaidAndCapsNumber(t *testing.T) {
	cycle := aprilMayCycle(t)

	paid := purchase(date(2024, time.January, 10, 12, 0, 0, 0), "300", 3)
	paid.PaidAmount = paid.TotalAmount
	paid.PaidInstallments = 3

	overdue := purchase(date(2023, time.December, 1, 12, 0, 0, 0), "300", 3)
	overdue.PaidAmount = decimal.NewFromInt(100)

	due := DueInstallments(cycle, []models.InstallmentPurchase{paid, overdue})

	require.Len(t, due, 1)
	assert.Equal(t, overdue.ID, due[0].ID)
	assert.Equal(t, 3, due[0].InstallmentNumber)
	assert.True(t, decimal.NewFromInt(200).Equal(due[0].RemainingAmount))
}

func TestDueInstallments_EveryActivePurchaseDueOncePerCycle(t *testing.T) {
	cycle := aprilMayCycle(t)

	var purchases []models.InstallmentPurchase
	for d := 1; d <= 31; d++ {
		purchases = append(purchases, purchase(ClampedDate(2024, time.January, d, 12, 0, 0, 0, time.UTC), "1200", 12))
	}

	due := DueInstallments(cycle, purchases)

	assert.Len(t, due, len(purchases))
	assert.True(t, decimal.NewFromInt(100*31).Equal(SumDue(due)))
}

func TestIsPaidInMonth(t *testing.T) {
	dueDate := date(2024, time.May, 15, 12, 0, 0, 0)

	tests := []struct {
		name     string
		payments []models.Transaction
		want     bool
	}{
		{
			name:     "no payments",
			payments: nil,
			want:     false,
		},
		{
			name: "transfer in same month",
			payments: []models.Transaction{
				{TransactionType: models.TransactionTypeTransfer, Date: date(2024, time.May, 2, 9, 0, 0, 0)},
			},
			want: true,
		},
		{
			name: "income in same month",
			payments: []models.Transaction{
				{TransactionType: models.TransactionTypeIncome, Date: date(2024, time.May, 31, 9, 0, 0, 0)},
			},
			want: true,
		},
		{
			name: "expense charge does not count",
			payments: []models.Transaction{
				{TransactionType: models.TransactionTypeExpense, Date: date(2024, time.May, 15, 12, 0, 0, 0)},
			},
			want: false,
		},
		{
			name: "payment in another year",
			payments: []models.Transaction{
				{TransactionType: models.TransactionTypeTransfer, Date: date(2023, time.May, 15, 12, 0, 0, 0)},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPaidInMonth(tt.payments, dueDate))
		})
	}
}

func TestAddMonths_Clamps(t *testing.T) {
	assert.True(t, date(2024, time.February, 29, 8, 0, 0, 0).Equal(AddMonths(date(2024, time.January, 31, 8, 0, 0, 0), 1)))
	assert.True(t, date(2023, time.November, 30, 0, 0, 0, 0).Equal(AddMonths(date(2024, time.March, 31, 0, 0, 0, 0), -4)))
	assert.True(t, date(2025, time.January, 15, 0, 0, 0, 0).Equal(AddMonths(date(2024, time.December, 15, 0, 0, 0, 0), 1)))
}

func TestMonthsBetweenAndDaysUntil(t *testing.T) {
	assert.Equal(t, 2, MonthsBetween(date(2024, time.May, 1, 0, 0, 0, 0), date(2024, time.March, 31, 0, 0, 0, 0)))
	assert.Equal(t, 13, MonthsBetween(date(2025, time.February, 1, 0, 0, 0, 0), date(2024, time.January, 31, 0, 0, 0, 0)))

	now := date(2024, time.June, 1, 0, 0, 0, 0)
	assert.Equal(t, 1, DaysUntil(now, now.Add(time.Minute)))
	assert.Equal(t, 0, DaysUntil(now, now))
	assert.Equal(t, -1, DaysUntil(now, now.Add(-36*time.Hour)))
}

func TestIsInstallmentPaid(t *testing.T) {
	calc := NewCalculator(time.UTC)
	cycle, err := calc.CalculateCycle(CardConfig{CutoffDay: 20, PaymentDay: 5}, date(2024, time.June, 25, 9, 0, 0, 0))
	require.NoError(t, err)

	after, until := PaymentWindow(cycle, 5)
	assert.True(t, date(2024, time.June, 5, 23, 59, 59, 999).Equal(after))
	assert.True(t, date(2024, time.July, 5, 23, 59, 59, 999).Equal(until))

	afterCutoff := []models.Transaction{
		{TransactionType: models.TransactionTypeTransfer, Date: date(2024, time.June, 25, 9, 0, 0, 0)},
	}
	assert.True(t, IsInstallmentPaid(cycle, 5, afterCutoff))

	inPaymentMonth := []models.Transaction{
		{TransactionType: models.TransactionTypeIncome, Date: date(2024, time.July, 20, 9, 0, 0, 0)},
	}
	assert.True(t, IsInstallmentPaid(cycle, 5, inPaymentMonth))

	previousCycle := []models.Transaction{
		{TransactionType: models.TransactionTypeTransfer, Date: date(2024, time.June, 5, 10, 0, 0, 0)},
		{TransactionType: models.TransactionTypeExpense, Date: date(2024, time.June, 15, 12, 0, 0, 0)},
	}
	assert.False(t, IsInstallmentPaid(cycle, 5, previousCycle))
}

func TestElapsedInstallments(t *testing.T) {
	purchaseDate := date(2024, time.March, 15, 10, 30, 0, 0)

	tests := []struct {
		name  string
		today time.Time
		want  int
	}{
		{"before purchase", date(2024, time.March, 14, 12, 0, 0, 0), 0},
		{"purchase day", date(2024, time.March, 15, 8, 0, 0, 0), 1},
		{"next month before charge day", date(2024, time.April, 14, 12, 0, 0, 0), 1},
		{"next month on charge day", date(2024, time.April, 15, 0, 0, 0, 0), 2},
		{"capped", date(2025, time.January, 20, 0, 0, 0, 0), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ElapsedInstallments(purchaseDate, tt.today, 6))
		})
	}
}

func TestElapsedInstallments_ClampsChargeDay(t *testing.T) {
	purchaseDate := date(2024, time.January, 31, 12, 0, 0, 0)

	assert.Equal(t, 2, ElapsedInstallments(purchaseDate, date(2024, time.February, 29, 9, 0, 0, 0), 12))
	assert.Equal(t, 1, ElapsedInstallments(purchaseDate, date(2024, time.February, 28, 9, 0, 0, 0), 12))
}

func TestInstallmentChargeDateAndAmount(t *testing.T) {
	p := purchase(date(2024, time.January, 31, 18, 0, 0, 0), "1000", 3)

	assert.True(t, date(2024, time.January, 31, 12, 0, 0, 0).Equal(InstallmentChargeDate(p.PurchaseDate, 1)))
	assert.True(t, date(2024, time.February, 29, 12, 0, 0, 0).Equal(InstallmentChargeDate(p.PurchaseDate, 2)))
	assert.True(t, date(2024, time.March, 31, 12, 0, 0, 0).Equal(InstallmentChargeDate(p.PurchaseDate, 3)))

	assert.Equal(t, "333.33", InstallmentChargeAmount(p, 1).StringFixed(2))
	assert.Equal(t, "333.34", InstallmentChargeAmount(p, 3).StringFixed(2))
}
