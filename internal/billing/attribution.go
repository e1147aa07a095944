package billing

import (
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DueInstallment is one MSI monthly charge that falls inside a cycle.
type DueInstallment struct {
	ID                uuid.UUID       `json:"id"`
	Description       string          `json:"description"`
	Amount            decimal.Decimal `json:"amount"`
	ChargeDate        time.Time       `json:"charge_date"`
	InstallmentNumber int             `json:"installment_number"`
	TotalInstallments int             `json:"total_installments"`
	RemainingAmount   decimal.Decimal `json:"remaining_amount"`
}

// DueInstallments returns the purchases with a monthly charge inside cycle.
// Fully paid purchases never produce a charge.
func DueInstallments(cycle Cycle, purchases []models.InstallmentPurchase) []DueInstallment {
	due := make([]DueInstallment, 0, len(purchases))

	for _, p := range purchases {
		if p.PaidAmount.GreaterThanOrEqual(p.TotalAmount) {
			continue
		}

		chargeDate, ok := ChargeDateInCycle(cycle, p.PurchaseDate)
		if !ok {
			continue
		}

		number := MonthsBetween(chargeDate, p.PurchaseDate.In(chargeDate.Location())) + 1
		if number > p.Installments {
			number = p.Installments
		}

		due = append(due, DueInstallment{
			ID:                p.ID,
			Description:       p.Description,
			Amount:            p.MonthlyPayment,
			ChargeDate:        chargeDate,
			InstallmentNumber: number,
			TotalInstallments: p.Installments,
			RemainingAmount:   p.Remaining(),
		})
	}

	return due
}

// ChargeDateInCycle finds the monthly charge of a purchase made at
// purchaseDate that lands inside cycle. Candidates are the purchase's day of
// month, at noon, in the cycle start's month and in the cutoff's month.
func ChargeDateInCycle(cycle Cycle, purchaseDate time.Time) (time.Time, bool) {
	loc := cycle.CycleStart.Location()
	chargeDay := purchaseDate.In(loc).Day()

	candidates := []time.Time{
		ClampedDate(cycle.CycleStart.Year(), cycle.CycleStart.Month(), chargeDay, 12, 0, 0, 0, loc),
		ClampedDate(cycle.Cutoff.Year(), cycle.Cutoff.Month(), chargeDay, 12, 0, 0, 0, loc),
	}

	for _, candidate := range candidates {
		if cycle.Contains(candidate) && !candidate.Before(purchaseDate) {
			return candidate, true
		}
	}
	return time.Time{}, false
}

// IsPaidInMonth reports whether any income or transfer payment falls in the
// calendar month of due. Expense rows are the original charge, not a payment.
func IsPaidInMonth(payments []models.Transaction, due time.Time) bool {
	for _, t := range payments {
		if t.TransactionType == models.TransactionTypeExpense {
			continue
		}
		if SameMonth(t.Date.In(due.Location()), due) {
			return true
		}
	}
	return false
}

// PaymentWindow is the span (after, until] whose payments settle cycle: from
// the end of the previous payment day through the end of this one.
func PaymentWindow(cycle Cycle, paymentDay int) (after, until time.Time) {
	return EndOfDay(cycle.PreviousPaymentDate(paymentDay)), EndOfDay(cycle.PaymentDate)
}

// IsInstallmentPaid reports whether an MSI charge of cycle already has a
// payment, either inside the cycle's payment window or in the payment month.
func IsInstallmentPaid(cycle Cycle, paymentDay int, payments []models.Transaction) bool {
	after, until := PaymentWindow(cycle, paymentDay)
	for _, t := range payments {
		if t.TransactionType == models.TransactionTypeExpense {
			continue
		}
		d := t.Date.In(until.Location())
		if d.After(after) && !d.After(until) {
			return true
		}
	}
	return IsPaidInMonth(payments, cycle.PaymentDate)
}

// SumDue totals the amounts of due installments.
func SumDue(items []DueInstallment) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}

// ElapsedInstallments is how many monthly charges of a purchase made at
// purchaseDate have come due by today: one per calendar month started, plus
// the current month's once its charge day is reached. Capped at installments.
func ElapsedInstallments(purchaseDate, today time.Time, installments int) int {
	purchaseDate = purchaseDate.In(today.Location())
	if today.Before(StartOfDay(purchaseDate)) {
		return 0
	}

	count := MonthsBetween(today, purchaseDate)
	chargeDay := purchaseDate.Day()
	if last := DaysInMonth(today.Year(), today.Month(), today.Location()); chargeDay > last {
		chargeDay = last
	}
	if today.Day() >= chargeDay {
		count++
	}

	if count > installments {
		count = installments
	}
	if count < 0 {
		count = 0
	}
	return count
}

// InstallmentChargeDate is the day the n-th monthly charge (1-based) of a
// purchase lands on, at noon.
func InstallmentChargeDate(purchaseDate time.Time, n int) time.Time {
	shifted := AddMonths(StartOfDay(purchaseDate), n-1)
	return shifted.Add(12 * time.Hour)
}

// InstallmentChargeAmount is the monthly payment for every charge but the
// last, which absorbs the rounding difference.
func InstallmentChargeAmount(p models.InstallmentPurchase, n int) decimal.Decimal {
	if n < p.Installments {
		return p.MonthlyPayment
	}
	previous := p.MonthlyPayment.Mul(decimal.NewFromInt(int64(p.Installments - 1)))
	return p.TotalAmount.Sub(previous)
}
