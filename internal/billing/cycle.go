package billing

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidBillingDay = errors.New("billing day must be between 1 and 31")

// CardConfig holds the statement days of a credit card.
type CardConfig struct {
	CutoffDay  int
	PaymentDay int
}

// Validate checks both days are real days of a month.
func (c CardConfig) Validate() error {
	if c.CutoffDay < 1 || c.CutoffDay > 31 {
		return fmt.Errorf("cutoff day %d: %w", c.CutoffDay, ErrInvalidBillingDay)
	}
	if c.PaymentDay < 1 || c.PaymentDay > 31 {
		return fmt.Errorf("payment day %d: %w", c.PaymentDay, ErrInvalidBillingDay)
	}
	return nil
}

// Cycle is the billing period whose payment is the next one due at the
// reference time.
type Cycle struct {
	CycleStart       time.Time `json:"cycle_start"`
	Cutoff           time.Time `json:"cutoff_date"`
	PaymentDate      time.Time `json:"payment_date"`
	IsBeforeCutoff   bool      `json:"is_before_cutoff"`
	DaysUntilCutoff  int       `json:"days_until_cutoff"`
	DaysUntilPayment int       `json:"days_until_payment"`
}

// Contains reports whether t falls inside [CycleStart, Cutoff].
func (c Cycle) Contains(t time.Time) bool {
	return !t.Before(c.CycleStart) && !t.After(c.Cutoff)
}

// Calculator derives billing cycles in a fixed location.
type Calculator struct {
	loc *time.Location
}

// NewCalculator returns a calculator working in loc; nil means UTC.
func NewCalculator(loc *time.Location) *Calculator {
	if loc == nil {
		loc = time.UTC
	}
	return &Calculator{loc: loc}
}

// Location returns the calculator's time zone.
func (c *Calculator) Location() *time.Location {
	return c.loc
}

// CalculateCycle resolves the cycle for cfg at ref.
//
// The payment date falls in ref's month while ref's day has not passed the
// payment day, otherwise in the next month. The cutoff is the last cutoff
// strictly before that payment date, and the cycle starts the day after the
// previous cutoff.
func (c *Calculator) CalculateCycle(cfg CardConfig, ref time.Time) (Cycle, error) {
	if err := cfg.Validate(); err != nil {
		return Cycle{}, err
	}

	ref = ref.In(c.loc)

	paymentYear, paymentMonth := ref.Year(), ref.Month()
	if ref.Day() > cfg.PaymentDay {
		paymentMonth++
	}
	paymentDate := ClampedDate(paymentYear, paymentMonth, cfg.PaymentDay, 12, 0, 0, 0, c.loc)

	cutoff := cutoffIn(paymentDate.Year(), paymentDate.Month(), cfg.CutoffDay, c.loc)
	if !cutoff.Before(paymentDate) {
		cutoff = cutoffIn(paymentDate.Year(), paymentDate.Month()-1, cfg.CutoffDay, c.loc)
	}

	prevCutoff := cutoffIn(cutoff.Year(), cutoff.Month()-1, cfg.CutoffDay, c.loc)
	cycleStart := StartOfDay(prevCutoff).AddDate(0, 0, 1)

	return Cycle{
		CycleStart:       cycleStart,
		Cutoff:           cutoff,
		PaymentDate:      paymentDate,
		IsBeforeCutoff:   !ref.After(cutoff),
		DaysUntilCutoff:  DaysUntil(ref, cutoff),
		DaysUntilPayment: DaysUntil(ref, paymentDate),
	}, nil
}

// PreviousPaymentDate is the payment date one cycle before c.
func (c Cycle) PreviousPaymentDate(paymentDay int) time.Time {
	p := c.PaymentDate
	return ClampedDate(p.Year(), p.Month()-1, paymentDay, 12, 0, 0, 0, p.Location())
}

func cutoffIn(year int, month time.Month, cutoffDay int, loc *time.Location) time.Time {
	return ClampedDate(year, month, cutoffDay, 23, 59, 59, int(999*time.Millisecond), loc)
}

// IsCutoffDay reports whether t is the cutoff day of a card with cutoffDay,
// treating days beyond the month's end as its last day.
func IsCutoffDay(t time.Time, cutoffDay int) bool {
	last := DaysInMonth(t.Year(), t.Month(), t.Location())
	if cutoffDay > last {
		return t.Day() == last
	}
	return t.Day() == cutoffDay
}

// StatementDueDate returns the payment due date of a statement closing on
// cycleEnd. Without a payment day it is twenty days later; a computed date on
// or before today moves one month forward.
func StatementDueDate(cycleEnd, today time.Time, paymentDay int) time.Time {
	if paymentDay < 1 {
		return cycleEnd.AddDate(0, 0, 20)
	}

	due := ClampedDate(cycleEnd.Year(), cycleEnd.Month(), paymentDay, 0, 0, 0, 0, cycleEnd.Location())
	if !due.After(StartOfDay(today)) {
		due = ClampedDate(cycleEnd.Year(), cycleEnd.Month()+1, paymentDay, 0, 0, 0, 0, cycleEnd.Location())
	}
	return due
}
