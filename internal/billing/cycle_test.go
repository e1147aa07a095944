package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d, h, min, s, ms int) time.Time {
	return time.Date(y, m, d, h, min, s, ms*int(time.Millisecond), time.UTC)
}

func TestCalculateCycle(t *testing.T) {
	calc := NewCalculator(time.UTC)

	tests := []struct {
		name        string
		cfg         CardConfig
		ref         time.Time
		wantStart   time.Time
		wantCutoff  time.Time
		wantPayment time.Time
		wantBefore  bool
	}{
		{
			name:        "payment day already passed this month",
			cfg:         CardConfig{CutoffDay: 20, PaymentDay: 5},
			ref:         date(2024, time.June, 10, 12, 0, 0, 0),
			wantStart:   date(2024, time.May, 21, 0, 0, 0, 0),
			wantCutoff:  date(2024, time.June, 20, 23, 59, 59, 999),
			wantPayment: date(2024, time.July, 5, 12, 0, 0, 0),
			wantBefore:  true,
		},
		{
			name:        "after cutoff but before payment",
			cfg:         CardConfig{CutoffDay: 20, PaymentDay: 5},
			ref:         date(2024, time.July, 2, 9, 0, 0, 0),
			wantStart:   date(2024, time.May, 21, 0, 0, 0, 0),
			wantCutoff:  date(2024, time.June, 20, 23, 59, 59, 999),
			wantPayment: date(2024, time.July, 5, 12, 0, 0, 0),
			wantBefore:  false,
		},
		{
			name:        "payment day after cutoff day in same month",
			cfg:         CardConfig{CutoffDay: 5, PaymentDay: 25},
			ref:         date(2024, time.June, 10, 8, 0, 0, 0),
			wantStart:   date(2024, time.May, 6, 0, 0, 0, 0),
			wantCutoff:  date(2024, time.June, 5, 23, 59, 59, 999),
			wantPayment: date(2024, time.June, 25, 12, 0, 0, 0),
			wantBefore:  false,
		},
		{
			name:        "cutoff 31 clamps to leap february",
			cfg:         CardConfig{CutoffDay: 31, PaymentDay: 10},
			ref:         date(2024, time.February, 20, 12, 0, 0, 0),
			wantStart:   date(2024, time.February, 1, 0, 0, 0, 0),
			wantCutoff:  date(2024, time.February, 29, 23, 59, 59, 999),
			wantPayment: date(2024, time.March, 10, 12, 0, 0, 0),
			wantBefore:  true,
		},
		{
			name:        "cutoff 30 clamps to february",
			cfg:         CardConfig{CutoffDay: 30, PaymentDay: 15},
			ref:         date(2023, time.March, 5, 12, 0, 0, 0),
			wantStart:   date(2023, time.January, 31, 0, 0, 0, 0),
			wantCutoff:  date(2023, time.February, 28, 23, 59, 59, 999),
			wantPayment: date(2023, time.March, 15, 12, 0, 0, 0),
			wantBefore:  false,
		},
		{
			name:        "cutoff and payment on the same day",
			cfg:         CardConfig{CutoffDay: 15, PaymentDay: 15},
			ref:         date(2024, time.June, 1, 12, 0, 0, 0),
			wantStart:   date(2024, time.April, 16, 0, 0, 0, 0),
			wantCutoff:  date(2024, time.May, 15, 23, 59, 59, 999),
			wantPayment: date(2024, time.June, 15, 12, 0, 0, 0),
			wantBefore:  false,
		},
		{
			name:        "december rolls into next year",
			cfg:         CardConfig{CutoffDay: 28, PaymentDay: 10},
			ref:         date(2024, time.December, 15, 12, 0, 0, 0),
			wantStart:   date(2024, time.November, 29, 0, 0, 0, 0),
			wantCutoff:  date(2024, time.December, 28, 23, 59, 59, 999),
			wantPayment: date(2025, time.January, 10, 12, 0, 0, 0),
			wantBefore:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cycle, err := calc.CalculateCycle(tt.cfg, tt.ref)
			require.NoError(t, err)

			assert.True(t, tt.wantStart.Equal(cycle.CycleStart), "cycle start: got %s", cycle.CycleStart)
			assert.True(t, tt.wantCutoff.Equal(cycle.Cutoff), "cutoff: got %s", cycle.Cutoff)
			assert.True(t, tt.wantPayment.Equal(cycle.PaymentDate), "payment: got %s", cycle.PaymentDate)
			assert.Equal(t, tt.wantBefore, cycle.IsBeforeCutoff)
		})
	}
}

func TestCalculateCycle_DayCounts(t *testing.T) {
	calc := NewCalculator(time.UTC)

	cycle, err := calc.CalculateCycle(CardConfig{CutoffDay: 20, PaymentDay: 5}, date(2024, time.June, 10, 12, 0, 0, 0))
	require.NoError(t, err)

	assert.Equal(t, 11, cycle.DaysUntilCutoff)
	assert.Equal(t, 25, cycle.DaysUntilPayment)
}

func TestCalculateCycle_InvalidDays(t *testing.T) {
	calc := NewCalculator(nil)

	for _, cfg := range []CardConfig{
		{CutoffDay: 0, PaymentDay: 5},
		{CutoffDay: 20, PaymentDay: 32},
		{CutoffDay: -1, PaymentDay: -1},
	} {
		_, err := calc.CalculateCycle(cfg, time.Now())
		assert.ErrorIs(t, err, ErrInvalidBillingDay)
	}
}

func TestCalculateCycle_OrderingHoldsForEveryConfiguration(t *testing.T) {
	calc := NewCalculator(time.UTC)
	start := date(2023, time.January, 1, 12, 0, 0, 0)

	for cutoff := 1; cutoff <= 31; cutoff++ {
		for payment := 1; payment <= 31; payment++ {
			cfg := CardConfig{CutoffDay: cutoff, PaymentDay: payment}
			for d := 0; d < 730; d += 7 {
				ref := start.AddDate(0, 0, d)
				cycle, err := calc.CalculateCycle(cfg, ref)
				require.NoError(t, err)

				if cycle.CycleStart.After(cycle.Cutoff) || !cycle.Cutoff.Before(cycle.PaymentDate) {
					t.Fatalf("cutoff=%d payment=%d ref=%s: start=%s cutoff=%s payment=%s",
						cutoff, payment, ref, cycle.CycleStart, cycle.Cutoff, cycle.PaymentDate)
				}
				if cycle.Cutoff.Sub(cycle.CycleStart) > 31*day {
					t.Fatalf("cutoff=%d payment=%d ref=%s: cycle longer than a month", cutoff, payment, ref)
				}
			}
		}
	}
}

func TestCalculateCycle_UsesCalculatorLocation(t *testing.T) {
	loc := time.FixedZone("UTC-6", -6*60*60)
	calc := NewCalculator(loc)

	// 03:00 UTC on June 6 is still June 5 in UTC-6.
	cycle, err := calc.CalculateCycle(CardConfig{CutoffDay: 20, PaymentDay: 5}, date(2024, time.June, 6, 3, 0, 0, 0))
	require.NoError(t, err)

	assert.Equal(t, time.June, cycle.PaymentDate.Month())
	assert.Equal(t, 5, cycle.PaymentDate.Day())
	assert.Equal(t, loc, cycle.PaymentDate.Location())
}

func TestIsCutoffDay(t *testing.T) {
	assert.True(t, IsCutoffDay(date(2024, time.June, 20, 0, 0, 0, 0), 20))
	assert.False(t, IsCutoffDay(date(2024, time.June, 21, 0, 0, 0, 0), 20))
	assert.True(t, IsCutoffDay(date(2023, time.February, 28, 0, 0, 0, 0), 31))
	assert.True(t, IsCutoffDay(date(2024, time.February, 29, 0, 0, 0, 0), 30))
	assert.False(t, IsCutoffDay(date(2024, time.February, 28, 0, 0, 0, 0), 30))
	assert.True(t, IsCutoffDay(date(2024, time.April, 30, 0, 0, 0, 0), 31))
}

func TestStatementDueDate(t *testing.T) {
	today := date(2024, time.June, 20, 0, 0, 0, 0)

	tests := []struct {
		name       string
		paymentDay int
		want       time.Time
	}{
		{"payment day later this month", 25, date(2024, time.June, 25, 0, 0, 0, 0)},
		{"payment day already passed", 5, date(2024, time.July, 5, 0, 0, 0, 0)},
		{"payment day equals today", 20, date(2024, time.July, 20, 0, 0, 0, 0)},
		{"no payment day", 0, date(2024, time.July, 10, 0, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StatementDueDate(today, today, tt.paymentDay)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}
