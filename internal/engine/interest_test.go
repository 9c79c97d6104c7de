package engine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeUpfrontInterest(t *testing.T) {
	principal := decimal.NewFromInt(100000)
	rate := decimal.NewFromFloat(0.12) // monthly 1%

	result := ComputeUpfrontInterest(principal, rate, date(2024, time.January, 15), date(2024, time.April, 20))

	// 3 full months at 1% plus 5 days of April (30-day month).
	assert.True(t, result.FullMonthsInterest.Equal(decimal.NewFromInt(3000)),
		"full months interest = %s", result.FullMonthsInterest)
	assert.True(t, RoundCurrency(result.PartialMonthInterest).Equal(decimal.NewFromFloat(166.67)),
		"partial month interest = %s", result.PartialMonthInterest)
	assert.Equal(t, 3, result.Period.FullMonths)
	assert.Equal(t, 5, result.Period.RemainingDays)
}

func TestComputeUpfrontInterest_Additivity(t *testing.T) {
	tests := []struct {
		name      string
		principal decimal.Decimal
		rate      decimal.Decimal
		start     time.Time
		end       time.Time
	}{
		{"typical term", decimal.NewFromInt(500000), decimal.NewFromFloat(0.1085), date(2024, time.March, 7), date(2025, time.June, 19)},
		{"month-end start", decimal.NewFromInt(250000), decimal.NewFromFloat(0.095), date(2024, time.January, 31), date(2024, time.August, 14)},
		{"short stub only", decimal.NewFromInt(80000), decimal.NewFromFloat(0.12), date(2024, time.May, 1), date(2024, time.May, 20)},
		{"zero principal", decimal.Zero, decimal.NewFromFloat(0.12), date(2024, time.May, 1), date(2025, time.May, 1)},
		{"zero rate", decimal.NewFromInt(100000), decimal.Zero, date(2024, time.May, 1), date(2025, time.May, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeUpfrontInterest(tt.principal, tt.rate, tt.start, tt.end)

			// Exact, unrounded additivity.
			assert.True(t, result.TotalInterest.Equal(result.FullMonthsInterest.Add(result.PartialMonthInterest)))
			assert.False(t, result.FullMonthsInterest.IsNegative())
			assert.False(t, result.PartialMonthInterest.IsNegative())
		})
	}
}

func TestComputeUpfrontInterest_WholeMonthsNoPartial(t *testing.T) {
	result := ComputeUpfrontInterest(
		decimal.NewFromInt(100000), decimal.NewFromFloat(0.12),
		date(2024, time.January, 15), date(2024, time.March, 15))

	assert.True(t, result.PartialMonthInterest.IsZero())
	assert.True(t, result.TotalInterest.Equal(decimal.NewFromInt(2000)))
}

func TestMonthlyInterest(t *testing.T) {
	amount := MonthlyInterest(decimal.NewFromInt(100000), decimal.NewFromFloat(0.12))
	assert.True(t, amount.Equal(decimal.NewFromInt(1000)))
}
