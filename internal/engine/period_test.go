package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/DylanZhuo/GoodLand-W1/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestDecomposePeriod(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected domain.ContractPeriod
	}{
		{
			name:  "three full months plus five days",
			start: date(2024, time.January, 15),
			end:   date(2024, time.April, 20),
			expected: domain.ContractPeriod{
				FullMonths:      3,
				RemainingDays:   5,
				DaysInLastMonth: 30,
				TotalDays:       96,
			},
		},
		{
			name:  "month-end clamping through leap February",
			start: date(2024, time.January, 31),
			end:   date(2024, time.March, 1),
			expected: domain.ContractPeriod{
				FullMonths:      1,
				RemainingDays:   1,
				DaysInLastMonth: 29,
				TotalDays:       30,
			},
		},
		{
			name:  "exact whole months leave no residual",
			start: date(2024, time.January, 15),
			end:   date(2024, time.March, 15),
			expected: domain.ContractPeriod{
				FullMonths:      2,
				RemainingDays:   0,
				DaysInLastMonth: 31,
				TotalDays:       60,
			},
		},
		{
			name:  "under one month",
			start: date(2024, time.June, 1),
			end:   date(2024, time.June, 10),
			expected: domain.ContractPeriod{
				FullMonths:      0,
				RemainingDays:   9,
				DaysInLastMonth: 30,
				TotalDays:       9,
			},
		},
		{
			name:  "equal dates degenerate to zero",
			start: date(2024, time.June, 1),
			end:   date(2024, time.June, 1),
			expected: domain.ContractPeriod{
				FullMonths:      0,
				RemainingDays:   0,
				DaysInLastMonth: 30,
				TotalDays:       0,
			},
		},
		{
			name:  "inverted range degenerates without error",
			start: date(2024, time.June, 10),
			end:   date(2024, time.June, 1),
			expected: domain.ContractPeriod{
				FullMonths:      0,
				RemainingDays:   0,
				DaysInLastMonth: 30,
				TotalDays:       0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecomposePeriod(tt.start, tt.end))
		})
	}
}

func TestAddMonthClamped(t *testing.T) {
	tests := []struct {
		name     string
		in       time.Time
		expected time.Time
	}{
		{"mid-month keeps day", date(2024, time.January, 15), date(2024, time.February, 15)},
		{"jan 31 clamps to leap feb 29", date(2024, time.January, 31), date(2024, time.February, 29)},
		{"jan 31 clamps to feb 28 off leap year", date(2023, time.January, 31), date(2023, time.February, 28)},
		{"clamped cursor walks on from its own day", date(2024, time.February, 29), date(2024, time.March, 29)},
		{"december rolls into next year", date(2024, time.December, 31), date(2025, time.January, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, addMonthClamped(tt.in))
		})
	}
}

func TestDaysUntil(t *testing.T) {
	assert.Equal(t, 5, DaysUntil(date(2024, time.April, 15), date(2024, time.April, 20)))
	assert.Equal(t, 0, DaysUntil(date(2024, time.April, 15), date(2024, time.April, 15)))
	assert.Equal(t, -5, DaysUntil(date(2024, time.April, 20), date(2024, time.April, 15)))
}

func TestMonthBounds(t *testing.T) {
	now := date(2025, time.January, 17)

	first, last := monthBounds(now, 0)
	assert.Equal(t, date(2025, time.January, 1), first)
	assert.Equal(t, date(2025, time.January, 31), last)

	first, last = monthBounds(now, 1)
	assert.Equal(t, date(2025, time.February, 1), first)
	assert.Equal(t, date(2025, time.February, 28), last)

	first, last = monthBounds(now, 12)
	assert.Equal(t, date(2026, time.January, 1), first)
	assert.Equal(t, date(2026, time.January, 31), last)
}
