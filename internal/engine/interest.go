package engine

import (
	"time"

	"github.com/DylanZhuo/GoodLand-W1/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputeUpfrontInterest calculates the interest owed in full at
// contract start: monthlyRate * fullMonths * principal, plus a
// daily-prorated amount for the partial month using the day count of
// the month containing the last whole-month boundary.
//
// No rounding is applied here. TotalInterest is the exact sum of the
// two parts; rounding to currency precision happens at the boundary
// that surfaces the amount.
func ComputeUpfrontInterest(principal, annualRate decimal.Decimal, start, end time.Time) domain.UpfrontInterestResult {
	period := DecomposePeriod(start, end)
	monthlyRate := annualRate.Div(twelve)

	fullMonths := monthlyRate.
		Mul(decimal.NewFromInt(int64(period.FullMonths))).
		Mul(principal)

	partialMonth := decimal.Zero
	if period.RemainingDays > 0 {
		dailyRate := monthlyRate.Div(decimal.NewFromInt(int64(period.DaysInLastMonth)))
		partialMonth = dailyRate.
			Mul(decimal.NewFromInt(int64(period.RemainingDays))).
			Mul(principal)
	}

	return domain.UpfrontInterestResult{
		FullMonthsInterest:   fullMonths,
		PartialMonthInterest: partialMonth,
		TotalInterest:        fullMonths.Add(partialMonth),
		Period:               period,
	}
}

// MonthlyInterest is the flat per-month interest amount for a
// principal at an annual nominal rate.
func MonthlyInterest(principal, annualRate decimal.Decimal) decimal.Decimal {
	return principal.Mul(annualRate.Div(twelve))
}
