package engine

import "github.com/shopspring/decimal"

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// RoundCurrency rounds to 2 decimal places, half up. All currency
// rounding in the system goes through here, applied only where an
// amount is surfaced; intermediate accumulation stays unrounded.
func RoundCurrency(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// Percent converts a fraction to a percentage rounded to 2 decimals.
func Percent(fraction decimal.Decimal) decimal.Decimal {
	return RoundCurrency(fraction.Mul(hundred))
}

// SafeRatio divides numerator by denominator, substituting a divisor
// of 1 when the denominator is zero so the ratio collapses to the
// numerator (zero in practice) instead of blowing up.
func SafeRatio(numerator, denominator decimal.Decimal) decimal.Decimal {
	if denominator.IsZero() {
		return numerator
	}
	return numerator.Div(denominator)
}
