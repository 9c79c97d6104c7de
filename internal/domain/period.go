package domain

import "github.com/shopspring/decimal"

// ContractPeriod is the whole-month plus residual-day decomposition of
// a contract date range. FullMonths is the maximum number of whole
// calendar-month advances from the start that do not pass the end;
// RemainingDays is the ceiling of the day gap left after the last whole
// month; DaysInLastMonth is the length of the calendar month containing
// that boundary.
type ContractPeriod struct {
	FullMonths      int `json:"full_months"`
	RemainingDays   int `json:"remaining_days"`
	DaysInLastMonth int `json:"days_in_last_month"`
	TotalDays       int `json:"total_days"`
}

// UpfrontInterestResult is the interest owed in full at contract start:
// a whole-months amount plus a daily-prorated partial-month amount.
// TotalInterest is always the exact sum of the two parts; no rounding
// happens inside the calculator.
type UpfrontInterestResult struct {
	FullMonthsInterest   decimal.Decimal `json:"full_months_interest"`
	PartialMonthInterest decimal.Decimal `json:"partial_month_interest"`
	TotalInterest        decimal.Decimal `json:"total_interest"`
	Period               ContractPeriod  `json:"period"`
}
