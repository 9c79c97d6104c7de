package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanInterestItem is one loan's contribution to a projected month:
// the scheduled gross interest decomposed into net/tax/fee components
// using the loan's lifetime payment ratios.
type LoanInterestItem struct {
	LoanID      int64           `json:"loan_id"`
	ProjectName string          `json:"project_name"`
	Gross       decimal.Decimal `json:"gross"`
	Net         decimal.Decimal `json:"net"`
	Tax         decimal.Decimal `json:"tax"`
	Fees        decimal.Decimal `json:"fees"`
	FinalMonth  bool            `json:"final_month"`
	Prorated    bool            `json:"prorated"`
}

// InvestorPayoutItem is one funding's payout obligation for a month.
// Excluded payouts stay in the itemized list for transparency but do
// not count toward the month's outflow total.
type InvestorPayoutItem struct {
	FundingID    int64           `json:"funding_id"`
	LoanID       int64           `json:"loan_id"`
	InvestorID   int64           `json:"investor_id"`
	InvestorName string          `json:"investor_name"`
	Amount       decimal.Decimal `json:"amount"`
	Excluded     bool            `json:"excluded"`
}

// MonthlyCashflow is one month of the forecast. Monetary fields are
// rounded to 2 decimals when the month is finalized, never earlier.
type MonthlyCashflow struct {
	Month              string               `json:"month"`
	MonthStart         time.Time            `json:"month_start"`
	MonthEnd           time.Time            `json:"month_end"`
	InterestReceivable decimal.Decimal      `json:"interest_receivable"`
	NetInterest        decimal.Decimal      `json:"net_interest"`
	TaxWithheld        decimal.Decimal      `json:"tax_withheld"`
	Fees               decimal.Decimal      `json:"fees"`
	PrincipalDue       decimal.Decimal      `json:"principal_due"`
	InvestorPayouts    decimal.Decimal      `json:"investor_payouts"`
	TotalCashInflow    decimal.Decimal      `json:"total_cash_inflow"`
	NetCashflow        decimal.Decimal      `json:"net_cashflow"`
	LoanItems          []LoanInterestItem   `json:"loan_items"`
	PayoutItems        []InvestorPayoutItem `json:"payout_items"`
}

// PaymentAnalysis summarizes collection performance across the book.
// Fully paid means at least 99% of the expected upfront interest has
// been received.
type PaymentAnalysis struct {
	TotalLoans          int             `json:"total_loans"`
	LoansWithPayment    int             `json:"loans_with_payment"`
	LoansWithoutPayment int             `json:"loans_without_payment"`
	LoansFullyPaid      int             `json:"loans_fully_paid"`
	LoansPartiallyPaid  int             `json:"loans_partially_paid"`
	ExpectedInterest    decimal.Decimal `json:"expected_interest"`
	GrossCollected      decimal.Decimal `json:"gross_collected"`
	NetCollected        decimal.Decimal `json:"net_collected"`
	GrossCollectionRate decimal.Decimal `json:"gross_collection_rate"`
	NetCollectionRate   decimal.Decimal `json:"net_collection_rate"`
}

// CashflowReport is the full forecast: per-month records plus
// cross-month aggregates and the payment analysis.
type CashflowReport struct {
	GeneratedAt     time.Time         `json:"generated_at"`
	HorizonMonths   int               `json:"horizon_months"`
	Months          []MonthlyCashflow `json:"months"`
	TotalInflow     decimal.Decimal   `json:"total_inflow"`
	TotalPayouts    decimal.Decimal   `json:"total_payouts"`
	TotalNetCash    decimal.Decimal   `json:"total_net_cash"`
	PaymentAnalysis PaymentAnalysis   `json:"payment_analysis"`
}
