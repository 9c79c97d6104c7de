package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan lifecycle statuses, driven purely by calendar position.
const (
	LoanStatusPending          = "pending"
	LoanStatusStartingSoon     = "starting_soon"
	LoanStatusActive           = "active"
	LoanStatusDueThisMonth     = "due_this_month"
	LoanStatusDueThisWeek      = "due_this_week"
	LoanStatusDueSoon          = "due_soon"
	LoanStatusOverdue          = "overdue"
	LoanStatusOverdueExtension = "overdue-extension"
	LoanStatusCompleted        = "completed"
)

// Interest payment statuses under the upfront-interest contract model.
const (
	InterestStatusPending = "pending"
	InterestStatusOverdue = "overdue"
	InterestStatusPartial = "partial"
	InterestStatusPaid    = "paid"
)

// Book statuses a loan must carry to be part of the active book.
const (
	BookStatusOperating  = "operating"
	BookStatusPerforming = "performing"
)

// Loan represents a loan record joined with its project and the
// aggregate of its paid-interest ledger rows. The engine never
// mutates it.
type Loan struct {
	ID            int64           `json:"id" db:"id"`
	ProjectID     int64           `json:"project_id" db:"project_id"`
	ProjectName   string          `json:"project_name" db:"project_name"`
	Principal     decimal.Decimal `json:"principal" db:"principal"`
	BorrowerRate  decimal.Decimal `json:"borrower_rate" db:"borrower_rate"`
	DefaultRate   decimal.Decimal `json:"default_rate" db:"default_rate"`
	StartDate     time.Time       `json:"start_date" db:"start_date"`
	RepaymentDate time.Time       `json:"repayment_date" db:"repayment_date"`
	ExpiryDate    time.Time       `json:"expiry_date" db:"expiry_date"`
	BookStatus    string          `json:"book_status" db:"book_status"`
	Payments      PaymentSummary  `json:"payments"`
}

// PaymentSummary is the pre-aggregated view of a payment ledger:
// lifetime sums, row count and the most recent payment date.
type PaymentSummary struct {
	GrossPaid       decimal.Decimal `json:"gross_paid" db:"gross_paid"`
	NetPaid         decimal.Decimal `json:"net_paid" db:"net_paid"`
	TaxPaid         decimal.Decimal `json:"tax_paid" db:"tax_paid"`
	FeesPaid        decimal.Decimal `json:"fees_paid" db:"fees_paid"`
	Count           int             `json:"count" db:"payment_count"`
	LastPaymentDate *time.Time      `json:"last_payment_date" db:"last_payment_date"`
}

// Project identifies the development a loan belongs to. A small fixed
// set of project ids ("special projects") carries overridden lifecycle
// rules, configured rather than hard-coded.
type Project struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// LoanStatusDetail is the per-loan classification surfaced by the
// loan-book endpoint.
type LoanStatusDetail struct {
	LoanID           int64           `json:"loan_id"`
	ProjectID        int64           `json:"project_id"`
	ProjectName      string          `json:"project_name"`
	Principal        decimal.Decimal `json:"principal"`
	ExpectedInterest decimal.Decimal `json:"expected_interest"`
	ActualPaid       decimal.Decimal `json:"actual_paid"`
	InterestStatus   string          `json:"interest_status"`
	LoanStatus       string          `json:"loan_status"`
	DaysToMaturity   int             `json:"days_to_maturity"`
}
