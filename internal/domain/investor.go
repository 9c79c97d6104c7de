package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestorFunding is a single investor's stake in a loan: the funded
// amount, the income rate owed to the investor and the funding window,
// joined with the aggregate of interest already paid out to them.
type InvestorFunding struct {
	ID              int64           `json:"id" db:"id"`
	LoanID          int64           `json:"loan_id" db:"loan_id"`
	InvestorID      int64           `json:"investor_id" db:"investor_id"`
	InvestorName    string          `json:"investor_name" db:"investor_name"`
	Email           string          `json:"email,omitempty" db:"email"`
	Phone           string          `json:"phone,omitempty" db:"phone"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	AnnualRate      decimal.Decimal `json:"annual_rate" db:"annual_rate"`
	StartDate       time.Time       `json:"start_date" db:"start_date"`
	EndDate         time.Time       `json:"end_date" db:"end_date"`
	TransactionDate *time.Time      `json:"transaction_date" db:"transaction_date"`
	Payments        PaymentSummary  `json:"payments"`
}

// Reminder stages distinguish the cash leg a flag belongs to.
const (
	ReminderStageInvestorPayout = "investor_payout"
	ReminderStageBorrowerDue    = "borrower_due"
)

// PaymentReminderFlag is the durable paid/ignored marker keyed by
// (stage, investor, scheduled date). It is written by a human action;
// the engine only reads it to annotate projected schedules.
type PaymentReminderFlag struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Stage         string    `json:"stage" db:"stage"`
	InvestorID    int64     `json:"investor_id" db:"investor_id"`
	ScheduledDate time.Time `json:"scheduled_date" db:"scheduled_date"`
	Paid          bool      `json:"paid" db:"paid"`
	Ignored       bool      `json:"ignored" db:"ignored"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// PaymentReminder is one upcoming scheduled payment, annotated with any
// existing paid/ignored flag. Contact fields are best-effort: a funding
// without email or phone still produces a reminder.
type PaymentReminder struct {
	Stage         string          `json:"stage"`
	LoanID        int64           `json:"loan_id"`
	InvestorID    int64           `json:"investor_id"`
	InvestorName  string          `json:"investor_name"`
	Email         string          `json:"email,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	ScheduledDate time.Time       `json:"scheduled_date"`
	Amount        decimal.Decimal `json:"amount"`
	Paid          bool            `json:"paid"`
	Ignored       bool            `json:"ignored"`
}
