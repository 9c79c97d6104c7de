package repository

import (
	"context"

	"github.com/DylanZhuo/GoodLand-W1/internal/domain"
)

// LoanRepository delivers loan records already joined with their
// project and payment-ledger aggregates. The engine consumes them
// read-only and never issues queries itself.
type LoanRepository interface {
	// GetActiveLoans returns the active book: loans whose status tag
	// is operating or performing, with payment aggregates attached.
	GetActiveLoans(ctx context.Context) ([]domain.Loan, error)

	// GetByID retrieves a single loan with its payment aggregate.
	GetByID(ctx context.Context, loanID int64) (*domain.Loan, error)
}

// InvestorRepository delivers investor funding rows joined with the
// aggregate of interest already paid out to each investor.
type InvestorRepository interface {
	// GetActiveFundings returns all fundings for loans on the active book.
	GetActiveFundings(ctx context.Context) ([]domain.InvestorFunding, error)
}

// ReminderRepository is the durable paid/ignored flag store keyed by
// (stage, investor, scheduled date). Advisory annotation only; the
// engine's numeric results never depend on it.
type ReminderRepository interface {
	// Upsert inserts or updates a flag for its (stage, investor, date) key.
	Upsert(ctx context.Context, flag *domain.PaymentReminderFlag) error

	// ListByStage returns all flags recorded for a stage.
	ListByStage(ctx context.Context, stage string) ([]domain.PaymentReminderFlag, error)
}
