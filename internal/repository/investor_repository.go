package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/DylanZhuo/GoodLand-W1/internal/domain"
)

type investorRepository struct {
	db *sqlx.DB
}

func NewInvestorRepository(db *sqlx.DB) InvestorRepository {
	return &investorRepository{db: db}
}

type fundingRow struct {
	ID              int64           `db:"id"`
	LoanID          int64           `db:"loan_id"`
	InvestorID      int64           `db:"investor_id"`
	InvestorName    string          `db:"investor_name"`
	Email           *string         `db:"email"`
	Phone           *string         `db:"phone"`
	Amount          decimal.Decimal `db:"amount"`
	AnnualRate      decimal.Decimal `db:"annual_rate"`
	StartDate       time.Time       `db:"start_date"`
	EndDate         time.Time       `db:"end_date"`
	TransactionDate *time.Time      `db:"transaction_date"`
	PaymentCount    int             `db:"payment_count"`
	LastPaymentDate *time.Time      `db:"last_payment_date"`
}

func (r *investorRepository) GetActiveFundings(ctx context.Context) ([]domain.InvestorFunding, error) {
	query := `
	SELECT f.id,
	       f.loan_id,
	       f.investor_id,
	       i.name AS investor_name,
	       i.email,
	       i.phone,
	       f.amount,
	       f.annual_rate,
	       f.start_date,
	       f.end_date,
	       f.transaction_date,
	       COALESCE(ip.payment_count, 0) AS payment_count,
	       ip.last_payment_date
	FROM investor_fundings f
	JOIN investors i ON i.id = f.investor_id
	JOIN loans l ON l.id = f.loan_id
	LEFT JOIN (
		SELECT funding_id,
		       COUNT(*)     AS payment_count,
		       MAX(paid_at) AS last_payment_date
		FROM investor_interest_payments
		GROUP BY funding_id
	) ip ON ip.funding_id = f.id
	WHERE l.book_status IN ($1, $2)
	ORDER BY f.id
	`

	var rows []fundingRow
	err := r.db.SelectContext(ctx, &rows, query, domain.BookStatusOperating, domain.BookStatusPerforming)
	if err != nil {
		return nil, err
	}

	fundings := make([]domain.InvestorFunding, 0, len(rows))
	for _, row := range rows {
		funding := domain.InvestorFunding{
			ID:              row.ID,
			LoanID:          row.LoanID,
			InvestorID:      row.InvestorID,
			InvestorName:    row.InvestorName,
			Amount:          row.Amount,
			AnnualRate:      row.AnnualRate,
			StartDate:       row.StartDate,
			EndDate:         row.EndDate,
			TransactionDate: row.TransactionDate,
			Payments: domain.PaymentSummary{
				Count:           row.PaymentCount,
				LastPaymentDate: row.LastPaymentDate,
			},
		}
		// Contact details are optional; a missing email or phone still
		// produces a reminder downstream.
		if row.Email != nil {
			funding.Email = *row.Email
		}
		if row.Phone != nil {
			funding.Phone = *row.Phone
		}
		fundings = append(fundings, funding)
	}
	return fundings, nil
}
