package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/DylanZhuo/GoodLand-W1/internal/domain"
)

type loanRepository struct {
	db *sqlx.DB
}

func NewLoanRepository(db *sqlx.DB) LoanRepository {
	return &loanRepository{db: db}
}

// loanRow is the flat scan target for the loan + project + ledger join.
type loanRow struct {
	ID              int64           `db:"id"`
	ProjectID       int64           `db:"project_id"`
	ProjectName     string          `db:"project_name"`
	Principal       decimal.Decimal `db:"principal"`
	BorrowerRate    decimal.Decimal `db:"borrower_rate"`
	DefaultRate     decimal.Decimal `db:"default_rate"`
	StartDate       time.Time       `db:"start_date"`
	RepaymentDate   time.Time       `db:"repayment_date"`
	ExpiryDate      time.Time       `db:"expiry_date"`
	BookStatus      string          `db:"book_status"`
	GrossPaid       decimal.Decimal `db:"gross_paid"`
	NetPaid         decimal.Decimal `db:"net_paid"`
	TaxPaid         decimal.Decimal `db:"tax_paid"`
	FeesPaid        decimal.Decimal `db:"fees_paid"`
	PaymentCount    int             `db:"payment_count"`
	LastPaymentDate *time.Time      `db:"last_payment_date"`
}

const loanSelect = `
	SELECT l.id,
	       l.project_id,
	       p.name AS project_name,
	       l.principal,
	       l.borrower_rate,
	       l.default_rate,
	       l.start_date,
	       l.repayment_date,
	       l.expiry_date,
	       l.book_status,
	       COALESCE(ip.gross_paid, 0)  AS gross_paid,
	       COALESCE(ip.net_paid, 0)    AS net_paid,
	       COALESCE(ip.tax_paid, 0)    AS tax_paid,
	       COALESCE(ip.fees_paid, 0)   AS fees_paid,
	       COALESCE(ip.payment_count, 0) AS payment_count,
	       ip.last_payment_date
	FROM loans l
	JOIN projects p ON p.id = l.project_id
	LEFT JOIN (
		SELECT loan_id,
		       SUM(gross_amount) AS gross_paid,
		       SUM(net_amount)   AS net_paid,
		       SUM(tax_amount)   AS tax_paid,
		       SUM(fee_amount)   AS fees_paid,
		       COUNT(*)          AS payment_count,
		       MAX(paid_at)      AS last_payment_date
		FROM interest_payments
		GROUP BY loan_id
	) ip ON ip.loan_id = l.id
`

func (r *loanRepository) GetActiveLoans(ctx context.Context) ([]domain.Loan, error) {
	query := loanSelect + `
	WHERE l.book_status IN ($1, $2)
	ORDER BY l.id
	`

	var rows []loanRow
	err := r.db.SelectContext(ctx, &rows, query, domain.BookStatusOperating, domain.BookStatusPerforming)
	if err != nil {
		return nil, err
	}

	loans := make([]domain.Loan, 0, len(rows))
	for _, row := range rows {
		loans = append(loans, row.toDomain())
	}
	return loans, nil
}

func (r *loanRepository) GetByID(ctx context.Context, loanID int64) (*domain.Loan, error) {
	query := loanSelect + `
	WHERE l.id = $1
	`

	var row loanRow
	if err := r.db.GetContext(ctx, &row, query, loanID); err != nil {
		return nil, err
	}

	loan := row.toDomain()
	return &loan, nil
}

func (row loanRow) toDomain() domain.Loan {
	return domain.Loan{
		ID:            row.ID,
		ProjectID:     row.ProjectID,
		ProjectName:   row.ProjectName,
		Principal:     row.Principal,
		BorrowerRate:  row.BorrowerRate,
		DefaultRate:   row.DefaultRate,
		StartDate:     row.StartDate,
		RepaymentDate: row.RepaymentDate,
		ExpiryDate:    row.ExpiryDate,
		BookStatus:    row.BookStatus,
		Payments: domain.PaymentSummary{
			GrossPaid:       row.GrossPaid,
			NetPaid:         row.NetPaid,
			TaxPaid:         row.TaxPaid,
			FeesPaid:        row.FeesPaid,
			Count:           row.PaymentCount,
			LastPaymentDate: row.LastPaymentDate,
		},
	}
}
