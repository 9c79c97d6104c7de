package engine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DylanZhuo/GoodLand-W1/internal/domain"
)

func maturingLoan() domain.Loan {
	lastPayment := date(2025, time.August, 11)
	return domain.Loan{
		ID:            1,
		ProjectID:     42,
		ProjectName:   "Riverbend Stage 2",
		Principal:     decimal.NewFromInt(100000),
		BorrowerRate:  decimal.NewFromFloat(0.12),
		StartDate:     date(2025, time.June, 10),
		RepaymentDate: date(2025, time.September, 10),
		ExpiryDate:    date(2026, time.March, 10),
		BookStatus:    domain.BookStatusOperating,
		Payments: domain.PaymentSummary{
			GrossPaid:       decimal.NewFromInt(1000),
			NetPaid:         decimal.NewFromInt(1000),
			Count:           1,
			LastPaymentDate: &lastPayment,
		},
	}
}

func TestProjectCashflow_FinalMonthProration(t *testing.T) {
	eng := testEngine()
	now := date(2025, time.September, 1)

	report := eng.ProjectCashflow([]domain.Loan{maturingLoan()}, nil, 3, now)

	require.Len(t, report.Months, 3)
	september := report.Months[0]

	// Ends on day 10 of a 30-day month: 10 days at the daily rate, not
	// the flat 1000 monthly figure.
	require.Len(t, september.LoanItems, 1)
	assert.True(t, september.LoanItems[0].Prorated)
	assert.True(t, september.InterestReceivable.Equal(decimal.NewFromFloat(333.33)),
		"interest = %s", september.InterestReceivable)
	assert.True(t, september.PrincipalDue.Equal(decimal.NewFromInt(100000)))
	assert.True(t, september.TotalCashInflow.Equal(decimal.NewFromFloat(100333.33)))

	// Nothing left after maturity.
	assert.Empty(t, report.Months[1].LoanItems)
	assert.True(t, report.Months[1].PrincipalDue.IsZero())
}

func TestProjectCashflow_FlatMonthlyInterestAndRatios(t *testing.T) {
	eng := testEngine()
	now := date(2025, time.September, 1)
	lastPayment := date(2025, time.August, 20)

	loan := domain.Loan{
		ID:            2,
		ProjectName:   "Harbourside",
		Principal:     decimal.NewFromInt(100000),
		BorrowerRate:  decimal.NewFromFloat(0.12),
		StartDate:     date(2025, time.January, 15),
		RepaymentDate: date(2026, time.September, 15),
		ExpiryDate:    date(2027, time.March, 15),
		Payments: domain.PaymentSummary{
			GrossPaid:       decimal.NewFromInt(2000),
			NetPaid:         decimal.NewFromInt(1700),
			TaxPaid:         decimal.NewFromInt(200),
			FeesPaid:        decimal.NewFromInt(100),
			Count:           3,
			LastPaymentDate: &lastPayment,
		},
	}

	report := eng.ProjectCashflow([]domain.Loan{loan}, nil, 2, now)

	september := report.Months[0]
	require.Len(t, september.LoanItems, 1)
	item := september.LoanItems[0]

	// Flat monthly interest, decomposed by lifetime ratios 85/10/5.
	assert.True(t, item.Gross.Equal(decimal.NewFromInt(1000)), "gross = %s", item.Gross)
	assert.True(t, item.Net.Equal(decimal.NewFromInt(850)), "net = %s", item.Net)
	assert.True(t, item.Tax.Equal(decimal.NewFromInt(100)), "tax = %s", item.Tax)
	assert.True(t, item.Fees.Equal(decimal.NewFromInt(50)), "fees = %s", item.Fees)
	assert.False(t, item.Prorated)
}

func TestProjectCashflow_SkipsLoansWithoutPayments(t *testing.T) {
	eng := testEngine()
	now := date(2025, time.September, 1)

	loan := maturingLoan()
	loan.Payments = domain.PaymentSummary{}

	report := eng.ProjectCashflow([]domain.Loan{loan}, nil, 3, now)

	// No established payment cadence: no projected interest, but the
	// principal still falls due in the maturity month.
	assert.Empty(t, report.Months[0].LoanItems)
	assert.True(t, report.Months[0].InterestReceivable.IsZero())
	assert.True(t, report.Months[0].PrincipalDue.Equal(decimal.NewFromInt(100000)))
}

func TestProjectCashflow_InternalInvestorExcluded(t *testing.T) {
	eng := testEngine()
	now := date(2025, time.September, 1)

	fundings := []domain.InvestorFunding{
		{
			ID: 11, LoanID: 1, InvestorID: 101,
			InvestorName: "GOODLAND Capital Pty Ltd",
			Amount:       decimal.NewFromInt(60000),
			AnnualRate:   decimal.NewFromFloat(0.10),
			StartDate:    date(2025, time.January, 1),
			EndDate:      date(2026, time.January, 1),
		},
		{
			ID: 12, LoanID: 1, InvestorID: 102,
			InvestorName: "Jane Smith",
			Amount:       decimal.NewFromInt(120000),
			AnnualRate:   decimal.NewFromFloat(0.10),
			StartDate:    date(2025, time.January, 1),
			EndDate:      date(2026, time.January, 1),
		},
	}

	report := eng.ProjectCashflow(nil, fundings, 4, now)

	for _, month := range report.Months {
		require.Len(t, month.PayoutItems, 2)

		// The intercompany leg stays itemized for transparency but
		// never counts toward the outflow.
		assert.True(t, month.PayoutItems[0].Excluded)
		assert.False(t, month.PayoutItems[1].Excluded)
		assert.True(t, month.InvestorPayouts.Equal(decimal.NewFromInt(1000)),
			"payouts = %s", month.InvestorPayouts)
		assert.True(t, month.NetCashflow.Equal(decimal.NewFromInt(-1000)))
	}

	assert.True(t, report.TotalPayouts.Equal(decimal.NewFromInt(4000)))
	assert.True(t, report.TotalNetCash.Equal(decimal.NewFromInt(-4000)))
}

func TestProjectCashflow_DefaultHorizon(t *testing.T) {
	eng := testEngine()
	report := eng.ProjectCashflow(nil, nil, 0, date(2025, time.September, 1))

	assert.Equal(t, DefaultHorizonMonths, report.HorizonMonths)
	assert.Len(t, report.Months, DefaultHorizonMonths)
}

func TestAnalyzePayments(t *testing.T) {
	eng := testEngine()

	// Two exact months at 1% of 100k: expected interest 2000 each.
	base := domain.Loan{
		Principal:     decimal.NewFromInt(100000),
		BorrowerRate:  decimal.NewFromFloat(0.12),
		StartDate:     date(2024, time.January, 15),
		RepaymentDate: date(2024, time.March, 15),
	}

	fully := base
	fully.Payments = domain.PaymentSummary{GrossPaid: decimal.NewFromInt(1990), NetPaid: decimal.NewFromInt(1800), Count: 1}

	partial := base
	partial.Payments = domain.PaymentSummary{GrossPaid: decimal.NewFromInt(500), NetPaid: decimal.NewFromInt(450), Count: 1}

	unpaid := base

	analysis := eng.AnalyzePayments([]domain.Loan{fully, partial, unpaid})

	assert.Equal(t, 3, analysis.TotalLoans)
	assert.Equal(t, 2, analysis.LoansWithPayment)
	assert.Equal(t, 1, analysis.LoansWithoutPayment)
	assert.Equal(t, 1, analysis.LoansFullyPaid) // 1990 >= 99% of 2000
	assert.Equal(t, 1, analysis.LoansPartiallyPaid)

	assert.True(t, analysis.ExpectedInterest.Equal(decimal.NewFromInt(6000)))
	assert.True(t, analysis.GrossCollectionRate.Equal(decimal.NewFromFloat(41.5)),
		"gross rate = %s", analysis.GrossCollectionRate)
	assert.True(t, analysis.NetCollectionRate.Equal(decimal.NewFromFloat(37.5)),
		"net rate = %s", analysis.NetCollectionRate)
}

func TestAnalyzePayments_EmptyBook(t *testing.T) {
	analysis := testEngine().AnalyzePayments(nil)

	assert.Equal(t, 0, analysis.TotalLoans)
	assert.True(t, analysis.GrossCollectionRate.IsZero())
	assert.True(t, analysis.NetCollectionRate.IsZero())
}

func TestClassifyLoanBook(t *testing.T) {
	eng := testEngine()
	now := date(2025, time.September, 1)

	details := eng.ClassifyLoanBook([]domain.Loan{maturingLoan()}, now)

	require.Len(t, details, 1)
	assert.Equal(t, int64(1), details[0].LoanID)
	assert.Equal(t, 9, details[0].DaysToMaturity)
	assert.Equal(t, domain.LoanStatusDueThisWeek, details[0].LoanStatus)
	assert.Equal(t, domain.InterestStatusPartial, details[0].InterestStatus)
}
