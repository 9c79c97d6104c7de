package engine

import (
	"time"

	"github.com/DylanZhuo/GoodLand-W1/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultHorizonMonths is the forecast length when the caller does not
// supply one.
const DefaultHorizonMonths = 12

// fullyPaidThreshold marks a loan fully paid at >= 99% of expected.
var fullyPaidThreshold = decimal.NewFromFloat(0.99)

// ProjectCashflow walks the forecast horizon month by month and
// reconciles scheduled borrower income, principal repayments and
// investor payout obligations into per-month and aggregate net
// cashflow figures.
//
// now must be a single snapshot captured by the caller; every branch
// below sees the same value. Accumulation is unrounded throughout, and
// each monetary field is rounded once when its month is finalized.
func (e *Engine) ProjectCashflow(loans []domain.Loan, fundings []domain.InvestorFunding, horizonMonths int, now time.Time) *domain.CashflowReport {
	if horizonMonths <= 0 {
		horizonMonths = DefaultHorizonMonths
	}
	_, horizonEnd := monthBounds(now, horizonMonths-1)

	// One forward walk per loan; each month then checks membership.
	schedules := make(map[int64][]time.Time, len(loans))
	for _, loan := range loans {
		anchor := SelectAnchor(loan.Payments.LastPaymentDate, nil, loan.StartDate)
		schedules[loan.ID] = GenerateSchedule(anchor, loan.RepaymentDate, horizonEnd, loan.Payments.Count > 0, now)
	}

	report := &domain.CashflowReport{
		GeneratedAt:   now,
		HorizonMonths: horizonMonths,
		Months:        make([]domain.MonthlyCashflow, 0, horizonMonths),
	}

	var totalInflow, totalPayouts, totalNet decimal.Decimal

	for i := 0; i < horizonMonths; i++ {
		monthStart, monthEnd := monthBounds(now, i)

		month := domain.MonthlyCashflow{
			Month:      monthStart.Format("2006-01"),
			MonthStart: monthStart,
			MonthEnd:   monthEnd,
		}

		var interest, net, tax, fees, principalDue, payouts decimal.Decimal

		for _, loan := range loans {
			if loan.StartDate.After(monthEnd) || loan.RepaymentDate.Before(monthStart) {
				continue
			}

			finalMonth := !loan.RepaymentDate.After(monthEnd)
			if finalMonth {
				principalDue = principalDue.Add(loan.Principal)
			}

			// Only loans that have actually paid something project
			// forward; a loan with no net payment to date has no
			// established cadence to reconcile against.
			if loan.Payments.NetPaid.IsZero() {
				continue
			}
			if !hasDateWithin(schedules[loan.ID], monthStart, monthEnd) {
				continue
			}

			gross := MonthlyInterest(loan.Principal, loan.BorrowerRate)
			prorated := false
			if finalMonth {
				gross = prorateFinalMonth(loan.Principal, loan.BorrowerRate, monthStart, loan.RepaymentDate)
				prorated = true
			}

			netRatio := SafeRatio(loan.Payments.NetPaid, loan.Payments.GrossPaid)
			taxRatio := SafeRatio(loan.Payments.TaxPaid, loan.Payments.GrossPaid)
			feeRatio := SafeRatio(loan.Payments.FeesPaid, loan.Payments.GrossPaid)

			loanNet := gross.Mul(netRatio)
			loanTax := gross.Mul(taxRatio)
			loanFees := gross.Mul(feeRatio)

			month.LoanItems = append(month.LoanItems, domain.LoanInterestItem{
				LoanID:      loan.ID,
				ProjectName: loan.ProjectName,
				Gross:       RoundCurrency(gross),
				Net:         RoundCurrency(loanNet),
				Tax:         RoundCurrency(loanTax),
				Fees:        RoundCurrency(loanFees),
				FinalMonth:  finalMonth,
				Prorated:    prorated,
			})

			interest = interest.Add(gross)
			net = net.Add(loanNet)
			tax = tax.Add(loanTax)
			fees = fees.Add(loanFees)
		}

		for _, funding := range fundings {
			if funding.StartDate.After(monthEnd) || funding.EndDate.Before(monthStart) {
				continue
			}

			amount := MonthlyInterest(funding.Amount, funding.AnnualRate)
			excluded := e.policy.IsInternalInvestor(funding.InvestorName)

			month.PayoutItems = append(month.PayoutItems, domain.InvestorPayoutItem{
				FundingID:    funding.ID,
				LoanID:       funding.LoanID,
				InvestorID:   funding.InvestorID,
				InvestorName: funding.InvestorName,
				Amount:       RoundCurrency(amount),
				Excluded:     excluded,
			})

			if !excluded {
				payouts = payouts.Add(amount)
			}
		}

		inflow := interest.Add(principalDue)
		netCash := inflow.Sub(payouts)

		month.InterestReceivable = RoundCurrency(interest)
		month.NetInterest = RoundCurrency(net)
		month.TaxWithheld = RoundCurrency(tax)
		month.Fees = RoundCurrency(fees)
		month.PrincipalDue = RoundCurrency(principalDue)
		month.InvestorPayouts = RoundCurrency(payouts)
		month.TotalCashInflow = RoundCurrency(inflow)
		month.NetCashflow = RoundCurrency(netCash)

		report.Months = append(report.Months, month)

		totalInflow = totalInflow.Add(inflow)
		totalPayouts = totalPayouts.Add(payouts)
		totalNet = totalNet.Add(netCash)
	}

	report.TotalInflow = RoundCurrency(totalInflow)
	report.TotalPayouts = RoundCurrency(totalPayouts)
	report.TotalNetCash = RoundCurrency(totalNet)
	report.PaymentAnalysis = e.AnalyzePayments(loans)

	return report
}

// AnalyzePayments summarizes collection performance: how many loans
// have paid anything, how many are fully or partially collected, and
// the gross/net collection rates against expected upfront interest.
func (e *Engine) AnalyzePayments(loans []domain.Loan) domain.PaymentAnalysis {
	analysis := domain.PaymentAnalysis{TotalLoans: len(loans)}

	var expected, gross, net decimal.Decimal
	for _, loan := range loans {
		result := ComputeUpfrontInterest(loan.Principal, loan.BorrowerRate, loan.StartDate, loan.RepaymentDate)
		expected = expected.Add(result.TotalInterest)
		gross = gross.Add(loan.Payments.GrossPaid)
		net = net.Add(loan.Payments.NetPaid)

		if loan.Payments.GrossPaid.IsZero() {
			analysis.LoansWithoutPayment++
			continue
		}
		analysis.LoansWithPayment++
		if loan.Payments.GrossPaid.GreaterThanOrEqual(result.TotalInterest.Mul(fullyPaidThreshold)) {
			analysis.LoansFullyPaid++
		} else {
			analysis.LoansPartiallyPaid++
		}
	}

	analysis.ExpectedInterest = RoundCurrency(expected)
	analysis.GrossCollected = RoundCurrency(gross)
	analysis.NetCollected = RoundCurrency(net)
	analysis.GrossCollectionRate = Percent(SafeRatio(gross, expected))
	analysis.NetCollectionRate = Percent(SafeRatio(net, expected))
	return analysis
}

// ClassifyLoanBook produces the per-loan status view: expected upfront
// interest, interest payment status and lifecycle status, all against
// a single now snapshot.
func (e *Engine) ClassifyLoanBook(loans []domain.Loan, now time.Time) []domain.LoanStatusDetail {
	details := make([]domain.LoanStatusDetail, 0, len(loans))
	for _, loan := range loans {
		expected := ComputeUpfrontInterest(loan.Principal, loan.BorrowerRate, loan.StartDate, loan.RepaymentDate).TotalInterest
		daysToMaturity := DaysUntil(now, loan.RepaymentDate)

		details = append(details, domain.LoanStatusDetail{
			LoanID:           loan.ID,
			ProjectID:        loan.ProjectID,
			ProjectName:      loan.ProjectName,
			Principal:        RoundCurrency(loan.Principal),
			ExpectedInterest: RoundCurrency(expected),
			ActualPaid:       RoundCurrency(loan.Payments.GrossPaid),
			InterestStatus:   e.ClassifyInterestStatus(expected, loan.Payments.GrossPaid, loan.StartDate, now),
			LoanStatus:       e.ClassifyLoanStatus(loan.ProjectID, loan.StartDate, loan.RepaymentDate, daysToMaturity, loan.ExpiryDate, now),
			DaysToMaturity:   daysToMaturity,
		})
	}
	return details
}

// prorateFinalMonth replaces the flat monthly amount with a daily
// prorated one for the month a loan matures in. The day count is
// inclusive of the maturity day: a loan ending on the 10th accrues 10
// days of interest for that month.
func prorateFinalMonth(principal, annualRate decimal.Decimal, monthStart, loanEnd time.Time) decimal.Decimal {
	dim := daysInMonth(monthStart)
	days := DaysUntil(monthStart, loanEnd) + 1
	if days > dim {
		days = dim
	}
	if days < 0 {
		days = 0
	}
	dailyRate := annualRate.Div(twelve).Div(decimal.NewFromInt(int64(dim)))
	return principal.Mul(dailyRate).Mul(decimal.NewFromInt(int64(days)))
}

func hasDateWithin(dates []time.Time, from, to time.Time) bool {
	for _, d := range dates {
		if !d.Before(from) && !d.After(to) {
			return true
		}
	}
	return false
}
