package engine

import (
	"time"

	"github.com/DylanZhuo/GoodLand-W1/internal/domain"
	"github.com/shopspring/decimal"
)

// ClassifyInterestStatus maps an upfront interest obligation against
// the amount actually paid. The entire obligation falls due at the
// contract start date, so anything unpaid after start is immediately
// overdue; a payment within the configured tolerance of the expected
// amount counts as paid in full.
func (e *Engine) ClassifyInterestStatus(expected, actualPaid decimal.Decimal, contractStart, now time.Time) string {
	if now.Before(contractStart) {
		return domain.InterestStatusPending
	}
	if actualPaid.IsZero() {
		return domain.InterestStatusOverdue
	}

	tolerance := expected.Mul(e.policy.PaidTolerance)
	if actualPaid.GreaterThanOrEqual(expected.Sub(tolerance)) {
		return domain.InterestStatusPaid
	}
	return domain.InterestStatusPartial
}

// ClassifyLoanStatus derives a loan's lifecycle status from its
// calendar position. Special projects run through an override block
// first; everything else (and special-project loans the override does
// not match) uses the normal day-count ladder.
func (e *Engine) ClassifyLoanStatus(projectID int64, start, end time.Time, daysToMaturity int, expiry, now time.Time) string {
	if e.policy.IsSpecialProject(projectID) {
		if status, ok := overrideStatus(end, expiry, now); ok {
			return status
		}
	}

	if start.After(now) {
		if daysToMaturity <= 14 {
			return domain.LoanStatusStartingSoon
		}
		return domain.LoanStatusPending
	}
	if end.Before(now) {
		return domain.LoanStatusCompleted
	}

	switch {
	case daysToMaturity <= 0:
		return domain.LoanStatusOverdue
	case daysToMaturity <= 7:
		return domain.LoanStatusDueSoon
	case daysToMaturity <= 14:
		return domain.LoanStatusDueThisWeek
	case daysToMaturity <= 30:
		return domain.LoanStatusDueThisMonth
	default:
		return domain.LoanStatusActive
	}
}

// overrideStatus is the special-project block, kept as a single seam
// so its ordering against the normal rules can change without touching
// callers. Its interaction with book-status filtering is known to
// misclassify a handful of loans; the behavior is kept as-is pending a
// product decision.
func overrideStatus(end, expiry, now time.Time) (string, bool) {
	if end.Before(now) {
		return domain.LoanStatusOverdue, true
	}
	if expiry.Before(end) {
		return domain.LoanStatusOverdueExtension, true
	}
	return "", false
}
