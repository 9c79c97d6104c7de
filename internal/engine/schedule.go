package engine

import "time"

// SelectAnchor picks the reference date a recurring payment schedule
// walks forward from: the last recorded payment if one exists,
// otherwise the later of the transaction date and the start date.
func SelectAnchor(lastPaymentDate, transactionDate *time.Time, startDate time.Time) time.Time {
	if lastPaymentDate != nil {
		return *lastPaymentDate
	}
	if transactionDate != nil && transactionDate.After(startDate) {
		return *transactionDate
	}
	return startDate
}

// NextDueDate advances a due date by one month minus one day — the
// inclusive monthly cadence that keeps due dates from drifting past
// month boundaries.
func NextDueDate(t time.Time) time.Time {
	return addMonthClamped(t).AddDate(0, 0, -1)
}

// GenerateSchedule emits the finite sequence of due dates from anchor
// up to the earlier of endDate and horizonEnd. When a prior payment
// exists the anchor itself was already settled, so the walk starts one
// step later. Dates already in the past are dropped, not retro-billed.
// The schedule is recomputed from scratch on every call; nothing about
// it is stateful.
func GenerateSchedule(anchor, endDate, horizonEnd time.Time, hasPriorPayment bool, now time.Time) []time.Time {
	limit := endDate
	if horizonEnd.Before(limit) {
		limit = horizonEnd
	}

	current := anchor
	if hasPriorPayment {
		current = NextDueDate(current)
	}

	var dates []time.Time
	for !current.After(limit) {
		if !current.Before(now) {
			dates = append(dates, current)
		}
		current = NextDueDate(current)
	}
	return dates
}
