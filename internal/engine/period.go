package engine

import (
	"math"
	"time"

	"github.com/DylanZhuo/GoodLand-W1/internal/domain"
)

const hoursPerDay = 24

// DecomposePeriod splits [start, end] into whole calendar months plus
// residual days. The walk advances one calendar month at a time from
// start, keeping the day-of-month and clamping to the last valid day
// when the target month is shorter (Jan 31 -> Feb 29 in a leap year).
//
// end <= start is not rejected: the result degenerates to zero full
// months and zero residual days. Callers validate ordering upstream.
func DecomposePeriod(start, end time.Time) domain.ContractPeriod {
	cursor := start
	fullMonths := 0
	for {
		next := addMonthClamped(cursor)
		if next.After(end) {
			break
		}
		cursor = next
		fullMonths++
	}

	return domain.ContractPeriod{
		FullMonths:      fullMonths,
		RemainingDays:   ceilDaysClamped(cursor, end),
		DaysInLastMonth: daysInMonth(cursor),
		TotalDays:       ceilDaysClamped(start, end),
	}
}

// DaysUntil returns the ceiling day distance from one date to another.
// Negative when to precedes from.
func DaysUntil(from, to time.Time) int {
	return int(math.Ceil(to.Sub(from).Hours() / hoursPerDay))
}

func ceilDaysClamped(from, to time.Time) int {
	days := DaysUntil(from, to)
	if days < 0 {
		return 0
	}
	return days
}

// addMonthClamped advances t by one calendar month, clamping the
// day-of-month to the target month's last day. time.AddDate is not
// usable here: it normalizes Jan 31 + 1 month to Mar 2/3.
func addMonthClamped(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	last := lastDayOfMonth(year, month+1, t.Location())
	if day > last {
		day = last
	}
	return time.Date(year, month+1, day, hour, min, sec, t.Nanosecond(), t.Location())
}

// daysInMonth returns the number of days in the calendar month
// containing t, computed as day 0 of the following month.
func daysInMonth(t time.Time) int {
	return lastDayOfMonth(t.Year(), t.Month(), t.Location())
}

func lastDayOfMonth(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// monthBounds returns the first and last calendar day of the month
// offset months after the month containing t.
func monthBounds(t time.Time, offset int) (time.Time, time.Time) {
	year, month, _ := t.Date()
	first := time.Date(year, month+time.Month(offset), 1, 0, 0, 0, 0, t.Location())
	last := time.Date(first.Year(), first.Month()+1, 0, 0, 0, 0, 0, t.Location())
	return first, last
}
