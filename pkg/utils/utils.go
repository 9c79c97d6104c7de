package utils

import "time"

const dateLayout = "2006-01-02"

// ParseDate parses a calendar date in YYYY-MM-DD form. Dates carry no
// time-of-day significance anywhere in the system.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// FormatDate renders a calendar date in YYYY-MM-DD form.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// MonthLabel renders the YYYY-MM label used for monthly records.
func MonthLabel(t time.Time) string {
	return t.Format("2006-01")
}
