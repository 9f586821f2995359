package schedule

import "time"

// PayPeriodDays is the length of one pay cycle.
const PayPeriodDays = 14

// AnchorWeekday is the weekday every pay-schedule anchor must fall on.
const AnchorWeekday = time.Friday

// PayPeriod returns the inclusive 14-day window containing today, phased from
// the anchor payday. Days before the anchor still land in a well-defined
// window because the period index uses floor division.
func PayPeriod(anchor, today time.Time) (start, end time.Time) {
	anchor = truncateToDay(anchor)
	today = truncateToDay(today)

	delta := daysBetween(anchor, today)
	periods := floorDiv(delta, PayPeriodDays)
	start = anchor.AddDate(0, 0, periods*PayPeriodDays)

	// Boundary guard: the window must always contain today.
	if start.After(today) {
		start = start.AddDate(0, 0, -PayPeriodDays)
	}
	return start, start.AddDate(0, 0, PayPeriodDays-1)
}

// FallbackPayPeriod returns the trailing 14-day window ending today, used
// when no pay schedule has been saved yet.
func FallbackPayPeriod(today time.Time) (start, end time.Time) {
	today = truncateToDay(today)
	return today.AddDate(0, 0, -(PayPeriodDays - 1)), today
}

// daysBetween returns the whole number of calendar days from a to b.
// Dates are normalized to UTC midnight so DST transitions cannot skew the count.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
