// Package schedule implements the date arithmetic behind bill due-date
// projection and the bi-weekly pay cycle. All functions are pure: they take
// "today" as an argument and never read the clock.
package schedule

import "time"

// NextDueDate returns the earliest date at or after today whose day-of-month
// equals dueDay, clamped to the length of that month. A bill due today is
// returned as-is, not rolled forward. dueDay is assumed to be 1-31.
func NextDueDate(dueDay int, today time.Time) time.Time {
	today = truncateToDay(today)

	candidate := time.Date(today.Year(), today.Month(), clampDay(dueDay, today.Year(), today.Month()), 0, 0, 0, 0, today.Location())
	if !candidate.Before(today) {
		return candidate
	}

	year, month := today.Year(), today.Month()+1
	if month > time.December {
		year, month = year+1, time.January
	}
	return time.Date(year, month, clampDay(dueDay, year, month), 0, 0, 0, 0, today.Location())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func clampDay(day, year int, month time.Month) int {
	if last := DaysInMonth(year, month); day > last {
		return last
	}
	return day
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
