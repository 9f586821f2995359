package schedule

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextDueDate(t *testing.T) {
	cases := []struct {
		name   string
		dueDay int
		today  time.Time
		want   time.Time
	}{
		{"due_later_this_month", 15, date(2024, time.January, 10), date(2024, time.January, 15)},
		{"due_today", 15, date(2024, time.January, 15), date(2024, time.January, 15)},
		{"rolls_to_next_month", 15, date(2024, time.January, 20), date(2024, time.February, 15)},
		{"leap_february_clamp", 31, date(2024, time.February, 15), date(2024, time.February, 29)},
		{"non_leap_february_clamp", 31, date(2023, time.February, 15), date(2023, time.February, 28)},
		{"thirty_day_month_clamp", 31, date(2024, time.April, 1), date(2024, time.April, 30)},
		{"december_wraps_to_january", 5, date(2024, time.December, 20), date(2025, time.January, 5)},
		{"clamp_rolls_into_longer_month", 30, date(2023, time.February, 28), date(2023, time.February, 28)},
		{"first_of_month", 1, date(2024, time.March, 2), date(2024, time.April, 1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextDueDate(tc.dueDay, tc.today)
			if !got.Equal(tc.want) {
				t.Errorf("NextDueDate(%d, %s) = %s, want %s",
					tc.dueDay, tc.today.Format("2006-01-02"), got.Format("2006-01-02"), tc.want.Format("2006-01-02"))
			}
		})
	}
}

// The projection never returns a date in the past, and the returned
// day-of-month is always the due day clamped to the target month's length.
func TestNextDueDateProperties(t *testing.T) {
	start := date(2023, time.January, 1)
	for dueDay := 1; dueDay <= 31; dueDay++ {
		for offset := 0; offset < 730; offset += 7 {
			today := start.AddDate(0, 0, offset)
			got := NextDueDate(dueDay, today)

			if got.Before(today) {
				t.Fatalf("NextDueDate(%d, %s) = %s is in the past", dueDay, today, got)
			}
			wantDay := dueDay
			if last := DaysInMonth(got.Year(), got.Month()); wantDay > last {
				wantDay = last
			}
			if got.Day() != wantDay {
				t.Fatalf("NextDueDate(%d, %s) = %s, want day %d", dueDay, today, got, wantDay)
			}
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(2024, time.February); got != 29 {
		t.Errorf("DaysInMonth(2024, February) = %d, want 29", got)
	}
	if got := DaysInMonth(2023, time.February); got != 28 {
		t.Errorf("DaysInMonth(2023, February) = %d, want 28", got)
	}
	if got := DaysInMonth(2024, time.December); got != 31 {
		t.Errorf("DaysInMonth(2024, December) = %d, want 31", got)
	}
}
