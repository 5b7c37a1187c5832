// Package calendar provides the pure date arithmetic used by payroll:
// working-day counts that skip weekends and date-range clamping against
// month boundaries. No public-holiday calendar is modeled.
package calendar

import "time"

// MonthBounds returns the first and last calendar day of the given month,
// both at midnight UTC.
func MonthBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// WorkingDays counts the days of the month that are not Saturday or Sunday.
func WorkingDays(year, month int) int {
	start, end := MonthBounds(year, month)
	return WorkingDaysInRange(start, end)
}

// WorkingDaysInRange counts non-weekend days in the inclusive range
// [start, end]. An empty range (start after end) yields 0.
func WorkingDaysInRange(start, end time.Time) int {
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}

// ClampToMonth intersects [start, end] with [monthStart, monthEnd].
// A non-overlapping input produces a range whose start is after its end;
// callers detect that with start.After(end).
func ClampToMonth(start, end, monthStart, monthEnd time.Time) (time.Time, time.Time) {
	if start.Before(monthStart) {
		start = monthStart
	}
	if end.After(monthEnd) {
		end = monthEnd
	}
	return start, end
}
