package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWorkingDays(t *testing.T) {
	cases := []struct {
		year, month int
		want        int
	}{
		{2024, 2, 21}, // leap February, 29 days, 8 weekend days
		{2024, 1, 23}, // January 2024 starts on a Monday
		{2024, 6, 20}, // June 2024: 30 days, 10 weekend days
		{2023, 2, 20}, // non-leap February
		{2024, 12, 22},
	}
	for _, c := range cases {
		got := WorkingDays(c.year, c.month)
		if got != c.want {
			t.Errorf("WorkingDays(%d, %d) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(2024, 2)
	if !start.Equal(date(2024, time.February, 1)) {
		t.Errorf("start = %v, want 2024-02-01", start)
	}
	if !end.Equal(date(2024, time.February, 29)) {
		t.Errorf("end = %v, want 2024-02-29", end)
	}
}

func TestClampToMonth(t *testing.T) {
	monthStart, monthEnd := MonthBounds(2024, 1)

	cases := []struct {
		name       string
		start, end time.Time
		wantStart  time.Time
		wantEnd    time.Time
		empty      bool
	}{
		{
			name:      "fully inside",
			start:     date(2024, time.January, 10),
			end:       date(2024, time.January, 12),
			wantStart: date(2024, time.January, 10),
			wantEnd:   date(2024, time.January, 12),
		},
		{
			name:      "spills into next month",
			start:     date(2024, time.January, 28),
			end:       date(2024, time.February, 3),
			wantStart: date(2024, time.January, 28),
			wantEnd:   date(2024, time.January, 31),
		},
		{
			name:      "starts before the month",
			start:     date(2023, time.December, 20),
			end:       date(2024, time.January, 5),
			wantStart: date(2024, time.January, 1),
			wantEnd:   date(2024, time.January, 5),
		},
		{
			name:  "no overlap",
			start: date(2024, time.March, 1),
			end:   date(2024, time.March, 10),
			empty: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			gotStart, gotEnd := ClampToMonth(c.start, c.end, monthStart, monthEnd)
			if c.empty {
				if !gotStart.After(gotEnd) {
					t.Errorf("expected empty range, got [%v, %v]", gotStart, gotEnd)
				}
				return
			}
			if !gotStart.Equal(c.wantStart) || !gotEnd.Equal(c.wantEnd) {
				t.Errorf("got [%v, %v], want [%v, %v]", gotStart, gotEnd, c.wantStart, c.wantEnd)
			}
		})
	}
}

// A leave span crossing a month boundary must contribute disjoint working-day
// sets to each month, and the two contributions together must equal the whole
// span's working days.
func TestClampedSpanIsPartitionedAcrossMonths(t *testing.T) {
	spanStart := date(2024, time.January, 28)
	spanEnd := date(2024, time.February, 3)

	janStart, janEnd := MonthBounds(2024, 1)
	febStart, febEnd := MonthBounds(2024, 2)

	s1, e1 := ClampToMonth(spanStart, spanEnd, janStart, janEnd)
	s2, e2 := ClampToMonth(spanStart, spanEnd, febStart, febEnd)

	jan := WorkingDaysInRange(s1, e1)
	feb := WorkingDaysInRange(s2, e2)
	total := WorkingDaysInRange(spanStart, spanEnd)

	// Jan 28 2024 is a Sunday: Jan 29-31 are working days, Feb 1-2 are working days.
	if jan != 3 {
		t.Errorf("january contribution = %d, want 3", jan)
	}
	if feb != 2 {
		t.Errorf("february contribution = %d, want 2", feb)
	}
	if jan+feb != total {
		t.Errorf("jan(%d) + feb(%d) != total(%d)", jan, feb, total)
	}
	if !e1.Before(s2) {
		t.Errorf("clamped ranges overlap: [%v, %v] and [%v, %v]", s1, e1, s2, e2)
	}
}

func TestWorkingDaysInRangeEmptyRange(t *testing.T) {
	got := WorkingDaysInRange(date(2024, time.March, 10), date(2024, time.March, 1))
	if got != 0 {
		t.Errorf("WorkingDaysInRange on empty range = %d, want 0", got)
	}
}

func TestWorkingDaysInRangeWeekendOnly(t *testing.T) {
	// Jan 6-7 2024 is a Saturday/Sunday pair.
	got := WorkingDaysInRange(date(2024, time.January, 6), date(2024, time.January, 7))
	if got != 0 {
		t.Errorf("WorkingDaysInRange over a weekend = %d, want 0", got)
	}
}
