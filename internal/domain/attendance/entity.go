package attendance

import "time"

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half_day"
)

// Summary aggregates one employee's attendance records over a date range.
// Days without any record appear in none of the counters; the sum of the
// three counters can therefore be less than the month's working days.
type Summary struct {
	EmployeeID  string
	DaysPresent int
	DaysAbsent  int
	DaysHalfDay int
}
