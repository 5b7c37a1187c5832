package bonus

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bonus is one bonus entry for an employee in a pay period. Multiple rows
// may exist for the same employee/month/year; payroll sums them all.
type Bonus struct {
	ID          string
	EmployeeID  string
	Amount      decimal.Decimal
	Month       int
	Year        int
	Description string
	AddedBy     string
	AddedAt     time.Time
}
