package payslip

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payslip is the engine's output record: one row per
// (employee, pay period month, pay period year). Recomputing overwrites the
// existing row in place; payroll is a recomputable view, not an append-only
// ledger.
type Payslip struct {
	ID          string
	EmployeeID  string
	PeriodMonth int
	PeriodYear  int

	BaseMonthlySalary decimal.Decimal

	// TotalWorkingDaysInMonth is the calendar-derived working-day count.
	// Informational only; deductions are normalized against the policy's
	// standard working days instead.
	TotalWorkingDaysInMonth int
	DaysPresent             int
	DaysAbsent              int
	DaysHalfDay             int
	DaysOnApprovedLeave     int

	AttendanceDeduction decimal.Decimal
	TaxDeduction        decimal.Decimal
	PFDeduction         decimal.Decimal
	OtherDeductions     decimal.Decimal
	BonusAmount         decimal.Decimal
	GrossSalary         decimal.Decimal
	NetSalary           decimal.Decimal

	GeneratedAt time.Time
	GeneratedBy string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// Policy carries the payroll rates and the standard working-day
// normalization constant for one payroll run. Rates are fractions.
type Policy struct {
	TaxRate             decimal.Decimal
	PFRate              decimal.Decimal
	StandardWorkingDays int
}

// DefaultPolicy mirrors the documented defaults: 10% tax, 12% provident
// fund, 25 standard working days per month.
func DefaultPolicy() Policy {
	return Policy{
		TaxRate:             decimal.RequireFromString("0.10"),
		PFRate:              decimal.RequireFromString("0.12"),
		StandardWorkingDays: 25,
	}
}
