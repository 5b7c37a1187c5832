package payroll

import (
	"context"
	"fmt"

	"github.com/hrms-labs/payroll-backend-go/internal/domain/attendance"
	"github.com/hrms-labs/payroll-backend-go/internal/domain/bonus"
	"github.com/hrms-labs/payroll-backend-go/internal/domain/employee"
	"github.com/hrms-labs/payroll-backend-go/internal/domain/leave"
	"github.com/hrms-labs/payroll-backend-go/internal/domain/payslip"
	"github.com/hrms-labs/payroll-backend-go/internal/pkg/calendar"
	"github.com/hrms-labs/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const monthsPerYear = 12

// Calculator derives one payslip for one employee and period. It only reads
// from the attendance, leave and bonus repositories; persistence belongs to
// the caller.
type Calculator struct {
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	bonusRepo      bonus.BonusRepository
	policy         payslip.Policy
}

func NewCalculator(
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	bonusRepo bonus.BonusRepository,
	policy payslip.Policy,
) *Calculator {
	return &Calculator{
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		bonusRepo:      bonusRepo,
		policy:         policy,
	}
}

// round2 rounds half away from zero to two decimal places. All payroll
// amounts are non-negative except possibly the net, so this behaves as
// conventional half-up rounding.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Calculate computes the payslip for emp over (month, year). Every monetary
// intermediate is rounded to two decimals at the point it is derived, so the
// stored fields always satisfy net = gross - deductions exactly.
func (c *Calculator) Calculate(ctx context.Context, emp employee.Employee, month, year int) (payslip.Payslip, error) {
	if !validator.IsValidPeriod(month, year) {
		return payslip.Payslip{}, fmt.Errorf("%w: month=%d year=%d", payslip.ErrInvalidPeriod, month, year)
	}
	if emp.BaseAnnualSalary == nil || !emp.BaseAnnualSalary.IsPositive() {
		return payslip.Payslip{}, fmt.Errorf("%w: employee %s", payslip.ErrInvalidEmployeeState, emp.ID)
	}

	baseMonthly := round2(emp.BaseAnnualSalary.Div(decimal.NewFromInt(monthsPerYear)))
	dailyRate := round2(baseMonthly.Div(decimal.NewFromInt(int64(c.policy.StandardWorkingDays))))

	monthStart, monthEnd := calendar.MonthBounds(year, month)

	summary, err := c.attendanceRepo.CountByStatus(ctx, emp.ID, monthStart, monthEnd)
	if err != nil {
		return payslip.Payslip{}, fmt.Errorf("failed to aggregate attendance: %w", err)
	}

	leaveDays, err := c.approvedLeaveWorkingDays(ctx, emp.ID, month, year)
	if err != nil {
		return payslip.Payslip{}, err
	}

	bonusSum, err := c.bonusRepo.SumByEmployeePeriod(ctx, emp.ID, month, year)
	if err != nil {
		return payslip.Payslip{}, fmt.Errorf("failed to sum bonuses: %w", err)
	}

	// Half days deduct half a daily rate each; that partial amount is rounded
	// on its own before joining the absence deduction.
	halfDayDeduction := round2(dailyRate.Mul(decimal.NewFromInt(int64(summary.DaysHalfDay))).Div(decimal.NewFromInt(2)))
	attendanceDeduction := round2(dailyRate.Mul(decimal.NewFromInt(int64(summary.DaysAbsent))).Add(halfDayDeduction))

	taxDeduction := round2(baseMonthly.Mul(c.policy.TaxRate))
	pfDeduction := round2(baseMonthly.Mul(c.policy.PFRate))
	otherDeductions := decimal.Zero.Round(2)

	bonusAmount := round2(bonusSum)
	grossSalary := round2(baseMonthly.Add(bonusAmount))
	netSalary := round2(grossSalary.
		Sub(attendanceDeduction).
		Sub(taxDeduction).
		Sub(pfDeduction).
		Sub(otherDeductions))

	return payslip.Payslip{
		EmployeeID:              emp.ID,
		PeriodMonth:             month,
		PeriodYear:              year,
		BaseMonthlySalary:       baseMonthly,
		TotalWorkingDaysInMonth: calendar.WorkingDays(year, month),
		DaysPresent:             summary.DaysPresent,
		DaysAbsent:              summary.DaysAbsent,
		DaysHalfDay:             summary.DaysHalfDay,
		DaysOnApprovedLeave:     leaveDays,
		AttendanceDeduction:     attendanceDeduction,
		TaxDeduction:            taxDeduction,
		PFDeduction:             pfDeduction,
		OtherDeductions:         otherDeductions,
		BonusAmount:             bonusAmount,
		GrossSalary:             grossSalary,
		NetSalary:               netSalary,
	}, nil
}

// approvedLeaveWorkingDays sums the working days of each approved leave span
// clamped to the month. Informational: it never feeds a deduction, and days
// covered by leave may also be counted by attendance records.
func (c *Calculator) approvedLeaveWorkingDays(ctx context.Context, employeeID string, month, year int) (int, error) {
	monthStart, monthEnd := calendar.MonthBounds(year, month)

	applications, err := c.leaveRepo.ListApprovedOverlapping(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return 0, fmt.Errorf("failed to list approved leaves: %w", err)
	}

	total := 0
	for _, app := range applications {
		start, end := calendar.ClampToMonth(app.StartDate, app.EndDate, monthStart, monthEnd)
		total += calendar.WorkingDaysInRange(start, end)
	}

	return total, nil
}
