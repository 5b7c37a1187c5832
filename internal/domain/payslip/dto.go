package payslip

import (
	"time"

	"github.com/hrms-labs/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RunPayrollRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *RunPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Month, r.Year) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month/year is not a valid pay period"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayslipResponse struct {
	ID                      string          `json:"id"`
	EmployeeID              string          `json:"employee_id"`
	EmployeeName            string          `json:"employee_name,omitempty"`
	EmployeeCode            string          `json:"employee_code,omitempty"`
	PeriodMonth             int             `json:"period_month"`
	PeriodYear              int             `json:"period_year"`
	BaseMonthlySalary       decimal.Decimal `json:"base_monthly_salary"`
	TotalWorkingDaysInMonth int             `json:"total_working_days_in_month"`
	DaysPresent             int             `json:"days_present"`
	DaysAbsent              int             `json:"days_absent"`
	DaysHalfDay             int             `json:"days_half_day"`
	DaysOnApprovedLeave     int             `json:"days_on_approved_leave"`
	AttendanceDeduction     decimal.Decimal `json:"attendance_deduction"`
	TaxDeduction            decimal.Decimal `json:"tax_deduction"`
	PFDeduction             decimal.Decimal `json:"pf_deduction"`
	OtherDeductions         decimal.Decimal `json:"other_deductions"`
	BonusAmount             decimal.Decimal `json:"bonus_amount"`
	GrossSalary             decimal.Decimal `json:"gross_salary"`
	NetSalary               decimal.Decimal `json:"net_salary"`
	GeneratedAt             time.Time       `json:"generated_at"`
	GeneratedBy             string          `json:"generated_by"`
}

// RunFailure records one employee's failed calculation inside a batch run.
type RunFailure struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

// RunResult summarizes a batch payroll run: a failed employee never aborts
// the run for the others.
type RunResult struct {
	Month     int               `json:"month"`
	Year      int               `json:"year"`
	Succeeded int               `json:"succeeded"`
	Payslips  []PayslipResponse `json:"payslips"`
	Failures  []RunFailure      `json:"failures,omitempty"`
}
