package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hrms-labs/payroll-backend-go/internal/domain/payslip"
	"github.com/hrms-labs/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payslipRepository struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payslip.PayslipRepository {
	return &payslipRepository{db: db}
}

const payslipColumns = `
	p.id, p.employee_id, p.pay_period_month, p.pay_period_year,
	p.base_monthly_salary, p.total_working_days_in_month,
	p.days_present, p.days_absent, p.days_half_day, p.days_on_approved_leave,
	p.attendance_deduction, p.tax_deduction, p.pf_deduction, p.other_deductions,
	p.bonus_amount, p.gross_salary, p.net_salary,
	p.generated_at, p.generated_by, p.created_at, p.updated_at
`

func scanPayslip(row pgx.Row) (payslip.Payslip, error) {
	var p payslip.Payslip
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.PeriodMonth, &p.PeriodYear,
		&p.BaseMonthlySalary, &p.TotalWorkingDaysInMonth,
		&p.DaysPresent, &p.DaysAbsent, &p.DaysHalfDay, &p.DaysOnApprovedLeave,
		&p.AttendanceDeduction, &p.TaxDeduction, &p.PFDeduction, &p.OtherDeductions,
		&p.BonusAmount, &p.GrossSalary, &p.NetSalary,
		&p.GeneratedAt, &p.GeneratedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Upsert relies on the uk_payslip_employee_period unique constraint on
// (employee_id, pay_period_month, pay_period_year). ON CONFLICT arbitration
// serializes concurrent upserts for the same key, so a batch run racing a
// bonus-triggered recompute yields one row with the last writer's values.
func (r *payslipRepository) Upsert(ctx context.Context, p payslip.Payslip) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (
			id, employee_id, pay_period_month, pay_period_year,
			base_monthly_salary, total_working_days_in_month,
			days_present, days_absent, days_half_day, days_on_approved_leave,
			attendance_deduction, tax_deduction, pf_deduction, other_deductions,
			bonus_amount, gross_salary, net_salary, generated_at, generated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (employee_id, pay_period_month, pay_period_year) DO UPDATE SET
			base_monthly_salary = EXCLUDED.base_monthly_salary,
			total_working_days_in_month = EXCLUDED.total_working_days_in_month,
			days_present = EXCLUDED.days_present,
			days_absent = EXCLUDED.days_absent,
			days_half_day = EXCLUDED.days_half_day,
			days_on_approved_leave = EXCLUDED.days_on_approved_leave,
			attendance_deduction = EXCLUDED.attendance_deduction,
			tax_deduction = EXCLUDED.tax_deduction,
			pf_deduction = EXCLUDED.pf_deduction,
			other_deductions = EXCLUDED.other_deductions,
			bonus_amount = EXCLUDED.bonus_amount,
			gross_salary = EXCLUDED.gross_salary,
			net_salary = EXCLUDED.net_salary,
			generated_at = EXCLUDED.generated_at,
			generated_by = EXCLUDED.generated_by,
			updated_at = NOW()
		RETURNING id, employee_id, pay_period_month, pay_period_year,
			base_monthly_salary, total_working_days_in_month,
			days_present, days_absent, days_half_day, days_on_approved_leave,
			attendance_deduction, tax_deduction, pf_deduction, other_deductions,
			bonus_amount, gross_salary, net_salary,
			generated_at, generated_by, created_at, updated_at
	`

	saved, err := scanPayslip(q.QueryRow(ctx, query,
		uuid.New().String(), p.EmployeeID, p.PeriodMonth, p.PeriodYear,
		p.BaseMonthlySalary, p.TotalWorkingDaysInMonth,
		p.DaysPresent, p.DaysAbsent, p.DaysHalfDay, p.DaysOnApprovedLeave,
		p.AttendanceDeduction, p.TaxDeduction, p.PFDeduction, p.OtherDeductions,
		p.BonusAmount, p.GrossSalary, p.NetSalary, p.GeneratedAt, p.GeneratedBy,
	))
	if err != nil {
		return payslip.Payslip{}, fmt.Errorf("failed to upsert payslip: %w", err)
	}

	return saved, nil
}

func (r *payslipRepository) GetByID(ctx context.Context, id string) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `,
			e.full_name AS employee_name, e.employee_code
		FROM payslips p
		JOIN employees e ON p.employee_id = e.id
		WHERE p.id = $1
	`

	var p payslip.Payslip
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.EmployeeID, &p.PeriodMonth, &p.PeriodYear,
		&p.BaseMonthlySalary, &p.TotalWorkingDaysInMonth,
		&p.DaysPresent, &p.DaysAbsent, &p.DaysHalfDay, &p.DaysOnApprovedLeave,
		&p.AttendanceDeduction, &p.TaxDeduction, &p.PFDeduction, &p.OtherDeductions,
		&p.BonusAmount, &p.GrossSalary, &p.NetSalary,
		&p.GeneratedAt, &p.GeneratedBy, &p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName, &p.EmployeeCode,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payslip.Payslip{}, payslip.ErrPayslipNotFound
		}
		return payslip.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return p, nil
}

func (r *payslipRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `
		FROM payslips p
		WHERE p.employee_id = $1 AND p.pay_period_month = $2 AND p.pay_period_year = $3
	`

	p, err := scanPayslip(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payslip.Payslip{}, payslip.ErrPayslipNotFound
		}
		return payslip.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return p, nil
}

func (r *payslipRepository) ListByPeriod(ctx context.Context, month, year int) ([]payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `,
			e.full_name AS employee_name, e.employee_code
		FROM payslips p
		JOIN employees e ON p.employee_id = e.id
		WHERE p.pay_period_month = $1 AND p.pay_period_year = $2
		ORDER BY e.employee_code
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payslip.Payslip
	for rows.Next() {
		var p payslip.Payslip
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.PeriodMonth, &p.PeriodYear,
			&p.BaseMonthlySalary, &p.TotalWorkingDaysInMonth,
			&p.DaysPresent, &p.DaysAbsent, &p.DaysHalfDay, &p.DaysOnApprovedLeave,
			&p.AttendanceDeduction, &p.TaxDeduction, &p.PFDeduction, &p.OtherDeductions,
			&p.BonusAmount, &p.GrossSalary, &p.NetSalary,
			&p.GeneratedAt, &p.GeneratedBy, &p.CreatedAt, &p.UpdatedAt,
			&p.EmployeeName, &p.EmployeeCode,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, p)
	}

	return payslips, nil
}

func (r *payslipRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `
		FROM payslips p
		WHERE p.employee_id = $1
		ORDER BY p.pay_period_year DESC, p.pay_period_month DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payslip.Payslip
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, p)
	}

	return payslips, nil
}
