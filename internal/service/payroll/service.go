package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hrms-labs/payroll-backend-go/internal/domain/employee"
	"github.com/hrms-labs/payroll-backend-go/internal/domain/payslip"
	"github.com/hrms-labs/payroll-backend-go/internal/pkg/actor"
	"github.com/hrms-labs/payroll-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

// Transactor runs fn inside a storage transaction; the transaction travels
// in the context fn receives, so repository calls made with it share one tx.
type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type PayrollServiceImpl struct {
	tx           Transactor
	employeeRepo employee.EmployeeRepository
	payslipRepo  payslip.PayslipRepository
	calculator   *Calculator
	workers      int
}

func NewPayrollService(
	tx Transactor,
	employeeRepo employee.EmployeeRepository,
	payslipRepo payslip.PayslipRepository,
	calculator *Calculator,
	workers int,
) payslip.PayrollService {
	if workers < 1 {
		workers = 1
	}
	return &PayrollServiceImpl{
		tx:           tx,
		employeeRepo: employeeRepo,
		payslipRepo:  payslipRepo,
		calculator:   calculator,
		workers:      workers,
	}
}

func (s *PayrollServiceImpl) RunMonthlyPayroll(ctx context.Context, month, year int, by actor.Actor) (payslip.RunResult, error) {
	if !validator.IsValidPeriod(month, year) {
		return payslip.RunResult{}, fmt.Errorf("%w: month=%d year=%d", payslip.ErrInvalidPeriod, month, year)
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return payslip.RunResult{}, fmt.Errorf("failed to list employees: %w", err)
	}

	result := payslip.RunResult{Month: month, Year: year}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, emp := range employees {
		emp := emp
		g.Go(func() error {
			saved, err := s.generateOne(gctx, emp, month, year, by)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				slog.Error("payroll run: employee skipped",
					"employee_id", emp.ID, "month", month, "year", year, "error", err)
				result.Failures = append(result.Failures, payslip.RunFailure{
					EmployeeID: emp.ID,
					Reason:     err.Error(),
				})
				// A failed employee never fails the batch.
				return nil
			}
			result.Succeeded++
			resp := toPayslipResponse(saved)
			resp.EmployeeName = emp.FullName
			resp.EmployeeCode = emp.EmployeeCode
			result.Payslips = append(result.Payslips, resp)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return payslip.RunResult{}, err
	}

	slog.Info("payroll run finished",
		"month", month, "year", year,
		"succeeded", result.Succeeded, "failed", len(result.Failures), "actor", by.Label())

	return result, nil
}

func (s *PayrollServiceImpl) RecomputeForEmployee(ctx context.Context, employeeID string, month, year int, by actor.Actor) (payslip.PayslipResponse, error) {
	if !validator.IsValidPeriod(month, year) {
		return payslip.PayslipResponse{}, fmt.Errorf("%w: month=%d year=%d", payslip.ErrInvalidPeriod, month, year)
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	saved, err := s.generateOne(ctx, emp, month, year, by)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	resp := toPayslipResponse(saved)
	resp.EmployeeName = emp.FullName
	resp.EmployeeCode = emp.EmployeeCode
	return resp, nil
}

// generateOne calculates and stores a single payslip. Aggregation reads and
// the upsert share one transaction, so the stored row always reflects a
// single snapshot of attendance, leave and bonus data. A failed attempt is
// retried once, unless the calculator rejected the input: that outcome is
// deterministic and a retry would only repeat it.
func (s *PayrollServiceImpl) generateOne(ctx context.Context, emp employee.Employee, month, year int, by actor.Actor) (payslip.Payslip, error) {
	saved, err := s.generateOnce(ctx, emp, month, year, by)
	if err != nil && !isCalculatorRejection(err) {
		slog.Warn("payslip generation failed, retrying once",
			"employee_id", emp.ID, "month", month, "year", year, "error", err)
		saved, err = s.generateOnce(ctx, emp, month, year, by)
		if err != nil {
			return payslip.Payslip{}, fmt.Errorf("failed to generate payslip: %w", err)
		}
	}
	return saved, err
}

func (s *PayrollServiceImpl) generateOnce(ctx context.Context, emp employee.Employee, month, year int, by actor.Actor) (payslip.Payslip, error) {
	var saved payslip.Payslip
	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		p, err := s.calculator.Calculate(txCtx, emp, month, year)
		if err != nil {
			return err
		}

		p.GeneratedAt = time.Now().UTC()
		p.GeneratedBy = by.Label()

		saved, err = s.payslipRepo.Upsert(txCtx, p)
		return err
	})
	if err != nil {
		return payslip.Payslip{}, err
	}
	return saved, nil
}

func isCalculatorRejection(err error) bool {
	return errors.Is(err, payslip.ErrInvalidEmployeeState) || errors.Is(err, payslip.ErrInvalidPeriod)
}

func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, id string) (payslip.PayslipResponse, error) {
	p, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	return toPayslipResponse(p), nil
}

func (s *PayrollServiceImpl) GetEmployeePayslip(ctx context.Context, employeeID string, month, year int) (payslip.PayslipResponse, error) {
	if !validator.IsValidPeriod(month, year) {
		return payslip.PayslipResponse{}, fmt.Errorf("%w: month=%d year=%d", payslip.ErrInvalidPeriod, month, year)
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	p, err := s.payslipRepo.GetByEmployeePeriod(ctx, emp.ID, month, year)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	resp := toPayslipResponse(p)
	resp.EmployeeName = emp.FullName
	resp.EmployeeCode = emp.EmployeeCode
	return resp, nil
}

func (s *PayrollServiceImpl) ListPayslips(ctx context.Context, month, year int) ([]payslip.PayslipResponse, error) {
	if !validator.IsValidPeriod(month, year) {
		return nil, fmt.Errorf("%w: month=%d year=%d", payslip.ErrInvalidPeriod, month, year)
	}

	payslips, err := s.payslipRepo.ListByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}

	responses := make([]payslip.PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		responses = append(responses, toPayslipResponse(p))
	}
	return responses, nil
}

func (s *PayrollServiceImpl) ListMyPayslips(ctx context.Context, userID string) ([]payslip.PayslipResponse, error) {
	emp, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	payslips, err := s.payslipRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]payslip.PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		resp := toPayslipResponse(p)
		resp.EmployeeName = emp.FullName
		resp.EmployeeCode = emp.EmployeeCode
		responses = append(responses, resp)
	}
	return responses, nil
}

func toPayslipResponse(p payslip.Payslip) payslip.PayslipResponse {
	resp := payslip.PayslipResponse{
		ID:                      p.ID,
		EmployeeID:              p.EmployeeID,
		PeriodMonth:             p.PeriodMonth,
		PeriodYear:              p.PeriodYear,
		BaseMonthlySalary:       p.BaseMonthlySalary,
		TotalWorkingDaysInMonth: p.TotalWorkingDaysInMonth,
		DaysPresent:             p.DaysPresent,
		DaysAbsent:              p.DaysAbsent,
		DaysHalfDay:             p.DaysHalfDay,
		DaysOnApprovedLeave:     p.DaysOnApprovedLeave,
		AttendanceDeduction:     p.AttendanceDeduction,
		TaxDeduction:            p.TaxDeduction,
		PFDeduction:             p.PFDeduction,
		OtherDeductions:         p.OtherDeductions,
		BonusAmount:             p.BonusAmount,
		GrossSalary:             p.GrossSalary,
		NetSalary:               p.NetSalary,
		GeneratedAt:             p.GeneratedAt,
		GeneratedBy:             p.GeneratedBy,
	}
	if p.EmployeeName != nil {
		resp.EmployeeName = *p.EmployeeName
	}
	if p.EmployeeCode != nil {
		resp.EmployeeCode = *p.EmployeeCode
	}
	return resp
}
