package payslip

import (
	"context"

	"github.com/hrms-labs/payroll-backend-go/internal/pkg/actor"
)

type PayrollService interface {
	// RunMonthlyPayroll recomputes and stores payslips for every employee
	// over the period. Individual employee failures are collected in the
	// result instead of aborting the batch.
	RunMonthlyPayroll(ctx context.Context, month, year int, by actor.Actor) (RunResult, error)
	// RecomputeForEmployee recalculates and overwrites the one payslip for
	// (employeeID, month, year).
	RecomputeForEmployee(ctx context.Context, employeeID string, month, year int, by actor.Actor) (PayslipResponse, error)
	GetPayslip(ctx context.Context, id string) (PayslipResponse, error)
	// GetEmployeePayslip looks up the single payslip stored for
	// (employeeID, month, year).
	GetEmployeePayslip(ctx context.Context, employeeID string, month, year int) (PayslipResponse, error)
	ListPayslips(ctx context.Context, month, year int) ([]PayslipResponse, error)
	ListMyPayslips(ctx context.Context, userID string) ([]PayslipResponse, error)
}
