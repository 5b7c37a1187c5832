package cron

import (
	"context"
	"sync"
	"time"

	"github.com/hrms-labs/payroll-backend-go/internal/domain/payslip"
	"github.com/hrms-labs/payroll-backend-go/internal/pkg/actor"
)

// PayrollJobs contains payroll-related cron jobs
type PayrollJobs struct {
	payrollService payslip.PayrollService
	now            func() time.Time

	mu      sync.Mutex
	lastRun struct {
		month int
		year  int
	}
}

// NewPayrollJobs creates payroll cron jobs
func NewPayrollJobs(payrollService payslip.PayrollService) *PayrollJobs {
	return &PayrollJobs{
		payrollService: payrollService,
		now:            time.Now,
	}
}

// RegisterJobs registers all payroll-related cron jobs
func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) {
	// Run the previous month's payroll on the 1st (check every hour)
	scheduler.AddJob(
		"monthly_payroll_run",
		1*time.Hour,
		j.RunPreviousMonthPayroll,
	)
}

// RunPreviousMonthPayroll generates every employee's payslip for the month
// that just ended. The job fires hourly but only acts on the 1st of the
// month, at most once per period per process. A restart on the 1st repeats
// the run, which is harmless: payslip upserts are idempotent.
func (j *PayrollJobs) RunPreviousMonthPayroll(ctx context.Context) error {
	now := j.now().UTC()
	if now.Day() != 1 {
		return nil
	}

	prev := now.AddDate(0, -1, 0)
	month, year := int(prev.Month()), prev.Year()

	j.mu.Lock()
	if j.lastRun.month == month && j.lastRun.year == year {
		j.mu.Unlock()
		return nil
	}
	j.lastRun.month, j.lastRun.year = month, year
	j.mu.Unlock()

	_, err := j.payrollService.RunMonthlyPayroll(ctx, month, year, actor.PayrollScheduler)
	return err
}
