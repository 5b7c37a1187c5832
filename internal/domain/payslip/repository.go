package payslip

import "context"

type PayslipRepository interface {
	// Upsert inserts the payslip for its (employee, month, year) key or
	// overwrites every computed field of the existing row. Atomic per key:
	// concurrent upserts for the same key serialize on the uniqueness
	// constraint and the last writer wins.
	Upsert(ctx context.Context, p Payslip) (Payslip, error)
	GetByID(ctx context.Context, id string) (Payslip, error)
	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (Payslip, error)
	ListByPeriod(ctx context.Context, month, year int) ([]Payslip, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Payslip, error)
}
