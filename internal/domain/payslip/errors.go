package payslip

import "errors"

var (
	ErrPayslipNotFound = errors.New("payslip not found")
	// ErrInvalidEmployeeState reports an employee whose base annual salary
	// is missing or non-positive.
	ErrInvalidEmployeeState = errors.New("employee has no valid base salary")
	ErrInvalidPeriod        = errors.New("invalid payroll period")
)
