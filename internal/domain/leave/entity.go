package leave

import "time"

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// LeaveApplication is an inclusive [StartDate, EndDate] span. Only approved
// applications contribute to payroll reporting.
type LeaveApplication struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Status     LeaveStatus
	Reason     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
