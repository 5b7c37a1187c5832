// Package actor identifies who performed a payroll action. Payslips and
// bonuses record the label of the acting principal, which is either a real
// authenticated user or a named system process (e.g. the payroll scheduler).
package actor

// Actor is the principal performing an action.
type Actor interface {
	Label() string
}

// User is a real authenticated principal.
type User struct {
	ID   string
	Name string
}

func (u User) Label() string { return u.Name }

// System is a non-human principal, such as a scheduled job.
type System struct {
	Name string
}

func (s System) Label() string { return s.Name }

// PayrollScheduler is the system actor used by the monthly payroll cron job.
var PayrollScheduler = System{Name: "payroll-scheduler"}
