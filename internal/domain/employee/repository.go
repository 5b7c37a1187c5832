package employee

import "context"

// EmployeeRepository is the payroll engine's read-side view of employee
// records. Employee CRUD is owned elsewhere; the engine never writes here.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
}
