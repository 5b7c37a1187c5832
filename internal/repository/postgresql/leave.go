package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hrms-labs/payroll-backend-go/internal/domain/leave"
	"github.com/hrms-labs/payroll-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) ListApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	// Range intersection, not containment: start_date <= to AND end_date >= from.
	query := `
		SELECT id, employee_id, start_date, end_date, status, reason, created_at, updated_at
		FROM leave_applications
		WHERE employee_id = $1
			AND status = $2
			AND start_date <= $3
			AND end_date >= $4
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, employeeID, leave.LeaveStatusApproved, to, from)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	defer rows.Close()

	var applications []leave.LeaveApplication
	for rows.Next() {
		var l leave.LeaveApplication
		if err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.StartDate, &l.EndDate, &l.Status, &l.Reason, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave application: %w", err)
		}
		applications = append(applications, l)
	}

	return applications, nil
}
