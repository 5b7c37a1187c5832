package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hrms-labs/payroll-backend-go/internal/domain/attendance"
	"github.com/hrms-labs/payroll-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) CountByStatus(ctx context.Context, employeeID string, from, to time.Time) (attendance.Summary, error) {
	q := GetQuerier(ctx, r.db)

	// Days without a record are counted nowhere: the gap between the sum of
	// these counters and the month's working days is deliberately left
	// unreconciled.
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = $4) AS days_present,
			COUNT(*) FILTER (WHERE status = $5) AS days_absent,
			COUNT(*) FILTER (WHERE status = $6) AS days_half_day
		FROM attendances
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
	`

	s := attendance.Summary{EmployeeID: employeeID}
	err := q.QueryRow(ctx, query,
		employeeID, from, to,
		attendance.StatusPresent, attendance.StatusAbsent, attendance.StatusHalfDay,
	).Scan(&s.DaysPresent, &s.DaysAbsent, &s.DaysHalfDay)
	if err != nil {
		return attendance.Summary{}, fmt.Errorf("failed to count attendance by status: %w", err)
	}

	return s, nil
}
