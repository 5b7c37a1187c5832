package attendance

import (
	"context"
	"time"
)

// AttendanceRepository is the engine's read-side view of attendance records.
// Record creation and the one-record-per-employee-per-date uniqueness rule
// are owned by the attendance collaborator.
type AttendanceRepository interface {
	// CountByStatus counts present/absent/half-day records whose date lies
	// within [from, to] inclusive.
	CountByStatus(ctx context.Context, employeeID string, from, to time.Time) (Summary, error)
}
