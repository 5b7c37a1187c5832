package leave

import (
	"context"
	"time"
)

// LeaveRepository is the engine's read-side view of leave applications.
// The approval workflow is owned by the leave collaborator.
type LeaveRepository interface {
	// ListApprovedOverlapping returns approved applications whose span
	// intersects [from, to]. Intersection, not containment: a span that
	// merely touches the range is included and is clamped by the caller.
	ListApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveApplication, error)
}
