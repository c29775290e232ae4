package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository - read access to leave requests
type LeaveRequestRepository interface {
	// ListActiveByEmployee returns requests in confirm/validate/validate1 state overlapping
	// [from, to], ordered by date_from, created_at, id. Callers rely on that order when
	// several requests cover the same day: the first one wins.
	ListActiveByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveRequest, error)
}
