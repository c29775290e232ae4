package attendance

import (
	"context"
	"time"
)

// PunchRepository defines read access to attendance punches.
type PunchRepository interface {
	// ListByEmployee returns punches whose check-in or check-out falls inside [from, to],
	// ordered by check_in (nulls last) then id.
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]Punch, error)

	// ListByCheckIn returns punches whose check-in falls inside [from, to], ordered by check_in.
	ListByCheckIn(ctx context.Context, employeeID string, from, to time.Time) ([]Punch, error)
}
