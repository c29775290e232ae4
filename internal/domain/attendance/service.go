package attendance

import (
	"context"
)

// AttendanceService exposes the read paths over an employee's attendance.
// Every call re-reads source data; nothing is cached between calls.
type AttendanceService interface {
	// GetDashboard returns the statistics of the current reporting period.
	GetDashboard(ctx context.Context, employeeID string) (DashboardResponse, error)

	// GetPeriodStats aggregates an explicit window (YYYY-MM-DD bounds, inclusive).
	GetPeriodStats(ctx context.Context, employeeID string, req PeriodStatsRequest) (PeriodStatsResponse, error)

	// GetCalendar classifies every day of a month.
	GetCalendar(ctx context.Context, employeeID string, req CalendarRequest) (CalendarResponse, error)

	// GetAbsences lists full and half absences of the current period up to today.
	GetAbsences(ctx context.Context, employeeID string) (AbsenceListResponse, error)

	// GetLateness lists late punches of the current period.
	GetLateness(ctx context.Context, employeeID string) (LatenessListResponse, error)
}
