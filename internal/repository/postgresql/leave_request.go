package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/agb-hr/attendance-backend-go/internal/domain/leave"
	"github.com/agb-hr/attendance-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// ListActiveByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListActiveByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	if to.Before(from) {
		return nil, leave.ErrInvalidDateRange
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.date_from, lr.date_to, lr.state, lr.number_of_days,
			   lr.is_half_day, lr.half_day_period, lr.leave_type_name,
			   COALESCE(lr.first_approver, ''), COALESCE(lr.second_approvers, '{}'),
			   COALESCE(lr.reason, ''), lr.created_at
		FROM leave_requests lr
		WHERE lr.employee_id = $1
		  AND lr.state = ANY($2)
		  AND lr.date_from <= $4::date
		  AND lr.date_to >= $3::date
		ORDER BY lr.date_from ASC, lr.created_at ASC, lr.id ASC
	`

	states := make([]string, len(leave.ActiveStates))
	for i, s := range leave.ActiveStates {
		states[i] = string(s)
	}

	// Leave dates are calendar dates in the caller's location.
	rows, err := q.Query(ctx, query, employeeID, states, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	loc := from.Location()
	var requests []leave.LeaveRequest
	for rows.Next() {
		var (
			lr     leave.LeaveRequest
			state  string
			period *string
		)
		err := rows.Scan(
			&lr.ID,
			&lr.EmployeeID,
			&lr.DateFrom,
			&lr.DateTo,
			&state,
			&lr.NumberOfDays,
			&lr.IsHalfDay,
			&period,
			&lr.HolidayTypeName,
			&lr.FirstApprover,
			&lr.SecondApprovers,
			&lr.Reason,
			&lr.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		lr.State = leave.State(state)
		if period != nil && *period != "" {
			p := leave.HalfDayPeriod(*period)
			lr.HalfDayPeriod = &p
		}
		lr.DateFrom = inLocation(lr.DateFrom, loc)
		lr.DateTo = inLocation(lr.DateTo, loc)
		requests = append(requests, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, nil
}

// inLocation keeps the calendar date of a DATE column and places it at midnight in loc.
func inLocation(d time.Time, loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}
