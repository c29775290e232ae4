package attendance

import (
	"time"

	"github.com/agb-hr/attendance-backend-go/internal/domain/attendance"
)

// Rules holds the thresholds used by the classification engine.
type Rules struct {
	// CutoffDay is the first day of a reporting period; the period ends the day before
	// in the following month.
	CutoffDay int
	// FullDayHours is the minimum worked duration credited as a full day.
	FullDayHours float64
	// HalfLeaveMinHours is the minimum worked duration that validates a half-day leave.
	HalfLeaveMinHours float64
}

func DefaultRules() Rules {
	return Rules{
		CutoffDay:         26,
		FullDayHours:      5,
		HalfLeaveMinHours: 2,
	}
}

// ResolvePeriod returns [cutoff 00:00:00, cutoff-1 23:59:59 of the following month] in now's
// location. On or after the cutoff day the period starts this month, otherwise last month.
func (r Rules) ResolvePeriod(now time.Time) attendance.Period {
	loc := now.Location()
	year, month := now.Year(), now.Month()
	if now.Day() < r.CutoffDay {
		month--
	}

	// time.Date normalises month 0 and 13, which handles the year rollover.
	start := time.Date(year, month, r.CutoffDay, 0, 0, 0, 0, loc)
	end := time.Date(year, month+1, r.CutoffDay-1, 23, 59, 59, 0, loc)

	return attendance.Period{Start: start, End: end}
}

// MonthPeriod returns the first and last instant of a calendar month.
func MonthPeriod(year int, month time.Month, loc *time.Location) attendance.Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := time.Date(year, month+1, 0, 23, 59, 59, 0, loc)
	return attendance.Period{Start: start, End: end}
}

// DayWindow returns [from 00:00:00, to 23:59:59] in loc.
func DayWindow(from, to time.Time, loc *time.Location) attendance.Period {
	return attendance.Period{
		Start: time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc),
		End:   time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, loc),
	}
}
