package attendance

import (
	"time"
)

// Punch is one check-in/check-out pair of an employee. Either side may be missing.
type Punch struct {
	ID         string
	EmployeeID string
	CheckIn    *time.Time
	CheckOut   *time.Time

	// LateDisplay is the lateness attached by the time clock, either fractional hours
	// ("0.25") or "HH:MM". Empty means not late.
	LateDisplay string
}

// WorkingHours returns the hours between check-in and check-out, or 0 when a side is missing.
func (p Punch) WorkingHours() float64 {
	if p.CheckIn == nil || p.CheckOut == nil {
		return 0
	}
	return p.CheckOut.Sub(*p.CheckIn).Hours()
}

// DayStatus is the single classification assigned to a calendar day.
type DayStatus string

const (
	StatusPublicHoliday    DayStatus = "public_holiday"
	StatusInvalidHalfLeave DayStatus = "invalid_half_leave"
	StatusLeave            DayStatus = "leave"
	StatusPartialLeave     DayStatus = "partial_leave"
	StatusWeekendPresent   DayStatus = "weekend_present"
	StatusWeekendPartial   DayStatus = "weekend_partial"
	StatusWeekendHalfLeave DayStatus = "weekend_half_leave"
	StatusWeekendLeave     DayStatus = "weekend_leave"
	StatusWeekend          DayStatus = "weekend"
	StatusPresent          DayStatus = "present"
	StatusPartialAbsent    DayStatus = "partial_absent"
	StatusPartial          DayStatus = "partial"
	StatusFullAbsent       DayStatus = "full_absent"
	StatusAbsent           DayStatus = "absent"
	StatusFuture           DayStatus = "future"
)

// Severity buckets lateness minutes.
type Severity string

const (
	SeverityNone   Severity = "none"
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// LeaveInfo is attached to a DayRecord covered by an active leave request.
type LeaveInfo struct {
	LeaveName          string  `json:"leave_name"`
	State              string  `json:"leave_state"`
	Reason             string  `json:"reason"`
	FirstApprover      string  `json:"first_approver"`
	SecondApprover     string  `json:"second_approver"`
	FromDate           string  `json:"from_date"`
	ToDate             string  `json:"to_date"`
	NumberOfDays       float64 `json:"number_of_days"`
	HalfDayType        *string `json:"half_day_type"`
	IsInvalidHalfLeave bool    `json:"is_invalid_half_leave"`
}

// HolidayInfo is attached to a DayRecord covered by a public holiday.
type HolidayInfo struct {
	Name     string    `json:"holiday_name"`
	DateFrom time.Time `json:"holiday_from"`
	DateTo   time.Time `json:"holiday_to"`
}

// DayRecord is the derived classification of one calendar day. It is never persisted.
type DayRecord struct {
	Date          time.Time `json:"-"`
	Day           int       `json:"day"`
	FormattedDate string    `json:"formatted_date"`
	CheckInTime   *string   `json:"check_in_time"`
	CheckOutTime  *string   `json:"check_out_time"`
	WorkingHours  float64   `json:"working_hours"`
	IsWeekend     bool      `json:"is_weekend"`
	IsToday       bool      `json:"is_today"`
	IsFuture      bool      `json:"is_future"`
	HasCheckIn    bool      `json:"has_check_in"`
	HasCheckOut   bool      `json:"has_check_out"`
	HasAttendance bool      `json:"has_attendance"`
	ShiftName     string    `json:"shift_name,omitempty"`

	AttendanceFraction float64 `json:"attendance_fraction"`
	HasLeave           bool    `json:"leave"`
	IsPublicHoliday    bool    `json:"is_public_holiday"`
	IsInvalidHalfLeave bool    `json:"is_invalid_half_leave"`
	IsPartialLeave     bool    `json:"is_partial_leave"`
	IsHalfLeave        bool    `json:"is_half_leave"`

	Status      DayStatus `json:"status"`
	IsLate      bool      `json:"is_late"`
	LateMinutes int       `json:"late_minutes"`
	Severity    Severity  `json:"severity"`
	IsClickable bool      `json:"is_clickable"`

	Leave   *LeaveInfo   `json:"leave_info,omitempty"`
	Holiday *HolidayInfo `json:"holiday_info,omitempty"`

	// LeaveDays is the covering leave's number_of_days.
	LeaveDays float64 `json:"-"`
}

// Period is an inclusive reporting window.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside [Start, End] by calendar date.
func (p Period) Contains(t time.Time) bool {
	d := DateOf(t.In(p.Start.Location()))
	return !d.Before(DateOf(p.Start)) && !d.After(DateOf(p.End))
}

// Days returns the inclusive number of calendar days in the period.
func (p Period) Days() int {
	sy, sm, sd := p.Start.Date()
	ey, em, ed := p.End.In(p.Start.Location()).Date()
	start := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	end := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours()/24) + 1
}

// Label renders the period the way dashboards print it, e.g. "September 26, 2026 - October 25, 2026".
func (p Period) Label() string {
	return p.Start.Format("January 02, 2006") + " - " + p.End.Format("January 02, 2006")
}

// DateOf truncates t to midnight in its own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// PeriodStats is recomputed on every query.
type PeriodStats struct {
	AttendanceCount float64 `json:"attendance_count"`
	AbsentCount     float64 `json:"absent_count"`
	LateCount       int     `json:"late_count"`
	LeaveCount      float64 `json:"leave_count"`
	TotalDays       int     `json:"total_days"`
}

// AbsenceKind distinguishes whole-day from half-day absence.
type AbsenceKind string

const (
	AbsenceFull AbsenceKind = "full_absent"
	AbsenceHalf AbsenceKind = "half_absent"
)

// AbsenceRecord is one day counted as full or partial absence.
type AbsenceRecord struct {
	Date               time.Time   `json:"-"`
	ISODate            string      `json:"iso_date"`
	FormattedDate      string      `json:"formatted_date"`
	Status             AbsenceKind `json:"status"`
	AbsenceType        string      `json:"absence_type"`
	CheckInTime        *string     `json:"check_in_time,omitempty"`
	CheckOutTime       *string     `json:"check_out_time,omitempty"`
	AttendanceFraction float64     `json:"attendance_fraction"`
	AbsentFraction     float64     `json:"absent_fraction"`
}

// LatenessRecord is one punch with a non-zero lateness.
type LatenessRecord struct {
	Date          *time.Time `json:"-"`
	ISODate       string     `json:"iso_date"`
	FormattedDate string     `json:"formatted_date"`
	CheckInTime   *string    `json:"check_in_time"`
	LateMinutes   int        `json:"late_minutes"`
	Severity      Severity   `json:"severity"`
}
