package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

// State is the workflow state of a leave request.
type State string

const (
	StateDraft     State = "draft"
	StateConfirm   State = "confirm"
	StateValidate  State = "validate"
	StateValidate1 State = "validate1"
	StateRefuse    State = "refuse"
)

// ActiveStates are the states counted as real absence for scheduling purposes.
var ActiveStates = []State{StateConfirm, StateValidate, StateValidate1}

// IsActive reports whether s is one of ActiveStates.
func (s State) IsActive() bool {
	for _, active := range ActiveStates {
		if s == active {
			return true
		}
	}
	return false
}

// HalfDayPeriod tells which half of the day a half-day leave covers.
type HalfDayPeriod string

const (
	HalfDayMorning   HalfDayPeriod = "am"
	HalfDayAfternoon HalfDayPeriod = "pm"
)

var half = decimal.NewFromFloat(0.5)

// LeaveRequest entity
type LeaveRequest struct {
	ID         string
	EmployeeID string

	// Calendar dates, time of day is ignored.
	DateFrom time.Time
	DateTo   time.Time

	State         State
	NumberOfDays  decimal.Decimal
	IsHalfDay     bool
	HalfDayPeriod *HalfDayPeriod

	HolidayTypeName string
	FirstApprover   string
	SecondApprovers []string
	Reason          string

	CreatedAt time.Time
}

// Covers reports whether day falls inside [DateFrom, DateTo], compared by calendar date.
func (l LeaveRequest) Covers(day time.Time) bool {
	d := dateKey(day)
	return dateKey(l.DateFrom) <= d && d <= dateKey(l.DateTo)
}

// HasHalfDayRemainder reports whether NumberOfDays has a fractional part of exactly 0.5
// (0.5, 1.5, 2.5, ...).
func (l LeaveRequest) HasHalfDayRemainder() bool {
	return l.NumberOfDays.Mod(decimal.NewFromInt(1)).Equal(half)
}

// DeclaredHalfDay returns the half-day period when the request is flagged as half-day.
func (l LeaveRequest) DeclaredHalfDay() (HalfDayPeriod, bool) {
	if !l.IsHalfDay || l.HalfDayPeriod == nil {
		return "", false
	}
	return *l.HalfDayPeriod, true
}

// dateKey maps a time to yyyymmdd in its own location.
func dateKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
