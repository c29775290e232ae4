package attendance

import (
	"math"
	"strings"
	"time"

	"github.com/agb-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/agb-hr/attendance-backend-go/internal/domain/holiday"
	"github.com/agb-hr/attendance-backend-go/internal/domain/leave"
)

// DayInput is everything the classifier needs for one calendar day.
type DayInput struct {
	// Date is any instant on the day, in the target location.
	Date time.Time
	// Today is the current date; it is converted to Date's location.
	Today time.Time

	Punch *attendance.Punch
	// Leaves are the active leaves covering Date. Only the first is used for
	// half-day validation and for LeaveInfo.
	Leaves   []leave.LeaveRequest
	Holidays []holiday.PublicHoliday

	ShiftName string
}

// ClassifyDay derives the DayRecord of one day. It is a pure function of its input.
func (r Rules) ClassifyDay(in DayInput) attendance.DayRecord {
	loc := in.Date.Location()
	day := attendance.DateOf(in.Date)
	today := attendance.DateOf(in.Today.In(loc))

	var checkIn, checkOut *time.Time
	if in.Punch != nil {
		if in.Punch.CheckIn != nil {
			t := in.Punch.CheckIn.In(loc)
			checkIn = &t
		}
		if in.Punch.CheckOut != nil {
			t := in.Punch.CheckOut.In(loc)
			checkOut = &t
		}
	}

	var workingHours float64
	if checkIn != nil && checkOut != nil {
		workingHours = checkOut.Sub(*checkIn).Hours()
	}
	fraction := r.attendanceFraction(checkIn != nil, checkOut != nil, workingHours)

	hasLeave := len(in.Leaves) > 0
	isHoliday := len(in.Holidays) > 0
	weekend := isWeekend(day)
	isFuture := day.After(today)

	var covering *leave.LeaveRequest
	if hasLeave {
		covering = &in.Leaves[0]
	}
	invalidHalf := r.isInvalidHalfLeave(covering, checkIn != nil, checkOut != nil, workingHours)
	partialLeave := hasLeave && fraction > 0 && !invalidHalf

	base := baseStatus(fraction, weekend, !isFuture, hasLeave)
	status := refineStatus(base, dayFlags{
		holiday:      isHoliday,
		invalidHalf:  invalidHalf,
		hasLeave:     hasLeave,
		partialLeave: partialLeave,
		fraction:     fraction,
	})
	if isFuture && !hasLeave {
		status = attendance.StatusFuture
	}

	rec := attendance.DayRecord{
		Date:               day,
		Day:                day.Day(),
		FormattedDate:      day.Format("2006-01-02"),
		CheckInTime:        clockString(checkIn),
		CheckOutTime:       clockString(checkOut),
		WorkingHours:       math.Round(workingHours*100) / 100,
		IsWeekend:          weekend,
		IsToday:            day.Equal(today),
		IsFuture:           isFuture,
		HasCheckIn:         checkIn != nil,
		HasCheckOut:        checkOut != nil,
		HasAttendance:      in.Punch != nil,
		ShiftName:          in.ShiftName,
		AttendanceFraction: fraction,
		HasLeave:           hasLeave,
		IsPublicHoliday:    isHoliday,
		IsInvalidHalfLeave: invalidHalf,
		IsPartialLeave:     partialLeave,
		IsHalfLeave:        status == attendance.StatusPartialLeave,
		Status:             status,
		Severity:           attendance.SeverityNone,
		IsClickable:        isClickable(status, isFuture, hasLeave),
	}

	if in.Punch != nil {
		rec.LateMinutes = ParseLateMinutes(in.Punch.LateDisplay)
		rec.IsLate = rec.LateMinutes > 0
		rec.Severity = SeverityFor(rec.LateMinutes)
	}

	if covering != nil {
		rec.Leave = leaveInfo(*covering, invalidHalf)
		rec.LeaveDays = covering.NumberOfDays.InexactFloat64()
	}

	if isHoliday {
		h := in.Holidays[0]
		rec.Holiday = &attendance.HolidayInfo{
			Name:     h.Name,
			DateFrom: h.DateFrom,
			DateTo:   h.DateTo,
		}
	}

	return rec
}

func (r Rules) attendanceFraction(hasIn, hasOut bool, workingHours float64) float64 {
	switch {
	case hasIn && hasOut:
		if workingHours >= r.FullDayHours {
			return 1.0
		}
		return 0.5
	case hasIn || hasOut:
		return 0.5
	default:
		return 0
	}
}

// isInvalidHalfLeave checks that the half of the day not covered by a half-day leave was
// actually worked: a morning leave needs a check-out, an afternoon leave needs a check-in,
// and both need at least HalfLeaveMinHours on the clock.
func (r Rules) isInvalidHalfLeave(l *leave.LeaveRequest, hasIn, hasOut bool, workingHours float64) bool {
	if l == nil || !l.HasHalfDayRemainder() {
		return false
	}
	period, ok := l.DeclaredHalfDay()
	if !ok {
		return false
	}

	switch period {
	case leave.HalfDayMorning:
		return !hasOut || workingHours < r.HalfLeaveMinHours
	case leave.HalfDayAfternoon:
		return !hasIn || workingHours < r.HalfLeaveMinHours
	}
	return false
}

// baseStatus is the first stage: what the punches alone say about the day.
func baseStatus(fraction float64, weekend, pastOrToday, hasLeave bool) attendance.DayStatus {
	switch {
	case weekend && fraction == 1.0:
		return attendance.StatusWeekendPresent
	case weekend && fraction > 0:
		return attendance.StatusWeekendPartial
	case weekend:
		return attendance.StatusWeekend
	case fraction == 1.0:
		return attendance.StatusPresent
	case fraction == 0.5:
		if pastOrToday && !hasLeave {
			return attendance.StatusPartialAbsent
		}
		return attendance.StatusPartial
	case pastOrToday:
		return attendance.StatusFullAbsent
	default:
		return attendance.StatusAbsent
	}
}

type dayFlags struct {
	holiday      bool
	invalidHalf  bool
	hasLeave     bool
	partialLeave bool
	fraction     float64
}

// refineStatus is the second stage: holiday and leave data overlaid on the base status.
// Weekend work with a leave is reported as a weekend leave variant rather than a plain leave.
func refineStatus(base attendance.DayStatus, f dayFlags) attendance.DayStatus {
	weekendWork := base == attendance.StatusWeekendPresent || base == attendance.StatusWeekendPartial

	switch {
	case f.holiday:
		return attendance.StatusPublicHoliday
	case f.invalidHalf:
		return attendance.StatusInvalidHalfLeave
	case f.hasLeave && weekendWork:
		if f.fraction > 0 {
			return attendance.StatusWeekendHalfLeave
		}
		return attendance.StatusWeekendLeave
	case f.hasLeave && !f.partialLeave:
		return attendance.StatusLeave
	case f.partialLeave:
		return attendance.StatusPartialLeave
	default:
		return base
	}
}

func isClickable(status attendance.DayStatus, isFuture, hasLeave bool) bool {
	if status == attendance.StatusFullAbsent || status == attendance.StatusPublicHoliday {
		return false
	}
	return !(isFuture && !hasLeave)
}

func leaveInfo(l leave.LeaveRequest, invalidHalf bool) *attendance.LeaveInfo {
	info := &attendance.LeaveInfo{
		LeaveName:          l.HolidayTypeName,
		State:              string(l.State),
		Reason:             l.Reason,
		FirstApprover:      l.FirstApprover,
		SecondApprover:     strings.Join(l.SecondApprovers, ", "),
		FromDate:           l.DateFrom.Format("2006-01-02"),
		ToDate:             l.DateTo.Format("2006-01-02"),
		NumberOfDays:       l.NumberOfDays.InexactFloat64(),
		IsInvalidHalfLeave: invalidHalf,
	}
	if period, ok := l.DeclaredHalfDay(); ok {
		p := string(period)
		info.HalfDayType = &p
	}
	return info
}

func clockString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}
