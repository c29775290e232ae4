package attendance

import (
	"testing"
	"time"

	"github.com/agb-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/agb-hr/attendance-backend-go/internal/domain/holiday"
	"github.com/agb-hr/attendance-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = at(2026, time.October, 16, 10, 0) // Friday

func classify(in DayInput) attendance.DayRecord {
	if in.Today.IsZero() {
		in.Today = today
	}
	return DefaultRules().ClassifyDay(in)
}

func TestClassifyDay_FullWeekdayPunch(t *testing.T) {
	monday := at(2026, time.October, 12, 0, 0)
	p := punch(ptr(at(2026, time.October, 12, 9, 0)), ptr(at(2026, time.October, 12, 18, 0)))

	rec := classify(DayInput{Date: monday, Punch: &p})

	assert.Equal(t, 1.0, rec.AttendanceFraction)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.Equal(t, 9.0, rec.WorkingHours)
	assert.Equal(t, "09:00", *rec.CheckInTime)
	assert.Equal(t, "18:00", *rec.CheckOutTime)
	assert.True(t, rec.IsClickable)
	assert.False(t, rec.HasLeave)
	assert.Nil(t, rec.Leave)
	assert.Nil(t, rec.Holiday)
}

func TestClassifyDay_ShortPunchIsHalfDay(t *testing.T) {
	monday := at(2026, time.October, 12, 0, 0)
	p := punch(ptr(at(2026, time.October, 12, 9, 0)), ptr(at(2026, time.October, 12, 13, 59)))

	rec := classify(DayInput{Date: monday, Punch: &p})

	assert.Equal(t, 0.5, rec.AttendanceFraction)
	assert.Equal(t, attendance.StatusPartialAbsent, rec.Status)
}

func TestClassifyDay_Idempotent(t *testing.T) {
	day := at(2026, time.October, 13, 0, 0)
	p := punch(ptr(at(2026, time.October, 13, 9, 0)), nil)
	l := halfLeave(day, leave.HalfDayAfternoon)
	in := DayInput{Date: day, Punch: &p, Leaves: []leave.LeaveRequest{l}}

	assert.Equal(t, classify(in), classify(in))
}

func TestClassifyDay_MorningHalfLeaveWithoutCheckIn(t *testing.T) {
	day := at(2026, time.October, 14, 0, 0)
	p := punch(nil, ptr(at(2026, time.October, 14, 14, 0)))
	l := halfLeave(day, leave.HalfDayMorning)

	rec := classify(DayInput{Date: day, Punch: &p, Leaves: []leave.LeaveRequest{l}})

	assert.True(t, rec.IsInvalidHalfLeave)
	assert.False(t, rec.IsPartialLeave)
	assert.Equal(t, attendance.StatusInvalidHalfLeave, rec.Status)
	assert.NotEqual(t, attendance.StatusLeave, rec.Status)
	require.NotNil(t, rec.Leave)
	assert.True(t, rec.Leave.IsInvalidHalfLeave)
	assert.Equal(t, "am", *rec.Leave.HalfDayType)
	assert.Equal(t, 0.5, rec.LeaveDays)
}

func TestClassifyDay_HalfLeaveValidation(t *testing.T) {
	day := at(2026, time.October, 14, 0, 0)
	in := func(h, m int) *time.Time { return ptr(at(2026, time.October, 14, h, m)) }

	cases := []struct {
		name        string
		period      leave.HalfDayPeriod
		punch       *attendance.Punch
		wantInvalid bool
		wantStatus  attendance.DayStatus
	}{
		{"morning leave, afternoon worked", leave.HalfDayMorning, ptr(punch(in(13, 0), in(18, 0))), false, attendance.StatusPartialLeave},
		{"morning leave, too short", leave.HalfDayMorning, ptr(punch(in(13, 0), in(14, 30))), true, attendance.StatusInvalidHalfLeave},
		{"morning leave, no check-out", leave.HalfDayMorning, ptr(punch(in(13, 0), nil)), true, attendance.StatusInvalidHalfLeave},
		{"afternoon leave, morning worked", leave.HalfDayAfternoon, ptr(punch(in(9, 0), in(12, 0))), false, attendance.StatusPartialLeave},
		{"afternoon leave, no check-in", leave.HalfDayAfternoon, ptr(punch(nil, in(12, 0))), true, attendance.StatusInvalidHalfLeave},
		{"afternoon leave, no punch", leave.HalfDayAfternoon, nil, true, attendance.StatusInvalidHalfLeave},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := classify(DayInput{Date: day, Punch: tc.punch, Leaves: []leave.LeaveRequest{halfLeave(day, tc.period)}})
			assert.Equal(t, tc.wantInvalid, rec.IsInvalidHalfLeave)
			assert.Equal(t, tc.wantStatus, rec.Status)
		})
	}
}

func TestClassifyDay_HalfDayFlagWithoutHalfRemainderIsNotValidated(t *testing.T) {
	day := at(2026, time.October, 14, 0, 0)
	l := halfLeave(day, leave.HalfDayMorning)
	l.NumberOfDays = l.NumberOfDays.Add(l.NumberOfDays) // 1.0

	rec := classify(DayInput{Date: day, Leaves: []leave.LeaveRequest{l}})

	assert.False(t, rec.IsInvalidHalfLeave)
	assert.Equal(t, attendance.StatusLeave, rec.Status)
}

func TestClassifyDay_OneAndAHalfDayLeaveIsValidated(t *testing.T) {
	day := at(2026, time.October, 14, 0, 0)
	l := fullLeave(at(2026, time.October, 13, 0, 0), day, 1.5)
	l.IsHalfDay = true
	l.HalfDayPeriod = ptr(leave.HalfDayAfternoon)

	rec := classify(DayInput{Date: day, Leaves: []leave.LeaveRequest{l}})

	assert.True(t, rec.IsInvalidHalfLeave)
	assert.Equal(t, 1.5, rec.LeaveDays)
}

func TestClassifyDay_CheckInOnlyToday(t *testing.T) {
	p := punch(ptr(at(2026, time.October, 16, 9, 0)), nil)

	rec := classify(DayInput{Date: at(2026, time.October, 16, 0, 0), Punch: &p})

	assert.Equal(t, 0.5, rec.AttendanceFraction)
	assert.Equal(t, attendance.StatusPartialAbsent, rec.Status)
	assert.True(t, rec.IsToday)
}

func TestClassifyDay_WeekendWork(t *testing.T) {
	saturday := at(2026, time.October, 10, 0, 0)
	p := punch(ptr(at(2026, time.October, 10, 9, 0)), ptr(at(2026, time.October, 10, 18, 0)))

	rec := classify(DayInput{Date: saturday, Punch: &p})
	assert.Equal(t, attendance.StatusWeekendPresent, rec.Status)
	assert.True(t, rec.IsWeekend)

	rec = classify(DayInput{Date: saturday, Punch: &p, Leaves: []leave.LeaveRequest{fullLeave(saturday, saturday, 1)}})
	assert.Equal(t, attendance.StatusWeekendHalfLeave, rec.Status)
	assert.True(t, rec.IsPartialLeave)

	half := punch(ptr(at(2026, time.October, 10, 9, 0)), nil)
	rec = classify(DayInput{Date: saturday, Punch: &half})
	assert.Equal(t, attendance.StatusWeekendPartial, rec.Status)

	rec = classify(DayInput{Date: saturday, Punch: &half, Leaves: []leave.LeaveRequest{fullLeave(saturday, saturday, 1)}})
	assert.Equal(t, attendance.StatusWeekendHalfLeave, rec.Status)
}

func TestClassifyDay_WeekendRefinementOnlyForWeekendWork(t *testing.T) {
	saturday := at(2026, time.October, 10, 0, 0)
	monday := at(2026, time.October, 12, 0, 0)

	// Weekend without punches keeps the plain leave status.
	rec := classify(DayInput{Date: saturday, Leaves: []leave.LeaveRequest{fullLeave(saturday, saturday, 1)}})
	assert.Equal(t, attendance.StatusLeave, rec.Status)

	// Weekday work with a leave is a partial leave, not a weekend variant.
	p := punch(ptr(at(2026, time.October, 12, 9, 0)), ptr(at(2026, time.October, 12, 18, 0)))
	rec = classify(DayInput{Date: monday, Punch: &p, Leaves: []leave.LeaveRequest{fullLeave(monday, monday, 1)}})
	assert.Equal(t, attendance.StatusPartialLeave, rec.Status)
	assert.True(t, rec.IsHalfLeave)

	rec = classify(DayInput{Date: saturday})
	assert.Equal(t, attendance.StatusWeekend, rec.Status)
	assert.True(t, rec.IsClickable)
}

func TestClassifyDay_FutureOverride(t *testing.T) {
	tomorrow := at(2026, time.October, 17, 0, 0)
	p := punch(ptr(at(2026, time.October, 17, 9, 0)), ptr(at(2026, time.October, 17, 18, 0)))

	rec := classify(DayInput{Date: tomorrow, Punch: &p})
	assert.Equal(t, attendance.StatusFuture, rec.Status)
	assert.False(t, rec.IsClickable)
	assert.True(t, rec.IsFuture)
	assert.Equal(t, 1.0, rec.AttendanceFraction)

	monday := at(2026, time.October, 19, 0, 0)
	rec = classify(DayInput{Date: monday, Holidays: []holiday.PublicHoliday{publicHoliday(monday, monday)}})
	assert.Equal(t, attendance.StatusFuture, rec.Status)

	rec = classify(DayInput{Date: monday, Leaves: []leave.LeaveRequest{fullLeave(monday, monday, 1)}})
	assert.Equal(t, attendance.StatusLeave, rec.Status)
	assert.True(t, rec.IsClickable)
}

func TestClassifyDay_PublicHoliday(t *testing.T) {
	day := at(2026, time.October, 6, 0, 0)
	p := punch(ptr(at(2026, time.October, 6, 9, 0)), ptr(at(2026, time.October, 6, 18, 0)))
	h := publicHoliday(at(2026, time.October, 5, 0, 0), at(2026, time.October, 7, 23, 59))

	rec := classify(DayInput{
		Date:     day,
		Punch:    &p,
		Leaves:   []leave.LeaveRequest{fullLeave(day, day, 1)},
		Holidays: []holiday.PublicHoliday{h},
	})

	assert.Equal(t, attendance.StatusPublicHoliday, rec.Status)
	assert.False(t, rec.IsClickable)
	require.NotNil(t, rec.Holiday)
	assert.Equal(t, "Thadingyut", rec.Holiday.Name)
}

func TestClassifyDay_AbsentWeekday(t *testing.T) {
	rec := classify(DayInput{Date: at(2026, time.October, 15, 0, 0)})
	assert.Equal(t, attendance.StatusFullAbsent, rec.Status)
	assert.False(t, rec.IsClickable)
	assert.Equal(t, 0.0, rec.AttendanceFraction)

	rec = classify(DayInput{Date: at(2026, time.October, 16, 0, 0)})
	assert.Equal(t, attendance.StatusFullAbsent, rec.Status, "today without punches")
}

func TestClassifyDay_FirstLeaveWins(t *testing.T) {
	day := at(2026, time.October, 14, 0, 0)
	first := halfLeave(day, leave.HalfDayMorning)
	first.ID = "first"
	first.HolidayTypeName = "Casual Leave"
	second := fullLeave(day, day, 1)
	second.ID = "second"

	rec := classify(DayInput{Date: day, Leaves: []leave.LeaveRequest{first, second}})

	assert.True(t, rec.IsInvalidHalfLeave)
	assert.Equal(t, "Casual Leave", rec.Leave.LeaveName)
}

func TestClassifyDay_Lateness(t *testing.T) {
	day := at(2026, time.October, 12, 0, 0)
	cases := []struct {
		raw      string
		minutes  int
		late     bool
		severity attendance.Severity
	}{
		{"00:07", 7, true, attendance.SeverityMedium},
		{"00:15", 15, true, attendance.SeverityMedium},
		{"00:20", 20, true, attendance.SeverityHigh},
		{"0.5", 30, true, attendance.SeverityHigh},
		{"00:00", 0, false, attendance.SeverityNone},
		{"abc", 0, false, attendance.SeverityNone},
		{"", 0, false, attendance.SeverityNone},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			p := punch(ptr(at(2026, time.October, 12, 9, 0)), ptr(at(2026, time.October, 12, 18, 0)))
			p.LateDisplay = tc.raw
			rec := classify(DayInput{Date: day, Punch: &p})
			assert.Equal(t, tc.minutes, rec.LateMinutes)
			assert.Equal(t, tc.late, rec.IsLate)
			assert.Equal(t, tc.severity, rec.Severity)
		})
	}
}

func TestClassifyDay_StatusIsTotal(t *testing.T) {
	known := map[attendance.DayStatus]bool{
		attendance.StatusPublicHoliday: true, attendance.StatusInvalidHalfLeave: true,
		attendance.StatusLeave: true, attendance.StatusPartialLeave: true,
		attendance.StatusWeekendPresent: true, attendance.StatusWeekendPartial: true,
		attendance.StatusWeekendHalfLeave: true, attendance.StatusWeekendLeave: true,
		attendance.StatusWeekend: true, attendance.StatusPresent: true,
		attendance.StatusPartialAbsent: true, attendance.StatusPartial: true,
		attendance.StatusFullAbsent: true, attendance.StatusAbsent: true,
		attendance.StatusFuture: true,
	}

	for d := 10; d <= 19; d++ {
		day := at(2026, time.October, d, 0, 0)
		in := func(h int) *time.Time { return ptr(at(2026, time.October, d, h, 0)) }
		punches := []*attendance.Punch{nil, ptr(punch(in(9), nil)), ptr(punch(nil, in(17))), ptr(punch(in(9), in(12))), ptr(punch(in(9), in(18)))}
		leaves := [][]leave.LeaveRequest{nil, {fullLeave(day, day, 1)}, {halfLeave(day, leave.HalfDayMorning)}, {halfLeave(day, leave.HalfDayAfternoon)}}
		holidays := [][]holiday.PublicHoliday{nil, {publicHoliday(day, day)}}

		for _, p := range punches {
			for _, l := range leaves {
				for _, h := range holidays {
					rec := classify(DayInput{Date: day, Punch: p, Leaves: l, Holidays: h})
					assert.True(t, known[rec.Status], "unknown status %q", rec.Status)
					assert.Contains(t, []float64{0, 0.5, 1.0}, rec.AttendanceFraction)
				}
			}
		}
	}
}
