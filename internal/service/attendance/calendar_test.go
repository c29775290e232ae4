package attendance

import (
	"testing"
	"time"

	"github.com/agb-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyMonth(t *testing.T) {
	ds := octoberDataSet(t)

	days := DefaultRules().ClassifyMonth(2026, time.October, ds, today, "Day Shift")

	require.Len(t, days, 31)
	want := map[int]attendance.DayStatus{
		5:  attendance.StatusFullAbsent,
		6:  attendance.StatusPublicHoliday,
		7:  attendance.StatusLeave,
		8:  attendance.StatusLeave,
		9:  attendance.StatusInvalidHalfLeave,
		10: attendance.StatusWeekendPartial,
		11: attendance.StatusWeekend,
		12: attendance.StatusPresent,
		13: attendance.StatusPartialAbsent,
		14: attendance.StatusPartialAbsent,
		15: attendance.StatusPartialAbsent,
		16: attendance.StatusPartialAbsent,
		17: attendance.StatusFuture,
		19: attendance.StatusFuture,
		31: attendance.StatusFuture,
	}
	for d, status := range want {
		assert.Equal(t, status, days[d].Status, "day %d", d)
		assert.Equal(t, d, days[d].Day)
	}

	assert.Equal(t, "Day Shift", days[1].ShiftName)
	assert.Equal(t, "2026-10-12", days[12].FormattedDate)
	assert.True(t, days[12].IsLate)
	assert.Equal(t, attendance.SeverityMedium, days[12].Severity)
	assert.True(t, days[16].IsToday)
	assert.True(t, days[14].HasCheckOut)
	assert.False(t, days[14].HasCheckIn)
}

func TestClassifyMonth_LeapFebruary(t *testing.T) {
	ds, err := NewDataSet(yangon, nil, nil, nil)
	require.NoError(t, err)

	days := DefaultRules().ClassifyMonth(2024, time.February, ds, today, "")
	assert.Len(t, days, 29)
	assert.Equal(t, attendance.StatusFullAbsent, days[29].Status) // Thursday
}

func TestAggregate(t *testing.T) {
	ds := octoberDataSet(t)
	period := DefaultRules().ResolvePeriod(today)

	stats := DefaultRules().Aggregate(period, ds, today)

	assert.Equal(t, attendance.PeriodStats{
		AttendanceCount: 3.5,
		AbsentCount:     8.5,
		LateCount:       1,
		LeaveCount:      5.5,
		TotalDays:       30,
	}, stats)
}

func TestAggregate_ArbitraryWindow(t *testing.T) {
	ds := octoberDataSet(t)
	window := DayWindow(at(2026, time.October, 12, 0, 0), at(2026, time.October, 14, 0, 0), yangon)

	stats := DefaultRules().Aggregate(window, ds, today)

	assert.Equal(t, 2.0, stats.AttendanceCount)
	assert.Equal(t, 1.0, stats.AbsentCount)
	assert.Equal(t, 1, stats.LateCount)
	assert.Zero(t, stats.LeaveCount)
	assert.Equal(t, 3, stats.TotalDays)
}

func TestAggregate_EmptyData(t *testing.T) {
	ds, err := NewDataSet(yangon, nil, nil, nil)
	require.NoError(t, err)

	// Nov 26 - Dec 25 has not started yet.
	stats := DefaultRules().Aggregate(DefaultRules().ResolvePeriod(at(2026, time.December, 1, 0, 0)), ds, today)

	assert.Zero(t, stats.AttendanceCount)
	assert.Zero(t, stats.AbsentCount)
	assert.Zero(t, stats.LateCount)
	assert.Zero(t, stats.LeaveCount)
	assert.Equal(t, 30, stats.TotalDays)
}

func TestPrevNextMonth(t *testing.T) {
	assert.Equal(t, attendance.MonthRef{Year: 2025, Month: 12}, PrevMonth(2026, time.January))
	assert.Equal(t, attendance.MonthRef{Year: 2026, Month: 9}, PrevMonth(2026, time.October))
	assert.Equal(t, attendance.MonthRef{Year: 2027, Month: 1}, NextMonth(2026, time.December))
	assert.Equal(t, attendance.MonthRef{Year: 2026, Month: 11}, NextMonth(2026, time.October))
}
