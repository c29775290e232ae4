package attendance

import (
	"math"
	"time"

	"github.com/agb-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// ClassifyMonth classifies every day of a calendar month, keyed by day of month.
func (r Rules) ClassifyMonth(year int, month time.Month, ds DataSet, today time.Time, shiftName string) map[int]attendance.DayRecord {
	loc := ds.Location()
	numDays := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	days := make(map[int]attendance.DayRecord, numDays)

	for d := 1; d <= numDays; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, loc)
		days[d] = r.ClassifyDay(DayInput{
			Date:      date,
			Today:     today,
			Punch:     ds.PunchOn(date),
			Leaves:    ds.LeavesOn(date),
			Holidays:  ds.HolidaysOn(date),
			ShiftName: shiftName,
		})
	}

	return days
}

// Aggregate rolls the days of period into PeriodStats. Every month touched by the period
// is classified and the days outside the period are dropped.
func (r Rules) Aggregate(period attendance.Period, ds DataSet, today time.Time) attendance.PeriodStats {
	loc := ds.Location()
	period = attendance.Period{Start: period.Start.In(loc), End: period.End.In(loc)}

	var present float64
	var invalidHalfDays float64
	cursor := time.Date(period.Start.Year(), period.Start.Month(), 1, 0, 0, 0, 0, loc)
	for !cursor.After(period.End) {
		for _, rec := range r.ClassifyMonth(cursor.Year(), cursor.Month(), ds, today, "") {
			if !period.Contains(rec.Date) {
				continue
			}
			present += rec.AttendanceFraction
			if rec.IsInvalidHalfLeave {
				invalidHalfDays += rec.LeaveDays
			}
		}
		cursor = cursor.AddDate(0, 1, 0)
	}

	var absent float64
	for _, a := range r.ScanAbsences(period, ds, today) {
		absent += a.AbsentFraction
	}
	absent += invalidHalfDays

	lateCount := 0
	for _, p := range ds.Punches() {
		if p.CheckIn == nil || p.CheckIn.Before(period.Start) || p.CheckIn.After(period.End) {
			continue
		}
		if ParseLateMinutes(p.LateDisplay) > 0 {
			lateCount++
		}
	}

	// Leaves count in full even when they cross the period boundary.
	leaveDays := decimal.Zero
	startDate := attendance.DateOf(period.Start)
	endDate := attendance.DateOf(period.End)
	for _, l := range ds.Leaves() {
		from := time.Date(l.DateFrom.Year(), l.DateFrom.Month(), l.DateFrom.Day(), 0, 0, 0, 0, loc)
		to := time.Date(l.DateTo.Year(), l.DateTo.Month(), l.DateTo.Day(), 0, 0, 0, 0, loc)
		if from.After(endDate) || to.Before(startDate) {
			continue
		}
		leaveDays = leaveDays.Add(l.NumberOfDays)
	}

	return attendance.PeriodStats{
		AttendanceCount: round1(present),
		AbsentCount:     round1(absent),
		LateCount:       lateCount,
		LeaveCount:      leaveDays.InexactFloat64(),
		TotalDays:       period.Days(),
	}
}

// PrevMonth and NextMonth step a (year, month) pair across year boundaries.
func PrevMonth(year int, month time.Month) attendance.MonthRef {
	if month == time.January {
		return attendance.MonthRef{Year: year - 1, Month: 12}
	}
	return attendance.MonthRef{Year: year, Month: int(month) - 1}
}

func NextMonth(year int, month time.Month) attendance.MonthRef {
	if month == time.December {
		return attendance.MonthRef{Year: year + 1, Month: 1}
	}
	return attendance.MonthRef{Year: year, Month: int(month) + 1}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
