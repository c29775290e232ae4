package attendance

import (
	"time"

	"github.com/agb-hr/attendance-backend-go/internal/domain/attendance"
)

const (
	absenceFullDay = "Full Day Absent"
	absenceEvening = "Evening Absent"
	absenceMorning = "Morning Absent"
	absenceHalfDay = "Half Day Absent"
)

// ScanAbsences walks the period from its first day up to and including today and returns
// one record per day counted as absence. Holidays and leave days are never absences, and
// weekends only count when a partial punch exists. A check-in without check-out today is
// still in progress and is not judged.
func (r Rules) ScanAbsences(period attendance.Period, ds DataSet, today time.Time) []attendance.AbsenceRecord {
	loc := ds.Location()
	todayDate := attendance.DateOf(today.In(loc))
	last := attendance.DateOf(period.End.In(loc))
	if todayDate.Before(last) {
		last = todayDate
	}

	records := []attendance.AbsenceRecord{}
	for day := attendance.DateOf(period.Start.In(loc)); !day.After(last); day = day.AddDate(0, 0, 1) {
		if len(ds.HolidaysOn(day)) > 0 || len(ds.LeavesOn(day)) > 0 {
			continue
		}

		p := ds.CheckInPunchOn(day)
		if p == nil {
			if !isWeekend(day) {
				records = append(records, absenceRecord(day, attendance.AbsenceFull, absenceFullDay, nil, nil))
			}
			continue
		}

		if day.Equal(todayDate) && p.CheckIn != nil && p.CheckOut == nil {
			continue
		}
		if p.CheckIn != nil && p.CheckOut != nil && p.WorkingHours() >= r.FullDayHours {
			continue
		}

		kind := absenceHalfDay
		switch {
		case p.CheckIn != nil && p.CheckOut == nil:
			kind = absenceEvening
		case p.CheckIn == nil && p.CheckOut != nil:
			kind = absenceMorning
		}
		records = append(records, absenceRecord(day, attendance.AbsenceHalf, kind, p.CheckIn, p.CheckOut))
	}

	return records
}

func absenceRecord(day time.Time, status attendance.AbsenceKind, kind string, checkIn, checkOut *time.Time) attendance.AbsenceRecord {
	rec := attendance.AbsenceRecord{
		Date:          day,
		ISODate:       day.Format("2006-01-02"),
		FormattedDate: day.Format("Monday, January 02, 2006"),
		Status:        status,
		AbsenceType:   kind,
		CheckInTime:   clockString(checkIn),
		CheckOutTime:  clockString(checkOut),
	}
	if status == attendance.AbsenceFull {
		rec.AbsentFraction = 1.0
	} else {
		rec.AttendanceFraction = 0.5
		rec.AbsentFraction = 0.5
	}
	return rec
}
