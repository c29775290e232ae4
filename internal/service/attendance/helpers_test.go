package attendance

import (
	"time"

	"github.com/agb-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/agb-hr/attendance-backend-go/internal/domain/holiday"
	"github.com/agb-hr/attendance-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

var yangon = time.FixedZone("Asia/Yangon", 6*3600+30*60)

func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, yangon)
}

func ptr[T any](v T) *T {
	return &v
}

func punch(in, out *time.Time) attendance.Punch {
	return attendance.Punch{ID: "att-1", EmployeeID: "emp-1", CheckIn: in, CheckOut: out}
}

func fullLeave(from, to time.Time, days float64) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:              "leave-1",
		EmployeeID:      "emp-1",
		DateFrom:        from,
		DateTo:          to,
		State:           leave.StateValidate,
		NumberOfDays:    decimal.NewFromFloat(days),
		HolidayTypeName: "Annual Leave",
	}
}

func halfLeave(day time.Time, period leave.HalfDayPeriod) leave.LeaveRequest {
	l := fullLeave(day, day, 0.5)
	l.IsHalfDay = true
	l.HalfDayPeriod = &period
	return l
}

func publicHoliday(from, to time.Time) holiday.PublicHoliday {
	return holiday.PublicHoliday{ID: "hol-1", Name: "Thadingyut", DateFrom: from, DateTo: to}
}
