package attendance

import (
	"time"

	"github.com/agb-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/agb-hr/attendance-backend-go/internal/domain/holiday"
	"github.com/agb-hr/attendance-backend-go/internal/domain/leave"
)

// DataSet is the raw data of one employee over a window, already fetched and shape-checked.
// Punch timestamps are converted to the target location on construction.
type DataSet struct {
	loc      *time.Location
	punches  []attendance.Punch
	leaves   []leave.LeaveRequest
	holidays []holiday.PublicHoliday
}

// NewDataSet validates the records and keeps active leaves and public holidays only.
// Input order is preserved; it decides which record wins when several match one day.
func NewDataSet(loc *time.Location, punches []attendance.Punch, leaves []leave.LeaveRequest, holidays []holiday.PublicHoliday) (DataSet, error) {
	ds := DataSet{loc: loc}

	for _, p := range punches {
		if p.CheckIn == nil && p.CheckOut == nil {
			return DataSet{}, &attendance.MissingFieldError{Entity: "attendance", ID: p.ID, Field: "check_in"}
		}
		if p.CheckIn != nil {
			in := p.CheckIn.In(loc)
			p.CheckIn = &in
		}
		if p.CheckOut != nil {
			out := p.CheckOut.In(loc)
			p.CheckOut = &out
		}
		ds.punches = append(ds.punches, p)
	}

	for _, l := range leaves {
		if l.DateFrom.IsZero() {
			return DataSet{}, &attendance.MissingFieldError{Entity: "leave", ID: l.ID, Field: "date_from"}
		}
		if l.DateTo.IsZero() {
			return DataSet{}, &attendance.MissingFieldError{Entity: "leave", ID: l.ID, Field: "date_to"}
		}
		if !l.State.IsActive() {
			continue
		}
		ds.leaves = append(ds.leaves, l)
	}

	for _, h := range holidays {
		if h.DateFrom.IsZero() {
			return DataSet{}, &attendance.MissingFieldError{Entity: "holiday", ID: h.ID, Field: "date_from"}
		}
		if h.DateTo.IsZero() {
			return DataSet{}, &attendance.MissingFieldError{Entity: "holiday", ID: h.ID, Field: "date_to"}
		}
		if !h.IsPublic() {
			continue
		}
		ds.holidays = append(ds.holidays, h)
	}

	return ds, nil
}

func (ds DataSet) Location() *time.Location {
	return ds.loc
}

// PunchOn returns the first punch with a check-in or a check-out on day.
func (ds DataSet) PunchOn(day time.Time) *attendance.Punch {
	for i := range ds.punches {
		p := &ds.punches[i]
		if (p.CheckIn != nil && sameDate(*p.CheckIn, day)) || (p.CheckOut != nil && sameDate(*p.CheckOut, day)) {
			return p
		}
	}
	return nil
}

// CheckInPunchOn returns the first punch dated by its check-in, or by its check-out when the
// check-in is missing.
func (ds DataSet) CheckInPunchOn(day time.Time) *attendance.Punch {
	for i := range ds.punches {
		p := &ds.punches[i]
		if p.CheckIn != nil {
			if sameDate(*p.CheckIn, day) {
				return p
			}
			continue
		}
		if p.CheckOut != nil && sameDate(*p.CheckOut, day) {
			return p
		}
	}
	return nil
}

// LeavesOn returns the active leaves covering day, in input order.
func (ds DataSet) LeavesOn(day time.Time) []leave.LeaveRequest {
	var out []leave.LeaveRequest
	for _, l := range ds.leaves {
		if l.Covers(day) {
			out = append(out, l)
		}
	}
	return out
}

// HolidaysOn returns the public holidays covering day, in input order.
func (ds DataSet) HolidaysOn(day time.Time) []holiday.PublicHoliday {
	var out []holiday.PublicHoliday
	for _, h := range ds.holidays {
		if h.Covers(day) {
			out = append(out, h)
		}
	}
	return out
}

// Punches returns all punches, converted to the target location.
func (ds DataSet) Punches() []attendance.Punch {
	return ds.punches
}

// Leaves returns the active leaves.
func (ds DataSet) Leaves() []leave.LeaveRequest {
	return ds.leaves
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
