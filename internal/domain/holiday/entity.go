package holiday

import "time"

// PublicHoliday is an entry of the holiday calendar. Entries scoped to a resource apply to
// a single employee and are not public.
type PublicHoliday struct {
	ID         string
	Name       string
	DateFrom   time.Time
	DateTo     time.Time
	ResourceID *string
}

// IsPublic reports whether the holiday applies to every employee.
func (h PublicHoliday) IsPublic() bool {
	return h.ResourceID == nil || *h.ResourceID == ""
}

// Covers reports whether day falls between DateFrom and DateTo by calendar date.
// Both bounds are compared in day's location.
func (h PublicHoliday) Covers(day time.Time) bool {
	loc := day.Location()
	d := truncateDay(day)
	return !d.Before(truncateDay(h.DateFrom.In(loc))) && !d.After(truncateDay(h.DateTo.In(loc)))
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
