package attendance

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/agb-hr/attendance-backend-go/internal/domain/attendance"
)

// ParseLateMinutes converts a lateness value to minutes. The value is either fractional
// hours ("0.25") or a clock duration ("HH:MM"). Malformed values count as 0.
func ParseLateMinutes(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	var hours, minutes int
	if strings.Contains(raw, ":") {
		parts := strings.Split(raw, ":")
		if len(parts) != 2 {
			slog.Debug("Ignoring malformed lateness value", "value", raw)
			return 0
		}
		hh, errH := strconv.Atoi(strings.TrimSpace(parts[0]))
		mm, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errH != nil || errM != nil {
			slog.Debug("Ignoring malformed lateness value", "value", raw)
			return 0
		}
		hours, minutes = hh, mm
	} else {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			slog.Debug("Ignoring malformed lateness value", "value", raw)
			return 0
		}
		hours = int(f)
		minutes = int((f - float64(hours)) * 60)
	}

	late := hours*60 + minutes
	if late < 0 {
		return 0
	}
	return late
}

// SeverityFor buckets lateness: up to 5 minutes is low, up to 15 medium, above that high.
func SeverityFor(minutes int) attendance.Severity {
	switch {
	case minutes <= 0:
		return attendance.SeverityNone
	case minutes <= 5:
		return attendance.SeverityLow
	case minutes <= 15:
		return attendance.SeverityMedium
	default:
		return attendance.SeverityHigh
	}
}

// ScanLateness returns one record per punch checked in inside the period with a non-zero
// lateness, the total minutes, and the average over late days (0 when there are none).
func ScanLateness(period attendance.Period, punches []attendance.Punch) ([]attendance.LatenessRecord, int, float64) {
	loc := period.Start.Location()
	records := []attendance.LatenessRecord{}
	total := 0

	for _, p := range punches {
		if p.CheckIn == nil || p.CheckIn.Before(period.Start) || p.CheckIn.After(period.End) {
			continue
		}
		minutes := ParseLateMinutes(p.LateDisplay)
		if minutes == 0 {
			continue
		}
		total += minutes

		checkIn := p.CheckIn.In(loc)
		date := attendance.DateOf(checkIn)
		records = append(records, attendance.LatenessRecord{
			Date:          &date,
			ISODate:       date.Format("2006-01-02"),
			FormattedDate: date.Format("Monday, January 02, 2006"),
			CheckInTime:   clockString(&checkIn),
			LateMinutes:   minutes,
			Severity:      SeverityFor(minutes),
		})
	}

	var avg float64
	if len(records) > 0 {
		avg = float64(total) / float64(len(records))
	}
	return records, total, avg
}
