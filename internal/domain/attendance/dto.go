package attendance

import (
	"strconv"

	"github.com/agb-hr/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// REQUEST DTOs
// ========================================

// CalendarRequest selects the month to classify. Empty fields default to the current month.
type CalendarRequest struct {
	Year  string `json:"year"`
	Month string `json:"month"`

	year  int
	month int
}

func (r *CalendarRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year != "" {
		y, err := strconv.Atoi(r.Year)
		if !validator.IsNumeric(r.Year) || err != nil || y < 2000 || y > 2100 {
			errs.Add("year", "year must be a number between 2000 and 2100")
		}
		r.year = y
	}

	if r.Month != "" {
		m, err := strconv.Atoi(r.Month)
		if !validator.IsNumeric(r.Month) || err != nil || m < 1 || m > 12 {
			errs.Add("month", "month must be a number between 1 and 12")
		}
		r.month = m
	}

	return errs.Err()
}

// YearMonth returns the parsed values, falling back to the given defaults for empty fields.
// Validate must have succeeded first.
func (r CalendarRequest) YearMonth(defaultYear, defaultMonth int) (int, int) {
	year, month := defaultYear, defaultMonth
	if r.Year != "" {
		year = r.year
	}
	if r.Month != "" {
		month = r.month
	}
	return year, month
}

// PeriodStatsRequest is an explicit window; both bounds are inclusive YYYY-MM-DD dates.
type PeriodStatsRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *PeriodStatsRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
	}

	if startOK && endOK && end.Before(start) {
		errs.Add("end_date", "end_date must not be before start_date")
	}

	return errs.Err()
}

// ========================================
// RESPONSE DTOs
// ========================================

type EmployeeSummary struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	Name           string `json:"name"`
	Initials       string `json:"initials"`
}

type DashboardResponse struct {
	Employee      EmployeeSummary `json:"employee"`
	Stats         PeriodStats     `json:"stats"`
	PeriodStart   string          `json:"period_start"`
	PeriodEnd     string          `json:"period_end"`
	CurrentPeriod string          `json:"current_period"`
}

type PeriodStatsResponse struct {
	StartDate string      `json:"start_date"`
	EndDate   string      `json:"end_date"`
	Stats     PeriodStats `json:"stats"`
}

type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type CalendarResponse struct {
	Employee  EmployeeSummary   `json:"employee"`
	Year      int               `json:"year"`
	Month     int               `json:"month"`
	MonthName string            `json:"month_name"`
	PrevMonth MonthRef          `json:"prev_month"`
	NextMonth MonthRef          `json:"next_month"`
	Days      map[int]DayRecord `json:"days"`
}

type AbsenceListResponse struct {
	Employee      EmployeeSummary `json:"employee"`
	AbsentDays    []AbsenceRecord `json:"absent_days"`
	TotalAbsent   int             `json:"total_absent"`
	CurrentPeriod string          `json:"current_period"`
}

type LatenessListResponse struct {
	Employee         EmployeeSummary  `json:"employee"`
	LateDays         []LatenessRecord `json:"late_days"`
	TotalLateDays    int              `json:"total_late_days"`
	TotalLateMinutes int              `json:"total_late_minutes"`
	AverageLateness  float64          `json:"avg_lateness"`
	CurrentPeriod    string           `json:"current_period"`
}
