package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/agb-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/agb-hr/attendance-backend-go/internal/domain/employee"
	"github.com/agb-hr/attendance-backend-go/internal/domain/holiday"
	"github.com/agb-hr/attendance-backend-go/internal/domain/leave"
	"golang.org/x/sync/errgroup"
)

var _ attendance.AttendanceService = (*AttendanceServiceImpl)(nil)

type AttendanceServiceImpl struct {
	attendance.PunchRepository
	leave.LeaveRequestRepository
	holiday.PublicHolidayRepository
	employee.EmployeeRepository

	rules Rules
	loc   *time.Location
	now   func() time.Time
}

func NewAttendanceService(
	punchRepo attendance.PunchRepository,
	leaveRepo leave.LeaveRequestRepository,
	holidayRepo holiday.PublicHolidayRepository,
	employeeRepo employee.EmployeeRepository,
	rules Rules,
	loc *time.Location,
	now func() time.Time,
) *AttendanceServiceImpl {
	if now == nil {
		now = time.Now
	}
	return &AttendanceServiceImpl{
		PunchRepository:         punchRepo,
		LeaveRequestRepository:  leaveRepo,
		PublicHolidayRepository: holidayRepo,
		EmployeeRepository:      employeeRepo,
		rules:                   rules,
		loc:                     loc,
		now:                     now,
	}
}

// localNow reads the injected clock in the target location.
func (s *AttendanceServiceImpl) localNow() time.Time {
	return s.now().In(s.loc)
}

func (s *AttendanceServiceImpl) getEmployee(ctx context.Context, employeeID string) (employee.Employee, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

func summarize(emp employee.Employee) attendance.EmployeeSummary {
	return attendance.EmployeeSummary{
		ID:             emp.ID,
		EmployeeNumber: emp.EmployeeNumber,
		Name:           emp.FullName,
		Initials:       emp.Initials(),
	}
}

// loadDataSet reads punches, active leaves and public holidays of period concurrently.
func (s *AttendanceServiceImpl) loadDataSet(ctx context.Context, employeeID string, period attendance.Period) (DataSet, error) {
	var (
		punches  []attendance.Punch
		leaves   []leave.LeaveRequest
		holidays []holiday.PublicHoliday
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		punches, err = s.PunchRepository.ListByEmployee(gCtx, employeeID, period.Start, period.End)
		if err != nil {
			return fmt.Errorf("failed to fetch attendance punches: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		leaves, err = s.LeaveRequestRepository.ListActiveByEmployee(gCtx, employeeID, period.Start, period.End)
		if err != nil {
			return fmt.Errorf("failed to fetch leave requests: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		holidays, err = s.PublicHolidayRepository.ListPublic(gCtx, period.Start, period.End)
		if err != nil {
			return fmt.Errorf("failed to fetch public holidays: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return DataSet{}, err
	}

	for _, p := range punches {
		if p.EmployeeID != "" && p.EmployeeID != employeeID {
			return DataSet{}, fmt.Errorf("attendance %s: %w", p.ID, attendance.ErrEmployeeScope)
		}
	}

	return NewDataSet(s.loc, punches, leaves, holidays)
}

// GetDashboard implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDashboard(ctx context.Context, employeeID string) (attendance.DashboardResponse, error) {
	emp, err := s.getEmployee(ctx, employeeID)
	if err != nil {
		return attendance.DashboardResponse{}, err
	}

	now := s.localNow()
	period := s.rules.ResolvePeriod(now)

	ds, err := s.loadDataSet(ctx, emp.ID, period)
	if err != nil {
		return attendance.DashboardResponse{}, err
	}

	return attendance.DashboardResponse{
		Employee:      summarize(emp),
		Stats:         s.rules.Aggregate(period, ds, now),
		PeriodStart:   period.Start.Format("2006-01-02"),
		PeriodEnd:     period.End.Format("2006-01-02"),
		CurrentPeriod: period.Label(),
	}, nil
}

// GetPeriodStats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetPeriodStats(ctx context.Context, employeeID string, req attendance.PeriodStatsRequest) (attendance.PeriodStatsResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PeriodStatsResponse{}, err
	}

	emp, err := s.getEmployee(ctx, employeeID)
	if err != nil {
		return attendance.PeriodStatsResponse{}, err
	}

	from, _ := time.Parse("2006-01-02", req.StartDate)
	to, _ := time.Parse("2006-01-02", req.EndDate)
	period := DayWindow(from, to, s.loc)

	ds, err := s.loadDataSet(ctx, emp.ID, period)
	if err != nil {
		return attendance.PeriodStatsResponse{}, err
	}

	return attendance.PeriodStatsResponse{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Stats:     s.rules.Aggregate(period, ds, s.localNow()),
	}, nil
}

// GetCalendar implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetCalendar(ctx context.Context, employeeID string, req attendance.CalendarRequest) (attendance.CalendarResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CalendarResponse{}, err
	}

	emp, err := s.getEmployee(ctx, employeeID)
	if err != nil {
		return attendance.CalendarResponse{}, err
	}

	now := s.localNow()
	year, m := req.YearMonth(now.Year(), int(now.Month()))
	month := time.Month(m)

	ds, err := s.loadDataSet(ctx, emp.ID, MonthPeriod(year, month, s.loc))
	if err != nil {
		return attendance.CalendarResponse{}, err
	}

	return attendance.CalendarResponse{
		Employee:  summarize(emp),
		Year:      year,
		Month:     m,
		MonthName: month.String(),
		PrevMonth: PrevMonth(year, month),
		NextMonth: NextMonth(year, month),
		Days:      s.rules.ClassifyMonth(year, month, ds, now, emp.ShiftName()),
	}, nil
}

// GetAbsences implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAbsences(ctx context.Context, employeeID string) (attendance.AbsenceListResponse, error) {
	emp, err := s.getEmployee(ctx, employeeID)
	if err != nil {
		return attendance.AbsenceListResponse{}, err
	}

	now := s.localNow()
	period := s.rules.ResolvePeriod(now)

	ds, err := s.loadDataSet(ctx, emp.ID, period)
	if err != nil {
		return attendance.AbsenceListResponse{}, err
	}

	absences := s.rules.ScanAbsences(period, ds, now)
	return attendance.AbsenceListResponse{
		Employee:      summarize(emp),
		AbsentDays:    absences,
		TotalAbsent:   len(absences),
		CurrentPeriod: attendance.Period{Start: period.Start, End: now}.Label(),
	}, nil
}

// GetLateness implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetLateness(ctx context.Context, employeeID string) (attendance.LatenessListResponse, error) {
	emp, err := s.getEmployee(ctx, employeeID)
	if err != nil {
		return attendance.LatenessListResponse{}, err
	}

	now := s.localNow()
	period := s.rules.ResolvePeriod(now)

	punches, err := s.PunchRepository.ListByCheckIn(ctx, emp.ID, period.Start, period.End)
	if err != nil {
		return attendance.LatenessListResponse{}, fmt.Errorf("failed to fetch attendance punches: %w", err)
	}

	records, total, avg := ScanLateness(period, punches)
	return attendance.LatenessListResponse{
		Employee:         summarize(emp),
		LateDays:         records,
		TotalLateDays:    len(records),
		TotalLateMinutes: total,
		AverageLateness:  avg,
		CurrentPeriod:    attendance.Period{Start: period.Start, End: now}.Label(),
	}, nil
}
