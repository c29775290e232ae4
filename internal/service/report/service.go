package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/agb-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/agb-hr/attendance-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

var _ report.ReportService = (*ReportServiceImpl)(nil)

type ReportServiceImpl struct {
	attendance.AttendanceService
}

func NewReportService(attendanceService attendance.AttendanceService) *ReportServiceImpl {
	return &ReportServiceImpl{AttendanceService: attendanceService}
}

// ExportAbsences implements report.ReportService.
func (s *ReportServiceImpl) ExportAbsences(ctx context.Context, employeeID string) (report.Export, error) {
	list, err := s.AttendanceService.GetAbsences(ctx, employeeID)
	if err != nil {
		return report.Export{}, err
	}

	var absentDays float64
	rows := make([][]interface{}, 0, len(list.AbsentDays))
	for _, a := range list.AbsentDays {
		absentDays += a.AbsentFraction
		rows = append(rows, []interface{}{
			a.ISODate,
			a.FormattedDate,
			a.AbsenceType,
			deref(a.CheckInTime),
			deref(a.CheckOutTime),
			a.AbsentFraction,
		})
	}
	footer := []interface{}{"Total", "", fmt.Sprintf("%d records", list.TotalAbsent), "", "", absentDays}

	return buildWorkbook(workbook{
		sheet:    "Absences",
		title:    fmt.Sprintf("Absences of %s (%s), %s", list.Employee.Name, list.Employee.EmployeeNumber, list.CurrentPeriod),
		header:   []interface{}{"Date", "Day", "Absence Type", "Check In", "Check Out", "Absent Days"},
		rows:     rows,
		footer:   footer,
		fileName: exportFileName("absences", list.Employee),
	})
}

// ExportLateness implements report.ReportService.
func (s *ReportServiceImpl) ExportLateness(ctx context.Context, employeeID string) (report.Export, error) {
	list, err := s.AttendanceService.GetLateness(ctx, employeeID)
	if err != nil {
		return report.Export{}, err
	}

	rows := make([][]interface{}, 0, len(list.LateDays))
	for _, l := range list.LateDays {
		rows = append(rows, []interface{}{
			l.ISODate,
			l.FormattedDate,
			deref(l.CheckInTime),
			l.LateMinutes,
			string(l.Severity),
		})
	}
	footer := []interface{}{"Total", "", fmt.Sprintf("%d records", list.TotalLateDays), list.TotalLateMinutes, fmt.Sprintf("avg %.1f min", list.AverageLateness)}

	return buildWorkbook(workbook{
		sheet:    "Lateness",
		title:    fmt.Sprintf("Lateness of %s (%s), %s", list.Employee.Name, list.Employee.EmployeeNumber, list.CurrentPeriod),
		header:   []interface{}{"Date", "Day", "Check In", "Late Minutes", "Severity"},
		rows:     rows,
		footer:   footer,
		fileName: exportFileName("lateness", list.Employee),
	})
}

type workbook struct {
	sheet    string
	title    string
	header   []interface{}
	rows     [][]interface{}
	footer   []interface{}
	fileName string
}

// buildWorkbook lays out a title row, a bold header, the data rows and a bold footer.
func buildWorkbook(wb workbook) (report.Export, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", wb.sheet); err != nil {
		return report.Export{}, fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return report.Export{}, fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(wb.header))
	if err != nil {
		return report.Export{}, fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}

	if err := f.SetCellValue(wb.sheet, "A1", wb.title); err != nil {
		return report.Export{}, fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}

	lines := append([][]interface{}{wb.header}, wb.rows...)
	lines = append(lines, wb.footer)
	for i, line := range lines {
		cell, err := excelize.CoordinatesToCellName(1, i+3)
		if err != nil {
			return report.Export{}, fmt.Errorf("%w: %v", report.ErrExportFailed, err)
		}
		if err := f.SetSheetRow(wb.sheet, cell, &line); err != nil {
			return report.Export{}, fmt.Errorf("%w: %v", report.ErrExportFailed, err)
		}
	}

	headerRow, footerRow := 3, len(lines)+2
	for _, row := range []int{1, headerRow, footerRow} {
		start, _ := excelize.CoordinatesToCellName(1, row)
		end, _ := excelize.CoordinatesToCellName(len(wb.header), row)
		if err := f.SetCellStyle(wb.sheet, start, end, bold); err != nil {
			return report.Export{}, fmt.Errorf("%w: %v", report.ErrExportFailed, err)
		}
	}

	if err := f.SetColWidth(wb.sheet, "A", lastCol, 18); err != nil {
		return report.Export{}, fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}
	if err := f.SetColWidth(wb.sheet, "B", "B", 30); err != nil {
		return report.Export{}, fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return report.Export{}, fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}

	return report.Export{
		FileName:    wb.fileName,
		ContentType: report.ContentTypeXLSX,
		Data:        buf.Bytes(),
	}, nil
}

func exportFileName(kind string, emp attendance.EmployeeSummary) string {
	number := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ' ' {
			return '_'
		}
		return r
	}, emp.EmployeeNumber)
	return fmt.Sprintf("%s-%s.xlsx", kind, number)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
