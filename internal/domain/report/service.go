package report

import "context"

// ReportService builds spreadsheet exports of the current period's lists.
type ReportService interface {
	ExportAbsences(ctx context.Context, employeeID string) (Export, error)
	ExportLateness(ctx context.Context, employeeID string) (Export, error)
}
