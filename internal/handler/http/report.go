package http

import (
	"log/slog"
	"net/http"

	"github.com/agb-hr/attendance-backend-go/internal/domain/report"
	"github.com/agb-hr/attendance-backend-go/internal/handler/http/middleware"
	"github.com/agb-hr/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	ExportAbsences(w http.ResponseWriter, r *http.Request)
	ExportLateness(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// ExportAbsences implements ReportHandler.
func (h *reportHandlerImpl) ExportAbsences(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	exp, err := h.reportService.ExportAbsences(r.Context(), employeeID)
	if err != nil {
		slog.Error("ExportAbsences service error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, exp.FileName, exp.ContentType, exp.Data)
}

// ExportLateness implements ReportHandler.
func (h *reportHandlerImpl) ExportLateness(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	exp, err := h.reportService.ExportLateness(r.Context(), employeeID)
	if err != nil {
		slog.Error("ExportLateness service error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, exp.FileName, exp.ContentType, exp.Data)
}
