package http

import (
	"log/slog"
	"net/http"

	"github.com/agb-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/agb-hr/attendance-backend-go/internal/handler/http/middleware"
	"github.com/agb-hr/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	PeriodStats(w http.ResponseWriter, r *http.Request)
	Calendar(w http.ResponseWriter, r *http.Request)
	Absences(w http.ResponseWriter, r *http.Request)
	Lateness(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	timezone          string
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, timezone string) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		timezone:          timezone,
	}
}

// Dashboard implements AttendanceHandler.
func (h *attendanceHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	result, err := h.attendanceService.GetDashboard(r.Context(), employeeID)
	if err != nil {
		slog.Error("Dashboard service error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{Timezone: h.timezone})
}

// PeriodStats implements AttendanceHandler.
func (h *attendanceHandlerImpl) PeriodStats(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	req := attendance.PeriodStatsRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetPeriodStats(r.Context(), employeeID, req)
	if err != nil {
		slog.Error("PeriodStats service error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{Timezone: h.timezone})
}

// Calendar implements AttendanceHandler.
func (h *attendanceHandlerImpl) Calendar(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	req := attendance.CalendarRequest{
		Year:  r.URL.Query().Get("year"),
		Month: r.URL.Query().Get("month"),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetCalendar(r.Context(), employeeID, req)
	if err != nil {
		slog.Error("Calendar service error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{Timezone: h.timezone})
}

// Absences implements AttendanceHandler.
func (h *attendanceHandlerImpl) Absences(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	result, err := h.attendanceService.GetAbsences(r.Context(), employeeID)
	if err != nil {
		slog.Error("Absences service error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Lateness implements AttendanceHandler.
func (h *attendanceHandlerImpl) Lateness(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	result, err := h.attendanceService.GetLateness(r.Context(), employeeID)
	if err != nil {
		slog.Error("Lateness service error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
