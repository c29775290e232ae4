package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/agb-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/agb-hr/attendance-backend-go/internal/domain/auth"
	"github.com/agb-hr/attendance-backend-go/internal/domain/employee"
	"github.com/agb-hr/attendance-backend-go/internal/domain/leave"
	"github.com/agb-hr/attendance-backend-go/internal/domain/report"
	"github.com/agb-hr/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAccountLocked):
		TooManyRequests(w, err.Error())
	case errors.Is(err, auth.ErrTokenConflict):
		Conflict(w, "Login session changed, please try again")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrEmployeeScope):
		Forbidden(w, "Record belongs to another employee")
	case errors.Is(err, attendance.ErrMissingField):
		slog.Error("Malformed source record", "error", err)
		InternalServerError(w, "Attendance data is incomplete")

	// Leave domain errors
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)

	// Report domain errors
	case errors.Is(err, report.ErrExportFailed):
		slog.Error("Report export failed", "error", err)
		InternalServerError(w, "Failed to build report")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
