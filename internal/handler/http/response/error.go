package response

import (
	"errors"
	"net/http"

	"github.com/workhive/workhive-backend-go/internal/domain/attendance"
	"github.com/workhive/workhive-backend-go/internal/domain/auth"
	"github.com/workhive/workhive-backend-go/internal/domain/employee"
	"github.com/workhive/workhive-backend-go/internal/pkg/validator"
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
		Unauthorized(w, "Invalid or missing token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is inactive")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "Not clocked in yet")
	case errors.Is(err, attendance.ErrDayOffRequested):
		Conflict(w, "A day off is requested for this date")
	case errors.Is(err, attendance.ErrDayOffConflict):
		Conflict(w, "This date already has attendance data")
	case errors.Is(err, attendance.ErrDayOffInPast):
		BadRequest(w, "Cannot request a day off for a past date", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
