package response

import (
	"errors"
	"net/http"

	"github.com/worklog-hq/worklog-backend-go/internal/domain/attendance"
	"github.com/worklog-hq/worklog-backend-go/internal/domain/income"
	"github.com/worklog-hq/worklog-backend-go/internal/domain/overtime"
	"github.com/worklog-hq/worklog-backend-go/internal/domain/staff"
	"github.com/worklog-hq/worklog-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. State conflicts map to
// 409, missing prerequisites to 404, bad input to 422; anything unknown is
// an internal failure and its detail stays out of the response.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Identity errors
	case errors.Is(err, staff.ErrInvalidToken),
		errors.Is(err, staff.ErrStaffClaimMissing):
		Unauthorized(w, err.Error())
	case errors.Is(err, staff.ErrManagerAccessRequired):
		Forbidden(w, err.Error())

	// Attendance state conflicts
	case errors.Is(err, attendance.ErrAlreadyClockedIn),
		errors.Is(err, attendance.ErrAlreadyClockedOut),
		errors.Is(err, attendance.ErrBreakInProgress):
		Conflict(w, err.Error())

	// Attendance missing prerequisites
	case errors.Is(err, attendance.ErrNotClockedIn),
		errors.Is(err, attendance.ErrNoActiveSession),
		errors.Is(err, attendance.ErrNoOpenBreak),
		errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, err.Error())

	// Overtime
	case errors.Is(err, overtime.ErrOvertimeInProgress):
		Conflict(w, err.Error())
	case errors.Is(err, overtime.ErrNoActiveOvertime),
		errors.Is(err, overtime.ErrSessionNotFound):
		NotFound(w, err.Error())

	// Income
	case errors.Is(err, income.ErrNoCommissionConfigured):
		NotFound(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
