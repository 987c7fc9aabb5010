package overtime

import (
	"github.com/worklog-hq/worklog-backend-go/internal/pkg/validator"
)

type StartOvertimeRequest struct {
	WorkContent string `json:"work_content"`
}

func (r *StartOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkContent) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_content",
			Message: "work_content is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EndOvertimeRequest struct {
	SessionID string `json:"session_id"`
}

func (r *EndOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SessionID) {
		errs = append(errs, validator.ValidationError{
			Field:   "session_id",
			Message: "session_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MyOvertimeFilter struct {
	Month string `json:"month"`
}

func (f *MyOvertimeFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	} else if _, ok := validator.IsValidMonth(f.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SessionResponse struct {
	ID          string   `json:"id"`
	StaffID     string   `json:"staff_id"`
	Date        string   `json:"date"`
	WorkContent string   `json:"work_content"`
	StartTime   string   `json:"start_time"`
	EndTime     *string  `json:"end_time,omitempty"`
	Hours       *float64 `json:"hours,omitempty"`
	Status      string   `json:"status"`
}

type ListSessionResponse struct {
	Month      string            `json:"month"`
	TotalHours float64           `json:"total_hours"`
	Sessions   []SessionResponse `json:"sessions"`
}
