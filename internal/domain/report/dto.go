package report

import (
	"time"

	"github.com/worklog-hq/worklog-backend-go/internal/pkg/validator"
)

// DayWorkHours is one attended day joined with its overtime total. Missing
// overtime counts as zero.
type DayWorkHours struct {
	Date          time.Time
	Status        string
	BaseHours     float64
	OvertimeHours float64
	BreakMinutes  int
}

type MonthlyWorkHoursRequest struct {
	StaffID string `json:"staff_id"`
	Month   string `json:"month"`
}

func (r *MonthlyWorkHoursRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	} else if _, ok := validator.IsValidMonth(r.Month); !ok {
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

type DayWorkHoursResponse struct {
	Date           string  `json:"date"`
	Status         string  `json:"status"`
	BaseHours      float64 `json:"base_hours"`
	OvertimeHours  float64 `json:"overtime_hours"`
	TotalWorkHours float64 `json:"total_work_hours"`
	BreakMinutes   int     `json:"break_minutes"`
}

type MonthlyWorkHoursResponse struct {
	StaffID            string                 `json:"staff_id"`
	Month              string                 `json:"month"`
	AttendedDays       int                    `json:"attended_days"`
	TotalHours         float64                `json:"total_hours"`
	TotalOvertimeHours float64                `json:"total_overtime_hours"`
	AverageHoursPerDay float64                `json:"average_hours_per_day"`
	GeneratedAt        string                 `json:"generated_at"`
	Days               []DayWorkHoursResponse `json:"days"`
}
