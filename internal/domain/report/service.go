package report

import (
	"context"
)

// ReportService is the read-only work-hour aggregator.
type ReportService interface {
	// GetMonthlyWorkHours combines attendance and overtime into per-day
	// totals and month-level aggregates for one staff member.
	GetMonthlyWorkHours(ctx context.Context, req MonthlyWorkHoursRequest) (MonthlyWorkHoursResponse, error)
}
