package report

import (
	"context"
	"time"
)

// ReportRepository reads the joined attendance/overtime view. Reads take no
// locks; a report may be stale by the time it is rendered.
type ReportRepository interface {
	// GetMonthlyWorkHours retrieves one row per attendance record in the
	// month, each joined with the summed hours of that day's ended
	// overtime sessions.
	GetMonthlyWorkHours(ctx context.Context, staffID string, year int, month time.Month) ([]DayWorkHours, error)
}
