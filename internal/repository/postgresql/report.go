package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/worklog-hq/worklog-backend-go/internal/domain/report"
	"github.com/worklog-hq/worklog-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// GetMonthlyWorkHours implements report.ReportRepository. Attendance rows
// are joined with the summed hours of ended overtime sessions on the same
// (staff, date); days without overtime count as zero.
func (r *reportRepository) GetMonthlyWorkHours(ctx context.Context, staffID string, year int, month time.Month) ([]report.DayWorkHours, error) {
	q := GetQuerier(ctx, r.db)

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	query := `
		SELECT
			a.work_date,
			a.status,
			COALESCE(a.total_hours, 0) AS base_hours,
			COALESCE(o.overtime_hours, 0) AS overtime_hours,
			a.total_break_minutes
		FROM attendance_records a
		LEFT JOIN (
			SELECT staff_id, work_date, SUM(hours) AS overtime_hours
			FROM overtime_sessions
			WHERE status = 'ended'
			GROUP BY staff_id, work_date
		) o ON o.staff_id = a.staff_id AND o.work_date = a.work_date
		WHERE a.staff_id = $1
		  AND a.work_date >= $2
		  AND a.work_date < $3
		ORDER BY a.work_date ASC
	`

	rows, err := q.Query(ctx, query, staffID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly work hours: %w", err)
	}
	defer rows.Close()

	var days []report.DayWorkHours
	for rows.Next() {
		var day report.DayWorkHours
		err := rows.Scan(&day.Date, &day.Status, &day.BaseHours, &day.OvertimeHours, &day.BreakMinutes)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work-hours row: %w", err)
		}
		days = append(days, day)
	}

	return days, nil
}
