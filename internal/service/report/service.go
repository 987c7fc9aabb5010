package report

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/worklog-hq/worklog-backend-go/internal/domain/report"
	"github.com/worklog-hq/worklog-backend-go/internal/domain/staff"
)

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
}

func NewReportService(reportRepo report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{
		reportRepo: reportRepo,
	}
}

// GetMonthlyWorkHours implements report.ReportService. Pure read
// combination: no locks, no mutation.
func (s *ReportServiceImpl) GetMonthlyWorkHours(ctx context.Context, req report.MonthlyWorkHoursRequest) (report.MonthlyWorkHoursResponse, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyWorkHoursResponse{}, err
	}

	ident, err := staff.FromContext(ctx)
	if err != nil {
		return report.MonthlyWorkHoursResponse{}, err
	}

	// Staff members read their own hours; managers may read anyone's.
	staffID := ident.StaffID
	if req.StaffID != "" && req.StaffID != ident.StaffID {
		if !ident.Role.CanManage() {
			return report.MonthlyWorkHoursResponse{}, staff.ErrManagerAccessRequired
		}
		staffID = req.StaffID
	}

	month, _ := time.Parse("2006-01", req.Month)

	days, err := s.reportRepo.GetMonthlyWorkHours(ctx, staffID, month.Year(), month.Month())
	if err != nil {
		return report.MonthlyWorkHoursResponse{}, fmt.Errorf("failed to get monthly work hours: %w", err)
	}

	return buildMonthlyResponse(staffID, req.Month, days), nil
}

// buildMonthlyResponse folds per-day rows into month aggregates. The
// average guards against zero attended days.
func buildMonthlyResponse(staffID string, month string, days []report.DayWorkHours) report.MonthlyWorkHoursResponse {
	responses := make([]report.DayWorkHoursResponse, 0, len(days))
	var totalHours, totalOvertime float64

	for _, day := range days {
		total := day.BaseHours + day.OvertimeHours
		totalHours += day.BaseHours
		totalOvertime += day.OvertimeHours

		responses = append(responses, report.DayWorkHoursResponse{
			Date:           day.Date.Format("2006-01-02"),
			Status:         day.Status,
			BaseHours:      round2(day.BaseHours),
			OvertimeHours:  round2(day.OvertimeHours),
			TotalWorkHours: round2(total),
			BreakMinutes:   day.BreakMinutes,
		})
	}

	attendedDays := len(days)
	var average float64
	if attendedDays > 0 {
		average = round2((totalHours + totalOvertime) / float64(attendedDays))
	}

	return report.MonthlyWorkHoursResponse{
		StaffID:            staffID,
		Month:              month,
		AttendedDays:       attendedDays,
		TotalHours:         round2(totalHours),
		TotalOvertimeHours: round2(totalOvertime),
		AverageHoursPerDay: average,
		GeneratedAt:        time.Now().Format(time.RFC3339),
		Days:               responses,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
