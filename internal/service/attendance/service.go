package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/worklog-hq/worklog-backend-go/internal/domain/attendance"
	"github.com/worklog-hq/worklog-backend-go/internal/domain/staff"
	"github.com/worklog-hq/worklog-backend-go/internal/pkg/audit"
	"github.com/worklog-hq/worklog-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	tx database.TxRunner
	attendance.AttendanceRepository
	attendance.BreakRepository
	rules    Rules
	recorder audit.Recorder
	clock    func() time.Time
}

func NewAttendanceService(
	tx database.TxRunner,
	attendanceRepo attendance.AttendanceRepository,
	breakRepo attendance.BreakRepository,
	rules Rules,
	recorder audit.Recorder,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:                   tx,
		AttendanceRepository: attendanceRepo,
		BreakRepository:      breakRepo,
		rules:                rules,
		recorder:             recorder,
		clock:                time.Now,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format(time.RFC3339)
	return &format
}

// ClockIn implements attendance.AttendanceService. The storage uniqueness
// constraint on (staff, work date) decides the winner between concurrent
// duplicate clock-ins; no separate existence check is raced against.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context) (attendance.AttendanceResponse, error) {
	ident, err := staff.FromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC := a.clock().UTC()

	record := attendance.Attendance{
		StaffID:  ident.StaffID,
		WorkDate: a.rules.WorkDate(nowUTC),
		ClockIn:  nowUTC,
		Status:   a.rules.ClockInStatus(nowUTC),
	}

	created, err := a.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	a.recorder.Record(ctx, ident.StaffID, "attendance.clock_in",
		fmt.Sprintf("clocked in at %s with status %s", nowUTC.Format(time.RFC3339), created.Status))

	return mapAttendanceToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService. The close is a
// conditional update so total_hours is written at most once per record.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	ident, err := staff.FromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC := a.clock().UTC()
	workDate := a.rules.WorkDate(nowUTC)

	var closed attendance.Attendance
	err = a.tx.RunInTx(ctx, func(ctx context.Context) error {
		record, err := a.AttendanceRepository.GetOpenSession(ctx, ident.StaffID, workDate)
		if err != nil {
			return err
		}

		totalHours := roundHours(nowUTC.Sub(record.ClockIn))
		status := a.rules.ClockOutStatus(record.Status, nowUTC, totalHours)

		if err := a.AttendanceRepository.CloseSession(ctx, record.ID, nowUTC, status, totalHours); err != nil {
			return err
		}

		record.ClockOut = &nowUTC
		record.Status = status
		record.TotalHours = &totalHours
		closed = record
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	a.recorder.Record(ctx, ident.StaffID, "attendance.clock_out",
		fmt.Sprintf("clocked out at %s with %.2f hours", nowUTC.Format(time.RFC3339), *closed.TotalHours))

	return mapAttendanceToResponse(closed), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	ident, err := staff.FromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.AttendanceRepository.ListByStaff(ctx, ident.StaffID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapAttendanceToResponse(record))
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       limit,
		TotalPages:  totalPages,
		Attendances: responses,
	}, nil
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:                att.ID,
		StaffID:           att.StaffID,
		Date:              att.WorkDate.Format("2006-01-02"),
		ClockInTime:       att.ClockIn.Format(time.RFC3339),
		ClockOutTime:      timePtrToString(att.ClockOut),
		Status:            string(att.Status),
		TotalHours:        att.TotalHours,
		TotalBreakMinutes: att.TotalBreakMinutes,
		CreatedAt:         att.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         att.UpdatedAt.Format(time.RFC3339),
	}
}
