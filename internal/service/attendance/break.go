package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/worklog-hq/worklog-backend-go/internal/domain/attendance"
	"github.com/worklog-hq/worklog-backend-go/internal/domain/staff"
)

// StartBreak implements attendance.AttendanceService. The partial unique
// index on open intervals decides the winner between concurrent duplicate
// break starts.
func (a *AttendanceServiceImpl) StartBreak(ctx context.Context, req attendance.StartBreakRequest) (attendance.BreakResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BreakResponse{}, err
	}

	ident, err := staff.FromContext(ctx)
	if err != nil {
		return attendance.BreakResponse{}, err
	}

	nowUTC := a.clock().UTC()
	workDate := a.rules.WorkDate(nowUTC)

	record, err := a.AttendanceRepository.GetOpenSession(ctx, ident.StaffID, workDate)
	if err != nil {
		if errors.Is(err, attendance.ErrNotClockedIn) || errors.Is(err, attendance.ErrAlreadyClockedOut) {
			return attendance.BreakResponse{}, attendance.ErrNoActiveSession
		}
		return attendance.BreakResponse{}, err
	}

	created, err := a.BreakRepository.Create(ctx, attendance.BreakInterval{
		AttendanceID: record.ID,
		BreakType:    attendance.BreakType(req.BreakType),
		StartedAt:    nowUTC,
	})
	if err != nil {
		return attendance.BreakResponse{}, err
	}

	a.recorder.Record(ctx, ident.StaffID, "break.start",
		fmt.Sprintf("started %s break at %s", created.BreakType, nowUTC.Format(time.RFC3339)))

	return mapBreakToResponse(created), nil
}

// EndBreak implements attendance.AttendanceService. Closing the interval
// and recomputing the record's break-minutes summary happen in one
// transaction so the summary never drifts from the closed intervals.
func (a *AttendanceServiceImpl) EndBreak(ctx context.Context) (attendance.BreakResponse, error) {
	ident, err := staff.FromContext(ctx)
	if err != nil {
		return attendance.BreakResponse{}, err
	}

	nowUTC := a.clock().UTC()
	workDate := a.rules.WorkDate(nowUTC)

	var closed attendance.BreakInterval
	err = a.tx.RunInTx(ctx, func(ctx context.Context) error {
		record, err := a.AttendanceRepository.GetByStaffAndDate(ctx, ident.StaffID, workDate)
		if err != nil {
			return err
		}
		if record == nil {
			return attendance.ErrNoOpenBreak
		}

		interval, err := a.BreakRepository.GetOpenByAttendance(ctx, record.ID)
		if err != nil {
			return err
		}

		minutes := roundMinutes(nowUTC.Sub(interval.StartedAt))
		if err := a.BreakRepository.Close(ctx, interval.ID, nowUTC, minutes); err != nil {
			return err
		}

		// Full recomputation over all closed intervals, not an increment.
		totalMinutes, err := a.BreakRepository.SumClosedMinutes(ctx, record.ID)
		if err != nil {
			return err
		}
		if err := a.AttendanceRepository.UpdateBreakMinutes(ctx, record.ID, totalMinutes); err != nil {
			return err
		}

		interval.EndedAt = &nowUTC
		interval.Minutes = &minutes
		closed = interval
		return nil
	})
	if err != nil {
		return attendance.BreakResponse{}, err
	}

	a.recorder.Record(ctx, ident.StaffID, "break.end",
		fmt.Sprintf("ended %s break after %d minutes", closed.BreakType, *closed.Minutes))

	return mapBreakToResponse(closed), nil
}

func mapBreakToResponse(br attendance.BreakInterval) attendance.BreakResponse {
	return attendance.BreakResponse{
		ID:           br.ID,
		AttendanceID: br.AttendanceID,
		BreakType:    string(br.BreakType),
		StartedAt:    br.StartedAt.Format(time.RFC3339),
		EndedAt:      timePtrToString(br.EndedAt),
		Minutes:      br.Minutes,
	}
}
