package overtime

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/worklog-hq/worklog-backend-go/internal/domain/overtime"
	"github.com/worklog-hq/worklog-backend-go/internal/domain/staff"
	"github.com/worklog-hq/worklog-backend-go/internal/pkg/audit"
)

type OvertimeServiceImpl struct {
	overtime.OvertimeRepository
	location *time.Location
	recorder audit.Recorder
	clock    func() time.Time
}

func NewOvertimeService(
	overtimeRepo overtime.OvertimeRepository,
	location *time.Location,
	recorder audit.Recorder,
) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		OvertimeRepository: overtimeRepo,
		location:           location,
		recorder:           recorder,
		clock:              time.Now,
	}
}

func (o *OvertimeServiceImpl) workDate(t time.Time) time.Time {
	local := t.In(o.location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOvertime implements overtime.OvertimeService. The partial unique
// index on started sessions decides the winner between concurrent
// duplicate starts.
func (o *OvertimeServiceImpl) StartOvertime(ctx context.Context, req overtime.StartOvertimeRequest) (overtime.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.SessionResponse{}, err
	}

	ident, err := staff.FromContext(ctx)
	if err != nil {
		return overtime.SessionResponse{}, err
	}

	nowUTC := o.clock().UTC()

	created, err := o.OvertimeRepository.Create(ctx, overtime.Session{
		StaffID:     ident.StaffID,
		WorkDate:    o.workDate(nowUTC),
		WorkContent: req.WorkContent,
		StartTime:   nowUTC,
		Status:      overtime.StatusStarted,
	})
	if err != nil {
		return overtime.SessionResponse{}, err
	}

	o.recorder.Record(ctx, ident.StaffID, "overtime.start",
		fmt.Sprintf("started overtime at %s: %s", nowUTC.Format(time.RFC3339), created.WorkContent))

	return mapSessionToResponse(created), nil
}

// EndOvertime implements overtime.OvertimeService. Ending is a conditional
// update on status = started, so a second end of the same session fails.
func (o *OvertimeServiceImpl) EndOvertime(ctx context.Context, req overtime.EndOvertimeRequest) (overtime.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.SessionResponse{}, err
	}

	ident, err := staff.FromContext(ctx)
	if err != nil {
		return overtime.SessionResponse{}, err
	}

	nowUTC := o.clock().UTC()

	sess, err := o.OvertimeRepository.GetStarted(ctx, req.SessionID, ident.StaffID)
	if err != nil {
		return overtime.SessionResponse{}, err
	}

	hours := math.Round(nowUTC.Sub(sess.StartTime).Hours()*100) / 100
	if err := o.OvertimeRepository.End(ctx, sess.ID, nowUTC, hours); err != nil {
		return overtime.SessionResponse{}, err
	}

	sess.EndTime = &nowUTC
	sess.Hours = &hours
	sess.Status = overtime.StatusEnded

	o.recorder.Record(ctx, ident.StaffID, "overtime.end",
		fmt.Sprintf("ended overtime session %s with %.2f hours", sess.ID, hours))

	return mapSessionToResponse(sess), nil
}

// GetMyOvertime implements overtime.OvertimeService.
func (o *OvertimeServiceImpl) GetMyOvertime(ctx context.Context, filter overtime.MyOvertimeFilter) (overtime.ListSessionResponse, error) {
	if err := filter.Validate(); err != nil {
		return overtime.ListSessionResponse{}, err
	}

	ident, err := staff.FromContext(ctx)
	if err != nil {
		return overtime.ListSessionResponse{}, err
	}

	month, _ := time.Parse("2006-01", filter.Month)

	sessions, err := o.OvertimeRepository.ListByStaffAndMonth(ctx, ident.StaffID, month.Year(), month.Month())
	if err != nil {
		return overtime.ListSessionResponse{}, fmt.Errorf("failed to list overtime sessions: %w", err)
	}

	responses := make([]overtime.SessionResponse, 0, len(sessions))
	var totalHours float64
	for _, sess := range sessions {
		if sess.Hours != nil {
			totalHours += *sess.Hours
		}
		responses = append(responses, mapSessionToResponse(sess))
	}

	return overtime.ListSessionResponse{
		Month:      filter.Month,
		TotalHours: math.Round(totalHours*100) / 100,
		Sessions:   responses,
	}, nil
}

func mapSessionToResponse(sess overtime.Session) overtime.SessionResponse {
	var endTime *string
	if sess.EndTime != nil {
		formatted := sess.EndTime.Format(time.RFC3339)
		endTime = &formatted
	}

	return overtime.SessionResponse{
		ID:          sess.ID,
		StaffID:     sess.StaffID,
		Date:        sess.WorkDate.Format("2006-01-02"),
		WorkContent: sess.WorkContent,
		StartTime:   sess.StartTime.Format(time.RFC3339),
		EndTime:     endTime,
		Hours:       sess.Hours,
		Status:      string(sess.Status),
	}
}
