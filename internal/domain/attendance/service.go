package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance and break
// operations. The authenticated staff id is taken from the request context.
type AttendanceService interface {
	// ClockIn creates today's attendance record; the first call of the day
	// wins, later ones fail with ErrAlreadyClockedIn.
	ClockIn(ctx context.Context) (AttendanceResponse, error)

	// ClockOut closes today's open record and derives total hours and the
	// final status.
	ClockOut(ctx context.Context) (AttendanceResponse, error)

	// StartBreak opens a break interval on today's open record.
	StartBreak(ctx context.Context, req StartBreakRequest) (BreakResponse, error)

	// EndBreak closes the open break interval and recomputes the record's
	// break-minutes summary.
	EndBreak(ctx context.Context) (BreakResponse, error)

	// GetMyAttendance retrieves attendance records for the authenticated
	// staff member.
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) (ListAttendanceResponse, error)
}
