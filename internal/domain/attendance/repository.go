package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for daily attendance records.
// Uniqueness of (staff_id, work_date) is enforced by the store: a concurrent
// duplicate Create surfaces ErrAlreadyClockedIn to the losing writer.
type AttendanceRepository interface {
	// Create inserts the attendance record created by the first clock-in of
	// the day. Returns ErrAlreadyClockedIn if one already exists for
	// (staff, work date).
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByStaffAndDate retrieves the record for a staff member on a date.
	// Returns (nil, nil) when no record exists.
	GetByStaffAndDate(ctx context.Context, staffID string, workDate time.Time) (*Attendance, error)

	// GetOpenSession retrieves the not-yet-clocked-out record for the date.
	// Returns ErrNotClockedIn when there is none at all and
	// ErrAlreadyClockedOut when the record exists but is closed.
	GetOpenSession(ctx context.Context, staffID string, workDate time.Time) (Attendance, error)

	// CloseSession sets clock_out, status and total_hours exactly once.
	// The update is conditional on clock_out still being NULL; a concurrent
	// duplicate clock-out gets ErrAlreadyClockedOut.
	CloseSession(ctx context.Context, id string, clockOut time.Time, status Status, totalHours float64) error

	// UpdateBreakMinutes overwrites the total_break_minutes summary field.
	UpdateBreakMinutes(ctx context.Context, id string, minutes int) error

	// ListByStaff retrieves attendance records for one staff member with
	// filters and pagination.
	ListByStaff(ctx context.Context, staffID string, filter MyAttendanceFilter) ([]Attendance, int64, error)
}

// BreakRepository defines data access for break intervals. At most one open
// interval per attendance record is enforced by the store.
type BreakRepository interface {
	// Create opens a break interval. Returns ErrBreakInProgress if the
	// attendance record already has an open interval.
	Create(ctx context.Context, br BreakInterval) (BreakInterval, error)

	// GetOpenByAttendance retrieves the single open interval of a record.
	// Returns ErrNoOpenBreak when there is none.
	GetOpenByAttendance(ctx context.Context, attendanceID string) (BreakInterval, error)

	// Close sets ended_at and minutes on an open interval. Conditional on
	// ended_at still being NULL; returns ErrNoOpenBreak otherwise.
	Close(ctx context.Context, id string, endedAt time.Time, minutes int) error

	// SumClosedMinutes computes the sum of minutes over all closed
	// intervals of an attendance record.
	SumClosedMinutes(ctx context.Context, attendanceID string) (int, error)

	// ListByAttendance retrieves all intervals of a record, oldest first.
	ListByAttendance(ctx context.Context, attendanceID string) ([]BreakInterval, error)
}
