package attendance

import "errors"

// Attendance domain errors
var (
	// Clock-in / clock-out
	ErrAlreadyClockedIn  = errors.New("you have already clocked in today")
	ErrNotClockedIn      = errors.New("you have not clocked in today")
	ErrAlreadyClockedOut = errors.New("you have already clocked out")

	// Breaks
	ErrNoActiveSession = errors.New("no active work session to take a break in")
	ErrBreakInProgress = errors.New("a break is already in progress")
	ErrNoOpenBreak     = errors.New("no open break to end")

	// General
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
