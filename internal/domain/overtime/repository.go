package overtime

import (
	"context"
	"time"
)

// OvertimeRepository defines data access for overtime sessions. The store
// enforces at most one started session per (staff_id, work_date); a
// concurrent duplicate Create surfaces ErrOvertimeInProgress.
type OvertimeRepository interface {
	// Create inserts a new started session.
	Create(ctx context.Context, sess Session) (Session, error)

	// GetStarted retrieves the session owned by staffID with status
	// started. Returns ErrNoActiveOvertime when it does not exist or is
	// already ended.
	GetStarted(ctx context.Context, id string, staffID string) (Session, error)

	// End sets end_time, hours and status=ended. Conditional on the status
	// still being started; returns ErrNoActiveOvertime otherwise.
	End(ctx context.Context, id string, endTime time.Time, hours float64) error

	// ListByStaffAndMonth retrieves all sessions of a staff member whose
	// work date falls in the given month, oldest first.
	ListByStaffAndMonth(ctx context.Context, staffID string, year int, month time.Month) ([]Session, error)
}
