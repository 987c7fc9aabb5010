package overtime

import (
	"time"
)

type Status string

const (
	StatusStarted Status = "started"
	StatusEnded   Status = "ended"
)

// Session is one overtime span. A staff member may log several sessions on
// the same work date, but at most one may be in the started state.
type Session struct {
	ID          string
	StaffID     string
	WorkDate    time.Time
	WorkContent string
	StartTime   time.Time
	EndTime     *time.Time
	Hours       *float64
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
