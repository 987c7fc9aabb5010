package attendance

import (
	"time"
)

// Status of the daily attendance record. waiting-style approval statuses do
// not exist here: the record is derived purely from clock times.
type Status string

const (
	StatusPresent    Status = "present"
	StatusLate       Status = "late"
	StatusEarlyLeave Status = "early_leave"
	StatusAbsent     Status = "absent"
)

type BreakType string

const (
	BreakTypeLunch    BreakType = "lunch"
	BreakTypeCoffee   BreakType = "coffee"
	BreakTypePersonal BreakType = "personal"
	BreakTypeOther    BreakType = "other"
)

// BreakTypes lists the accepted break types for input validation.
var BreakTypes = []string{
	string(BreakTypeLunch),
	string(BreakTypeCoffee),
	string(BreakTypePersonal),
	string(BreakTypeOther),
}

// Attendance is the single daily record per (staff, work date). ClockIn is
// set at creation; ClockOut and TotalHours are set exactly once at clock-out.
// TotalBreakMinutes is the sum of minutes over all closed break intervals of
// this record and is recomputed in full whenever a break closes.
type Attendance struct {
	ID                string
	StaffID           string
	WorkDate          time.Time
	ClockIn           time.Time
	ClockOut          *time.Time
	Status            Status
	TotalHours        *float64
	TotalBreakMinutes int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// BreakInterval belongs to exactly one attendance record. EndedAt and
// Minutes are nil while the break is open; at most one open interval may
// exist per attendance record.
type BreakInterval struct {
	ID           string
	AttendanceID string
	BreakType    BreakType
	StartedAt    time.Time
	EndedAt      *time.Time
	Minutes      *int
	CreatedAt    time.Time
}
